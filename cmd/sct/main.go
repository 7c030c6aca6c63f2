// Command sct checks, inspects and applies declarative style sheets.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"

	"sct/inspect"
	"sct/misc"
	"sct/state"
)

func newApp() *cli.Command {
	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "checks and applies declarative style sheets (themes)",
		Version:         fmt.Sprintf("%s (%s) : %s", misc.GetVersion(), runtime.Version(), misc.GetGitHash()),
		HideHelpCommand: true,
		Before:          setup,
		After:           teardown,
		ExitErrHandler:  logExitError,
		CommandNotFound: unknownCommand,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.StringFlag{Name: "resources", Aliases: []string{"r"}, Usage: "search `DIR` for theme resources, overrides configuration"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log everything and produce report archive to help troubleshooting"},
		},
		Commands: append(inspect.Commands(), dumpConfigCommand()),
	}
	app.OnUsageError = passUsageError
	for _, c := range app.Commands {
		c.OnUsageError = passUsageError
	}
	return app
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	err := newApp().Run(ctx, os.Args)
	stop()
	if err != nil {
		if !errLogged {
			fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
		}
		os.Exit(1)
	}
}
