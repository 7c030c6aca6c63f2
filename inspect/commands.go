package inspect

import (
	"fmt"
	"strings"

	cli "github.com/urfave/cli/v3"

	"sct/config"
	"sct/widget"
)

// Commands returns theme commands of the program.
func Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "check",
			Usage:     "Loads theme file(s) and reports syntax errors",
			Action:    Check,
			ArgsUsage: "THEME...",
		},
		{
			Name:      "styles",
			Usage:     "Lists styles of the theme or prints assignments of requested styles",
			Action:    Styles,
			ArgsUsage: "THEME [STYLE...]",
		},
		{
			Name:      "tokens",
			Usage:     "Prints token stream of the theme file",
			Action:    Tokens,
			ArgsUsage: "THEME",
		},
		{
			Name:   "apply",
			Usage:  "Applies style to a sample widget and reports results",
			Action: Apply,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "widget", Aliases: []string{"w"},
					Usage: "sample widget `KIND` (" + strings.Join(widget.Kinds(), ", ") + "), default from configuration"},
				&cli.StringSliceFlag{Name: "only", Usage: "apply only assignments to top level properties `NAMES`"},
				&cli.StringFlag{Name: "output", Aliases: []string{"o"},
					Usage: "results `FORMAT` (" + strings.Join(config.OutputFormatNames(), ", ") + "), default from configuration"},
				&cli.StringFlag{Name: "render", Usage: "render widget background to PNG `FILE` (or into directory)"},
			},
			ArgsUsage: "THEME STYLE",
			CustomHelpTemplate: fmt.Sprintf(`%s
THEME:
    path to theme file, images and fonts are looked up next to it and then in
    configured resources directory

STYLE:
    name of the style block to apply

Failed assignments do not stop application, every assignment is reported with
its outcome followed by the resulting widget state.
`, cli.CommandHelpTemplate),
		},
	}
}
