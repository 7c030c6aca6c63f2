package inspect

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"sct/state"
)

// Styles lists styles of the theme in natural order. When style names are
// given their assignments are printed instead.
func Styles(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("styles")

	path := cmd.Args().First()
	if len(path) == 0 {
		return errors.New("no theme file has been specified")
	}
	th, release, err := openTheme(env, path)
	if err != nil {
		return err
	}
	defer release()
	ss := th.Sheet()
	out := cmd.Root().Writer

	names := cmd.Args().Tail()
	if len(names) == 0 {
		all := ss.Names()
		slices.SortFunc(all, func(a, b string) int {
			switch {
			case natural.Less(a, b):
				return -1
			case natural.Less(b, a):
				return 1
			}
			return 0
		})
		for _, name := range all {
			list, _ := ss.Style(name)
			fmt.Fprintf(out, "%s (%d)\n", name, len(list))
		}
		return nil
	}

	for _, name := range names {
		if !th.HasStyle(name) {
			log.Warn("Style not found", zap.String("style", name))
		}
	}
	fmt.Fprint(out, ss.Dump(names...))
	return nil
}
