package inspect

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tdewolff/parse/v2"
	cli "github.com/urfave/cli/v3"

	"sct/sheet"
	"sct/state"
	"sct/theme"
)

// Tokens prints token stream of the theme file, one token per line with its
// position.
func Tokens(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	path := cmd.Args().First()
	if len(path) == 0 {
		return errors.New("no theme file has been specified")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read theme: %w", err)
	}
	if data, err = theme.Decode(data); err != nil {
		return err
	}
	env.Rpt.StoreData("tokens/source.sct", data)

	out := cmd.Root().Writer
	for tok, err := range sheet.NewTokenizer(data, path).Tokens() {
		if err != nil {
			return err
		}
		line, col, _ := parse.Position(bytes.NewReader(data), tok.Offset)
		fmt.Fprintf(out, "%4d:%-3d %-10s %s\n", line, col, tok.Kind, tok)
	}
	return nil
}
