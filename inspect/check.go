// Package inspect implements sct commands working with theme files.
package inspect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"sct/archive"
	"sct/sheet"
	"sct/state"
	"sct/theme"
	"sct/widget"
)

// Check loads every theme given on command line and reports syntax errors
// with their position. Every theme of a bundle is checked.
func Check(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("check")

	if cmd.Args().Len() == 0 {
		return errors.New("no theme files have been specified")
	}

	out := cmd.Root().Writer
	var total int
	report := func(name string, th *theme.Theme, er error) {
		total++
		if er != nil {
			log.Debug("Theme failed", zap.String("theme", name), zap.Error(er))
			printFailure(out, er)
			err = multierr.Append(err, er)
			return
		}
		ss := th.Sheet()
		fmt.Fprintf(out, "%s: ok, %d styles\n", name, ss.Len())
		for _, w := range ss.Warnings() {
			fmt.Fprintf(out, "    warning: %s\n", w)
		}
	}

	for _, path := range cmd.Args().Slice() {
		if er := ctx.Err(); er != nil {
			return er
		}
		if !archive.IsBundle(path) {
			th, er := env.LoadTheme(path, widget.Registry())
			report(path, th, er)
			continue
		}

		b, er := archive.Open(path)
		if er != nil {
			report(path, nil, er)
			continue
		}
		names := b.Themes()
		if len(names) == 0 {
			log.Warn("Bundle has no themes", zap.String("bundle", path))
		}
		for _, name := range names {
			th, er := env.LoadBundledTheme(b, name, widget.Registry())
			report(path+":"+name, th, er)
		}
		b.Close()
	}
	if n := len(multierr.Errors(err)); n > 0 {
		return fmt.Errorf("%d of %d themes have errors: %w", n, total, err)
	}
	return nil
}

// printFailure prints error with offending source line and caret under the
// column when error is a syntax error.
func printFailure(w io.Writer, err error) {
	fmt.Fprintf(w, "%v\n", err)
	var se *sheet.SyntaxError
	if !errors.As(err, &se) || se.Context == "" {
		return
	}
	fmt.Fprintf(w, "    %s\n", se.Context)
	fmt.Fprintf(w, "    %s^\n", strings.Repeat(" ", max(se.Column-1, 0)))
}

// openTheme loads theme named on command line. Themes inside bundles are
// named "bundle.zip:path/in/bundle.sct", bundle with a single theme may be
// named by itself. Bundled resources are read during application so the
// returned release function must be called when theme is no longer needed.
func openTheme(env *state.LocalEnv, arg string) (*theme.Theme, func(), error) {
	path, name := arg, ""
	if i := strings.LastIndex(arg, ":"); i > 0 && archive.IsBundle(arg[:i]) {
		path, name = arg[:i], arg[i+1:]
	}
	if !archive.IsBundle(path) {
		th, err := env.LoadTheme(path, widget.Registry())
		return th, func() {}, err
	}

	b, err := archive.Open(path)
	if err != nil {
		return nil, nil, &theme.LoadError{Path: path, Err: err}
	}
	release := func() {
		if err := b.Close(); err != nil {
			env.Log.Debug("Unable to close bundle", zap.String("bundle", path), zap.Error(err))
		}
	}

	if name == "" {
		names := b.Themes()
		if len(names) != 1 {
			release()
			return nil, nil, fmt.Errorf("bundle %s has %d themes, name one of them as %s:THEME (%s)",
				path, len(names), path, strings.Join(names, ", "))
		}
		name = names[0]
	}
	th, err := env.LoadBundledTheme(b, name, widget.Registry())
	if err != nil {
		release()
		return nil, nil, err
	}
	return th, release, nil
}
