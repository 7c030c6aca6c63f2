// Package state defines shared program state.
package state

import (
	"context"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"sct/archive"
	"sct/config"
	"sct/resource"
	"sct/style"
	"sct/theme"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &LocalEnv{start: time.Now()})
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}

// Resources returns provider for theme file: directory of the theme first,
// then configured resources directory.
func (e *LocalEnv) Resources(themePath string) resource.Provider {
	chain := resource.Chain{resource.Dir(filepath.Dir(themePath))}
	if e.Cfg == nil {
		return chain
	}
	if dir := e.Cfg.Theme.Resources.Dir; dir != "" {
		chain = append(chain, resource.Dir(dir))
	}
	if e.Cfg.Theme.Resources.Cache {
		return resource.NewCached(chain, e.Log)
	}
	return chain
}

func (e *LocalEnv) themeOptions(res resource.Provider, reg *style.Registry) []theme.Option {
	opts := []theme.Option{
		theme.WithLogger(e.Log),
		theme.WithResources(res),
		theme.WithRegistry(reg),
	}
	if e.Cfg != nil {
		opts = append(opts, theme.WithFonts(e.Cfg.Theme.Fonts.FontBook()))
	}
	return opts
}

// LoadTheme loads theme file configured according to program settings. Theme
// file is copied into debug report when one is requested.
func (e *LocalEnv) LoadTheme(path string, reg *style.Registry) (*theme.Theme, error) {
	if e.Rpt != nil {
		if err := e.Rpt.StoreCopy("themes/"+theme.Name(path)+filepath.Ext(path), path); err != nil && e.Log != nil {
			e.Log.Debug("Unable to store theme in report", zap.String("path", path), zap.Error(err))
		}
	}
	return theme.Load(path, e.themeOptions(e.Resources(path), reg)...)
}

// LoadBundledTheme loads named theme from bundle. Its resources are looked up
// in the bundle first, then in configured resources directory.
func (e *LocalEnv) LoadBundledTheme(b *archive.Bundle, name string, reg *style.Registry) (*theme.Theme, error) {
	display := b.Path() + ":" + name
	data, err := b.ReadFile(name)
	if err != nil {
		return nil, &theme.LoadError{Path: display, Err: err}
	}
	e.Rpt.StoreData("themes/"+filepath.Base(b.Path())+"/"+name, data)

	var res resource.Provider = b.Resources(name)
	if e.Cfg != nil {
		if dir := e.Cfg.Theme.Resources.Dir; dir != "" {
			res = resource.Chain{res, resource.Dir(dir)}
		}
		if e.Cfg.Theme.Resources.Cache {
			res = resource.NewCached(res, e.Log)
		}
	}
	return theme.New(data, display, e.themeOptions(res, reg)...)
}
