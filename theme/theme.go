// Package theme loads theme files and applies their styles to objects.
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"sct/resource"
	"sct/sheet"
	"sct/style"
	"sct/value"
)

// LoadError is returned when theme cannot be loaded. Err is either I/O error
// or *sheet.SyntaxError.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("unable to load theme %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type options struct {
	log   *zap.Logger
	res   resource.Provider
	reg   *style.Registry
	fonts *value.FontBook
}

// Option configures theme.
type Option func(*options)

// WithLogger sets logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithResources sets provider of images and fonts. By default resources are
// read from the directory of the theme file.
func WithResources(p resource.Provider) Option {
	return func(o *options) { o.res = p }
}

// WithRegistry sets catalogs of styleable types. Without registry no
// property can be resolved.
func WithRegistry(reg *style.Registry) Option {
	return func(o *options) { o.reg = reg }
}

// WithFonts sets font book.
func WithFonts(b *value.FontBook) Option {
	return func(o *options) { o.fonts = b }
}

// Theme is a loaded style sheet ready to be applied. It is immutable and may
// be shared between goroutines, targets must not be styled concurrently.
type Theme struct {
	path    string
	name    string
	sheet   *sheet.StyleSheet
	applier *style.Applier
	log     *zap.Logger
}

// Load reads and parses theme file. No theme is returned on error.
func Load(path string, opts ...Option) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	o := &options{res: resource.Dir(filepath.Dir(path))}
	for _, opt := range opts {
		opt(o)
	}
	return build(data, path, o)
}

// New parses theme text held in memory, name identifies it in messages.
func New(data []byte, name string, opts ...Option) (*Theme, error) {
	o := &options{res: resource.None}
	for _, opt := range opts {
		opt(o)
	}
	return build(data, name, o)
}

func build(data []byte, path string, o *options) (*Theme, error) {
	if o.log == nil {
		o.log = zap.NewNop()
	}
	name := Name(path)
	log := o.log.Named("theme").With(zap.String("theme", name))

	text, err := Decode(data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	ss, err := sheet.NewParser(log).Parse(text, path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	for _, w := range ss.Warnings() {
		log.Warn("Theme warning", zap.String("warning", w))
	}

	eng := value.NewEngine(value.WithResources(o.res), value.WithFonts(o.fonts), value.WithLogger(log))
	t := &Theme{
		path:    path,
		name:    name,
		sheet:   ss,
		applier: style.NewApplier(o.reg, eng, log),
		log:     log,
	}
	log.Debug("Theme loaded", zap.String("path", path), zap.Strings("styles", ss.Names()))
	return t, nil
}

// Decode converts theme text to UTF-8 honoring byte order marks.
func Decode(data []byte) ([]byte, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	text, _, err := transform.Bytes(dec, data)
	if err != nil {
		return nil, fmt.Errorf("unable to decode text: %w", err)
	}
	return text, nil
}

// Name returns theme name derived from file name: "Leather Theme.sct" is
// "leather-theme".
func Name(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return "theme"
	}
	if s := slug.Make(strings.TrimSuffix(base, filepath.Ext(base))); s != "" {
		return s
	}
	return "theme"
}

// Path returns file theme was loaded from.
func (t *Theme) Path() string { return t.path }

// Name returns theme name.
func (t *Theme) Name() string { return t.name }

// Sheet returns parsed style sheet.
func (t *Theme) Sheet() *sheet.StyleSheet { return t.sheet }

// Registry returns catalogs used to resolve properties.
func (t *Theme) Registry() *style.Registry { return t.applier.Registry() }

// HasStyle reports whether style is defined.
func (t *Theme) HasStyle(name string) bool {
	_, ok := t.sheet.Style(name)
	return ok
}

// ApplyStyle applies every assignment of named style to target. Unknown
// style does nothing.
func (t *Theme) ApplyStyle(target any, styleName string) style.Outcomes {
	return t.applier.Apply(t.sheet, target, styleName, nil)
}

// ApplyStyleOnly applies assignments of named style whose top level property
// is one of names. Without names nothing is applied.
func (t *Theme) ApplyStyleOnly(target any, styleName string, names ...string) style.Outcomes {
	if names == nil {
		names = []string{}
	}
	return t.applier.Apply(t.sheet, target, styleName, names)
}

// IsSyntaxError reports whether err is caused by malformed theme text.
func IsSyntaxError(err error) bool {
	return errors.Is(err, sheet.ErrSyntax)
}
