// Package resource provides named byte resources (images, fonts) used while
// styling. Providers are injected, so callers and tests decide where bytes
// come from.
package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// ErrNotFound is returned (wrapped) by providers for unknown names.
var ErrNotFound = errors.New("resource not found")

// Provider returns bytes of named resource or error matching ErrNotFound.
type Provider interface {
	Fetch(name string) ([]byte, error)
}

// ProviderFunc adapts function to Provider.
type ProviderFunc func(name string) ([]byte, error)

func (f ProviderFunc) Fetch(name string) ([]byte, error) {
	return f(name)
}

func notFound(name string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, name)
}

// FS serves resources from file system. Names are slash separated and
// relative to the file system root.
type FS struct {
	fsys fs.FS
}

// NewFS returns provider reading from fsys.
func NewFS(fsys fs.FS) *FS {
	return &FS{fsys: fsys}
}

// Dir returns provider reading from directory dir.
func Dir(dir string) *FS {
	return NewFS(os.DirFS(dir))
}

func (p *FS) Fetch(name string) ([]byte, error) {
	clean := path.Clean(strings.ReplaceAll(name, `\`, "/"))
	if name == "" || !fs.ValidPath(clean) {
		return nil, notFound(name)
	}
	data, err := fs.ReadFile(p.fsys, clean)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(name)
		}
		return nil, fmt.Errorf("unable to read resource %q: %w", name, err)
	}
	return data, nil
}

// Memory is provider over in-memory map, useful for embedded themes and
// tests. It must not be modified while in use.
type Memory map[string][]byte

func (m Memory) Fetch(name string) ([]byte, error) {
	data, ok := m[name]
	if !ok {
		return nil, notFound(name)
	}
	return data, nil
}

// Chain tries providers in order and returns the first result which is not
// ErrNotFound.
type Chain []Provider

func (c Chain) Fetch(name string) ([]byte, error) {
	for _, p := range c {
		if p == nil {
			continue
		}
		data, err := p.Fetch(name)
		if err == nil || !errors.Is(err, ErrNotFound) {
			return data, err
		}
	}
	return nil, notFound(name)
}

// None never finds anything.
var None Provider = ProviderFunc(func(name string) ([]byte, error) {
	return nil, notFound(name)
})

type cached struct {
	data []byte
	err  error
}

// Cached memoizes results of underlying provider. Both found resources and
// ErrNotFound answers are remembered, other errors are retried next time.
// It is safe for concurrent use.
type Cached struct {
	p   Provider
	log *zap.Logger

	mu   sync.Mutex
	memo map[string]cached
}

// NewCached wraps p with memoizing provider.
func NewCached(p Provider, log *zap.Logger) *Cached {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cached{p: p, log: log.Named("resources"), memo: make(map[string]cached)}
}

func (c *Cached) Fetch(name string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.memo[name]; ok {
		return e.data, e.err
	}
	data, err := c.p.Fetch(name)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	c.memo[name] = cached{data: data, err: err}
	c.log.Debug("Resource cached", zap.String("name", name), zap.Int("bytes", len(data)), zap.Bool("found", err == nil))
	return data, err
}

// Len returns number of remembered answers.
func (c *Cached) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.memo)
}
