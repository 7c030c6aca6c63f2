// Package archive reads theme bundles: zip archives holding theme files
// together with images and fonts they refer to.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/h2non/filetype"
	"github.com/maruel/natural"

	"sct/resource"
)

// ThemeExt is extension of theme files inside bundles.
const ThemeExt = ".sct"

// WalkFunc is called for each file in bundle visited by Walk. If an error is
// returned, processing stops.
type WalkFunc func(bundle string, file *zip.File) error

// Bundle is an opened theme bundle.
type Bundle struct {
	path string
	zr   *zip.ReadCloser
}

// IsBundle reports whether file at path is a zip archive.
func IsBundle(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	head := make([]byte, 262)
	n, _ := io.ReadFull(f, head)
	return filetype.Is(head[:n], "zip")
}

// Open opens bundle. Archives with absolute entries or entries containing
// path traversal components are rejected.
func Open(path string) (*Bundle, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if !isSafePath(f.Name) {
			zr.Close()
			return nil, fmt.Errorf("bundle %s, entry %q: unsafe path (absolute or contains path traversal)", path, f.Name)
		}
	}
	return &Bundle{path: path, zr: zr}, nil
}

func (b *Bundle) Close() error {
	return b.zr.Close()
}

// Path returns location of the bundle.
func (b *Bundle) Path() string {
	return b.path
}

// Walk visits all files in the bundle whose names start with prefix.
func (b *Bundle) Walk(prefix string, walkFn WalkFunc) error {
	for _, f := range b.zr.File {
		if !f.FileInfo().IsDir() && strings.HasPrefix(f.Name, prefix) {
			if err := walkFn(b.path, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// Themes returns names of theme files in the bundle in natural order.
func (b *Bundle) Themes() []string {
	var names []string
	_ = b.Walk("", func(_ string, f *zip.File) error {
		if strings.EqualFold(path.Ext(f.Name), ThemeExt) {
			names = append(names, f.Name)
		}
		return nil
	})
	slices.SortFunc(names, func(x, y string) int {
		switch {
		case natural.Less(x, y):
			return -1
		case natural.Less(y, x):
			return 1
		}
		return 0
	})
	return names
}

// ReadFile returns contents of the named bundle entry.
func (b *Bundle) ReadFile(name string) ([]byte, error) {
	f, err := b.zr.Open(name)
	if err != nil {
		return nil, fmt.Errorf("bundle %s: %w", b.path, err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

// Resources returns provider looking up resources of the named theme: first
// in the theme directory inside bundle, then in the bundle root.
func (b *Bundle) Resources(theme string) resource.Provider {
	root := resource.NewFS(&b.zr.Reader)
	dir := path.Dir(theme)
	if dir == "." {
		return root
	}
	return resource.Chain{resource.ProviderFunc(func(name string) ([]byte, error) {
		return root.Fetch(path.Join(dir, name))
	}), root}
}

// isSafePath returns false for paths that could escape bundle root: absolute
// paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	return !slices.Contains(strings.Split(name, "/"), "..")
}
