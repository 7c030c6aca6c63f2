// Package value turns raw theme values into typed values suitable for the
// destination property. Destination is described by Type, conversion is done
// by Engine.
package value

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Kind of destination property.
// ENUM(text, real, integer, boolean, color, graphicsColor, rect, size, image, font, view, enum, object)
type Kind int

// Type describes destination property.
type Type struct {
	Kind Kind
	// Nullable destinations accept nil literal.
	Nullable bool
	// Enum is table of named constants accepted by enum, integer and real
	// destinations.
	Enum *Enumeration
}

func (t Type) String() string {
	s := t.Kind.String()
	if t.Enum != nil && t.Enum.Name != "" {
		s += "(" + t.Enum.Name + ")"
	}
	if t.Nullable {
		s += "?"
	}
	return s
}

// Enumeration is a named table of integer constants.
type Enumeration struct {
	Name   string
	values map[string]int
}

// NewEnumeration builds enumeration from generated enum constants. Every
// constant is reachable by its own name and by the name prefixed with
// enumeration name, so ContentMode value "scaleToFill" may be written as
// scaleToFill or ContentModeScaleToFill.
func NewEnumeration[T interface {
	~int
	fmt.Stringer
}](name string, values ...T) *Enumeration {
	e := &Enumeration{Name: name, values: make(map[string]int, len(values)*2)}
	for _, v := range values {
		s := v.String()
		e.values[s] = int(v)
		if name != "" && s != "" {
			e.values[name+strings.ToUpper(s[:1])+s[1:]] = int(v)
		}
	}
	return e
}

// Lookup returns value of named constant.
func (e *Enumeration) Lookup(name string) (int, bool) {
	if e == nil {
		return 0, false
	}
	v, ok := e.values[name]
	return v, ok
}

// Contains reports whether v is one of enumeration values.
func (e *Enumeration) Contains(v int) bool {
	if e == nil {
		return false
	}
	for _, ev := range e.values {
		if ev == v {
			return true
		}
	}
	return false
}

// Names returns all accepted constant names sorted.
func (e *Enumeration) Names() []string {
	if e == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(e.values))
}
