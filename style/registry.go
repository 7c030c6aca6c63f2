// Package style applies named styles to live objects. Objects are described
// by catalogs of typed properties kept in a Registry, values are converted by
// value.Engine.
package style

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/maruel/natural"

	"sct/value"
)

// Property is a settable (or, for object kind, traversable) property of a
// target type.
type Property struct {
	Name string
	Type value.Type

	set func(target any, v value.Value) error
	get func(target any) any
}

// Nullable returns copy of the property accepting nil literal. Setter
// receives zero value for nil.
func (p Property) Nullable() Property {
	p.Type.Nullable = true
	return p
}

// Catalog lists properties of a single target type.
type Catalog struct {
	typ   reflect.Type
	props map[string]Property
}

func newCatalog(typ reflect.Type) *Catalog {
	return &Catalog{typ: typ, props: make(map[string]Property)}
}

// Type returns name of target type catalog describes.
func (c *Catalog) Type() string {
	return c.typ.String()
}

// Property returns named property.
func (c *Catalog) Property(name string) (Property, bool) {
	p, ok := c.props[name]
	return p, ok
}

// Names returns property names in natural order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.props))
	for n := range c.props {
		names = append(names, n)
	}
	slices.SortFunc(names, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return 0
	})
	return names
}

func (c *Catalog) add(props ...Property) {
	for _, p := range props {
		if p.Name == "" {
			panic(fmt.Sprintf("style: property without name in catalog of %s", c.typ))
		}
		c.props[p.Name] = p
	}
}

// Registry maps target types to their catalogs. It is populated once at
// start up and read-only afterwards.
type Registry struct {
	catalogs map[reflect.Type]*Catalog
}

// NewRegistry creates empty registry.
func NewRegistry() *Registry {
	return &Registry{catalogs: make(map[reflect.Type]*Catalog)}
}

// Register adds properties to the catalog of *T creating it when necessary.
// Properties with the same name replace earlier ones.
func Register[T any](r *Registry, props ...Property) *Catalog {
	typ := reflect.TypeFor[*T]()
	c, ok := r.catalogs[typ]
	if !ok {
		c = newCatalog(typ)
		r.catalogs[typ] = c
	}
	c.add(props...)
	return c
}

// Embed makes every property of *E catalog available on *T through field
// accessor, the way Go promotes fields of embedded structs. Properties
// already registered on *T win. *E must be registered first.
func Embed[T, E any](r *Registry, field func(*T) *E) *Catalog {
	inner, ok := r.catalogs[reflect.TypeFor[*E]()]
	if !ok {
		panic(fmt.Sprintf("style: %s must be registered before embedding", reflect.TypeFor[*E]()))
	}
	outer := Register[T](r)
	for name, p := range inner.props {
		if _, exists := outer.props[name]; exists {
			continue
		}
		outer.props[name] = promote(p, field)
	}
	return outer
}

func promote[T, E any](p Property, field func(*T) *E) Property {
	inner := p
	if inner.set != nil {
		p.set = func(target any, v value.Value) error {
			t, ok := target.(*T)
			if !ok {
				return targetMismatch[T](inner.Name, target)
			}
			return inner.set(field(t), v)
		}
	}
	if inner.get != nil {
		p.get = func(target any) any {
			t, ok := target.(*T)
			if !ok {
				return nil
			}
			return inner.get(field(t))
		}
	}
	return p
}

// Catalog returns catalog describing target, target is usually a pointer.
func (r *Registry) Catalog(target any) (*Catalog, bool) {
	if r == nil || target == nil {
		return nil, false
	}
	c, ok := r.catalogs[reflect.TypeOf(target)]
	return c, ok
}

// Len returns number of registered types.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.catalogs)
}
