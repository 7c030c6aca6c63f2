package style

import (
	"fmt"
	"reflect"

	"sct/value"
)

func targetMismatch[T any](name string, target any) error {
	return fmt.Errorf("property %q belongs to %s, not %T", name, reflect.TypeFor[*T](), target)
}

// typed builds property with mutator taking native Go value. Null sets zero
// value, conv extracts native value from typed one.
func typed[T, V any](name string, typ value.Type, set func(*T, V), conv func(value.Value) (V, bool)) Property {
	return Property{
		Name: name,
		Type: typ,
		set: func(target any, v value.Value) error {
			t, ok := target.(*T)
			if !ok {
				return targetMismatch[T](name, target)
			}
			if _, null := v.(value.Null); null {
				var zero V
				set(t, zero)
				return nil
			}
			x, ok := conv(v)
			if !ok {
				return fmt.Errorf("property %q: unexpected %T value", name, v)
			}
			set(t, x)
			return nil
		},
	}
}

// same extracts value of exactly type V.
func same[V value.Value](v value.Value) (V, bool) {
	x, ok := v.(V)
	return x, ok
}

// Text is textual property.
func Text[T any](name string, set func(*T, string)) Property {
	return typed(name, value.Type{Kind: value.KindText}, set, func(v value.Value) (string, bool) {
		s, ok := v.(value.Text)
		return string(s), ok
	})
}

// Real is floating point property. Optional enumeration names constants
// accepted in place of numbers.
func Real[T any](name string, set func(*T, float64), enum ...*value.Enumeration) Property {
	return typed(name, value.Type{Kind: value.KindReal, Enum: first(enum)}, set, func(v value.Value) (float64, bool) {
		f, ok := v.(value.Real)
		return float64(f), ok
	})
}

// Int is integer property, fractions are truncated. Optional enumeration names
// constants accepted in place of numbers.
func Int[T any](name string, set func(*T, int), enum ...*value.Enumeration) Property {
	return typed(name, value.Type{Kind: value.KindInteger, Enum: first(enum)}, set, func(v value.Value) (int, bool) {
		i, ok := v.(value.Int)
		return int(i), ok
	})
}

// Bool is boolean property.
func Bool[T any](name string, set func(*T, bool)) Property {
	return typed(name, value.Type{Kind: value.KindBoolean}, set, func(v value.Value) (bool, bool) {
		b, ok := v.(value.Bool)
		return bool(b), ok
	})
}

// Enum is property holding constant of enumeration.
func Enum[T any, E ~int](name string, enum *value.Enumeration, set func(*T, E)) Property {
	return typed(name, value.Type{Kind: value.KindEnum, Enum: enum}, set, func(v value.Value) (E, bool) {
		e, ok := v.(value.Enum)
		return E(e), ok
	})
}

// Color is nullable color property.
func Color[T any](name string, set func(*T, *value.Color)) Property {
	return typed(name, value.Type{Kind: value.KindColor, Nullable: true}, set, same[*value.Color])
}

// GraphicsColor is nullable low level color property, it accepts the same
// forms as Color.
func GraphicsColor[T any](name string, set func(*T, *value.Color)) Property {
	return typed(name, value.Type{Kind: value.KindGraphicsColor, Nullable: true}, set, same[*value.Color])
}

// RectOf is rectangle property.
func RectOf[T any](name string, set func(*T, value.Rect)) Property {
	return typed(name, value.Type{Kind: value.KindRect}, set, same[value.Rect])
}

// SizeOf is size property.
func SizeOf[T any](name string, set func(*T, value.Size)) Property {
	return typed(name, value.Type{Kind: value.KindSize}, set, same[value.Size])
}

// Image is nullable image property.
func Image[T any](name string, set func(*T, *value.Image)) Property {
	return typed(name, value.Type{Kind: value.KindImage, Nullable: true}, set, same[*value.Image])
}

// Font is nullable font property.
func Font[T any](name string, set func(*T, *value.Font)) Property {
	return typed(name, value.Type{Kind: value.KindFont, Nullable: true}, set, same[*value.Font])
}

// View is nullable view property, assigned image names produce image views.
func View[T any](name string, set func(*T, *value.ImageView)) Property {
	return typed(name, value.Type{Kind: value.KindView, Nullable: true}, set, same[*value.ImageView])
}

// Object is nested object reachable by path, e.g. "layer" in
// "layer.cornerRadius". Getter returning nil makes paths through it
// unresolved.
func Object[T, O any](name string, get func(*T) *O) Property {
	return Property{
		Name: name,
		Type: value.Type{Kind: value.KindObject},
		get: func(target any) any {
			t, ok := target.(*T)
			if !ok {
				return nil
			}
			if o := get(t); o != nil {
				return o
			}
			return nil
		},
	}
}

func first(enum []*value.Enumeration) *value.Enumeration {
	if len(enum) == 0 {
		return nil
	}
	return enum[0]
}
