package value

import (
	"fmt"
	"strconv"
)

// Value is a typed value produced by Engine. Concrete types are Text, Real,
// Int, Bool, *Color, Rect, Size, *Image, *Font, Enum, *ImageView and Null.
type Value interface {
	fmt.Stringer
	isValue()
}

type (
	Text string
	Real float64
	Int  int
	Bool bool
	Enum int
	// Null clears nullable property.
	Null struct{}
)

func (Text) isValue() {}
func (Real) isValue() {}
func (Int) isValue()  {}
func (Bool) isValue() {}
func (Enum) isValue() {}
func (Null) isValue() {}

func (v Text) String() string { return strconv.Quote(string(v)) }
func (v Real) String() string { return formatFloat(float64(v)) }
func (v Int) String() string  { return strconv.Itoa(int(v)) }
func (v Bool) String() string { return strconv.FormatBool(bool(v)) }
func (v Enum) String() string { return "enum(" + strconv.Itoa(int(v)) + ")" }
func (Null) String() string   { return "nil" }

// Rect is x, y, width and height.
type Rect struct {
	X, Y, W, H float64
}

func (Rect) isValue() {}

func (r Rect) String() string {
	return fmt.Sprintf("{%s, %s, %s, %s}", formatFloat(r.X), formatFloat(r.Y), formatFloat(r.W), formatFloat(r.H))
}

// Size is width and height.
type Size struct {
	W, H float64
}

func (Size) isValue() {}

func (s Size) String() string {
	return fmt.Sprintf("{%s, %s}", formatFloat(s.W), formatFloat(s.H))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// MarshalText makes values readable in YAML and JSON dumps.
func (r Rect) MarshalText() ([]byte, error)       { return []byte(r.String()), nil }
func (s Size) MarshalText() ([]byte, error)       { return []byte(s.String()), nil }
func (c *Color) MarshalText() ([]byte, error)     { return []byte(c.String()), nil }
func (i *Image) MarshalText() ([]byte, error)     { return []byte(i.String()), nil }
func (f *Font) MarshalText() ([]byte, error)      { return []byte(f.String()), nil }
func (v *ImageView) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
