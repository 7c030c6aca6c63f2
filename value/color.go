package value

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"sct/utils/images"
)

// Color is RGBA color with channels in [0,1]. Pattern colors carry the image
// they are filled with, their flat channels are the image average color.
type Color struct {
	colorful.Color
	A       float64
	Pattern *Image
}

func (*Color) isValue() {}

// RGBA implements color.Color taking alpha into account.
func (c *Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns 8-bit non-premultiplied color.
func (c *Color) NRGBA() color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(c.A) * 255))}
}

// Hex returns "#rrggbb" or "#rrggbbaa" when color is not opaque.
func (c *Color) Hex() string {
	s := c.Clamped().Hex()
	if a := c.NRGBA().A; a != 0xff {
		s += fmt.Sprintf("%02x", a)
	}
	return s
}

func (c *Color) String() string {
	if c.Pattern != nil {
		return fmt.Sprintf("pattern(%s %s)", c.Pattern.Name(), c.Hex())
	}
	return c.Hex()
}

// Channels returns red, green, blue and alpha.
func (c *Color) Channels() (r, g, b, a float64) {
	return c.R, c.G, c.B, c.A
}

// AlmostEqual reports whether colors have the same channels within small
// delta ignoring patterns.
func (c *Color) AlmostEqual(o *Color) bool {
	const delta = 1.0 / 512
	return c.Color.AlmostEqualRgb(o.Color) && math.Abs(c.A-o.A) < delta
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

// scale converts 0-255 channel to [0,1] the same way colorful.Hex does.
func scale(v float64) float64 {
	return clamp01(v * (1.0 / 255.0))
}

// RGB makes color from 0-255 channels, alpha is 0-255 as well.
func RGB(r, g, b, a float64) *Color {
	return &Color{Color: colorful.Color{R: scale(r), G: scale(g), B: scale(b)}, A: scale(a)}
}

// ParseHex parses "#RRGGBB" and "#RRGGBBAA".
func ParseHex(s string) (*Color, error) {
	switch len(s) {
	case 7:
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, err
		}
		return &Color{Color: c, A: 1}, nil
	case 9:
		c, err := colorful.Hex(s[:7])
		if err != nil {
			return nil, err
		}
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("bad alpha in %q: %w", s, err)
		}
		return &Color{Color: c, A: scale(float64(a))}, nil
	}
	return nil, fmt.Errorf("color %q: expected #RRGGBB or #RRGGBBAA", s)
}

// PatternColor makes color filled with image. Flat channels are average color
// of the image.
func PatternColor(img *Image) (*Color, error) {
	decoded, err := img.Decode()
	if err != nil {
		return nil, err
	}
	avg := images.AverageColor(decoded)
	c := RGB(float64(avg.R), float64(avg.G), float64(avg.B), float64(avg.A))
	c.Pattern = img
	return c, nil
}

func gray(w, a float64) func() *Color {
	return func() *Color {
		return &Color{Color: colorful.Color{R: w, G: w, B: w}, A: a}
	}
}

func rgb(r, g, b float64) func() *Color {
	return func() *Color {
		return &Color{Color: colorful.Color{R: r, G: g, B: b}, A: 1}
	}
}

// namedColors are color constructors recognized by name.
var namedColors = map[string]func() *Color{
	"blackColor":     gray(0, 1),
	"darkGrayColor":  gray(1.0/3, 1),
	"lightGrayColor": gray(2.0/3, 1),
	"whiteColor":     gray(1, 1),
	"grayColor":      gray(0.5, 1),
	"clearColor":     gray(0, 0),
	"darkTextColor":  gray(0, 1),
	"lightTextColor": gray(1, 0.6),
	"redColor":       rgb(1, 0, 0),
	"greenColor":     rgb(0, 1, 0),
	"blueColor":      rgb(0, 0, 1),
	"cyanColor":      rgb(0, 1, 1),
	"yellowColor":    rgb(1, 1, 0),
	"magentaColor":   rgb(1, 0, 1),
	"orangeColor":    rgb(1, 0.5, 0),
	"purpleColor":    rgb(0.5, 0, 0.5),
	"brownColor":     rgb(0.6, 0.4, 0.2),

	"groupTableViewBackgroundColor":     rgb(0.937, 0.937, 0.957),
	"viewFlipsideBackgroundColor":       rgb(0.122, 0.129, 0.141),
	"scrollViewTexturedBackgroundColor": rgb(0.435, 0.443, 0.475),
}

// NamedColor returns color produced by named constructor.
func NamedColor(name string) (*Color, bool) {
	f, ok := namedColors[name]
	if !ok {
		return nil, false
	}
	return f(), true
}
