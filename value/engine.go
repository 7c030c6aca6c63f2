package value

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"sct/resource"
	"sct/sheet"
)

// Engine converts raw theme values into typed values. It is not modifying
// anything and may be shared.
type Engine struct {
	res   resource.Provider
	fonts *FontBook
	log   *zap.Logger
}

// Option configures Engine.
type Option func(*Engine)

// WithResources sets provider used to load images and fonts.
func WithResources(p resource.Provider) Option {
	return func(e *Engine) {
		if p != nil {
			e.res = p
		}
	}
}

// WithFonts sets font book.
func WithFonts(b *FontBook) Option {
	return func(e *Engine) {
		if b != nil {
			e.fonts = b
		}
	}
}

// WithLogger sets logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// NewEngine creates coercion engine. Without resources every image lookup
// fails with resource.ErrNotFound.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		res: resource.None,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.fonts == nil {
		e.fonts = NewFontBook("", FallbackPolicyDefault)
	}
	e.log = e.log.Named("coerce")
	return e
}

// Fonts returns font book in use.
func (e *Engine) Fonts() *FontBook {
	return e.fonts
}

// Coerce converts raw value to the destination type. Errors are
// *CoercionError or *UnknownEnumValueError.
func (e *Engine) Coerce(raw sheet.RawValue, dst Type) (Value, error) {
	if raw.Kind == sheet.ValueKindNil {
		if !dst.Nullable {
			return nil, e.mismatch(raw, dst, nil)
		}
		return Null{}, nil
	}

	switch dst.Kind {
	case KindText:
		switch raw.Kind {
		case sheet.ValueKindString, sheet.ValueKindIdent:
			return Text(raw.Text), nil
		}

	case KindReal, KindInteger:
		var f float64
		switch raw.Kind {
		case sheet.ValueKindNumber:
			f = raw.Number()
		case sheet.ValueKindIdent:
			v, err := e.constant(raw, dst)
			if err != nil {
				return nil, err
			}
			f = float64(v)
		default:
			return nil, e.mismatch(raw, dst, nil)
		}
		if dst.Kind == KindInteger {
			return Int(math.Trunc(f)), nil
		}
		return Real(f), nil

	case KindEnum:
		switch raw.Kind {
		case sheet.ValueKindIdent:
			v, err := e.constant(raw, dst)
			if err != nil {
				return nil, err
			}
			return Enum(v), nil
		case sheet.ValueKindNumber:
			n := raw.Number()
			if n != math.Trunc(n) || !dst.Enum.Contains(int(n)) {
				return nil, &UnknownEnumValueError{Enum: enumName(dst), Name: formatFloat(n)}
			}
			return Enum(int(n)), nil
		}

	case KindBoolean:
		if raw.Kind == sheet.ValueKindBoolean {
			return Bool(raw.Bool), nil
		}

	case KindColor, KindGraphicsColor:
		return e.color(raw, dst)

	case KindRect:
		if raw.Kind == sheet.ValueKindRect && len(raw.Numbers) == 4 {
			n := raw.Numbers
			return Rect{X: n[0], Y: n[1], W: n[2], H: n[3]}, nil
		}

	case KindSize:
		if raw.Kind == sheet.ValueKindSize && len(raw.Numbers) == 2 {
			return Size{W: raw.Numbers[0], H: raw.Numbers[1]}, nil
		}

	case KindImage:
		switch raw.Kind {
		case sheet.ValueKindString, sheet.ValueKindImage:
			img, err := e.image(raw)
			if err != nil {
				return nil, e.mismatch(raw, dst, err)
			}
			return img, nil
		}

	case KindView:
		switch raw.Kind {
		case sheet.ValueKindString, sheet.ValueKindImage:
			img, err := e.image(raw)
			if err != nil {
				return nil, e.mismatch(raw, dst, err)
			}
			return &ImageView{Image: img}, nil
		}

	case KindFont:
		return e.font(raw, dst)
	}

	return nil, e.mismatch(raw, dst, nil)
}

func (e *Engine) mismatch(raw sheet.RawValue, dst Type, err error) error {
	e.log.Debug("Unable to coerce value", zap.Stringer("value", raw), zap.Stringer("type", dst), zap.Error(err))
	return &CoercionError{Expected: dst, Actual: raw.Kind, Err: err}
}

func enumName(dst Type) string {
	if dst.Enum == nil {
		return ""
	}
	return dst.Enum.Name
}

// constant resolves identifier against destination enumeration.
func (e *Engine) constant(raw sheet.RawValue, dst Type) (int, error) {
	if dst.Enum == nil {
		return 0, e.mismatch(raw, dst, nil)
	}
	v, ok := dst.Enum.Lookup(raw.Text)
	if !ok {
		return 0, &UnknownEnumValueError{Enum: dst.Enum.Name, Name: raw.Text}
	}
	return v, nil
}

func (e *Engine) color(raw sheet.RawValue, dst Type) (Value, error) {
	switch raw.Kind {
	case sheet.ValueKindIdent:
		c, ok := NamedColor(raw.Text)
		if !ok {
			return nil, e.mismatch(raw, dst, fmt.Errorf("%w %q", ErrUnknownColor, raw.Text))
		}
		return c, nil

	case sheet.ValueKindColor:
		if raw.IsHex() {
			c, err := ParseHex(raw.Text)
			if err != nil {
				return nil, e.mismatch(raw, dst, err)
			}
			return c, nil
		}
		n := raw.Numbers
		switch len(n) {
		case 3:
			return RGB(n[0], n[1], n[2], 255), nil
		case 4:
			return RGB(n[0], n[1], n[2], n[3]), nil
		}
		return nil, e.mismatch(raw, dst, fmt.Errorf("rgb takes 3 or 4 channels, got %d", len(n)))

	case sheet.ValueKindString:
		img, err := e.image(raw)
		if err != nil {
			return nil, e.mismatch(raw, dst, err)
		}
		c, err := PatternColor(img)
		if err != nil {
			return nil, e.mismatch(raw, dst, err)
		}
		return c, nil
	}
	return nil, e.mismatch(raw, dst, nil)
}

func (e *Engine) image(raw sheet.RawValue) (*Image, error) {
	data, err := e.res.Fetch(raw.Text)
	if err != nil {
		return nil, err
	}
	img, err := NewImage(raw.Text, data)
	if err != nil {
		return nil, err
	}
	if len(raw.Insets) == 4 {
		in := raw.Insets
		img = img.WithInsets(Insets{Top: in[0], Left: in[1], Bottom: in[2], Right: in[3]})
	}
	e.log.Debug("Image loaded", zap.String("name", raw.Text), zap.String("format", img.Format()), zap.Int("bytes", len(data)))
	return img, nil
}

func (e *Engine) font(raw sheet.RawValue, dst Type) (Value, error) {
	var (
		family string
		size   float64
	)
	switch raw.Kind {
	case sheet.ValueKindString:
		f, s, err := parseFontSpec(raw.Text)
		if err != nil {
			return nil, e.mismatch(raw, dst, err)
		}
		family, size = f, s
	case sheet.ValueKindFont:
		family, size = raw.Text, raw.Number()
		if size <= 0 {
			return nil, e.mismatch(raw, dst, fmt.Errorf("font %q: size must be positive", raw))
		}
	default:
		return nil, e.mismatch(raw, dst, nil)
	}

	font, err := e.fonts.Resolve(family, size, e.res)
	if err != nil {
		return nil, e.mismatch(raw, dst, err)
	}
	if font.Fallback {
		e.log.Debug("Font family not found, using default", zap.String("requested", family), zap.String("family", font.Family))
	}
	return font, nil
}
