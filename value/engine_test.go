package value_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"go.uber.org/zap"

	"sct/resource"
	"sct/sheet"
	"sct/value"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

// solidPNG encodes w x h image filled with c.
func solidPNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// rawOf parses single assignment "v: <text>;" and returns its value.
func rawOf(t *testing.T, text string) sheet.RawValue {
	t.Helper()
	ss, err := sheet.NewParser(nil).Parse([]byte("s { v: " + text + "; }"))
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", text, err)
	}
	list, _ := ss.Style("s")
	return list[0].Value
}

func newEngine(t *testing.T, res resource.Provider) *value.Engine {
	t.Helper()
	return value.NewEngine(value.WithResources(res), value.WithLogger(zap.NewNop()))
}

func TestCoerce_Colors(t *testing.T) {
	eng := newEngine(t, nil)
	colorType := value.Type{Kind: value.KindColor}

	tests := []struct {
		name       string
		text       string
		r, g, b, a float64
	}{
		{"rgb", "rgb(100, 0, 255)", 100.0 / 255, 0, 1, 1},
		{"rgb with alpha", "rgb(255, 255, 255, 0)", 1, 1, 1, 0},
		{"rgba alias", "rgba(0, 0, 0, 255)", 0, 0, 0, 1},
		{"hex", "#CC33FF", 0.8, 0.2, 1, 1},
		{"hex lowercase", "#cc33ff", 0.8, 0.2, 1, 1},
		{"hex alpha", "#CC33FF00", 0.8, 0.2, 1, 0},
		{"rgb equivalent of hex", "rgb(204, 51, 255)", 0.8, 0.2, 1, 1},
		{"named", "blueColor", 0, 0, 1, 1},
		{"named clear", "clearColor", 0, 0, 0, 0},
		{"clamped", "rgb(300, -5, 0)", 1, 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := eng.Coerce(rawOf(t, tt.text), colorType)
			if err != nil {
				t.Fatalf("Coerce() error = %v", err)
			}
			c, ok := v.(*value.Color)
			if !ok {
				t.Fatalf("got %T, want *value.Color", v)
			}
			r, g, b, a := c.Channels()
			if math.Abs(r-tt.r) > 1e-6 || math.Abs(g-tt.g) > 1e-6 || math.Abs(b-tt.b) > 1e-6 || math.Abs(a-tt.a) > 1e-6 {
				t.Errorf("channels = (%v, %v, %v, %v), want (%v, %v, %v, %v)", r, g, b, a, tt.r, tt.g, tt.b, tt.a)
			}
		})
	}
}

func TestCoerce_HexEqualsRGB(t *testing.T) {
	eng := newEngine(t, nil)
	for _, kind := range []value.Kind{value.KindColor, value.KindGraphicsColor} {
		hex, err := eng.Coerce(rawOf(t, "#CC33FF"), value.Type{Kind: kind})
		if err != nil {
			t.Fatal(err)
		}
		rgb, err := eng.Coerce(rawOf(t, "rgb(204, 51, 255)"), value.Type{Kind: kind})
		if err != nil {
			t.Fatal(err)
		}
		hr, hg, hb, ha := hex.(*value.Color).Channels()
		rr, rg, rb, ra := rgb.(*value.Color).Channels()
		if !near(hr, rr) || !near(hg, rg) || !near(hb, rb) || !near(ha, ra) {
			t.Errorf("%s: hex (%v %v %v %v) != rgb (%v %v %v %v)", kind, hr, hg, hb, ha, rr, rg, rb, ra)
		}
		if !near(hr, 0.8) || !near(hg, 0.2) || !near(hb, 1.0) || !near(ha, 1.0) {
			t.Errorf("%s: got (%v %v %v %v), want (0.8 0.2 1 1)", kind, hr, hg, hb, ha)
		}
		if h := hex.(*value.Color).Hex(); h != "#cc33ff" {
			t.Errorf("Hex() = %q", h)
		}
	}
}

func TestCoerce_PatternColor(t *testing.T) {
	res := resource.Memory{"leather.png": solidPNG(t, 4, 4, color.NRGBA{R: 204, G: 51, B: 255, A: 255})}
	eng := newEngine(t, res)

	v, err := eng.Coerce(rawOf(t, `"leather.png"`), value.Type{Kind: value.KindColor})
	if err != nil {
		t.Fatalf("Coerce() error = %v", err)
	}
	c := v.(*value.Color)
	if c.Pattern == nil || c.Pattern.Name() != "leather.png" {
		t.Fatalf("expected pattern image, got %v", c)
	}
	if !c.AlmostEqual(value.RGB(204, 51, 255, 255)) {
		t.Errorf("pattern flat color = %v, want #cc33ff", c)
	}

	_, err = eng.Coerce(rawOf(t, `"missing.png"`), value.Type{Kind: value.KindColor})
	var ce *value.CoercionError
	if !errors.As(err, &ce) || !errors.Is(err, resource.ErrNotFound) {
		t.Errorf("expected CoercionError wrapping ErrNotFound, got %v", err)
	}
}

func TestCoerce_UnknownColorName(t *testing.T) {
	eng := newEngine(t, nil)
	_, err := eng.Coerce(rawOf(t, "fuchsiaColor"), value.Type{Kind: value.KindColor})
	if !errors.Is(err, value.ErrUnknownColor) {
		t.Errorf("expected ErrUnknownColor, got %v", err)
	}
}

func TestCoerce_Booleans(t *testing.T) {
	eng := newEngine(t, nil)
	boolType := value.Type{Kind: value.KindBoolean}

	for text, want := range map[string]bool{"YES": true, "no": false, "True": true, "FALSE": false} {
		v, err := eng.Coerce(rawOf(t, text), boolType)
		if err != nil {
			t.Fatalf("%s: %v", text, err)
		}
		if v != value.Bool(want) {
			t.Errorf("%s = %v, want %v", text, v, want)
		}
	}
	for _, text := range []string{"1", "0", `"YES"`, "on"} {
		if _, err := eng.Coerce(rawOf(t, text), boolType); err == nil {
			t.Errorf("%s coerced to boolean", text)
		}
	}
}

func TestCoerce_Numbers(t *testing.T) {
	eng := newEngine(t, nil)
	modes := value.NewEnumeration("Mode", testMode(0), testMode(1), testMode(2))

	tests := []struct {
		name string
		text string
		dst  value.Type
		want value.Value
	}{
		{"real", "60", value.Type{Kind: value.KindReal}, value.Real(60)},
		{"real fraction", "0.5", value.Type{Kind: value.KindReal}, value.Real(0.5)},
		{"integer truncates", "2.9", value.Type{Kind: value.KindInteger}, value.Int(2)},
		{"negative truncates toward zero", "-2.9", value.Type{Kind: value.KindInteger}, value.Int(-2)},
		{"integer from constant", "ModeTwo", value.Type{Kind: value.KindInteger, Enum: modes}, value.Int(2)},
		{"real from constant", "one", value.Type{Kind: value.KindReal, Enum: modes}, value.Real(1)},
		{"enum by name", "ModeOne", value.Type{Kind: value.KindEnum, Enum: modes}, value.Enum(1)},
		{"enum by short name", "two", value.Type{Kind: value.KindEnum, Enum: modes}, value.Enum(2)},
		{"enum by number", "2", value.Type{Kind: value.KindEnum, Enum: modes}, value.Enum(2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := eng.Coerce(rawOf(t, tt.text), tt.dst)
			if err != nil {
				t.Fatalf("Coerce() error = %v", err)
			}
			if v != tt.want {
				t.Errorf("got %v (%T), want %v (%T)", v, v, tt.want, tt.want)
			}
		})
	}
}

type testMode int

func (m testMode) String() string {
	return [...]string{"zero", "one", "two"}[m]
}

func TestCoerce_UnknownEnumValue(t *testing.T) {
	eng := newEngine(t, nil)
	modes := value.NewEnumeration("Mode", testMode(0), testMode(1), testMode(2))

	for _, tt := range []struct {
		text string
		kind value.Kind
	}{
		{"ModeThree", value.KindEnum},
		{"three", value.KindInteger},
		{"7", value.KindEnum},
		{"1.5", value.KindEnum},
	} {
		_, err := eng.Coerce(rawOf(t, tt.text), value.Type{Kind: tt.kind, Enum: modes})
		var ue *value.UnknownEnumValueError
		if !errors.As(err, &ue) {
			t.Errorf("%s: expected UnknownEnumValueError, got %v", tt.text, err)
			continue
		}
		if ue.Enum != "Mode" {
			t.Errorf("%s: Enum = %q", tt.text, ue.Enum)
		}
	}

	// identifier for numeric property without enumeration is a type mismatch
	_, err := eng.Coerce(rawOf(t, "big"), value.Type{Kind: value.KindReal})
	var ce *value.CoercionError
	if !errors.As(err, &ce) {
		t.Errorf("expected CoercionError, got %v", err)
	}
}

func TestCoerce_Geometry(t *testing.T) {
	eng := newEngine(t, nil)

	v, err := eng.Coerce(rawOf(t, "CGRect(10, 20, 180, 30)"), value.Type{Kind: value.KindRect})
	if err != nil {
		t.Fatal(err)
	}
	if v != (value.Rect{X: 10, Y: 20, W: 180, H: 30}) {
		t.Errorf("rect = %v", v)
	}

	v, err = eng.Coerce(rawOf(t, "CGSize(1, -1)"), value.Type{Kind: value.KindSize})
	if err != nil {
		t.Fatal(err)
	}
	if v != (value.Size{W: 1, H: -1}) {
		t.Errorf("size = %v", v)
	}

	if _, err := eng.Coerce(rawOf(t, "CGSize(1, 1)"), value.Type{Kind: value.KindRect}); err == nil {
		t.Error("size coerced to rect")
	}
}

func TestCoerce_Nil(t *testing.T) {
	eng := newEngine(t, nil)

	v, err := eng.Coerce(rawOf(t, "nil"), value.Type{Kind: value.KindView, Nullable: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.(value.Null); !ok {
		t.Errorf("got %T, want Null", v)
	}

	_, err = eng.Coerce(rawOf(t, "nil"), value.Type{Kind: value.KindReal})
	var ce *value.CoercionError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CoercionError, got %v", err)
	}
	if ce.Actual != sheet.ValueKindNil || ce.Expected.Kind != value.KindReal {
		t.Errorf("error = %+v", ce)
	}
}

func TestCoerce_Text(t *testing.T) {
	eng := newEngine(t, nil)
	textType := value.Type{Kind: value.KindText}

	v, err := eng.Coerce(rawOf(t, `"Hello World!"`), textType)
	if err != nil || v != value.Text("Hello World!") {
		t.Errorf("got %v, %v", v, err)
	}
	v, err = eng.Coerce(rawOf(t, "firstCell"), textType)
	if err != nil || v != value.Text("firstCell") {
		t.Errorf("got %v, %v", v, err)
	}
	if _, err := eng.Coerce(rawOf(t, "60"), textType); err == nil {
		t.Error("number coerced to text")
	}
}

func TestCoerce_Images(t *testing.T) {
	data := solidPNG(t, 8, 6, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	res := resource.Memory{
		"navbar.png": data,
		"icon.svg":   []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 16"><rect width="24" height="16"/></svg>`),
		"notes.txt":  []byte("plain text"),
	}
	eng := newEngine(t, res)
	imageType := value.Type{Kind: value.KindImage}

	plain, err := eng.Coerce(rawOf(t, `"navbar.png"`), imageType)
	if err != nil {
		t.Fatal(err)
	}
	img := plain.(*value.Image)
	if img.Format() != "png" || img.Resizable() {
		t.Errorf("image = %v", img)
	}

	inset, err := eng.Coerce(rawOf(t, `"navbar.png" capInsets(1, 2, 3, 4)`), imageType)
	if err != nil {
		t.Fatal(err)
	}
	resizable := inset.(*value.Image)
	if resizable.Insets() != (value.Insets{Top: 1, Left: 2, Bottom: 3, Right: 4}) {
		t.Errorf("insets = %v", resizable.Insets())
	}
	if !bytes.Equal(resizable.Bytes(), img.Bytes()) {
		t.Error("cap insets changed image data")
	}
	a, err := img.Decode()
	if err != nil {
		t.Fatal(err)
	}
	b, err := resizable.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if a.Bounds() != b.Bounds() || a.At(3, 3) != b.At(3, 3) {
		t.Error("cap insets changed pixels")
	}

	size, err := img.Size()
	if err != nil || size != (value.Size{W: 8, H: 6}) {
		t.Errorf("Size() = %v, %v", size, err)
	}

	svg, err := eng.Coerce(rawOf(t, `"icon.svg"`), imageType)
	if err != nil {
		t.Fatal(err)
	}
	if svg.(*value.Image).Format() != "svg" {
		t.Errorf("format = %q", svg.(*value.Image).Format())
	}
	if size, _ := svg.(*value.Image).Size(); size != (value.Size{W: 24, H: 16}) {
		t.Errorf("svg size = %v", size)
	}

	_, err = eng.Coerce(rawOf(t, `"notes.txt"`), imageType)
	if !errors.Is(err, value.ErrNotImage) {
		t.Errorf("expected ErrNotImage, got %v", err)
	}
	_, err = eng.Coerce(rawOf(t, `"missing.png"`), imageType)
	if !errors.Is(err, resource.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	view, err := eng.Coerce(rawOf(t, `"navbar.png"`), value.Type{Kind: value.KindView, Nullable: true})
	if err != nil {
		t.Fatal(err)
	}
	if iv, ok := view.(*value.ImageView); !ok || iv.Image.Name() != "navbar.png" {
		t.Errorf("view = %v", view)
	}
}

func TestImage_Stretch(t *testing.T) {
	res := resource.Memory{"btn.png": solidPNG(t, 4, 4, color.NRGBA{R: 255, A: 255})}
	eng := newEngine(t, res)
	v, err := eng.Coerce(rawOf(t, `"btn.png" capInsets(1, 1, 1, 1)`), value.Type{Kind: value.KindImage})
	if err != nil {
		t.Fatal(err)
	}
	out, err := v.(*value.Image).Stretch(40, 12)
	if err != nil {
		t.Fatal(err)
	}
	if out.Bounds().Dx() != 40 || out.Bounds().Dy() != 12 {
		t.Errorf("bounds = %v", out.Bounds())
	}
}

func TestCoerce_Fonts(t *testing.T) {
	// minimal TrueType header is enough for type detection
	ttf := []byte{0x00, 0x01, 0x00, 0x00, 0x00}
	res := resource.Memory{"Brand-Regular.ttf": ttf}
	eng := newEngine(t, res)
	fontType := value.Type{Kind: value.KindFont}

	tests := []struct {
		name     string
		text     string
		family   string
		size     float64
		fallback bool
	}{
		{"string", `"Courier-Bold 12"`, "Courier-Bold", 12, false},
		{"unquoted", "Courier-Bold 12", "Courier-Bold", 12, false},
		{"case insensitive", `"helvetica 9.5"`, "Helvetica", 9.5, false},
		{"unknown family with spaces", `"Marker Felt 14"`, "Helvetica", 14, true},
		{"resource font", `"Brand-Regular 11"`, "Brand-Regular", 11, false},
		{"unknown family", "NoSuchFont 10", "Helvetica", 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := eng.Coerce(rawOf(t, tt.text), fontType)
			if err != nil {
				t.Fatalf("Coerce() error = %v", err)
			}
			f := v.(*value.Font)
			if f.Family != tt.family || f.Size != tt.size || f.Fallback != tt.fallback {
				t.Errorf("font = %+v, want %s %v fallback=%v", f, tt.family, tt.size, tt.fallback)
			}
		})
	}

	for _, bad := range []string{`"Helvetica"`, `"Helvetica big"`, `"Helvetica -3"`, "12"} {
		if _, err := eng.Coerce(rawOf(t, bad), fontType); err == nil {
			t.Errorf("%s coerced to font", bad)
		}
	}
}

func TestCoerce_FontFallbackPolicyFail(t *testing.T) {
	book := value.NewFontBook("Georgia", value.FallbackPolicyFail, "Brand Sans")
	eng := value.NewEngine(value.WithFonts(book))

	v, err := eng.Coerce(rawOf(t, `"Brand Sans 12"`), value.Type{Kind: value.KindFont})
	if err != nil {
		t.Fatalf("extra family: %v", err)
	}
	if v.(*value.Font).Family != "Brand Sans" {
		t.Errorf("family = %q", v.(*value.Font).Family)
	}

	_, err = eng.Coerce(rawOf(t, `"NoSuchFont 12"`), value.Type{Kind: value.KindFont})
	if !errors.Is(err, value.ErrUnknownFont) {
		t.Errorf("expected ErrUnknownFont, got %v", err)
	}
	if book.Default() != "Georgia" {
		t.Errorf("Default() = %q", book.Default())
	}
}

func TestCoerce_ObjectRejected(t *testing.T) {
	eng := newEngine(t, nil)
	_, err := eng.Coerce(rawOf(t, `"x"`), value.Type{Kind: value.KindObject})
	var ce *value.CoercionError
	if !errors.As(err, &ce) {
		t.Errorf("expected CoercionError, got %v", err)
	}
}

func TestWithPath(t *testing.T) {
	eng := newEngine(t, nil)
	_, err := eng.Coerce(rawOf(t, "60"), value.Type{Kind: value.KindBoolean})
	err = value.WithPath(err, "layer.hidden")
	if got := err.Error(); got != "layer.hidden: cannot use number value as boolean" {
		t.Errorf("Error() = %q", got)
	}
}
