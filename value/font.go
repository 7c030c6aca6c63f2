package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/h2non/filetype"

	"sct/resource"
)

// Font is font family and point size. Fallback is set when requested family
// could not be resolved and default family was used instead.
type Font struct {
	Family    string
	Size      float64
	Fallback  bool
	Requested string
}

func (*Font) isValue() {}

func (f *Font) String() string {
	s := fmt.Sprintf("%s %s", f.Family, formatFloat(f.Size))
	if f.Fallback {
		s += fmt.Sprintf(" (instead of %s)", f.Requested)
	}
	return s
}

// What to do with fonts whose family cannot be resolved.
// ENUM(default, fail)
type FallbackPolicy int

// DefaultFontFamily is used when nothing else was configured.
const DefaultFontFamily = "Helvetica"

// fontExtensions are tried in order when family is looked up in resources.
var fontExtensions = []string{".ttf", ".otf", ".woff", ".woff2"}

var systemFamilies = []string{
	"AmericanTypewriter", "AmericanTypewriter-Bold",
	"Arial", "ArialMT", "Arial-BoldMT", "Arial-ItalicMT",
	"Avenir-Book", "Avenir-Heavy", "Avenir-Medium",
	"Baskerville", "Baskerville-Bold",
	"Courier", "Courier-Bold", "Courier-BoldOblique", "Courier-Oblique",
	"CourierNewPSMT", "CourierNewPS-BoldMT",
	"Didot", "Futura-Medium", "Georgia", "Georgia-Bold", "GillSans",
	"Helvetica", "Helvetica-Bold", "Helvetica-BoldOblique", "Helvetica-Oblique",
	"HelveticaNeue", "HelveticaNeue-Bold", "HelveticaNeue-Light", "HelveticaNeue-Medium",
	"MarkerFelt-Thin", "Menlo-Regular", "Noteworthy-Light", "Optima-Regular",
	"Palatino-Roman", "Times-Roman", "Times-Bold", "TimesNewRomanPSMT",
	"TrebuchetMS", "Verdana", "Verdana-Bold", "Zapfino",
}

// FontBook knows which font families exist and applies fallback policy.
type FontBook struct {
	families map[string]string
	def      string
	policy   FallbackPolicy
}

// NewFontBook creates font book with system families and extra ones. Empty
// def selects DefaultFontFamily.
func NewFontBook(def string, policy FallbackPolicy, extra ...string) *FontBook {
	if def == "" {
		def = DefaultFontFamily
	}
	b := &FontBook{families: make(map[string]string), def: def, policy: policy}
	b.Add(systemFamilies...)
	b.Add(extra...)
	b.Add(def)
	return b
}

// Add registers additional families.
func (b *FontBook) Add(families ...string) {
	for _, f := range families {
		if f = strings.TrimSpace(f); f != "" {
			b.families[strings.ToLower(f)] = f
		}
	}
}

// Default returns fallback family.
func (b *FontBook) Default() string { return b.def }

// Policy returns fallback policy.
func (b *FontBook) Policy() FallbackPolicy { return b.policy }

// Lookup resolves family name ignoring letter case. Families not known to
// the book are searched in resources as font files.
func (b *FontBook) Lookup(family string, res resource.Provider) (string, bool) {
	if f, ok := b.families[strings.ToLower(family)]; ok {
		return f, true
	}
	if res == nil {
		return "", false
	}
	for _, ext := range fontExtensions {
		data, err := res.Fetch(family + ext)
		if err != nil || !filetype.IsFont(data) {
			continue
		}
		return family, true
	}
	return "", false
}

// Resolve makes font applying fallback policy for unknown families.
func (b *FontBook) Resolve(family string, size float64, res resource.Provider) (*Font, error) {
	if f, ok := b.Lookup(family, res); ok {
		return &Font{Family: f, Size: size, Requested: family}, nil
	}
	if b.policy == FallbackPolicyFail {
		return nil, fmt.Errorf("font family %q: %w", family, ErrUnknownFont)
	}
	return &Font{Family: b.def, Size: size, Fallback: true, Requested: family}, nil
}

// parseFontSpec splits "<family> <size>". Family may contain spaces, size is
// the last field.
func parseFontSpec(s string) (string, float64, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return "", 0, fmt.Errorf("font %q: expected \"<family> <size>\"", s)
	}
	size, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return "", 0, fmt.Errorf("font %q: bad size: %w", s, err)
	}
	if size <= 0 {
		return "", 0, fmt.Errorf("font %q: size must be positive", s)
	}
	return strings.Join(fields[:len(fields)-1], " "), size, nil
}
