// Package sheet reads theme text into immutable style sheets.
//
// Theme text is a flat list of named blocks, each holding property
// assignments:
//
//	UITableViewCell
//	{
//	    layer.cornerRadius: 5;
//	    backgroundColor: #CC33FF;
//	    textLabel.font: Courier-Bold 12;
//	    backgroundView: "cell.png";
//	}
//
// Values are kept exactly as written, their meaning depends on the property
// they are assigned to and is decided when style is applied.
package sheet

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Syntactic class of a parsed value.
// ENUM(string, number, boolean, color, rect, size, image, ident, nil, font)
type ValueKind int

// RawValue is unevaluated value of an assignment.
type RawValue struct {
	Kind ValueKind
	// Text is string contents (string, image), identifier (ident), hex
	// literal including '#' (color written as #hex), font family (font).
	Text string
	// Numbers is single number (number, font size), rgb channels
	// (color written as rgb), x,y,w,h (rect), w,h (size).
	Numbers []float64
	// Insets are top, left, bottom, right cap insets of image value.
	Insets []float64
	Bool   bool
}

// Number returns the first numeric component of the value.
func (v RawValue) Number() float64 {
	if len(v.Numbers) == 0 {
		return 0
	}
	return v.Numbers[0]
}

// IsHex reports whether color value was written in #hex form.
func (v RawValue) IsHex() bool {
	return v.Kind == ValueKindColor && strings.HasPrefix(v.Text, "#")
}

// String returns value the way it would be written in theme text.
func (v RawValue) String() string {
	switch v.Kind {
	case ValueKindString:
		return strconv.Quote(v.Text)
	case ValueKindNumber:
		return formatNumber(v.Number())
	case ValueKindBoolean:
		if v.Text != "" {
			return v.Text
		}
		return strings.ToUpper(strconv.FormatBool(v.Bool))
	case ValueKindColor:
		if v.IsHex() {
			return v.Text
		}
		return "rgb" + formatArgs(v.Numbers)
	case ValueKindRect:
		return "CGRect" + formatArgs(v.Numbers)
	case ValueKindSize:
		return "CGSize" + formatArgs(v.Numbers)
	case ValueKindImage:
		return strconv.Quote(v.Text) + " capInsets" + formatArgs(v.Insets)
	case ValueKindIdent:
		return v.Text
	case ValueKindNil:
		return "nil"
	case ValueKindFont:
		return v.Text + " " + formatNumber(v.Number())
	default:
		return fmt.Sprintf("<%s>", v.Kind)
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatArgs(nums []float64) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = formatNumber(n)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Path is a dotted property path, never empty.
type Path []string

// String returns dotted form of the path.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Head returns top level property name.
func (p Path) Head() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Assignment is a single "path: value;" statement.
type Assignment struct {
	Path  Path
	Value RawValue
	Line  int // 1-based source line
}

// StyleSheet holds named styles. It is never modified after Parse returns
// and may be shared between goroutines.
type StyleSheet struct {
	source   string
	styles   map[string][]Assignment
	names    []string
	warnings []string
}

// Style returns assignments of the named style in application order.
func (s *StyleSheet) Style(name string) ([]Assignment, bool) {
	if s == nil {
		return nil, false
	}
	list, ok := s.styles[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(list), true
}

// Names returns style names in definition order. Style which was redefined
// is reported at the position of its last definition.
func (s *StyleSheet) Names() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.names)
}

// Len returns number of styles.
func (s *StyleSheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Source returns name of the input style sheet was parsed from.
func (s *StyleSheet) Source() string {
	if s == nil {
		return ""
	}
	return s.source
}

// Warnings returns non fatal observations made while parsing, such as
// overridden styles and repeated assignments.
func (s *StyleSheet) Warnings() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.warnings)
}
