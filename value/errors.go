package value

import (
	"errors"
	"fmt"
	"strings"

	"sct/sheet"
)

var (
	// ErrUnknownColor is wrapped when identifier is not a color constructor.
	ErrUnknownColor = errors.New("unknown color name")
	// ErrUnknownFont is wrapped when font family cannot be resolved and
	// fallback policy is "fail".
	ErrUnknownFont = errors.New("unknown font family")
)

// CoercionError is reported when raw value cannot be converted to the
// destination type. It affects only one assignment.
type CoercionError struct {
	Expected Type
	Actual   sheet.ValueKind
	Path     string
	Err      error // underlying cause, may be nil
}

func (e *CoercionError) Error() string {
	var sb strings.Builder
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	fmt.Fprintf(&sb, "cannot use %s value as %s", e.Actual, e.Expected)
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

// UnknownEnumValueError is reported when identifier does not name a constant
// of destination enumeration.
type UnknownEnumValueError struct {
	Enum string
	Name string
	Path string
}

func (e *UnknownEnumValueError) Error() string {
	prefix := ""
	if e.Path != "" {
		prefix = e.Path + ": "
	}
	if e.Enum == "" {
		return fmt.Sprintf("%sunknown enumeration value %q", prefix, e.Name)
	}
	return fmt.Sprintf("%s%q is not a %s value", prefix, e.Name, e.Enum)
}

// WithPath records assignment path in coercion errors, other errors are
// returned unchanged.
func WithPath(err error, path string) error {
	var ce *CoercionError
	if errors.As(err, &ce) {
		ce.Path = path
		return err
	}
	var ue *UnknownEnumValueError
	if errors.As(err, &ue) {
		ue.Path = path
	}
	return err
}
