package style

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"sct/sheet"
	"sct/utils/debug"
	"sct/value"
)

// Result of a single assignment.
// ENUM(applied, unresolvedPath, coercionFailed, unknownEnumValue)
type Status int

// Outcome reports what happened to one assignment of a style.
type Outcome struct {
	Path   sheet.Path
	Line   int
	Status Status
	Value  value.Value // set when applied
	Err    error       // set when failed
}

func (o Outcome) String() string {
	if o.Status == StatusApplied {
		return fmt.Sprintf("%s: %s = %v", o.Status, o.Path, o.Value)
	}
	return fmt.Sprintf("%s: %v", o.Status, o.Err)
}

// Outcomes of applying a style in assignment order. Filtered assignments are
// not present.
type Outcomes []Outcome

// Applied returns successful outcomes.
func (list Outcomes) Applied() Outcomes {
	return list.filter(func(o Outcome) bool { return o.Status == StatusApplied })
}

// Failed returns unsuccessful outcomes.
func (list Outcomes) Failed() Outcomes {
	return list.filter(func(o Outcome) bool { return o.Status != StatusApplied })
}

func (list Outcomes) filter(keep func(Outcome) bool) Outcomes {
	var res Outcomes
	for _, o := range list {
		if keep(o) {
			res = append(res, o)
		}
	}
	return res
}

// Find returns outcome for the dotted path.
func (list Outcomes) Find(path string) (Outcome, bool) {
	for _, o := range list {
		if o.Path.String() == path {
			return o, true
		}
	}
	return Outcome{}, false
}

// Err combines all failures, nil when everything was applied.
func (list Outcomes) Err() error {
	var err error
	for _, o := range list {
		if o.Status != StatusApplied {
			err = multierr.Append(err, o.Err)
		}
	}
	return err
}

// Dump returns human readable report.
func (list Outcomes) Dump() string {
	tw := debug.NewTreeWriter()
	for _, o := range list {
		d := tw.Open(0, fmt.Sprintf("%s (line %d)", o.Path, o.Line))
		tw.Field(d, "status", o.Status)
		if o.Value != nil {
			tw.Field(d, "value", o.Value)
		}
		if o.Err != nil {
			tw.Text(d, "error", o.Err.Error())
		}
	}
	return strings.TrimSuffix(tw.String(), "\n")
}
