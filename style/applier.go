package style

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"go.uber.org/zap"

	"sct/sheet"
	"sct/value"
)

// UnresolvedPathError is reported when property path cannot be followed on
// the target.
type UnresolvedPathError struct {
	Path    string
	Segment string // segment which could not be resolved
	Type    string // type of the object segment was looked up on
	Reason  string
}

func (e *UnresolvedPathError) Error() string {
	return fmt.Sprintf("%s: %q on %s: %s", e.Path, e.Segment, e.Type, e.Reason)
}

// Applier applies styles to targets described by registry.
type Applier struct {
	reg *Registry
	eng *value.Engine
	log *zap.Logger
}

// NewApplier creates applier. Nil engine means engine without resources.
func NewApplier(reg *Registry, eng *value.Engine, log *zap.Logger) *Applier {
	if reg == nil {
		reg = NewRegistry()
	}
	if eng == nil {
		eng = value.NewEngine()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Applier{reg: reg, eng: eng, log: log.Named("apply")}
}

// Registry returns registry in use.
func (a *Applier) Registry() *Registry {
	return a.reg
}

// Apply applies named style of the sheet to target. When only is not nil
// assignments whose first path segment is not listed are skipped and do not
// appear in outcomes. Unknown style produces no outcomes. Failures never stop
// application of the remaining assignments.
func (a *Applier) Apply(ss *sheet.StyleSheet, target any, styleName string, only []string) Outcomes {
	list, ok := ss.Style(styleName)
	if !ok {
		a.log.Debug("Style not found", zap.String("style", styleName))
		return nil
	}

	res := make(Outcomes, 0, len(list))
	for _, asg := range list {
		if only != nil && !slices.Contains(only, asg.Path.Head()) {
			continue
		}
		o := a.assign(target, asg)
		if o.Status != StatusApplied {
			a.log.Debug("Assignment failed",
				zap.String("style", styleName), zap.Stringer("path", asg.Path), zap.Int("line", asg.Line),
				zap.Stringer("status", o.Status), zap.Error(o.Err))
		}
		res = append(res, o)
	}
	a.log.Debug("Style applied", zap.String("style", styleName), zap.String("target", fmt.Sprintf("%T", target)),
		zap.Int("assignments", len(list)), zap.Int("applied", len(res.Applied())), zap.Int("failed", len(res.Failed())))
	return res
}

func (a *Applier) assign(target any, asg sheet.Assignment) Outcome {
	o := Outcome{Path: asg.Path, Line: asg.Line}
	path := asg.Path.String()

	unresolved := func(seg string, obj any, reason string) Outcome {
		o.Status = StatusUnresolvedPath
		o.Err = &UnresolvedPathError{Path: path, Segment: seg, Type: fmt.Sprintf("%T", obj), Reason: reason}
		return o
	}

	cur := target
	for i, seg := range asg.Path {
		if isNil(cur) {
			return unresolved(seg, cur, "object is nil")
		}
		cat, ok := a.reg.Catalog(cur)
		if !ok {
			return unresolved(seg, cur, "type has no styleable properties")
		}
		prop, ok := cat.Property(seg)
		if !ok {
			return unresolved(seg, cur, "no such property")
		}

		if i < len(asg.Path)-1 {
			if prop.Type.Kind != value.KindObject {
				return unresolved(seg, cur, "not an object")
			}
			next := prop.get(cur)
			if next == nil {
				return unresolved(seg, cur, "object is nil")
			}
			cur = next
			continue
		}

		v, err := a.eng.Coerce(asg.Value, prop.Type)
		if err != nil {
			o.Err = value.WithPath(err, path)
			o.Status = StatusCoercionFailed
			var ue *value.UnknownEnumValueError
			if errors.As(err, &ue) {
				o.Status = StatusUnknownEnumValue
			}
			return o
		}
		if prop.set == nil {
			o.Status = StatusCoercionFailed
			o.Err = &value.CoercionError{Expected: prop.Type, Actual: asg.Value.Kind, Path: path}
			return o
		}
		if err := prop.set(cur, v); err != nil {
			o.Status = StatusCoercionFailed
			o.Err = &value.CoercionError{Expected: prop.Type, Actual: asg.Value.Kind, Path: path, Err: err}
			return o
		}
		o.Status = StatusApplied
		o.Value = v
	}
	return o
}

// isNil catches typed nil pointers hidden in non-nil interfaces.
func isNil(obj any) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
