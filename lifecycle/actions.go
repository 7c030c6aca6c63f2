// Package lifecycle holds optional action slots run on controller lifecycle
// transitions and a tracker delivering them.
package lifecycle

// Lifecycle event of a controller. Button events may be vetoed.
// ENUM(viewDidLoad, willAppear, didAppear, willDisappear, didDisappear, willPresent, didPresent, willDismiss, didDismiss, cancelButtonTapped, doneButtonTapped, editButtonTapped)
type Event int

// CanVeto reports whether action for the event decides if transition
// happens.
func (x Event) CanVeto() bool {
	switch x {
	case EventCancelButtonTapped, EventDoneButtonTapped, EventEditButtonTapped:
		return true
	}
	return false
}

// Actions is a set of optional actions for controller C. Unset slots are
// skipped, unset veto slots accept the transition.
type Actions[C any] struct {
	ViewDidLoad   func(C)
	WillAppear    func(C)
	DidAppear     func(C)
	WillDisappear func(C)
	DidDisappear  func(C)
	// WillPresent and DidPresent run only around the first appearance.
	WillPresent func(C)
	DidPresent  func(C)
	WillDismiss func(C)
	DidDismiss  func(C)

	// Returning false ignores the tap.
	CancelButtonTapped func(C) bool
	DoneButtonTapped   func(C) bool
	EditButtonTapped   func(C) bool
}

func (a *Actions[C]) notification(ev Event) func(C) {
	if a == nil {
		return nil
	}
	switch ev {
	case EventViewDidLoad:
		return a.ViewDidLoad
	case EventWillAppear:
		return a.WillAppear
	case EventDidAppear:
		return a.DidAppear
	case EventWillDisappear:
		return a.WillDisappear
	case EventDidDisappear:
		return a.DidDisappear
	case EventWillPresent:
		return a.WillPresent
	case EventDidPresent:
		return a.DidPresent
	case EventWillDismiss:
		return a.WillDismiss
	case EventDidDismiss:
		return a.DidDismiss
	}
	return nil
}

func (a *Actions[C]) veto(ev Event) func(C) bool {
	if a == nil {
		return nil
	}
	switch ev {
	case EventCancelButtonTapped:
		return a.CancelButtonTapped
	case EventDoneButtonTapped:
		return a.DoneButtonTapped
	case EventEditButtonTapped:
		return a.EditButtonTapped
	}
	return nil
}

// Notify runs notification action for the event and reports whether it was
// set. Veto events are not notifications, use Confirm.
func (a *Actions[C]) Notify(ev Event, c C) bool {
	f := a.notification(ev)
	if f == nil {
		return false
	}
	f(c)
	return true
}

// Confirm runs veto action for the event. Unset action confirms.
func (a *Actions[C]) Confirm(ev Event, c C) bool {
	f := a.veto(ev)
	if f == nil {
		return true
	}
	return f(c)
}

// Merge returns actions with slots of o filling unset slots of a.
func (a Actions[C]) Merge(o Actions[C]) Actions[C] {
	pick := func(x, y func(C)) func(C) {
		if x != nil {
			return x
		}
		return y
	}
	pickVeto := func(x, y func(C) bool) func(C) bool {
		if x != nil {
			return x
		}
		return y
	}
	return Actions[C]{
		ViewDidLoad:        pick(a.ViewDidLoad, o.ViewDidLoad),
		WillAppear:         pick(a.WillAppear, o.WillAppear),
		DidAppear:          pick(a.DidAppear, o.DidAppear),
		WillDisappear:      pick(a.WillDisappear, o.WillDisappear),
		DidDisappear:       pick(a.DidDisappear, o.DidDisappear),
		WillPresent:        pick(a.WillPresent, o.WillPresent),
		DidPresent:         pick(a.DidPresent, o.DidPresent),
		WillDismiss:        pick(a.WillDismiss, o.WillDismiss),
		DidDismiss:         pick(a.DidDismiss, o.DidDismiss),
		CancelButtonTapped: pickVeto(a.CancelButtonTapped, o.CancelButtonTapped),
		DoneButtonTapped:   pickVeto(a.DoneButtonTapped, o.DoneButtonTapped),
		EditButtonTapped:   pickVeto(a.EditButtonTapped, o.EditButtonTapped),
	}
}
