package lifecycle

import (
	"go.uber.org/zap"
)

// Tracker drives lifecycle of a single controller so that every action runs
// at most once per transition. It is not safe for concurrent use.
type Tracker[C any] struct {
	ctrl    C
	actions *Actions[C]
	log     *zap.Logger

	loaded    bool
	presented bool
	visible   bool
	editing   bool
	dismissed bool
}

// NewTracker creates tracker for controller c.
func NewTracker[C any](c C, actions *Actions[C], log *zap.Logger) *Tracker[C] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker[C]{ctrl: c, actions: actions, log: log.Named("lifecycle")}
}

func (t *Tracker[C]) fire(ev Event) {
	if t.actions.Notify(ev, t.ctrl) {
		t.log.Debug("Action", zap.Stringer("event", ev))
	}
}

// Load reports view loaded, only the first call has effect.
func (t *Tracker[C]) Load() {
	if t.loaded || t.dismissed {
		return
	}
	t.loaded = true
	t.fire(EventViewDidLoad)
}

// Appear makes controller visible loading it first when necessary. The first
// appearance is wrapped by WillPresent and DidPresent.
func (t *Tracker[C]) Appear() {
	if t.visible || t.dismissed {
		return
	}
	t.Load()
	first := !t.presented
	if first {
		t.fire(EventWillPresent)
	}
	t.fire(EventWillAppear)
	t.visible = true
	t.fire(EventDidAppear)
	if first {
		t.presented = true
		t.fire(EventDidPresent)
	}
}

// Disappear hides visible controller.
func (t *Tracker[C]) Disappear() {
	if !t.visible {
		return
	}
	t.fire(EventWillDisappear)
	t.visible = false
	t.fire(EventDidDisappear)
}

// Dismiss hides controller for good, later transitions are ignored.
func (t *Tracker[C]) Dismiss() {
	if t.dismissed {
		return
	}
	t.fire(EventWillDismiss)
	t.Disappear()
	t.dismissed = true
	t.fire(EventDidDismiss)
}

func (t *Tracker[C]) confirm(ev Event) bool {
	if t.dismissed {
		return false
	}
	ok := t.actions.Confirm(ev, t.ctrl)
	t.log.Debug("Button tapped", zap.Stringer("event", ev), zap.Bool("accepted", ok))
	return ok
}

// Cancel handles Cancel button, accepted tap dismisses controller.
func (t *Tracker[C]) Cancel() bool {
	if !t.confirm(EventCancelButtonTapped) {
		return false
	}
	t.Dismiss()
	return true
}

// Done handles Done button, accepted tap dismisses controller.
func (t *Tracker[C]) Done() bool {
	if !t.confirm(EventDoneButtonTapped) {
		return false
	}
	t.Dismiss()
	return true
}

// Edit handles Edit button, accepted tap toggles editing mode.
func (t *Tracker[C]) Edit() bool {
	if !t.confirm(EventEditButtonTapped) {
		return false
	}
	t.editing = !t.editing
	return true
}

func (t *Tracker[C]) Visible() bool   { return t.visible }
func (t *Tracker[C]) Editing() bool   { return t.editing }
func (t *Tracker[C]) Dismissed() bool { return t.dismissed }
