package lifecycle

import (
	"slices"
	"testing"
)

type controller struct {
	events []Event
}

func recording(veto map[Event]bool) *Actions[*controller] {
	note := func(ev Event) func(*controller) {
		return func(c *controller) { c.events = append(c.events, ev) }
	}
	ask := func(ev Event) func(*controller) bool {
		return func(c *controller) bool {
			c.events = append(c.events, ev)
			return !veto[ev]
		}
	}
	return &Actions[*controller]{
		ViewDidLoad:        note(EventViewDidLoad),
		WillAppear:         note(EventWillAppear),
		DidAppear:          note(EventDidAppear),
		WillDisappear:      note(EventWillDisappear),
		DidDisappear:       note(EventDidDisappear),
		WillPresent:        note(EventWillPresent),
		DidPresent:         note(EventDidPresent),
		WillDismiss:        note(EventWillDismiss),
		DidDismiss:         note(EventDidDismiss),
		CancelButtonTapped: ask(EventCancelButtonTapped),
		DoneButtonTapped:   ask(EventDoneButtonTapped),
		EditButtonTapped:   ask(EventEditButtonTapped),
	}
}

func TestTracker_Lifecycle(t *testing.T) {
	c := &controller{}
	tr := NewTracker(c, recording(nil), nil)

	tr.Appear()
	tr.Appear() // already visible
	tr.Disappear()
	tr.Disappear() // already hidden
	tr.Appear()
	tr.Dismiss()
	tr.Appear() // dismissed

	want := []Event{
		EventViewDidLoad, EventWillPresent, EventWillAppear, EventDidAppear, EventDidPresent,
		EventWillDisappear, EventDidDisappear,
		EventWillAppear, EventDidAppear,
		EventWillDismiss, EventWillDisappear, EventDidDisappear, EventDidDismiss,
	}
	if !slices.Equal(c.events, want) {
		t.Errorf("events =\n%v\nwant\n%v", c.events, want)
	}
	if tr.Visible() || !tr.Dismissed() {
		t.Error("controller must be dismissed")
	}
}

func TestTracker_Veto(t *testing.T) {
	tests := []struct {
		name      string
		veto      map[Event]bool
		tap       func(*Tracker[*controller]) bool
		accepted  bool
		dismissed bool
	}{
		{"cancel accepted", nil, (*Tracker[*controller]).Cancel, true, true},
		{"cancel vetoed", map[Event]bool{EventCancelButtonTapped: true}, (*Tracker[*controller]).Cancel, false, false},
		{"done accepted", nil, (*Tracker[*controller]).Done, true, true},
		{"done vetoed", map[Event]bool{EventDoneButtonTapped: true}, (*Tracker[*controller]).Done, false, false},
		{"edit accepted", nil, (*Tracker[*controller]).Edit, true, false},
		{"edit vetoed", map[Event]bool{EventEditButtonTapped: true}, (*Tracker[*controller]).Edit, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &controller{}
			tr := NewTracker(c, recording(tt.veto), nil)
			tr.Appear()
			if got := tt.tap(tr); got != tt.accepted {
				t.Errorf("accepted = %v, want %v", got, tt.accepted)
			}
			if tr.Dismissed() != tt.dismissed {
				t.Errorf("dismissed = %v, want %v", tr.Dismissed(), tt.dismissed)
			}
			if tr.Visible() == tt.dismissed {
				t.Errorf("visible = %v", tr.Visible())
			}
		})
	}
}

func TestTracker_EditToggles(t *testing.T) {
	tr := NewTracker(&controller{}, nil, nil)
	tr.Edit()
	if !tr.Editing() {
		t.Error("editing expected")
	}
	tr.Edit()
	if tr.Editing() {
		t.Error("editing must toggle off")
	}
}

func TestTracker_NoActions(t *testing.T) {
	tr := NewTracker(&controller{}, &Actions[*controller]{}, nil)
	tr.Appear()
	if !tr.Cancel() || !tr.Dismissed() {
		t.Error("unset cancel action must accept")
	}
	if tr.Done() {
		t.Error("dismissed controller ignores buttons")
	}
}

func TestActions(t *testing.T) {
	var got []string
	a := Actions[string]{
		WillAppear: func(s string) { got = append(got, "a:"+s) },
	}
	b := Actions[string]{
		WillAppear: func(s string) { got = append(got, "b:"+s) },
		DidAppear:  func(s string) { got = append(got, "b:"+s) },
		DoneButtonTapped: func(string) bool { return false },
	}
	m := a.Merge(b)

	if !m.Notify(EventWillAppear, "x") || !m.Notify(EventDidAppear, "y") {
		t.Error("slots must be set")
	}
	if m.Notify(EventDidDismiss, "z") {
		t.Error("unset slot reported as run")
	}
	if m.Notify(EventDoneButtonTapped, "z") {
		t.Error("veto slot is not a notification")
	}
	if m.Confirm(EventDoneButtonTapped, "z") || !m.Confirm(EventEditButtonTapped, "z") {
		t.Error("Confirm mismatch")
	}
	if !slices.Equal(got, []string{"a:x", "b:y"}) {
		t.Errorf("got %v", got)
	}

	for _, ev := range []Event{EventCancelButtonTapped, EventDoneButtonTapped, EventEditButtonTapped} {
		if !ev.CanVeto() {
			t.Errorf("%s must be vetoable", ev)
		}
	}
	if EventDidAppear.CanVeto() {
		t.Error("notifications cannot veto")
	}
}
