package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionNone)
	f.Set(ActionLeft)

	if f.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2 (ActionNone is dropped)", f.Len())
	}
	got := f.Actions()
	if got[0] != ActionUp || got[1] != ActionLeft {
		t.Errorf("Actions() = %v, expected [Up Left]", got)
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRestart)
	f.Clear()

	if f.Len() != 0 {
		t.Errorf("after Clear, Len() = %d", f.Len())
	}
	f.Set(ActionUp)
	if got := f.Actions(); len(got) != 1 || got[0] != ActionUp {
		t.Errorf("Actions() after reuse = %v", got)
	}
}

func TestActionHeading(t *testing.T) {
	tests := []struct {
		action Action
		want   Heading
		ok     bool
	}{
		{ActionUp, HeadingUp, true},
		{ActionDown, HeadingDown, true},
		{ActionLeft, HeadingLeft, true},
		{ActionRight, HeadingRight, true},
		{ActionRestart, Heading{}, false},
		{ActionNone, Heading{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			got, ok := tc.action.Heading()
			if ok != tc.ok || got != tc.want {
				t.Errorf("Heading() = %v, %v; expected %v, %v", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionMute.String() != "Mute" {
		t.Errorf("ActionMute.String() = %q", ActionMute.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action String() = %q", Action(99).String())
	}
}
