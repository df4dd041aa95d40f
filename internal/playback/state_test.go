// internal/playback/state_test.go
package playback

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateLoading, "Loading"},
		{StatePrepared, "Prepared"},
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateSkipping, "Skipping"},
		{StateError, "Error"},
		{StateExited, "Exited"},
		{State(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestState_CanSkip(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{StateLoading, false},
		{StatePrepared, true},
		{StatePlaying, true},
		{StatePaused, true},
		{StateSkipping, false},
		{StateError, false},
		{StateExited, false},
	}
	for _, tt := range tests {
		if got := tt.state.CanSkip(); got != tt.want {
			t.Errorf("%v.CanSkip() = %v, want %v", tt.state, got, tt.want)
		}
	}
}

func TestStates_EveryStateHasAnEntryAction(t *testing.T) {
	c := &Controller{}
	for _, s := range States {
		if c.entryAction(s) == nil {
			t.Errorf("entryAction(%v) = nil", s)
		}
	}
	if c.entryAction(State(99)) != nil {
		t.Error("entryAction(99) should be nil")
	}
}
