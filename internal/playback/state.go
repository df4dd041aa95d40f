// internal/playback/state.go
package playback

// State represents the controller's playback state.
//
//	Loading ──prepared──▶ Prepared ──autoplay──▶ Playing ◀──play/pause──▶ Paused
//	   ▲                                            │  ▲                    │
//	   └────── not prepared (self-correction) ──────┘  └── pointer-up ── Skipping
//
// Error is entered from any state on an engine error; Exited is terminal.
type State int

const (
	StateLoading State = iota
	StatePrepared
	StatePlaying
	StatePaused
	StateSkipping
	StateError
	StateExited
)

// States lists every state. The controller registers an entry action for each.
var States = []State{
	StateLoading,
	StatePrepared,
	StatePlaying,
	StatePaused,
	StateSkipping,
	StateError,
	StateExited,
}

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StatePrepared:
		return "Prepared"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateSkipping:
		return "Skipping"
	case StateError:
		return "Error"
	case StateExited:
		return "Exited"
	default:
		return "Unknown"
	}
}

// CanSkip returns true if a pointer-down on the progress bar may start
// scrubbing from this state.
func (s State) CanSkip() bool {
	return s == StatePrepared || s == StatePlaying || s == StatePaused
}
