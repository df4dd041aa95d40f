package playback

// PlaybackError is an error reported by the playback engine. It moves the
// controller to StateError and is kept until the next successful preparation.
type PlaybackError struct {
	Message string
}

func (e *PlaybackError) Error() string {
	return "playback: " + e.Message
}

// StateChange describes a transition, as seen from OnStateChanged handlers
// through Controller.State and Controller.PreviousState.
type StateChange struct {
	Previous State
	Current  State
	// Initial is true for the first transition, which has no previous state.
	Initial bool
}
