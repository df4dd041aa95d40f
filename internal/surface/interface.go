// Package surface describes the UI a playback controller drives: a progress
// track with a draggable knob, play/pause controls, a loading indicator and an
// error message sink.
package surface

// Element is a UI element whose visibility follows playback state.
type Element int

const (
	ElementPlay Element = iota
	ElementPause
	ElementLoading
	ElementMessage
)

// String returns the element name.
func (e Element) String() string {
	switch e {
	case ElementPlay:
		return "Play"
	case ElementPause:
		return "Pause"
	case ElementLoading:
		return "Loading"
	case ElementMessage:
		return "Message"
	default:
		return "Unknown"
	}
}

// Target identifies what a pointer event landed on.
type Target int

const (
	TargetNone Target = iota
	TargetKnob
	TargetTrack
)

// IsSeekable reports whether pointer input on t scrubs the position.
func (t Target) IsSeekable() bool {
	return t == TargetKnob || t == TargetTrack
}

// Interface defines the surface contract for dependency injection and testing.
type Interface interface {
	// Track returns the progress track rectangle. Local coordinates inside it
	// are centred: x runs from -Width/2 to +Width/2.
	Track() Rect
	// Knob returns the knob rectangle.
	Knob() Rect
	// SetKnobX moves the knob's left edge along the track.
	SetKnobX(x float64)
	// SetFillWidth sets the width of the filled part of the track.
	SetFillWidth(w float64)
	SetVisible(e Element, visible bool)
	// SetMessage writes text to the error message element.
	SetMessage(text string)
	// ScreenToLocal converts a screen point to coordinates local to r.
	// Returns false if the point cannot be converted.
	ScreenToLocal(r Rect, p Point) (Point, bool)
	// Destroy releases the surface. Called once, when playback exits.
	Destroy()
}
