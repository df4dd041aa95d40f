// internal/player/interface.go
package player

// Interface defines the playback engine contract for dependency injection and
// testing. Frames are the engine's clock: Frame is authoritative while playing.
type Interface interface {
	URL() string
	// SetURL loads new media. Preparation state and frame are reset.
	SetURL(url string)
	AutoPlay() bool
	SetAutoPlay(enabled bool)

	FrameCount() int64
	Frame() int64
	SetFrame(frame int64)

	IsPrepared() bool
	IsPlaying() bool

	Prepare()
	Play()
	Pause()
	// ReleaseTarget frees the render target, if any.
	ReleaseTarget()

	// Notifications are delivered synchronously from the engine's own
	// scheduling. Passing nil detaches the handler.
	OnPrepared(fn func())
	OnError(fn func(message string))
	OnLoopPointReached(fn func())
}

// Verify Sim implements Interface at compile time.
var _ Interface = (*Sim)(nil)
