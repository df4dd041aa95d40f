// internal/player/sim.go
package player

import "time"

// Sim is a frame clock that behaves like a playback engine without decoding
// anything. The host drives it by calling Advance once per rendered frame;
// notifications fire synchronously from Advance.
//
// State transitions:
//   - Prepare: schedules preparation, resolved on the next Advance
//   - Play:    only once prepared; restarts from 0 when parked at the end
//   - Pause:   stops the clock, keeps the frame
//   - SetURL:  rewinds to frame 0 and schedules preparation of the new media
type Sim struct {
	url      string
	autoPlay bool
	loop     bool

	media     Media
	frame     int64
	remainder float64 // fractional frames carried between Advance calls

	preparing bool
	prepared  bool
	playing   bool

	onPrepared func()
	onError    func(string)
	onLoop     func()
}

// NewSim creates an engine with no media loaded.
func NewSim() *Sim {
	return &Sim{}
}

func (s *Sim) URL() string { return s.url }

func (s *Sim) SetURL(url string) {
	s.url = url
	s.media = Media{}
	s.frame = 0
	s.remainder = 0
	s.preparing = true
	s.prepared = false
	s.playing = false
}

func (s *Sim) AutoPlay() bool { return s.autoPlay }

func (s *Sim) SetAutoPlay(enabled bool) { s.autoPlay = enabled }

// Loop reports whether playback wraps to frame 0 at the end.
func (s *Sim) Loop() bool { return s.loop }

func (s *Sim) SetLoop(enabled bool) { s.loop = enabled }

// Media returns the clip description resolved by the last preparation.
func (s *Sim) Media() Media { return s.media }

func (s *Sim) FrameCount() int64 { return s.media.FrameCount }

func (s *Sim) Frame() int64 { return s.frame }

func (s *Sim) SetFrame(frame int64) {
	s.frame = max(0, min(frame, s.media.FrameCount))
	s.remainder = 0
}

func (s *Sim) IsPrepared() bool { return s.prepared }

func (s *Sim) IsPlaying() bool { return s.playing }

// IsPreparing reports whether a preparation is pending.
func (s *Sim) IsPreparing() bool { return s.preparing }

func (s *Sim) Prepare() {
	s.preparing = true
	s.prepared = false
	s.playing = false
}

func (s *Sim) Play() {
	if !s.prepared {
		return
	}
	if s.frame >= s.media.FrameCount {
		s.frame = 0
		s.remainder = 0
	}
	s.playing = s.media.FrameCount > 0
}

func (s *Sim) Pause() {
	s.playing = false
}

// ReleaseTarget is a no-op: Sim renders nothing.
func (s *Sim) ReleaseTarget() {}

func (s *Sim) OnPrepared(fn func()) { s.onPrepared = fn }

func (s *Sim) OnError(fn func(message string)) { s.onError = fn }

func (s *Sim) OnLoopPointReached(fn func()) { s.onLoop = fn }

// Advance moves the clock by dt. A pending preparation is resolved first and
// consumes the call.
func (s *Sim) Advance(dt time.Duration) {
	if s.preparing {
		s.resolve()
		return
	}
	if !s.playing || dt <= 0 {
		return
	}

	s.remainder += dt.Seconds() * s.media.FPS
	step := int64(s.remainder)
	s.remainder -= float64(step)
	s.frame += step

	if s.frame < s.media.FrameCount {
		return
	}

	if s.loop && s.media.FrameCount > 0 {
		s.frame %= s.media.FrameCount
	} else {
		s.frame = s.media.FrameCount
		s.remainder = 0
		s.playing = false
	}
	if s.onLoop != nil {
		s.onLoop()
	}
}

func (s *Sim) resolve() {
	s.preparing = false
	media, err := ParseMedia(s.url)
	if err != nil {
		s.prepared = false
		if s.onError != nil {
			s.onError(err.Error())
		}
		return
	}
	s.media = media
	s.frame = max(0, min(s.frame, media.FrameCount))
	s.prepared = true
	if s.onPrepared != nil {
		s.onPrepared()
	}
}
