// internal/player/mock.go
package player

// Mock is a test double for a playback engine.
type Mock struct {
	url        string
	autoPlay   bool
	frameCount int64
	frame      int64
	prepared   bool
	playing    bool
	playFails  bool

	prepareCalls int
	playCalls    int
	pauseCalls   int
	releaseCalls int
	frameWrites  []int64

	onPrepared func()
	onError    func(string)
	onLoop     func()
}

// NewMock creates a new mock engine with no media.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) URL() string { return m.url }

func (m *Mock) SetURL(url string) {
	m.url = url
	m.prepared = false
	m.playing = false
	m.frame = 0
}

func (m *Mock) AutoPlay() bool { return m.autoPlay }

func (m *Mock) SetAutoPlay(enabled bool) { m.autoPlay = enabled }

func (m *Mock) FrameCount() int64 { return m.frameCount }

func (m *Mock) Frame() int64 { return m.frame }

func (m *Mock) SetFrame(frame int64) {
	m.frame = frame
	m.frameWrites = append(m.frameWrites, frame)
}

func (m *Mock) IsPrepared() bool { return m.prepared }

func (m *Mock) IsPlaying() bool { return m.playing }

func (m *Mock) Prepare() { m.prepareCalls++ }

func (m *Mock) Play() {
	m.playCalls++
	if m.prepared && !m.playFails {
		m.playing = true
	}
}

func (m *Mock) Pause() {
	m.pauseCalls++
	m.playing = false
}

func (m *Mock) ReleaseTarget() { m.releaseCalls++ }

func (m *Mock) OnPrepared(fn func()) { m.onPrepared = fn }

func (m *Mock) OnError(fn func(message string)) { m.onError = fn }

func (m *Mock) OnLoopPointReached(fn func()) { m.onLoop = fn }

// Test helpers

func (m *Mock) SetPrepared(prepared bool) { m.prepared = prepared }

// SetPlayFails makes Play leave the engine stopped.
func (m *Mock) SetPlayFails(fail bool) { m.playFails = fail }

// AdvanceTo moves the playback clock as if frames were rendered.
func (m *Mock) AdvanceTo(frame int64) { m.frame = frame }

func (m *Mock) PrepareCalls() int { return m.prepareCalls }

func (m *Mock) PlayCalls() int { return m.playCalls }

func (m *Mock) PauseCalls() int { return m.pauseCalls }

func (m *Mock) ReleaseCalls() int { return m.releaseCalls }

func (m *Mock) FrameWrites() []int64 { return m.frameWrites }

func (m *Mock) HasHandlers() bool {
	return m.onPrepared != nil || m.onError != nil || m.onLoop != nil
}

// SimulatePrepared marks the engine prepared with n frames and notifies.
func (m *Mock) SimulatePrepared(n int64) {
	m.frameCount = n
	m.prepared = true
	if m.onPrepared != nil {
		m.onPrepared()
	}
}

// SimulateError notifies a playback error.
func (m *Mock) SimulateError(message string) {
	m.playing = false
	if m.onError != nil {
		m.onError(message)
	}
}

// SimulateLoopPoint notifies that the end of the media was reached.
func (m *Mock) SimulateLoopPoint() {
	m.playing = false
	if m.onLoop != nil {
		m.onLoop()
	}
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
