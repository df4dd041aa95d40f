// internal/playback/controller.go
package playback

import (
	"fmt"

	"github.com/samber/mo"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/scrubber/internal/event"
	"github.com/llehouerou/scrubber/internal/fsm"
	"github.com/llehouerou/scrubber/internal/player"
	"github.com/llehouerou/scrubber/internal/surface"
)

// Controller keeps a playback engine and its progress-bar surface in sync.
//
// It is not safe for concurrent use: pointer events, engine notifications and
// Tick must all be delivered from the same goroutine. Transitions requested
// from inside an entry action nest like function calls.
type Controller struct {
	player player.Interface
	ui     surface.Interface
	states *fsm.Machine[State]
	log    logrus.FieldLogger

	frame      int64
	lastPlayed int64
	dragging   bool
	lastErr    *PlaybackError
	transition StateChange

	OnPlay         event.Signal
	OnPause        event.Signal
	OnExit         event.Signal
	OnUpdate       event.Signal // once per Tick
	OnStateChanged event.Signal
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for engine errors and transitions.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// New creates a controller for p and ui, registers every state and enters
// StateLoading.
func New(p player.Interface, ui surface.Interface, opts ...Option) (*Controller, error) {
	c := &Controller{
		player: p,
		ui:     ui,
		states: fsm.New[State](),
		log:    logrus.StandardLogger().WithField("component", "playback"),
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, s := range States {
		action := c.entryAction(s)
		if action == nil {
			return nil, fmt.Errorf("no entry action for state %v", s)
		}
		if err := c.states.CreateState(s, action, false); err != nil {
			return nil, err
		}
	}
	c.states.OnTransition(c.recordTransition)

	p.OnPrepared(c.handlePrepared)
	p.OnError(c.handleError)
	p.OnLoopPointReached(c.handleLoopPoint)

	if err := c.states.SetState(StateLoading); err != nil {
		return nil, err
	}
	return c, nil
}

// entryAction returns the action run when s is entered.
func (c *Controller) entryAction(s State) fsm.Action {
	switch s {
	case StateLoading:
		return c.enterLoading
	case StatePrepared:
		return c.enterPrepared
	case StatePlaying:
		return c.enterPlaying
	case StatePaused:
		return c.enterPaused
	case StateSkipping:
		return c.enterSkipping
	case StateError:
		return c.enterError
	case StateExited:
		return c.enterExited
	}
	return nil
}

func (c *Controller) enterLoading() {
	c.player.ReleaseTarget()
	c.player.Prepare()
	c.refreshUI()
}

func (c *Controller) enterPrepared() {
	c.lastErr = nil
	if c.player.AutoPlay() {
		c.setState(StatePlaying)
		return
	}
	c.refreshUI()
}

func (c *Controller) enterPlaying() {
	if !c.player.IsPrepared() {
		c.setState(StateLoading)
		return
	}
	c.OnPlay.Emit()
	c.player.Play()
	c.refreshUI()
	if !c.player.IsPlaying() {
		c.setState(StatePaused)
	}
}

func (c *Controller) enterPaused() {
	if !c.player.IsPrepared() {
		c.setState(StateLoading)
		return
	}
	c.syncFrame()
	c.OnPause.Emit()
	c.player.Pause()
	c.updateProgressBar()
	c.refreshUI()
}

func (c *Controller) enterSkipping() {
	c.player.Pause()
}

func (c *Controller) enterError() {
	c.dragging = false
	c.refreshUI()
}

func (c *Controller) enterExited() {
	c.dragging = false
	c.OnExit.Emit()
	c.ui.Destroy()
	c.teardown()
}

// setState is used from entry actions and notifications, where there is no
// caller to return an error to.
func (c *Controller) setState(s State) {
	if err := c.states.SetState(s); err != nil {
		c.log.WithError(err).WithField("state", s).Debug("transition ignored")
	}
}

func (c *Controller) recordTransition(from mo.Option[State], to State) {
	prev, ok := from.Get()
	c.transition = StateChange{Previous: prev, Current: to, Initial: !ok}
	c.log.WithFields(logrus.Fields{"from": prev, "to": to}).Debug("state transition")
	c.OnStateChanged.Emit()
}

func (c *Controller) handlePrepared() {
	c.setState(StatePrepared)
}

func (c *Controller) handleError(message string) {
	c.lastErr = &PlaybackError{Message: message}
	c.setState(StateError)
	c.ui.SetMessage(message)
	c.log.WithField("url", c.player.URL()).Error(message)
}

func (c *Controller) handleLoopPoint() {
	c.setState(StatePaused)
}

// teardown disposes the state table and detaches engine notifications.
func (c *Controller) teardown() {
	c.states.Dispose()
	c.player.OnPrepared(nil)
	c.player.OnError(nil)
	c.player.OnLoopPointReached(nil)
}

// Prepare reloads the current media.
func (c *Controller) Prepare() error {
	return c.states.SetState(StateLoading)
}

// Play starts or resumes playback, preparing the media first if needed.
func (c *Controller) Play() error {
	return c.states.SetState(StatePlaying)
}

// Pause pauses playback.
func (c *Controller) Pause() error {
	return c.states.SetState(StatePaused)
}

// TogglePlay pauses when playing and plays otherwise.
func (c *Controller) TogglePlay() error {
	if c.State() == StatePlaying {
		return c.Pause()
	}
	return c.Play()
}

// Exit ends playback and destroys the surface. The controller is unusable
// afterwards: every transition fails with fsm.ErrUnknownState.
func (c *Controller) Exit() error {
	return c.states.SetState(StateExited)
}

// Close tears the controller down without entering StateExited.
func (c *Controller) Close() error {
	c.teardown()
	return nil
}

// State returns the current state.
func (c *Controller) State() State {
	return c.states.Current().OrElse(StateLoading)
}

// PreviousState returns the state active before the current one.
func (c *Controller) PreviousState() (State, bool) {
	return c.states.Previous().Get()
}

// LastTransition returns the most recent transition.
func (c *Controller) LastTransition() StateChange {
	return c.transition
}

// LastError returns the engine error that caused StateError, or nil.
func (c *Controller) LastError() *PlaybackError {
	return c.lastErr
}

// URL returns the media URL.
func (c *Controller) URL() string {
	return c.player.URL()
}

// SetURL loads new media, rewinds to frame 0 and waits in StateLoading. With
// auto-play enabled, playback starts once the media is prepared.
func (c *Controller) SetURL(url string) error {
	c.player.SetURL(url)
	c.lastPlayed = 0
	c.SetFrame(0)
	return c.states.SetState(StateLoading)
}

func (c *Controller) AutoPlay() bool {
	return c.player.AutoPlay()
}

func (c *Controller) SetAutoPlay(enabled bool) {
	c.player.SetAutoPlay(enabled)
}
