// Package app is the terminal front end: a bubbletea model that hosts the
// playback controller, the simulated engine and the progress bar.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/scrubber/internal/config"
	"github.com/llehouerou/scrubber/internal/keymap"
	applog "github.com/llehouerou/scrubber/internal/log"
	"github.com/llehouerou/scrubber/internal/mpris"
	"github.com/llehouerou/scrubber/internal/notify"
	"github.com/llehouerou/scrubber/internal/playback"
	"github.com/llehouerou/scrubber/internal/player"
	"github.com/llehouerou/scrubber/internal/state"
	"github.com/llehouerou/scrubber/internal/surface"
	"github.com/llehouerou/scrubber/internal/ui/helpbindings"
	"github.com/llehouerou/scrubber/internal/ui/playerbar"
)

// Remote receives player state for the media remote (MPRIS).
type Remote interface {
	Update(s mpris.Snapshot)
}

// Model is the root application model. It is used through a pointer: the
// controller's signal subscriptions refer back to it.
type Model struct {
	ui       config.UIConfig
	fit      surface.FitMode
	resume   bool
	engine   *player.Sim
	ctrl     *playback.Controller
	bar      *playerbar.Bar
	keys     *keymap.Resolver
	help     helpbindings.Model
	showHelp bool
	spinner  spinner.Model

	store    state.Interface
	notifier notify.Notifier // nil when notifications are off
	errorID  uint32          // notification shown for the current error
	remote   Remote          // nil without a media remote
	log      logrus.FieldLogger

	width, height int
	status        string    // last user-facing error
	restored      string    // URL whose saved position was applied
	lastTick      time.Time // zero until the first tick
	quitting      bool
}

// Option configures a Model.
type Option func(*Model)

// WithNotifier enables desktop notifications on playback errors.
func WithNotifier(n notify.Notifier) Option {
	return func(m *Model) { m.notifier = n }
}

// WithLogger sets the logger. Defaults to the "app" component logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(m *Model) { m.log = l }
}

// New creates the application model and starts loading the media. The URL
// comes from cfg, or from the saved session when cfg has none.
func New(cfg *config.Config, store state.Interface, opts ...Option) (*Model, error) {
	uiCfg := cfg.GetUIConfig()
	fit, err := surface.ParseFitMode(uiCfg.Fit)
	if err != nil {
		return nil, err
	}

	m := &Model{
		ui:      uiCfg,
		fit:     fit,
		resume:  cfg.ResumeEnabled(),
		engine:  player.NewSim(),
		bar:     playerbar.New(),
		keys:    keymap.NewResolver(keymap.All),
		help:    helpbindings.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		store:   store,
		log:     applog.For("app"),
	}
	for _, opt := range opts {
		opt(m)
	}

	url, autoPlay := cfg.URL, cfg.AutoPlay
	if url == "" {
		if session, err := store.GetSession(); err != nil {
			m.log.WithError(err).Warn("session not restored")
		} else if session != nil {
			url = session.LastURL
			autoPlay = autoPlay || session.AutoPlay
		}
	}
	m.engine.SetURL(url)
	m.engine.SetAutoPlay(autoPlay)
	m.engine.SetLoop(cfg.Loop)

	m.ctrl, err = playback.New(m.engine, m.bar, playback.WithLogger(m.log.WithField("component", "playback")))
	if err != nil {
		return nil, err
	}
	m.ctrl.OnStateChanged.Subscribe(m.handleStateChanged)
	m.ctrl.OnPause.Subscribe(m.savePosition)
	m.ctrl.OnExit.Subscribe(m.handleExit)

	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(TickCmd(m.ui.FrameRate), m.spinner.Tick)
}

// Controller returns the playback controller.
func (m *Model) Controller() *playback.Controller {
	return m.ctrl
}

// Engine returns the simulated playback engine.
func (m *Model) Engine() *player.Sim {
	return m.engine
}

// Bar returns the progress bar surface.
func (m *Model) Bar() *playerbar.Bar {
	return m.bar
}

// SetRemote publishes player state to r after every update. It must be
// called before the program starts.
func (m *Model) SetRemote(r Remote) {
	m.remote = r
}

// Quitting reports whether the model asked the program to quit.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Status returns the last user-facing error, if any.
func (m *Model) Status() string {
	return m.status
}
