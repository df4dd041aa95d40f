package app

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/scrubber/internal/errmsg"
	"github.com/llehouerou/scrubber/internal/mpris"
	"github.com/llehouerou/scrubber/internal/playback"
)

// Update handles messages and returns the updated model and commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()

	case TickMsg:
		cmd = m.handleTick(time.Time(msg))

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)

	case tea.KeyMsg:
		m.handleKey(msg.String())

	case tea.MouseMsg:
		m.handleMouse(msg)

	case RemoteMsg:
		m.handleRemote(mpris.Command(msg))
	}

	if m.quitting {
		return m, tea.Quit
	}
	return m, cmd
}

// handleTick advances the engine by the time elapsed since the previous
// tick, then lets the controller follow it.
func (m *Model) handleTick(now time.Time) tea.Cmd {
	dt := frameInterval(m.ui.FrameRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	playing := m.ctrl.State() == playback.StatePlaying
	m.engine.Advance(dt)
	// The loop point pauses the controller; with looping on, carry on from
	// the wrapped frame.
	if playing && m.engine.Loop() && m.ctrl.State() == playback.StatePaused {
		m.report(errmsg.OpPlaybackStart, m.ctrl.Play())
	}
	m.ctrl.Tick()
	m.publish()

	return TickCmd(m.ui.FrameRate)
}
