package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/scrubber/internal/errmsg"
	"github.com/llehouerou/scrubber/internal/ui/playerbar"
)

// handleMouse turns left-button presses, motion and releases on the bar
// into button clicks or pointer events for the controller.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.showHelp {
		return
	}
	pos := m.bar.CellPoint(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		switch hit := m.bar.HitTest(msg.X, msg.Y); hit {
		case playerbar.HitPlay:
			m.report(errmsg.OpPlaybackStart, m.ctrl.Play())
		case playerbar.HitPause:
			m.report(errmsg.OpPlaybackPause, m.ctrl.Pause())
		case playerbar.HitExit:
			m.report(errmsg.OpPlaybackExit, m.ctrl.Exit())
		case playerbar.HitKnob, playerbar.HitTrack:
			m.ctrl.PointerDown(hit.Target(), pos)
		case playerbar.HitNone:
		}

	case tea.MouseActionMotion:
		if m.ctrl.Dragging() {
			m.ctrl.Drag(pos)
		}

	case tea.MouseActionRelease:
		if m.ctrl.Dragging() {
			m.ctrl.PointerUp(m.bar.HitTest(msg.X, msg.Y).Target(), pos)
			m.savePosition()
		}
	}
}
