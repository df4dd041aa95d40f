package app

import (
	"github.com/llehouerou/scrubber/internal/errmsg"
	"github.com/llehouerou/scrubber/internal/keymap"
	"github.com/llehouerou/scrubber/internal/playback"
	"github.com/llehouerou/scrubber/internal/surface"
)

// handleKey routes a key to the help overlay while it is open, otherwise to
// the bound action.
func (m *Model) handleKey(key string) {
	if m.showHelp {
		if m.help.HandleKey(key) {
			m.showHelp = false
		}
		return
	}

	switch m.keys.Resolve(key) {
	case keymap.ActionQuit:
		m.quit()
	case keymap.ActionHelp:
		m.showHelp = true
		m.help.SetSize(m.width, m.height)
	case keymap.ActionPlayPause:
		m.report(errmsg.OpPlaybackStart, m.ctrl.TogglePlay())
	case keymap.ActionPlay:
		m.report(errmsg.OpPlaybackStart, m.ctrl.Play())
	case keymap.ActionPause:
		m.report(errmsg.OpPlaybackPause, m.ctrl.Pause())
	case keymap.ActionReload:
		m.report(errmsg.OpPlaybackLoad, m.ctrl.Prepare())
	case keymap.ActionStop:
		m.stop()
	case keymap.ActionSeekForward:
		m.seekBy(m.ui.SeekStep)
	case keymap.ActionSeekBack:
		m.seekBy(-m.ui.SeekStep)
	case keymap.ActionSeekForwardLong:
		m.seekBy(m.ui.SeekStepLong)
	case keymap.ActionSeekBackLong:
		m.seekBy(-m.ui.SeekStepLong)
	case keymap.ActionJumpStart:
		m.seekTo(0)
	case keymap.ActionJumpEnd:
		m.seekTo(m.ctrl.FrameCount())
	case keymap.ActionToggleAutoPlay:
		m.ctrl.SetAutoPlay(!m.ctrl.AutoPlay())
	case keymap.ActionToggleLoop:
		m.engine.SetLoop(!m.engine.Loop())
	case keymap.ActionToggleFit:
		if m.fit == surface.FitHorizontally {
			m.fit = surface.FitVertically
		} else {
			m.fit = surface.FitHorizontally
		}
		m.layout()
	}
}

// seekBy moves the position by delta frames.
func (m *Model) seekBy(delta int64) {
	m.seekTo(m.ctrl.Frame() + delta)
}

// seekTo moves the position while the media can be scrubbed. The controller
// clamps the frame.
func (m *Model) seekTo(frame int64) {
	if !m.ctrl.State().CanSkip() {
		return
	}
	m.ctrl.SetFrame(frame)
	if m.ctrl.State() != playback.StatePlaying {
		m.savePosition()
	}
}

// stop pauses and rewinds.
func (m *Model) stop() {
	if !m.ctrl.State().CanSkip() {
		return
	}
	if m.ctrl.State() == playback.StatePlaying {
		m.report(errmsg.OpPlaybackPause, m.ctrl.Pause())
	}
	m.seekTo(0)
}

// quit exits playback, which saves the position, and stops the program.
func (m *Model) quit() {
	if m.ctrl.State() != playback.StateExited {
		m.report(errmsg.OpPlaybackExit, m.ctrl.Exit())
	}
	m.quitting = true
}

// report shows err in the status line and logs it.
func (m *Model) report(op errmsg.Op, err error) {
	if err == nil {
		return
	}
	m.status = errmsg.Format(op, err)
	m.log.WithError(err).WithField("op", string(op)).Warn("operation failed")
}
