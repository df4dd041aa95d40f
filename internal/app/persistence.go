package app

import (
	"time"

	"github.com/llehouerou/scrubber/internal/errmsg"
	"github.com/llehouerou/scrubber/internal/notify"
	"github.com/llehouerou/scrubber/internal/playback"
	"github.com/llehouerou/scrubber/internal/state"
)

// handleStateChanged runs on every transition, before the new state's entry
// action.
func (m *Model) handleStateChanged() {
	change := m.ctrl.LastTransition()
	switch change.Current {
	case playback.StatePrepared:
		m.status = ""
		m.withdrawError()
		m.restorePosition()
		m.layout()
	case playback.StateError:
		m.handleError()
	case playback.StateExited:
		m.quitting = true
	case playback.StateLoading, playback.StatePlaying, playback.StatePaused, playback.StateSkipping:
	}
	m.publish()
}

// restorePosition seeks to the saved frame the first time a URL is
// prepared. It runs before a pending autoplay starts the engine.
func (m *Model) restorePosition() {
	url := m.engine.URL()
	if !m.resume || url == "" || m.restored == url {
		return
	}
	m.restored = url

	pos, err := m.store.GetPosition(url)
	if err != nil {
		m.status = errmsg.FormatWith(errmsg.OpPositionLoad, url, err)
		m.log.WithError(err).WithField("url", url).Warn("position not restored")
		return
	}
	if pos == nil || pos.Finished() || pos.Frame <= 0 {
		return
	}
	m.ctrl.SetFrame(pos.Frame)
	m.log.WithField("url", url).WithField("frame", pos.Frame).Info("position restored")
}

// savePosition records the current frame for the URL.
func (m *Model) savePosition() {
	url := m.engine.URL()
	if !m.resume || url == "" || m.engine.FrameCount() <= 0 {
		return
	}
	m.store.SavePosition(state.Position{
		URL:        url,
		Frame:      m.ctrl.Frame(),
		FrameCount: m.engine.FrameCount(),
		UpdatedAt:  time.Now(),
	})
}

// handleExit saves the position and the session before the controller tears
// itself down.
func (m *Model) handleExit() {
	m.savePosition()
	err := m.store.SaveSession(state.Session{
		LastURL:  m.engine.URL(),
		AutoPlay: m.engine.AutoPlay(),
	})
	m.report(errmsg.OpPositionSave, err)
	m.report(errmsg.OpPositionSave, m.store.Flush())
}

// handleError shows the engine error and sends a desktop notification. A
// repeated failure updates the notification already on screen.
func (m *Model) handleError() {
	perr := m.ctrl.LastError()
	if perr == nil {
		return
	}
	m.status = errmsg.Format(errmsg.OpPlaybackLoad, perr)

	if m.notifier == nil {
		return
	}
	n := notify.PlaybackFailed(m.engine.URL(), perr.Message)
	n.ReplacesID = m.errorID
	id, err := m.notifier.Notify(n)
	if err != nil {
		m.log.WithError(err).Warn(errmsg.Format(errmsg.OpNotify, err))
		return
	}
	m.errorID = id
}

// withdrawError closes the error notification once the media loads.
func (m *Model) withdrawError() {
	if m.notifier == nil || m.errorID == 0 {
		return
	}
	if err := m.notifier.Close(m.errorID); err != nil {
		m.log.WithError(err).Debug("error notification not closed")
	}
	m.errorID = 0
}
