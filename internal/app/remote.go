package app

import (
	"github.com/llehouerou/scrubber/internal/errmsg"
	"github.com/llehouerou/scrubber/internal/mpris"
)

// handleRemote applies a media-remote request.
func (m *Model) handleRemote(c mpris.Command) {
	m.log.WithField("kind", c.Kind).Debug("remote command")

	switch c.Kind {
	case mpris.CommandPlay:
		m.report(errmsg.OpPlaybackStart, m.ctrl.Play())
	case mpris.CommandPause:
		m.report(errmsg.OpPlaybackPause, m.ctrl.Pause())
	case mpris.CommandPlayPause:
		m.report(errmsg.OpPlaybackStart, m.ctrl.TogglePlay())
	case mpris.CommandStop:
		m.stop()
	case mpris.CommandSeek:
		m.seekBy(m.engine.Media().FrameAt(c.Offset))
	case mpris.CommandSetPosition:
		m.seekTo(m.engine.Media().FrameAt(c.Position))
	case mpris.CommandSetLoop:
		m.engine.SetLoop(c.Loop)
	case mpris.CommandQuit:
		m.quit()
		return
	}
	m.publish()
}

// publish hands the current state to the media remote.
func (m *Model) publish() {
	if m.remote == nil {
		return
	}
	media := m.engine.Media()
	m.remote.Update(mpris.Snapshot{
		URL:      m.engine.URL(),
		Title:    m.title(),
		State:    m.ctrl.State(),
		Position: media.FrameDuration(m.ctrl.Frame()),
		Length:   media.Duration(),
		Loop:     m.engine.Loop(),
	})
}
