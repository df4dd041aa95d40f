package app

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/scrubber/internal/playback"
	"github.com/llehouerou/scrubber/internal/player"
	"github.com/llehouerou/scrubber/internal/ui/overlay"
	"github.com/llehouerou/scrubber/internal/ui/playerbar"
	"github.com/llehouerou/scrubber/internal/ui/render"
	"github.com/llehouerou/scrubber/internal/ui/styles"
)

// View renders the application UI.
func (m *Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}

	bar := m.bar.View(m.barInfo())
	view := bar
	if top := m.height - playerbar.Height; top > 0 {
		view = lipgloss.Place(m.width, top, lipgloss.Center, lipgloss.Center, m.renderViewport()) + "\n" + bar
	}

	if m.showHelp {
		view = overlay.Center(view, m.help.View(), m.width, m.height)
	}
	return view
}

// renderViewport draws the media box: title, timecode and state.
func (m *Model) renderViewport() string {
	width, height := m.viewportSize()
	if width == 0 {
		return ""
	}

	lines := []string{
		styles.T().S().Title.Render(render.TruncateEllipsis(m.title(), width)),
		styles.T().S().Base.Render(timecode(m.engine.Media(), m.ctrl.Frame())),
		styles.T().S().Muted.Render(m.ctrl.State().String()),
	}
	if height < len(lines) {
		lines = lines[1 : 1+height]
	}

	return styles.PanelStyle(m.ctrl.State() == playback.StatePlaying).
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

func (m *Model) barInfo() playerbar.Info {
	media := m.engine.Media()
	return playerbar.Info{
		Title:      m.title(),
		Position:   media.FrameDuration(m.ctrl.Frame()),
		Duration:   media.Duration(),
		Frame:      m.ctrl.Frame(),
		FrameCount: m.ctrl.FrameCount(),
		Spinner:    m.spinner.View(),
		Status:     m.statusLine(),
	}
}

// statusLine is the last error, or the state with the active toggles.
func (m *Model) statusLine() string {
	if m.status != "" {
		return m.status
	}
	parts := []string{m.ctrl.State().String()}
	if m.ctrl.AutoPlay() {
		parts = append(parts, "autoplay")
	}
	if m.engine.Loop() {
		parts = append(parts, "loop")
	}
	return strings.Join(parts, " · ")
}

func (m *Model) title() string {
	if name := m.engine.Media().Name; name != "" {
		return name
	}
	if url := m.engine.URL(); url != "" {
		return url
	}
	return "no media"
}

// timecode formats a frame as hh:mm:ss:ff.
func timecode(media player.Media, frame int64) string {
	fps := int64(math.Round(media.FPS))
	if fps <= 0 {
		return "--:--:--:--"
	}
	secs := frame / fps
	return fmt.Sprintf("%02d:%02d:%02d:%02d", secs/3600, secs/60%60, secs%60, frame%fps)
}
