package app

import (
	"math"

	"github.com/llehouerou/scrubber/internal/surface"
	"github.com/llehouerou/scrubber/internal/ui/playerbar"
)

const (
	// A terminal cell is about twice as tall as it is wide.
	cellAspect    = 2.0
	defaultAspect = 16.0 / 9.0
)

// layout places the bar at the bottom of the window and redraws the knob
// for the new track width.
func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.bar.Layout(0, max(m.height-playerbar.Height, 0), m.width)
	m.help.SetSize(m.width, m.height)
	if m.ctrl.State().CanSkip() {
		m.ctrl.SetFrame(m.ctrl.Frame())
	}
}

// viewportSize returns the inner size in cells of the box showing the
// media, fitted to its aspect ratio inside the space above the bar.
func (m *Model) viewportSize() (width, height int) {
	availW := m.width - 2
	availH := m.height - playerbar.Height - 2
	if availW <= 0 || availH <= 0 {
		return 0, 0
	}

	aspect := m.engine.Media().Aspect
	if aspect <= 0 {
		aspect = defaultAspect
	}
	base := surface.Size{W: float64(availW), H: float64(availH) * cellAspect}
	fitted, err := surface.FitSize(base, aspect, m.fit)
	if err != nil {
		return availW, availH
	}

	width = min(int(math.Round(fitted.W)), availW)
	height = min(int(math.Round(fitted.H/cellAspect)), availH)
	return max(width, 1), max(height, 1)
}
