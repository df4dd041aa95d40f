package playback

import (
	"math"

	"github.com/samber/lo"

	"github.com/llehouerou/scrubber/internal/surface"
)

// MaxProgress is the on-screen width of the progress track.
func (c *Controller) MaxProgress() float64 {
	return c.ui.Track().ScaledWidth()
}

// MinProgress is minus half the knob width: offsetting the knob by it puts
// the knob's centre on the progress point.
func (c *Controller) MinProgress() float64 {
	return -c.ui.Knob().Size.W * 0.5
}

// Frame returns the current frame index, in [0, FrameCount].
func (c *Controller) Frame() int64 {
	return c.frame
}

// FrameCount returns the media length in frames.
func (c *Controller) FrameCount() int64 {
	return c.player.FrameCount()
}

// SetFrame seeks to frame, clamped to [0, FrameCount], and redraws the bar.
func (c *Controller) SetFrame(frame int64) {
	c.frame = lo.Clamp(frame, 0, max(c.player.FrameCount(), 0))
	c.player.SetFrame(c.frame)
	c.updateProgressBar()
}

// NormalizedProgress returns the position as a fraction of the media length.
// It is 0 when the length is unknown.
func (c *Controller) NormalizedProgress() float64 {
	count := c.player.FrameCount()
	if count <= 0 || c.frame <= 0 {
		return 0
	}
	return float64(c.frame) / float64(count)
}

// SetNormalizedProgress seeks to a fraction of the media length.
func (c *Controller) SetNormalizedProgress(v float64) {
	if math.IsNaN(v) {
		return
	}
	c.SetFrame(roundFrame(float64(c.player.FrameCount()) * v))
}

// Progress returns the position in track pixels.
func (c *Controller) Progress() float64 {
	return c.MaxProgress() * c.NormalizedProgress()
}

// SetProgress seeks to a position given in track pixels. It does nothing
// while the track has no width.
func (c *Controller) SetProgress(px float64) {
	maxProgress := c.MaxProgress()
	if maxProgress <= 0 || math.IsNaN(px) {
		return
	}
	c.SetFrame(roundFrame(float64(c.player.FrameCount()) * px / maxProgress))
}

// NormalizedKnobValue returns the knob's position as a fraction of the track.
func (c *Controller) NormalizedKnobValue() float64 {
	maxProgress := c.MaxProgress()
	if maxProgress <= 0 {
		return 0
	}
	knob := c.ui.Knob()
	left := knob.Center.X - knob.Size.W/2
	return left / maxProgress
}

// roundFrame rounds to the nearest frame, saturating instead of overflowing.
func roundFrame(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(math.Round(f))
}

// updateProgressBar moves the knob and fill to the current frame.
func (c *Controller) updateProgressBar() {
	progress := c.Progress()
	c.ui.SetFillWidth(progress)
	c.ui.SetKnobX(progress + c.MinProgress())
}

// refreshUI shows the elements that match the current state and redraws the
// progress bar. Neither play nor pause is offered while loading.
func (c *Controller) refreshUI() {
	state := c.State()
	c.ui.SetVisible(surface.ElementPlay, state != StatePlaying && state != StateLoading)
	c.ui.SetVisible(surface.ElementPause, state == StatePlaying)
	c.ui.SetVisible(surface.ElementLoading, state == StateLoading)
	c.ui.SetVisible(surface.ElementMessage, state == StateError)
	c.updateProgressBar()
}
