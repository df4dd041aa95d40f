package playback

import (
	"github.com/samber/lo"

	"github.com/llehouerou/scrubber/internal/surface"
)

// PointerDown starts a drag session when the knob or the track is pressed.
// Playback is paused without OnPause so PointerUp can restore the state that
// was active before the press.
func (c *Controller) PointerDown(target surface.Target, pos surface.Point) {
	if !target.IsSeekable() || c.dragging || !c.State().CanSkip() {
		return
	}
	c.setState(StateSkipping)
	if c.State() != StateSkipping {
		return
	}
	c.dragging = true
	c.Drag(pos)
}

// PointerUp ends the drag session and returns to the state that preceded it.
func (c *Controller) PointerUp(_ surface.Target, _ surface.Point) {
	if !c.dragging {
		return
	}
	c.dragging = false
	if c.State() != StateSkipping {
		return
	}
	if err := c.states.GoToPreviousState(); err != nil {
		c.log.WithError(err).Debug("resume after skip ignored")
	}
}

// Drag moves the playback position to the pointer. Samples that cannot be
// mapped onto the track are ignored.
func (c *Controller) Drag(pos surface.Point) {
	if !c.dragging {
		return
	}
	track := c.ui.Track()
	local, ok := c.ui.ScreenToLocal(track, pos)
	if !ok {
		return
	}
	c.SetProgress(local.X + track.Size.W*0.5)
}

// Dragging reports whether a drag session is active.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// Tick is called once per rendered frame. It emits OnUpdate and, while
// playing, follows the engine's clock, redrawing only when the frame moved.
func (c *Controller) Tick() {
	c.OnUpdate.Emit()
	if c.State() != StatePlaying {
		return
	}
	if c.player.Frame() == c.lastPlayed {
		return
	}
	c.syncFrame()
	c.updateProgressBar()
}

// syncFrame adopts the engine's frame.
func (c *Controller) syncFrame() {
	c.lastPlayed = c.player.Frame()
	c.frame = lo.Clamp(c.lastPlayed, 0, max(c.player.FrameCount(), 0))
}
