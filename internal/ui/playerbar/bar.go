// Package playerbar renders the progress bar surface in the terminal and
// maps mouse cells onto it.
package playerbar

import (
	"math"

	"github.com/llehouerou/scrubber/internal/surface"
)

// Height is the number of rows the bar occupies.
const Height = 3

const (
	buttonWidth = 3 // "[▶]"
	labelWidth  = 8 // elapsed / total time
	minWidth    = 2*(labelWidth+1) + 1
)

// Hit is what a mouse cell lands on.
type Hit int

const (
	HitNone Hit = iota
	HitKnob
	HitTrack
	HitPlay
	HitPause
	HitExit
)

// Target returns the pointer target handed to the playback controller.
func (h Hit) Target() surface.Target {
	switch h {
	case HitKnob:
		return surface.TargetKnob
	case HitTrack:
		return surface.TargetTrack
	case HitNone, HitPlay, HitPause, HitExit:
	}
	return surface.TargetNone
}

// Bar is a surface.Interface drawn on the terminal cell grid. Screen
// coordinates are cells; a cell is addressed by its centre (see Bar.CellPoint).
//
// Row 0 holds the play/pause and exit buttons and the title, row 1 the
// elapsed time, the track and the total time, row 2 the status line.
type Bar struct {
	x, y, width int
	laidOut     bool

	trackX, trackW int // screen column of the first track cell, cells

	knobX     float64 // knob left edge, track-local
	fillWidth float64
	visible   map[surface.Element]bool
	message   string
	destroyed bool
}

// New creates a bar with every element hidden. It must be laid out before
// it can map pointer positions.
func New() *Bar {
	return &Bar{visible: make(map[surface.Element]bool)}
}

// Layout places the bar with its top-left corner at (x, y).
func (b *Bar) Layout(x, y, width int) {
	b.x, b.y, b.width = x, y, max(width, minWidth)
	b.trackX = x + labelWidth + 1
	b.trackW = b.width - 2*(labelWidth+1)
	b.laidOut = true
}

// Width returns the laid-out width.
func (b *Bar) Width() int {
	return b.width
}

// CellPoint returns the screen point for a pointer on cell (x, y): the cell
// centre, except that the first and last track cells map to the track's
// edges so a scrub can reach both ends.
func (b *Bar) CellPoint(x, y int) surface.Point {
	p := surface.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
	if !b.laidOut || b.destroyed || y != b.y+1 {
		return p
	}
	switch x {
	case b.trackX:
		p.X = float64(b.trackX)
	case b.trackX + b.trackW - 1:
		p.X = float64(b.trackX + b.trackW)
	}
	return p
}

// HitTest reports what the cell at (x, y) lands on.
func (b *Bar) HitTest(x, y int) Hit {
	if b.destroyed || !b.laidOut {
		return HitNone
	}
	switch y {
	case b.y:
		switch {
		case x >= b.x && x < b.x+buttonWidth:
			if b.visible[surface.ElementPlay] {
				return HitPlay
			}
			if b.visible[surface.ElementPause] {
				return HitPause
			}
		case x >= b.exitX() && x < b.exitX()+buttonWidth:
			return HitExit
		}
	case b.y + 1:
		if x >= b.trackX && x < b.trackX+b.trackW {
			if x-b.trackX == b.knobCell() {
				return HitKnob
			}
			return HitTrack
		}
	}
	return HitNone
}

func (b *Bar) exitX() int {
	return b.x + buttonWidth + 1
}

// knobCell is the track cell under the knob centre.
func (b *Bar) knobCell() int {
	cell := int(math.Floor(b.knobX + 0.5))
	return min(max(cell, 0), max(b.trackW-1, 0))
}

// fillCells is the number of track cells covered by the fill.
func (b *Bar) fillCells() int {
	if math.IsNaN(b.fillWidth) {
		return 0
	}
	return min(max(int(math.Floor(b.fillWidth)), 0), b.trackW)
}

// surface.Interface

func (b *Bar) Track() surface.Rect {
	return surface.Rect{
		Center: surface.Point{
			X: float64(b.trackX) + float64(b.trackW)/2,
			Y: float64(b.y+1) + 0.5,
		},
		Size:  surface.Size{W: float64(b.trackW), H: 1},
		Scale: surface.Point{X: 1, Y: 1},
	}
}

func (b *Bar) Knob() surface.Rect {
	return surface.Rect{
		Center: surface.Point{X: b.knobX + 0.5, Y: 0},
		Size:   surface.Size{W: 1, H: 1},
		Scale:  surface.Point{X: 1, Y: 1},
	}
}

func (b *Bar) SetKnobX(x float64) { b.knobX = x }

func (b *Bar) SetFillWidth(w float64) { b.fillWidth = w }

func (b *Bar) SetVisible(e surface.Element, visible bool) { b.visible[e] = visible }

// Visible reports whether the controller currently shows e.
func (b *Bar) Visible(e surface.Element) bool { return b.visible[e] }

func (b *Bar) SetMessage(text string) { b.message = text }

func (b *Bar) ScreenToLocal(r surface.Rect, p surface.Point) (surface.Point, bool) {
	if b.destroyed || !b.laidOut {
		return surface.Point{}, false
	}
	return surface.ScreenToLocal(r, p)
}

func (b *Bar) Destroy() { b.destroyed = true }

// Destroyed reports whether the controller tore the bar down.
func (b *Bar) Destroyed() bool { return b.destroyed }

// Verify Bar implements surface.Interface at compile time.
var _ surface.Interface = (*Bar)(nil)
