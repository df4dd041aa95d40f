package surface

import "math"

// Point is a 2D position.
type Point struct {
	X, Y float64
}

// Size is a 2D extent.
type Size struct {
	W, H float64
}

// Rect is a rectangle positioned by its centre, with a scale applied to its
// size.
type Rect struct {
	Center Point
	Size   Size
	Scale  Point
}

// ScaledWidth returns the on-screen width of r.
func (r Rect) ScaledWidth() float64 {
	return r.Size.W * r.Scale.X
}

// ScreenToLocal converts p to coordinates centred on r, undoing r's scale.
// It fails for degenerate scales or non-finite input.
func ScreenToLocal(r Rect, p Point) (Point, bool) {
	if r.Scale.X == 0 || r.Scale.Y == 0 {
		return Point{}, false
	}
	local := Point{
		X: (p.X - r.Center.X) / r.Scale.X,
		Y: (p.Y - r.Center.Y) / r.Scale.Y,
	}
	if !finite(local.X) || !finite(local.Y) {
		return Point{}, false
	}
	return local, true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
