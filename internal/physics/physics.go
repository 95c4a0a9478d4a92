// Package physics provides collision detection and small numeric helpers.
package physics

// Rect is an axis-aligned rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// CenteredRect builds a Rect of the given size centred on (cx, cy).
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Center returns the rectangle's centre point.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether two rectangles intersect.
// Touching edges do not count as an intersection.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approach moves v toward zero by step, never overshooting.
func Approach(v, step float64) float64 {
	v -= step
	if v < 0 {
		return 0
	}
	return v
}
