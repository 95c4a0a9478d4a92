package draw

import (
	"math"
	"sort"
)

// RegularPolygon returns the vertices of an n-sided polygon of radius r
// centred on (cx, cy), rotated by rot radians. The first vertex points up.
func RegularPolygon(cx, cy, r float64, n int, rot float64) []Point {
	if n < 3 {
		return nil
	}
	points := make([]Point, n)
	for i := range points {
		a := rot - math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		points[i] = Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return points
}

// Circle approximates a circle with a polygon whose segment count grows with r.
func Circle(cx, cy, r float64) []Point {
	n := int(math.Max(8, math.Min(32, r)))
	return RegularPolygon(cx, cy, r, n, 0)
}

// Transform rotates points about the origin by rot radians, then translates
// them by (dx, dy). Points are modified in place and returned.
func Transform(points []Point, rot, dx, dy float64) []Point {
	sin, cos := math.Sincos(rot)
	for i, p := range points {
		points[i] = Point{
			X: p.X*cos - p.Y*sin + dx,
			Y: p.X*sin + p.Y*cos + dy,
		}
	}
	return points
}

// Rect returns the four corners of an axis-aligned rectangle, clockwise from top-left.
func Rect(x, y, w, h float64) []Point {
	return []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}

// Crossings appends to buf the sorted X coordinates where the horizontal line
// at y crosses the polygon's edges. Consecutive pairs bound the filled spans.
func Crossings(points []Point, y float64, buf []float64) []float64 {
	n := len(points)
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]
		if (p1.Y <= y && p2.Y > y) || (p2.Y <= y && p1.Y > y) {
			t := (y - p1.Y) / (p2.Y - p1.Y)
			buf = append(buf, p1.X+t*(p2.X-p1.X))
		}
	}
	sort.Float64s(buf)
	return buf
}
