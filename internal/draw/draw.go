// Package draw provides the drawing surface abstraction shared by every front
// end, plus a half-block terminal canvas that implements it.
package draw

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Align controls horizontal text placement relative to the anchor X.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is a 2D target in logical coordinates. Alpha is in [0,1]; values
// below 1 blend over what is already drawn.
type Surface interface {
	// Bounds returns the logical size of the surface.
	Bounds() (width, height float64)
	FillRect(x, y, w, h float64, c colorful.Color, alpha float64)
	FillPolygon(points []Point, c colorful.Color, alpha float64)
	Line(p1, p2 Point, c colorful.Color, alpha float64)
	// Text draws a single line with its baseline row at y.
	Text(x, y float64, s string, c colorful.Color, align Align)
}

// StrokePolygon outlines a closed polygon.
func StrokePolygon(s Surface, points []Point, c colorful.Color, alpha float64) {
	n := len(points)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		s.Line(points[i], points[(i+1)%n], c, alpha)
	}
}

// Hex parses a #rrggbb colour, falling back to black on malformed input.
func Hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
