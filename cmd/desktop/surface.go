package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/valdebt/internal/draw"
	"github.com/tomz197/valdebt/internal/loop"
	"golang.org/x/image/font/basicfont"
)

// textBaseline shifts text from its top edge to the font baseline.
const textBaseline = 11

// surface draws on an ebiten image laid out at the playfield's logical size.
type surface struct {
	dst   *ebiten.Image
	spans []float64
}

var _ draw.Surface = (*surface)(nil)

func (s *surface) Bounds() (float64, float64) {
	return loop.FieldWidth, loop.FieldHeight
}

func (s *surface) FillRect(x, y, w, h float64, c colorful.Color, alpha float64) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), nrgba(c, alpha), false)
}

// FillPolygon fills row by row with the same scanline rule as the terminal canvas.
func (s *surface) FillPolygon(points []draw.Point, c colorful.Color, alpha float64) {
	if len(points) < 3 {
		return
	}
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	clr := nrgba(c, alpha)
	for y := math.Floor(minY); y <= math.Ceil(maxY); y++ {
		s.spans = draw.Crossings(points, y+0.5, s.spans[:0])
		for i := 0; i+1 < len(s.spans); i += 2 {
			x0, x1 := s.spans[i], s.spans[i+1]
			vector.DrawFilledRect(s.dst, float32(x0), float32(y), float32(x1-x0), 1, clr, false)
		}
	}
}

func (s *surface) Line(p1, p2 draw.Point, c colorful.Color, alpha float64) {
	vector.StrokeLine(s.dst, float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y), 1.5, nrgba(c, alpha), true)
}

func (s *surface) Text(x, y float64, str string, c colorful.Color, align draw.Align) {
	face := basicfont.Face7x13
	width := text.BoundString(face, str).Dx()
	left := int(math.Round(x))
	switch align {
	case draw.AlignCenter:
		left -= width / 2
	case draw.AlignRight:
		left -= width
	}
	text.Draw(s.dst, str, face, left, int(math.Round(y))+textBaseline, nrgba(c, 1))
}

// nrgba converts a palette colour with opacity to a straight-alpha colour.
func nrgba(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	a := uint8(math.Round(math.Max(0, math.Min(1, alpha)) * 255))
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
