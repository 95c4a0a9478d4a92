package render

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/valdebt/internal/draw"
	"github.com/tomz197/valdebt/internal/object"
)

// drawFunc draws one falling object centred on (cx, cy) with half-size r.
type drawFunc func(dst draw.Surface, cx, cy, r, rot float64, frame int)

// visuals is the dispatch table from catalog visual to drawing code.
var visuals = map[object.Visual]drawFunc{
	object.VisualStocks:  drawStocks,
	object.VisualSchool:  drawSchool,
	object.VisualHouse:   drawHouse,
	object.VisualPlaza:   drawPlaza,
	object.VisualWrench:  drawWrench,
	object.VisualPercent: drawPercent,
	object.VisualCrash:   drawCrash,
}

// flashPeriod is the number of frames per on/off phase of flashing kinds.
const flashPeriod = 8

// FlashOn reports whether a flashing object shows its bright phase at frame.
func FlashOn(frame int) bool {
	return (frame/flashPeriod)%2 == 0
}

func drawObject(dst draw.Surface, o object.FallingObject, frame int) {
	def := object.Def(o.Kind)
	fn, ok := visuals[def.Visual]
	if !ok {
		fn = drawHouse
	}
	if !def.Flags.Has(object.FlagFlashing) {
		frame = 0
	}
	cx, cy := o.Center()
	fn(dst, cx, cy, o.Size/2, o.Rotation, frame)
}

// shape places a polygon given in object-local coordinates.
func shape(points []draw.Point, rot, cx, cy float64) []draw.Point {
	return draw.Transform(points, rot, cx, cy)
}

func filled(dst draw.Surface, pts []draw.Point, fill, outline colorful.Color) {
	dst.FillPolygon(pts, fill, 1)
	draw.StrokePolygon(dst, pts, outline, 1)
}

func drawHouse(dst draw.Surface, cx, cy, r, rot float64, _ int) {
	body := shape(draw.Rect(-r+4, -4, 2*r-8, r+4), rot, cx, cy)
	roof := shape([]draw.Point{{X: -r, Y: -4}, {X: 0, Y: -r}, {X: r, Y: -4}}, rot, cx, cy)
	door := shape(draw.Rect(-5, 6, 10, r-6), rot, cx, cy)
	filled(dst, body, Lime, DeepByte)
	filled(dst, roof, Lime, DeepByte)
	dst.FillPolygon(door, DeepByte, 1)
	dst.Text(cx, cy-r/2, "$", DeepByte, draw.AlignCenter)
}

func drawSchool(dst draw.Surface, cx, cy, r, rot float64, _ int) {
	base := shape(draw.Rect(-r, r/2, 2*r, r/2), rot, cx, cy)
	pediment := shape([]draw.Point{{X: -r, Y: -r / 3}, {X: 0, Y: -r}, {X: r, Y: -r / 3}}, rot, cx, cy)
	filled(dst, pediment, Lime, DeepByte)
	filled(dst, base, Lime, DeepByte)
	for i := -2; i <= 2; i++ {
		x := float64(i) * r / 2.5
		col := shape([]draw.Point{{X: x, Y: -r / 3}, {X: x, Y: r / 2}}, rot, cx, cy)
		dst.Line(col[0], col[1], DeepByte, 1)
	}
	dst.Text(cx, cy-r/2, "A+", DeepByte, draw.AlignCenter)
}

func drawPlaza(dst draw.Surface, cx, cy, r, rot float64, _ int) {
	tower := shape(draw.Rect(-r*0.6, -r, r*1.2, 2*r), rot, cx, cy)
	filled(dst, tower, Gold, DeepByte)
	for row := 0; row < 4; row++ {
		for col := 0; col < 2; col++ {
			x := -r*0.4 + float64(col)*r*0.5
			y := -r*0.8 + float64(row)*r*0.45
			win := shape(draw.Rect(x, y, r*0.3, r*0.25), rot, cx, cy)
			dst.FillPolygon(win, DeepByte, 1)
		}
	}
}

func drawStocks(dst draw.Surface, cx, cy, r, rot float64, _ int) {
	panel := shape(draw.Rect(-r, -r, 2*r, 2*r), rot, cx, cy)
	filled(dst, panel, Lime, DeepByte)
	chart := shape([]draw.Point{
		{X: -r * 0.7, Y: r * 0.5},
		{X: -r * 0.3, Y: 0},
		{X: 0, Y: r * 0.2},
		{X: r * 0.4, Y: -r * 0.4},
		{X: r * 0.7, Y: -r * 0.6},
	}, rot, cx, cy)
	for i := 0; i+1 < len(chart); i++ {
		dst.Line(chart[i], chart[i+1], DeepByte, 1)
	}
}

// spiky returns a star with n points alternating outer and inner radius.
func spiky(n int, outer, inner float64) []draw.Point {
	pts := make([]draw.Point, 2*n)
	for i := range pts {
		rad := outer
		if i%2 == 1 {
			rad = inner
		}
		a := math.Pi*float64(i)/float64(n) - math.Pi/2
		pts[i] = draw.Point{X: math.Cos(a) * rad, Y: math.Sin(a) * rad}
	}
	return pts
}

func drawWrench(dst draw.Surface, cx, cy, r, rot float64, _ int) {
	filled(dst, shape(spiky(8, r, r/1.75), rot, cx, cy), Pink, DeepByte)
	dst.Text(cx, cy, "!", DeepByte, draw.AlignCenter)
}

func drawPercent(dst draw.Surface, cx, cy, r, rot float64, _ int) {
	ring := draw.Circle(0, 0, r)
	filled(dst, shape(ring, rot, cx, cy), Pink, DeepByte)
	dst.Text(cx, cy, "%", DeepByte, draw.AlignCenter)
}

func drawCrash(dst draw.Surface, cx, cy, r, rot float64, frame int) {
	fill, mark := Red, White
	if !FlashOn(frame) {
		fill, mark = White, Red
	}
	filled(dst, shape(spiky(12, r, r/2), rot, cx, cy), fill, DeepByte)
	dst.Text(cx, cy, "↓", mark, draw.AlignCenter)
}

// drawPlayer draws the portfolio jetpack centred on (x, y).
func drawPlayer(dst draw.Surface, x, y, w, h float64, frame int) {
	bx := x - w/2
	by := y - h/2
	dst.FillRect(bx+8, by, w-16, h-10, DeepByte, 1)
	draw.StrokePolygon(dst, draw.Rect(bx+8, by, w-16, h-10), Grid, 1)

	// Wings
	dst.FillRect(bx, by+10, 12, 30, Grid, 1)
	dst.FillRect(bx+w-12, by+10, 12, 30, Grid, 1)

	// Cockpit
	dst.FillRect(bx+20, by+8, w-40, 16, Lime, 1)

	// Thrusters
	flicker := float64((frame * 5) % 8)
	dst.FillRect(bx+16, by+h-10, 8, 10+flicker, Lime, 1)
	dst.FillRect(bx+w-24, by+h-10, 8, 10+flicker, Lime, 1)
	dst.FillRect(bx+18, by+h-6, 4, 6+flicker*0.6, Pink, 1)
	dst.FillRect(bx+w-22, by+h-6, 4, 6+flicker*0.6, Pink, 1)
}
