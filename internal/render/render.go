// Package render draws a game state onto a draw.Surface. It never mutates the
// state it is given, and every word it shows comes from a locale.Resolver.
package render

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/valdebt/internal/draw"
	"github.com/tomz197/valdebt/internal/locale"
	"github.com/tomz197/valdebt/internal/loop"
)

// Background grid layout
const (
	gridLines   = 20
	gridHorizon = 0.3 // Fraction of the height
	gridAlpha   = 0.3
)

// LineHeight is the logical spacing between overlay text lines.
const LineHeight = 22.0

// Frame draws s on dst. w and h are the logical playfield size.
func Frame(dst draw.Surface, s loop.State, w, h float64, labels locale.Resolver) {
	world := dst
	if s.ScreenShake > 0 {
		dx, dy := ShakeOffset(s.Frame, s.ScreenShake)
		world = shifted{Surface: dst, dx: dx, dy: dy}
	}

	drawGrid(world, w, h, s.GridOffset)

	for _, o := range s.Objects {
		drawObject(world, o, s.Frame)
	}

	bounds := s.PlayerBounds(w, h)
	cx, cy := bounds.Center()
	drawPlayer(world, cx, cy, bounds.W, bounds.H, s.Frame)

	for _, p := range s.Particles {
		c := fade(TintColor(p.Color), p.Fraction())
		world.FillRect(p.X-p.Size/2, p.Y-p.Size/2, p.Size, p.Size, c, 1)
	}

	for _, t := range s.Texts {
		text := t.Text
		if t.Label != "" {
			text = labels.Label(t.Label)
		}
		world.Text(t.X, t.Y, text, fade(TintColor(t.Color), t.Fraction()), draw.AlignCenter)
	}

	if s.FlashAlpha > 0 {
		world.FillRect(0, 0, w, h, White, s.FlashAlpha)
	}

	switch s.Status {
	case loop.StatusMenu:
		drawMenu(dst, s, w, h, labels)
	case loop.StatusPlaying:
		drawHUD(dst, s, w, h, labels)
	case loop.StatusGameOver:
		drawGameOver(dst, s, w, h, labels)
	}
}

// ShakeOffset returns the world displacement for a shake of the given
// intensity. It depends only on its inputs.
func ShakeOffset(frame int, intensity float64) (dx, dy float64) {
	f := float64(frame)
	return math.Sin(f*1.7) * intensity, math.Cos(f*2.3) * intensity
}

func drawGrid(dst draw.Surface, w, h, offset float64) {
	dst.FillRect(0, 0, w, h, Sky, 1)

	cx := w / 2
	horizon := h * gridHorizon

	// Vertical perspective lines
	for i := -gridLines; i <= gridLines; i++ {
		top := draw.Point{X: cx + float64(i)*20, Y: horizon}
		bottom := draw.Point{X: cx + float64(i)*(w/gridLines), Y: h}
		dst.Line(top, bottom, Grid, gridAlpha)
	}

	// Horizontal lines bunch up toward the horizon
	phase := math.Mod(offset, 1)
	for i := 0; i <= gridLines; i++ {
		t := (float64(i) + phase) / gridLines
		y := horizon + t*t*(h-horizon)
		dst.Line(draw.Point{X: 0, Y: y}, draw.Point{X: w, Y: y}, Grid, gridAlpha)
	}
}

// shifted translates every drawing call by a fixed offset.
type shifted struct {
	draw.Surface
	dx, dy float64
}

func (s shifted) FillRect(x, y, w, h float64, c colorful.Color, alpha float64) {
	s.Surface.FillRect(x+s.dx, y+s.dy, w, h, c, alpha)
}

func (s shifted) FillPolygon(points []draw.Point, c colorful.Color, alpha float64) {
	s.Surface.FillPolygon(s.move(points), c, alpha)
}

func (s shifted) Line(p1, p2 draw.Point, c colorful.Color, alpha float64) {
	s.Surface.Line(draw.Point{X: p1.X + s.dx, Y: p1.Y + s.dy}, draw.Point{X: p2.X + s.dx, Y: p2.Y + s.dy}, c, alpha)
}

func (s shifted) Text(x, y float64, text string, c colorful.Color, align draw.Align) {
	s.Surface.Text(x+s.dx, y+s.dy, text, c, align)
}

func (s shifted) move(points []draw.Point) []draw.Point {
	out := make([]draw.Point, len(points))
	for i, p := range points {
		out[i] = draw.Point{X: p.X + s.dx, Y: p.Y + s.dy}
	}
	return out
}
