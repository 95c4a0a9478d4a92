package draw

import (
	"bytes"
	"strings"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	black = colorful.Color{}
	white = colorful.Color{R: 1, G: 1, B: 1}
	red   = colorful.Color{R: 1}
)

func TestFillRectScalesToPixels(t *testing.T) {
	// 10x5 terminal = 10x10 pixels over a 100x100 logical space.
	c := NewScaledCanvas(10, 5, 100, 100)
	c.Clear(black)
	c.FillRect(0, 0, 50, 50, white, 1)

	if got := c.Pixel(0, 0); got != white {
		t.Errorf("pixel (0,0) = %v, want white", got)
	}
	if got := c.Pixel(4, 4); got != white {
		t.Errorf("pixel (4,4) = %v, want white", got)
	}
	if got := c.Pixel(5, 5); got != black {
		t.Errorf("pixel (5,5) = %v, want black", got)
	}
}

func TestFillRectBlendsAlpha(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Clear(black)
	c.FillRect(0, 0, 1, 1, white, 0.5)

	got := c.Pixel(0, 0)
	if got.R < 0.49 || got.R > 0.51 {
		t.Errorf("blended red channel = %v, want ~0.5", got.R)
	}
}

func TestLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Clear(black)
	c.Line(Point{0, 0}, Point{9, 9}, red, 1)

	for _, p := range [][2]int{{0, 0}, {5, 5}, {9, 9}} {
		if got := c.Pixel(p[0], p[1]); got != red {
			t.Errorf("pixel %v = %v, want red", p, got)
		}
	}
	if got := c.Pixel(9, 0); got != black {
		t.Errorf("off-line pixel = %v, want black", got)
	}
}

func TestFillPolygonInterior(t *testing.T) {
	c := NewCanvas(20, 10)
	c.Clear(black)
	c.FillPolygon(Rect(2, 2, 10, 10), red, 1)

	if got := c.Pixel(6, 6); got != red {
		t.Errorf("interior pixel = %v, want red", got)
	}
	if got := c.Pixel(15, 15); got != black {
		t.Errorf("exterior pixel = %v, want black", got)
	}
}

func TestCellComposition(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Clear(black)
	c.FillRect(0, 0, 1, 1, red, 1) // top half of column 0
	c.FillRect(1, 0, 1, 2, red, 1) // both halves of column 1

	if got := c.Cell(0, 0); got.Rune != BlockUpperHalf || got.FG != red || got.BG != black {
		t.Errorf("cell 0 = %+v, want upper half red on black", got)
	}
	if got := c.Cell(1, 0); got.Rune != BlockEmpty || got.BG != red {
		t.Errorf("cell 1 = %+v, want blank on red", got)
	}
	if got := c.Cell(2, 0); got.Rune != BlockEmpty || got.BG != black {
		t.Errorf("cell 2 = %+v, want blank on black", got)
	}
}

func TestTextAlignment(t *testing.T) {
	c := NewCanvas(11, 1)
	c.Clear(black)
	c.Text(5, 0, "abc", white, AlignCenter)

	var sb strings.Builder
	for col := 0; col < 11; col++ {
		sb.WriteRune(c.Cell(col, 0).Rune)
	}
	if got, want := sb.String(), "    abc    "; got != want {
		t.Errorf("row = %q, want %q", got, want)
	}

	c.Clear(black)
	c.Text(11, 0, "xy", white, AlignRight)
	if got := c.Cell(10, 0).Rune; got != 'y' {
		t.Errorf("right-aligned last rune = %q, want 'y'", got)
	}
}

func TestTextClipsOffCanvas(t *testing.T) {
	c := NewCanvas(4, 1)
	c.Clear(black)
	c.Text(-2, 0, "hello", white, AlignLeft)
	c.Text(0, 50, "gone", white, AlignLeft)

	if got := c.Cell(0, 0).Rune; got != 'l' {
		t.Errorf("first visible rune = %q, want 'l'", got)
	}
}

func TestRenderOnlyWritesChanges(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Clear(black)

	var first bytes.Buffer
	c.Render(&first)
	if first.Len() == 0 {
		t.Fatal("first render wrote nothing")
	}

	var second bytes.Buffer
	c.Render(&second)
	if second.Len() != 0 {
		t.Errorf("unchanged render wrote %d bytes", second.Len())
	}

	c.FillRect(0, 0, 1, 1, red, 1)
	var third bytes.Buffer
	c.Render(&third)
	if !strings.Contains(third.String(), "38;2;255;0;0") {
		t.Errorf("changed render missing red SGR: %q", third.String())
	}

	c.ForceRedraw()
	var fourth bytes.Buffer
	c.Render(&fourth)
	if fourth.Len() <= third.Len() {
		t.Errorf("forced redraw wrote %d bytes, want more than incremental %d", fourth.Len(), third.Len())
	}
}

func TestRegularPolygonFirstVertexUp(t *testing.T) {
	pts := RegularPolygon(0, 0, 10, 4, 0)
	if len(pts) != 4 {
		t.Fatalf("len = %d, want 4", len(pts))
	}
	if pts[0].Y > -9.99 || pts[0].X > 1e-9 || pts[0].X < -1e-9 {
		t.Errorf("first vertex = %+v, want (0,-10)", pts[0])
	}
}

func TestCrossingsSquare(t *testing.T) {
	square := Rect(2, 2, 4, 4)
	got := Crossings(square, 3, nil)
	if len(got) != 2 || got[0] != 2 || got[1] != 6 {
		t.Errorf("Crossings = %v, want [2 6]", got)
	}
	if got := Crossings(square, 10, nil); len(got) != 0 {
		t.Errorf("Crossings outside = %v, want none", got)
	}
}
