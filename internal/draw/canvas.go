package draw

import (
	"fmt"
	"io"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Cell is one rendered terminal cell: a glyph with foreground and background.
type Cell struct {
	Rune rune
	FG   colorful.Color
	BG   colorful.Color
}

// textCell is an overlay glyph written by Text.
type textCell struct {
	r   rune
	fg  colorful.Color
	set bool
}

// Canvas is a colour drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
type Canvas struct {
	termWidth      int              // Actual terminal columns
	termHeight     int              // Actual terminal rows
	subPixelHeight int              // termHeight * 2
	pixels         []colorful.Color // Flat slice: [y * termWidth + x]
	text           []textCell       // Flat slice: [row * termWidth + col]
	prev           []Cell           // Last rendered frame, nil forces a full redraw

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	scaledBuf       []Point
	intersectionBuf []float64
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates a canvas for the given terminal dimensions with a 1:1 mapping.
func NewCanvas(width, height int) *Canvas {
	return NewScaledCanvas(width, height, float64(width), float64(height*2))
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]colorful.Color, subPixelHeight*termWidth)
		c.text = make([]textCell, termHeight*termWidth)
		c.prev = nil
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.prev = nil
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw makes the next Render repaint every cell.
func (c *Canvas) ForceRedraw() {
	c.prev = nil
}

// Clear fills every pixel with bg and drops the text overlay.
func (c *Canvas) Clear(bg colorful.Color) {
	for i := range c.pixels {
		c.pixels[i] = bg
	}
	clear(c.text)
}

// Bounds implements Surface.
func (c *Canvas) Bounds() (float64, float64) {
	return c.logicalWidth, c.logicalHeight
}

// setPixel blends a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col colorful.Color, alpha float64) {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return
	}
	i := y*c.termWidth + x
	if alpha >= 1 {
		c.pixels[i] = col
		return
	}
	if alpha <= 0 {
		return
	}
	c.pixels[i] = c.pixels[i].BlendRgb(col, alpha)
}

// Pixel returns the colour at actual pixel coordinates.
func (c *Canvas) Pixel(x, y int) colorful.Color {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return colorful.Color{}
	}
	return c.pixels[y*c.termWidth+x]
}

// FillRect implements Surface.
func (c *Canvas) FillRect(x, y, w, h float64, col colorful.Color, alpha float64) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := int(math.Round(x * c.scaleX))
	y0 := int(math.Round(y * c.scaleY))
	x1 := max(int(math.Round((x+w)*c.scaleX)), x0+1)
	y1 := max(int(math.Round((y+h)*c.scaleY)), y0+1)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, c.termWidth), min(y1, c.subPixelHeight)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.setPixel(px, py, col, alpha)
		}
	}
}

// Line draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) Line(p1, p2 Point, col colorful.Color, alpha float64) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, col, alpha)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// FillPolygon fills a polygon using a scanline algorithm in pixel space.
func (c *Canvas) FillPolygon(points []Point, col colorful.Color, alpha float64) {
	if len(points) < 3 {
		return
	}
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), c.subPixelHeight-1)

	for y := yStart; y <= yEnd; y++ {
		intersections := Crossings(scaled, float64(y)+0.5, c.intersectionBuf[:0])
		c.intersectionBuf = intersections

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i] - 0.5))
			xEnd := int(math.Floor(intersections[i+1] - 0.5))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, col, alpha)
			}
		}
	}
}

// Text writes s into the overlay layer. Glyphs outside the canvas are dropped.
func (c *Canvas) Text(x, y float64, s string, col colorful.Color, align Align) {
	runes := []rune(s)
	startCol := int(math.Round(x * c.scaleX))
	switch align {
	case AlignCenter:
		startCol -= len(runes) / 2
	case AlignRight:
		startCol -= len(runes)
	}
	row := int(math.Floor(y*c.scaleY)) / 2
	if row < 0 || row >= c.termHeight {
		return
	}
	for i, r := range runes {
		cx := startCol + i
		if cx < 0 || cx >= c.termWidth {
			continue
		}
		c.text[row*c.termWidth+cx] = textCell{r: r, fg: col, set: true}
	}
}

// Cell composes the glyph shown at a 0-based terminal position.
func (c *Canvas) Cell(col, row int) Cell {
	top := c.pixels[row*2*c.termWidth+col]
	bottom := top
	if row*2+1 < c.subPixelHeight {
		bottom = c.pixels[(row*2+1)*c.termWidth+col]
	}
	if t := c.text[row*c.termWidth+col]; t.set {
		return Cell{Rune: t.r, FG: t.fg, BG: top.BlendRgb(bottom, 0.5)}
	}
	if top == bottom {
		return Cell{Rune: BlockEmpty, FG: top, BG: top}
	}
	return Cell{Rune: BlockUpperHalf, FG: top, BG: bottom}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render outputs the canvas as truecolor half-blocks. Only cells that changed
// since the previous Render are written.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 8)

	full := c.prev == nil
	if full {
		c.prev = make([]Cell, c.termWidth*c.termHeight)
	}

	var curFG, curBG colorful.Color
	haveColor := false
	for row := 0; row < c.termHeight; row++ {
		cursorAt := -1
		for col := 0; col < c.termWidth; col++ {
			cell := c.Cell(col, row)
			i := row*c.termWidth + col
			if !full && c.prev[i] == cell {
				continue
			}
			c.prev[i] = cell

			if cursorAt != col {
				fmt.Fprintf(&c.renderBuf, "\033[%d;%dH", row+1+c.offsetRow, col+1+c.offsetCol)
			}
			if !haveColor || cell.FG != curFG || cell.BG != curBG {
				writeSGR(&c.renderBuf, cell.FG, cell.BG)
				curFG, curBG, haveColor = cell.FG, cell.BG, true
			}
			c.renderBuf.WriteRune(cell.Rune)
			cursorAt = col + 1
		}
	}
	if haveColor {
		c.renderBuf.WriteString("\033[0m")
	}

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

func writeSGR(b *strings.Builder, fg, bg colorful.Color) {
	fr, fgG, fb := fg.Clamped().RGB255()
	br, bgG, bb := bg.Clamped().RGB255()
	fmt.Fprintf(b, "\033[38;2;%d;%d;%d;48;2;%d;%d;%dm", fr, fgG, fb, br, bgG, bb)
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	if hasV {
		bar := strings.Repeat("─", c.termWidth)
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, bar)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, bar)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, bar)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, bar)
		}
	}

	if hasH {
		startRow := top + 1
		endRow := bottom
		if !hasV {
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	io.WriteString(w, buf.String())
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// TerminalToLogical converts a 0-based terminal column to a normalised X in [0,1].
func (c *Canvas) TerminalToLogical(col int) float64 {
	if c.termWidth <= 1 {
		return 0.5
	}
	return float64(col-c.offsetCol) / float64(c.termWidth-1)
}
