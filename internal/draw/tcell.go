package draw

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Blit copies the composed canvas onto a tcell screen at the canvas offset.
// The caller is responsible for calling Show.
func (c *Canvas) Blit(s tcell.Screen) {
	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			cell := c.Cell(col, row)
			style := tcell.StyleDefault.Foreground(TcellColor(cell.FG)).Background(TcellColor(cell.BG))
			s.SetContent(col+c.offsetCol, row+c.offsetRow, cell.Rune, nil, style)
		}
	}
}

// TcellColor converts a colour to a 24-bit tcell colour.
func TcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
