package client

import (
	"fmt"
	"time"

	"github.com/tomz197/valdebt/internal/draw"
	"github.com/tomz197/valdebt/internal/loop"
	"github.com/tomz197/valdebt/internal/loop/config"
	"github.com/tomz197/valdebt/internal/render"
)

// Present implements loop.Frontend.
func (c *Client) Present(s loop.State) error {
	// On status or warning transitions, do a full terminal clear
	// so UI elements from the previous screen don't persist.
	c.screen.status = s.Status
	if c.prev.changed(c.screen) {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
	}
	c.prev = c.screen

	c.canvas.Clear(render.Sky)
	render.Frame(c.canvas, s, loop.FieldWidth, loop.FieldHeight, c.labels)

	switch {
	case c.screen.shuttingDown:
		c.drawShutdownScreen()
	case c.screen.inactive:
		c.drawInactivityScreen()
	}

	// Render canvas to terminal
	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	return c.chunkWriter.Flush()
}

// panel darkens the middle of the playfield and writes lines centred on it,
// one terminal row each.
func (c *Client) panel(lines ...string) {
	rows := c.canvas.TerminalHeight()
	if rows < 1 {
		return
	}
	w, h := c.canvas.Bounds()
	rowH := h / float64(rows)
	first := (rows - len(lines)) / 2
	c.canvas.FillRect(w*0.1, float64(first-1)*rowH, w*0.8, float64(len(lines)+2)*rowH, render.DeepByte, 0.85)
	for i, line := range lines {
		c.canvas.Text(w/2, (float64(first+i)+0.5)*rowH, line, render.White, draw.AlignCenter)
	}
}

// drawInactivityScreen draws the inactivity warning.
func (c *Client) drawInactivityScreen() {
	left := int(config.InactivityDisconnectUser - time.Since(c.lastInput).Seconds())
	c.panel(
		c.labels.Label("inactivityWarning"),
		"",
		fmt.Sprintf(c.labels.Label("disconnectIn"), max(left, 0)),
		c.labels.Label("pressAnyKey"),
	)
}

// drawShutdownScreen draws the server shutdown notification.
func (c *Client) drawShutdownScreen() {
	c.panel(
		c.labels.Label("serverShutdown"),
		"",
		c.labels.Label("serverRestarting"),
		c.labels.Label("reconnectSoon"),
		fmt.Sprintf(c.labels.Label("disconnectingIn"), int(c.screen.shutdownTimer)+1),
		c.labels.Label("pressQuitNow"),
	)
}
