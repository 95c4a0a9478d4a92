// Package client runs one game over a raw terminal byte stream, as used by
// the SSH host and the local --ansi mode.
package client

import (
	"bufio"
	"context"
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/valdebt/internal/draw"
	"github.com/tomz197/valdebt/internal/input"
	"github.com/tomz197/valdebt/internal/locale"
	"github.com/tomz197/valdebt/internal/loop"
	"github.com/tomz197/valdebt/internal/loop/config"
)

// Client handles rendering and input for a single connection.
type Client struct {
	driver       *loop.Driver
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates output for chunked writes
	writer       io.Writer
	inputStream  *input.Stream
	labels       locale.Resolver
	log          *log.Logger
	termSizeFunc draw.TermSizeFunc
	termWidth    int // Full terminal width, used to decode mouse columns

	lastInput time.Time
	lastFrame time.Time
	screen    screenState
	prev      screenState
	shutdown  atomic.Bool
}

var _ loop.Frontend = (*Client)(nil)

// Options configures the client.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Labels       locale.Resolver
	Logger       *log.Logger
}

// New creates a client that plays d on the terminal behind r and w.
func New(d *loop.Driver, r *bufio.Reader, w io.Writer, opts Options) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	labels := opts.Labels
	if labels == nil {
		labels, _ = locale.For(locale.Default)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, loop.FieldWidth, loop.FieldHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	now := time.Now()
	return &Client{
		driver:       d,
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w),
		writer:       w,
		inputStream:  input.StartStream(r),
		labels:       labels,
		log:          logger,
		termSizeFunc: termSizeFunc,
		termWidth:    termWidth,
		lastInput:    now,
		lastFrame:    now,
		screen:       screenState{status: d.State.Status},
		prev:         screenState{status: -1},
	}
}

// Run starts the client loop. Blocks until the player quits, the connection
// closes, ctx is cancelled or a shutdown countdown runs out.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	draw.EnableMouse(c.writer)
	defer draw.ShowCursor(c.writer)
	defer draw.DisableMouse(c.writer)
	defer c.Close()
	draw.ClearScreen(c.writer)

	err := loop.Run(ctx, c.driver, c)

	draw.ClearScreen(c.writer)
	return err
}

// Close releases the input reader. Run calls it on exit; call it directly
// for a client that never runs.
func (c *Client) Close() {
	c.inputStream.Close()
}

// Shutdown starts the server-shutdown countdown. Safe to call from any goroutine.
func (c *Client) Shutdown() {
	c.shutdown.Store(true)
}

// Poll implements loop.Frontend.
func (c *Client) Poll() input.Intent {
	now := time.Now()
	delta := now.Sub(c.lastFrame).Seconds()
	c.lastFrame = now

	c.updateScreen()

	in := input.ReadIntent(c.inputStream, c.termWidth)
	if in.HasX {
		col := int(math.Round(in.X * float64(c.termWidth-1)))
		in.X = c.canvas.TerminalToLogical(col)
	}

	if c.inputStream.LastActivity().After(c.lastInput) {
		c.lastInput = c.inputStream.LastActivity()
		c.screen.inactive = false
	} else if idle := now.Sub(c.lastInput).Seconds(); idle > config.InactivityDisconnectUser {
		c.log.Info("disconnecting inactive player", "idle", time.Duration(idle*float64(time.Second)).Round(time.Second))
		in.Quit = true
	} else if idle > config.InactivityWarnUser {
		c.screen.inactive = true
	}

	if c.shutdown.Load() {
		if !c.screen.shuttingDown {
			c.screen.shuttingDown = true
			c.screen.shutdownTimer = config.ShutdownDisplaySeconds
		}
		c.screen.shutdownTimer -= delta
		if c.screen.shutdownTimer <= 0 {
			in.Quit = true
		}
	}
	return in
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	c.termWidth = termWidth
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
