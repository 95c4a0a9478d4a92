package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/valdebt/internal/draw"
	"github.com/tomz197/valdebt/internal/input"
	"github.com/tomz197/valdebt/internal/locale"
	"github.com/tomz197/valdebt/internal/loop"
	"github.com/tomz197/valdebt/internal/render"
)

// screenFrontend plays on a tcell screen with mouse tracking.
type screenFrontend struct {
	screen tcell.Screen
	canvas *draw.Canvas
	labels locale.Resolver
	events chan tcell.Event
	keys   input.KeyState
}

var _ loop.Frontend = (*screenFrontend)(nil)

func runTcell(ctx context.Context, driver *loop.Driver, labels locale.Resolver) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer s.Fini()

	s.EnableMouse(tcell.MouseMotionEvents)
	s.HideCursor()

	fe := newScreenFrontend(s, labels)
	go fe.pump()
	return loop.Run(ctx, driver, fe)
}

func newScreenFrontend(s tcell.Screen, labels locale.Resolver) *screenFrontend {
	w, h := s.Size()
	return &screenFrontend{
		screen: s,
		canvas: draw.NewScaledCanvas(w, h, loop.FieldWidth, loop.FieldHeight),
		labels: labels,
		events: make(chan tcell.Event, 128),
	}
}

// pump forwards screen events until the screen is finalised.
func (f *screenFrontend) pump() {
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		f.events <- ev
	}
}

// Poll implements loop.Frontend. Key events are re-encoded as terminal bytes
// so steering uses the same hold logic as the raw terminal path.
func (f *screenFrontend) Poll() input.Intent {
	var (
		buf     []byte
		pointer = -1
	)

drain:
	for {
		select {
		case ev := <-f.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				buf = append(buf, keyBytes(ev)...)
			case *tcell.EventMouse:
				pointer, _ = ev.Position()
			case *tcell.EventResize:
				w, h := ev.Size()
				f.canvas.Resize(w, h)
				f.screen.Sync()
			}
		default:
			break drain
		}
	}

	in := input.Parse(buf, 0, &f.keys, time.Now())
	if pointer >= 0 {
		in.X = f.canvas.TerminalToLogical(pointer)
		in.HasX = true
	}
	return in
}

// keyBytes maps a tcell key to what a raw terminal would have sent.
func keyBytes(ev *tcell.EventKey) []byte {
	switch ev.Key() {
	case tcell.KeyLeft:
		return []byte("\x1b[D")
	case tcell.KeyRight:
		return []byte("\x1b[C")
	case tcell.KeyEnter:
		return []byte{'\r'}
	case tcell.KeyEscape:
		return []byte{'q'}
	case tcell.KeyCtrlC:
		return []byte{0x03}
	case tcell.KeyRune:
		if r := ev.Rune(); r < 0x80 {
			return []byte{byte(r)}
		}
	}
	return nil
}

// Present implements loop.Frontend.
func (f *screenFrontend) Present(s loop.State) error {
	f.canvas.Clear(render.Sky)
	render.Frame(f.canvas, s, loop.FieldWidth, loop.FieldHeight, f.labels)
	f.canvas.Blit(f.screen)
	f.screen.Show()
	return nil
}
