// Package input turns raw front-end events into per-frame player intent.
package input

import (
	"bufio"
	"strconv"
	"strings"
	"sync"
	"time"
)

// keyHoldDuration is how long a steering key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Intent is everything a player asked for during one frame.
type Intent struct {
	X     float64 // Normalised pointer position, valid when HasX
	HasX  bool
	Steer int // -1 left, +1 right, 0 none
	Start bool
	Quit  bool
	Mute  bool
}

// KeyState tracks the last time each held steering key was pressed.
type KeyState struct {
	left  time.Time
	right time.Time
}

// Stream delivers input bytes via a channel and tracks held keys between frames.
type Stream struct {
	ch        chan byte
	done      chan struct{} // Closed by Close; releases a reader blocked on a full ch
	stopped   chan struct{} // Closed when the reader goroutine returns
	closeOnce sync.Once
	state     KeyState
	closed    bool
	lastRead  time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// Call Close once the stream is no longer drained.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:      make(chan byte, 128),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go func() {
		defer close(s.stopped)
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Close stops forwarding input. The reader goroutine exits on its next byte
// or at the end of the underlying reader, whichever comes first.
func (s *Stream) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// LastActivity returns when ReadIntent last saw any byte, mapped or not.
func (s *Stream) LastActivity() time.Time {
	return s.lastRead
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadIntent drains all available bytes from the stream (non-blocking).
// cols is the terminal width used to normalise SGR mouse reports.
func ReadIntent(s *Stream, cols int) Intent {
	now := time.Now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	if len(buf) > 0 {
		s.lastRead = now
	}
	intent := Parse(buf, cols, &s.state, now)
	if s.closed {
		intent.Quit = true
	}
	return intent
}

// Parse decodes one frame's worth of bytes. Held keys are tracked in state so
// a steering key stays active between terminal auto-repeats.
func Parse(buf []byte, cols int, state *KeyState, now time.Time) Intent {
	var intent Intent

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			// SGR mouse report: ESC [ < btn ; col ; row (M|m)
			if buf[i+2] == '<' {
				if n, col, ok := parseSGRMouse(buf[i+3:]); ok {
					if cols > 1 {
						intent.X = float64(col-1) / float64(cols-1)
						intent.HasX = true
					}
					i += 2 + n
					continue
				}
			}
			switch buf[i+2] {
			case 'C': // Right arrow
				state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				state.left = now
				i += 2
				continue
			case 'A', 'B':
				i += 2
				continue
			}
		}

		switch b {
		case 'q', 'Q', 0x03: // Ctrl+C
			intent.Quit = true
		case 'a', 'A', 'h', 'H':
			state.left = now
		case 'd', 'D', 'l', 'L':
			state.right = now
		case ' ', '\n', '\r':
			intent.Start = true
		case 'm', 'M':
			intent.Mute = true
		}
	}

	left := now.Sub(state.left) < keyHoldDuration
	right := now.Sub(state.right) < keyHoldDuration
	switch {
	case left && !right:
		intent.Steer = -1
	case right && !left:
		intent.Steer = 1
	}
	return intent
}

// parseSGRMouse parses "btn;col;row" terminated by M or m. It returns the
// number of bytes consumed after the '<' and the 1-based column.
func parseSGRMouse(b []byte) (int, int, bool) {
	end := -1
	for i, c := range b {
		if c == 'M' || c == 'm' {
			end = i
			break
		}
		if c != ';' && (c < '0' || c > '9') {
			return 0, 0, false
		}
	}
	if end < 0 {
		return 0, 0, false
	}
	parts := strings.Split(string(b[:end]), ";")
	if len(parts) != 3 {
		return 0, 0, false
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil || col < 1 {
		return 0, 0, false
	}
	return end + 1, col, true
}
