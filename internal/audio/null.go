package audio

import "github.com/tomz197/valdebt/internal/loop"

// Null is a silent sink. It still tracks the mute toggle so overlays stay honest.
type Null struct {
	muted bool
}

var (
	_ loop.CueSink = (*Null)(nil)
	_ loop.Muter   = (*Null)(nil)
)

// NewNull returns a silent sink that starts in the given mute state.
func NewNull(muted bool) *Null {
	return &Null{muted: muted}
}

func (n *Null) Cue(loop.Cue) {}

func (n *Null) Ambient(bool) {}

func (n *Null) ToggleMute() bool {
	n.muted = !n.muted
	return n.muted
}

func (n *Null) Muted() bool {
	return n.muted
}
