package client

import "github.com/tomz197/valdebt/internal/loop"

// screenState tracks what was on the terminal last frame so transitions can
// trigger a full repaint.
type screenState struct {
	status        loop.Status
	inactive      bool
	shuttingDown  bool
	shutdownTimer float64 // Seconds left before auto-disconnect
}

// changed reports whether next differs from s in anything that needs a repaint.
func (s screenState) changed(next screenState) bool {
	return s.status != next.status || s.inactive != next.inactive || s.shuttingDown != next.shuttingDown
}
