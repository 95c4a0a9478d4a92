package loop

// Cue is a discrete audio notification raised by the simulation.
type Cue int

const (
	CueAsset      Cue = iota // Asset caught
	CueLiability             // Ordinary liability hit
	CueCrash                 // Terminal liability hit
	CueBullMarket            // Combo threshold reached
	CueGameOver              // Run ended
)

func (c Cue) String() string {
	switch c {
	case CueAsset:
		return "asset"
	case CueLiability:
		return "liability"
	case CueCrash:
		return "crash"
	case CueBullMarket:
		return "bull-market"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// CueSink receives audio notifications. It owns all audio state.
type CueSink interface {
	Cue(c Cue)
	// Ambient switches the background hum, on while a run is playing.
	Ambient(on bool)
}

// Muter is implemented by sinks that support a mute toggle.
type Muter interface {
	ToggleMute() (muted bool)
	Muted() bool
}

// HighScores is the persistence collaborator for one player's best score.
type HighScores interface {
	// Load returns the stored score, 0 when absent or unreadable.
	Load() int
	Save(score int) error
}
