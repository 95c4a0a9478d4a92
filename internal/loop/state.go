package loop

import (
	"github.com/tomz197/valdebt/internal/object"
	"github.com/tomz197/valdebt/internal/physics"
)

// Status represents the current game phase.
type Status int

const (
	StatusMenu     Status = iota // Title screen
	StatusPlaying                // Active gameplay
	StatusGameOver               // Run ended, waiting for a restart
)

func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "menu"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// KindTally counts collisions with one kind over a run.
type KindTally struct {
	Hits   int
	Points int // Sum of applied point deltas, bull-market doubling included
}

// State is the whole game, threaded by value from frame to frame.
// Update never writes through the slices of the state it was given.
type State struct {
	Score     int
	Lives     int
	PlayerX   float64 // Normalised horizontal centre, 0..1
	Objects   []object.FallingObject
	Particles []object.Particle
	Texts     []object.FloatingText
	Status    Status

	Difficulty      int
	HighScore       int
	Combo           int
	ComboTimer      int // Frames of bull market left
	BullMarket      bool
	NextMilestone   int
	SpeedMultiplier float64

	Tally [object.NumKinds]KindTally

	ScreenShake float64
	FlashAlpha  float64
	GridOffset  float64
	Frame       int // Frames since the run started

	// Muted mirrors the audio sink so overlays can show it.
	Muted bool

	// NewHighScore is set when the run that just ended beat the stored best.
	NewHighScore bool

	// Cues holds the audio cues raised by the most recent Update.
	Cues []Cue
}

// PlayerBounds returns the player's collision box on a playfield of the given size.
func (s State) PlayerBounds(width, height float64) physics.Rect {
	return physics.CenteredRect(s.PlayerX*width, PlayerAnchorY*height, PlayerWidth, PlayerHeight)
}

// TotalGains sums the points earned from assets this run.
func (s State) TotalGains() int {
	total := 0
	for _, kind := range object.Kinds() {
		if object.Def(kind).Category == object.Asset {
			total += s.Tally[kind].Points
		}
	}
	return total
}

// TotalLosses sums the points lost to liabilities this run, as a positive number.
func (s State) TotalLosses() int {
	total := 0
	for _, kind := range object.Kinds() {
		if object.Def(kind).Category == object.Liability {
			total -= s.Tally[kind].Points
		}
	}
	return total
}

// IsNewHighScore reports whether a finished run set the stored high score.
func (s State) IsNewHighScore() bool {
	return s.Status == StatusGameOver && s.NewHighScore
}
