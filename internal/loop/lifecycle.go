package loop

import (
	"math"

	"github.com/tomz197/valdebt/internal/object"
	"github.com/tomz197/valdebt/internal/physics"
)

// NewState creates the title-screen state, loading the high score from scores.
func NewState(scores HighScores) State {
	highScore := 0
	if scores != nil {
		highScore = max(0, scores.Load())
	}
	return State{
		Lives:           MaxLives,
		PlayerX:         0.5,
		Status:          StatusMenu,
		Difficulty:      1,
		HighScore:       highScore,
		NextMilestone:   MilestoneStep,
		SpeedMultiplier: 1,
	}
}

// StartRun returns a fresh playing state that keeps only the high score,
// mute flag and player position of s. It resets spawner timing so a new run never inherits
// the previous run's cadence.
func StartRun(s State, spawner *object.Spawner) State {
	fresh := NewState(nil)
	fresh.HighScore = s.HighScore
	fresh.PlayerX = s.PlayerX
	fresh.Muted = s.Muted
	fresh.Status = StatusPlaying
	if spawner != nil {
		spawner.Reset()
	}
	return fresh
}

// ApplyIntent moves the player to the normalised position x, clamped to the
// safe margin. NaN keeps the previous position.
func ApplyIntent(s State, x float64) State {
	if math.IsNaN(x) {
		return s
	}
	s.PlayerX = physics.Clamp(x, PlayerMinX, PlayerMaxX)
	return s
}
