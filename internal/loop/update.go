package loop

import (
	"io"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/tomz197/valdebt/internal/object"
	"github.com/tomz197/valdebt/internal/physics"
)

// Sim holds the collaborators Update needs besides the state itself.
// A Sim belongs to exactly one game; nothing in it is shared.
type Sim struct {
	Spawner *object.Spawner
	Rand    *rand.Rand // Particle magnitudes
	Scores  HighScores // May be nil
	Log     *log.Logger
}

// NewSim wires a simulation around a seeded generator.
func NewSim(seed uint64, scores HighScores, logger *log.Logger) *Sim {
	rng := rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))
	return &Sim{
		Spawner: object.NewSpawner(rng),
		Rand:    rng,
		Scores:  scores,
		Log:     logger,
	}
}

// Update advances a playing state by one frame and returns the new state.
// Any other status is returned unchanged.
func (sim *Sim) Update(s State, width, height float64) State {
	if s.Status != StatusPlaying {
		return s
	}

	next := s
	next.Cues = nil
	next.Frame = s.Frame + 1
	next.Particles = slices.Clone(s.Particles)
	next.Texts = slices.Clone(s.Texts)

	// Background scroll, difficulty and speed milestones
	next.GridOffset = math.Mod(s.GridOffset+GridScrollRate*float64(s.Difficulty), GridWrap)
	next.Difficulty = max(s.Difficulty, object.DifficultyTier(s.Score))
	if next.SpeedMultiplier <= 0 {
		next.SpeedMultiplier = 1
	}
	for next.Score >= next.NextMilestone {
		next.SpeedMultiplier *= MilestoneBump
		next.NextMilestone += MilestoneStep
	}

	// Bull market countdown
	if next.ComboTimer > 0 {
		next.ComboTimer--
	}
	next.BullMarket = next.ComboTimer > 0

	objects := make([]object.FallingObject, 0, len(s.Objects)+1)
	objects = append(objects, s.Objects...)
	if sim.Spawner != nil {
		if o, ok := sim.Spawner.MaybeSpawn(s.Score, width, 1, next.SpeedMultiplier); ok {
			objects = append(objects, o)
		}
	}

	player := s.PlayerBounds(width, height)
	surviving := make([]object.FallingObject, 0, len(objects))
	for _, o := range objects {
		o = o.Advanced()
		if physics.Overlaps(player, o.Bounds()) {
			sim.collide(&next, o)
			continue
		}
		if o.OffScreen(height) {
			continue
		}
		surviving = append(surviving, o)
	}
	next.Objects = surviving

	next.Score = max(0, next.Score)
	next.Lives = min(max(0, next.Lives), MaxLives)

	next.ScreenShake = physics.Approach(next.ScreenShake, ShakeDecay)
	next.FlashAlpha = physics.Approach(next.FlashAlpha, FlashDecay)

	next.Particles = object.StepParticles(next.Particles)
	next.Texts = object.StepTexts(next.Texts)

	if next.Lives == 0 {
		next.Status = StatusGameOver
		next.Cues = append(next.Cues, CueGameOver)
		if next.Score > next.HighScore {
			next.HighScore = next.Score
			next.NewHighScore = true
			sim.saveHighScore(next.Score)
		}
	}

	return next
}

// collide applies the outcome of the player touching o.
func (sim *Sim) collide(next *State, o object.FallingObject) {
	cx, cy := o.Center()
	tally := &next.Tally[o.Kind]
	tally.Hits++

	switch {
	case o.Category == object.Asset:
		points := o.Points
		if next.BullMarket {
			points *= BullMarketMultiple
		}
		next.Score += points
		tally.Points += points
		next.Combo++
		if next.Combo >= ComboThreshold && !next.BullMarket {
			next.BullMarket = true
			next.ComboTimer = BullMarketFrames
			next.Cues = append(next.Cues, CueBullMarket)
			next.Texts = append(next.Texts, object.NewFloatingLabel(cx, cy-PlayerHeight/2, "bullMarket", object.TintGold))
		}
		next.Particles = append(next.Particles, object.ParticleBurst(sim.rng(), cx, cy, object.ValueBurst)...)
		next.Texts = append(next.Texts, object.NewFloatingText(cx, cy, object.PointsText(points), object.TintLime))
		next.FlashAlpha = AssetFlash
		next.Cues = append(next.Cues, CueAsset)

	case o.IsTerminal():
		next.Lives = 0
		next.Score += o.Points
		tally.Points += o.Points
		resetCombo(next)
		next.Particles = append(next.Particles, object.ParticleBurst(sim.rng(), cx, cy, object.CrashBurst)...)
		next.Texts = append(next.Texts, object.NewFloatingLabel(cx, cy, "marketCrash", object.TintRed))
		next.ScreenShake = CrashShake
		next.FlashAlpha = CrashFlash
		next.Cues = append(next.Cues, CueCrash)

	default:
		next.Lives--
		next.Score += o.Points
		tally.Points += o.Points
		resetCombo(next)
		next.Particles = append(next.Particles, object.ParticleBurst(sim.rng(), cx, cy, object.DebtBurst)...)
		next.Texts = append(next.Texts, object.NewFloatingText(cx, cy, object.PointsText(o.Points), object.TintPink))
		next.ScreenShake = LiabilityShake
		next.Cues = append(next.Cues, CueLiability)
	}
}

func resetCombo(s *State) {
	s.Combo = 0
	s.ComboTimer = 0
	s.BullMarket = false
}

// saveHighScore persists best-effort; a failing store never stops the game.
func (sim *Sim) saveHighScore(score int) {
	if sim.Scores == nil {
		return
	}
	if err := sim.Scores.Save(score); err != nil {
		sim.logger().Warn("failed to save high score", "score", score, "err", err)
	}
}

func (sim *Sim) rng() *rand.Rand {
	if sim.Rand == nil {
		sim.Rand = rand.New(rand.NewPCG(1, 2))
	}
	return sim.Rand
}

func (sim *Sim) logger() *log.Logger {
	if sim.Log == nil {
		sim.Log = log.New(io.Discard)
	}
	return sim.Log
}
