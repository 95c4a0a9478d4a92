package object

import (
	"math"
	"math/rand/v2"
)

// TierStep is the score span of one difficulty tier.
const TierStep = 500

// DifficultyTier maps a score to its difficulty tier, starting at 1.
func DifficultyTier(score int) int {
	if score < 0 {
		score = 0
	}
	return 1 + score/TierStep
}

// SpawnerConfig holds spawn cadence and debt-bias tuning.
type SpawnerConfig struct {
	BaseInterval int     // Frames between spawns at tier 0
	MinInterval  int     // Lower bound before jitter
	PerTier      int     // Frames removed from the interval per tier
	Jitter       int     // Random extra frames in [0, Jitter)
	MaxBias      float64 // Cap on the debt bias fraction
	BiasScale    float64 // Score at which the bias would reach 1
	FloorWeight  float64 // Minimum weight of any kind
}

// DefaultSpawnerConfig is the tuning used by the game.
var DefaultSpawnerConfig = SpawnerConfig{
	BaseInterval: 60,
	MinInterval:  20,
	PerTier:      5,
	Jitter:       15,
	MaxBias:      0.5,
	BiasScale:    10000,
	FloorWeight:  1,
}

// Spawner decides when the next falling object appears and which kind it is.
// Each game owns its own Spawner; it holds no shared state.
type Spawner struct {
	cfg        SpawnerConfig
	rng        *rand.Rand
	sinceSpawn int
	target     int
}

// NewSpawner creates a spawner with the default tuning drawing from rng.
func NewSpawner(rng *rand.Rand) *Spawner {
	return NewSpawnerWithConfig(rng, DefaultSpawnerConfig)
}

// NewSpawnerWithConfig creates a spawner with custom tuning.
func NewSpawnerWithConfig(rng *rand.Rand, cfg SpawnerConfig) *Spawner {
	s := &Spawner{cfg: cfg, rng: rng}
	s.Reset()
	return s
}

// Reset clears timing state for a fresh run.
func (s *Spawner) Reset() {
	s.sinceSpawn = 0
	s.target = s.rollInterval(0)
}

// Target returns the number of frames the current interval waits for.
func (s *Spawner) Target() int {
	return s.target
}

// MaybeSpawn advances the spawn timer by frames and, when the interval has
// elapsed, returns a new object positioned above a playfield of the given width.
func (s *Spawner) MaybeSpawn(score int, width float64, frames int, speedMultiplier float64) (FallingObject, bool) {
	if frames > 0 {
		s.sinceSpawn += frames
	}
	if s.sinceSpawn < s.target {
		return FallingObject{}, false
	}

	s.sinceSpawn = 0
	s.target = s.rollInterval(score)

	def := Def(s.pickKind(score))
	half := def.Size / 2
	cx := width / 2
	if width > def.Size {
		cx = half + s.rng.Float64()*(width-def.Size)
	}
	return NewFallingObject(def, cx-half, -def.Size, speedMultiplier), true
}

// Weights returns the bias-adjusted spawn weight of every kind at score.
func (s *Spawner) Weights(score int) [NumKinds]float64 {
	bias := 0.0
	if s.cfg.BiasScale > 0 && score > 0 {
		bias = math.Min(s.cfg.MaxBias, float64(score)/s.cfg.BiasScale)
	}

	var weights [NumKinds]float64
	for i := range weights {
		def := catalog[i]
		w := def.Weight
		if def.Category == Liability {
			w *= 1 + bias
		} else {
			w *= 1 - bias
		}
		weights[i] = math.Max(s.cfg.FloorWeight, w)
	}
	return weights
}

func (s *Spawner) pickKind(score int) Kind {
	weights := s.Weights(score)
	total := 0.0
	for _, w := range weights {
		total += w
	}

	roll := s.rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return Kind(i)
		}
	}
	return Kind(NumKinds - 1)
}

func (s *Spawner) rollInterval(score int) int {
	interval := max(s.cfg.MinInterval, s.cfg.BaseInterval-s.cfg.PerTier*DifficultyTier(score))
	if s.cfg.Jitter > 0 {
		interval += s.rng.IntN(s.cfg.Jitter)
	}
	return interval
}
