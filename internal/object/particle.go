package object

import (
	"math"
	"math/rand/v2"
)

// Gravity is added to every particle's vertical velocity each frame.
const Gravity = 0.1

// Particle is a short-lived visual effect. Life counts frames.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64 // Initial life band ceiling, used for fading
	Color   Tint
	Size    float64
}

// BurstSpec describes a radial particle burst. Speeds, lives and sizes are
// drawn uniformly from [Min, Max).
type BurstSpec struct {
	Count              int
	MinSpeed, MaxSpeed float64
	MinLife, MaxLife   float64
	MinSize, MaxSize   float64
	Color              Tint
}

// Burst presets triggered by collision outcomes.
var (
	ValueBurst = BurstSpec{
		Count: 12, MinSpeed: 2, MaxSpeed: 5,
		MinLife: 30, MaxLife: 50, MinSize: 3, MaxSize: 7,
		Color: TintLime,
	}
	DebtBurst = BurstSpec{
		Count: 8, MinSpeed: 1.5, MaxSpeed: 3.5,
		MinLife: 20, MaxLife: 35, MinSize: 4, MaxSize: 7,
		Color: TintPink,
	}
	CrashBurst = BurstSpec{
		Count: 24, MinSpeed: 3, MaxSpeed: 7,
		MinLife: 40, MaxLife: 70, MinSize: 4, MaxSize: 9,
		Color: TintRed,
	}
)

// ParticleBurst emits spec.Count particles at equal angular spacing around (x, y).
// The layout is fixed; speed, life and size are random within the burst's bands.
func ParticleBurst(rng *rand.Rand, x, y float64, spec BurstSpec) []Particle {
	if spec.Count <= 0 {
		return nil
	}
	particles := make([]Particle, spec.Count)
	for i := range particles {
		angle := 2 * math.Pi * float64(i) / float64(spec.Count)
		speed := between(rng, spec.MinSpeed, spec.MaxSpeed)
		particles[i] = Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    between(rng, spec.MinLife, spec.MaxLife),
			MaxLife: spec.MaxLife,
			Color:   spec.Color,
			Size:    between(rng, spec.MinSize, spec.MaxSize),
		}
	}
	return particles
}

// Stepped returns the particle advanced by one frame.
func (p Particle) Stepped() Particle {
	p.X += p.VX
	p.Y += p.VY
	p.VY += Gravity
	p.Life--
	return p
}

// Alive reports whether the particle should stay on screen.
func (p Particle) Alive() bool {
	return p.Life > 0
}

// Fraction returns remaining life in [0, 1] for fading.
func (p Particle) Fraction() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, p.Life/p.MaxLife))
}

// StepParticles advances every particle and drops the dead ones into a new slice.
func StepParticles(particles []Particle) []Particle {
	kept := make([]Particle, 0, len(particles))
	for _, p := range particles {
		p = p.Stepped()
		if p.Alive() {
			kept = append(kept, p)
		}
	}
	return kept
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
