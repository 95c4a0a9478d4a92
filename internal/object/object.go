// Package object defines the entities that live on the playfield: the static
// entity catalog, falling objects, particles, floating texts and the spawner.
package object

// Category splits kinds into things worth catching and things worth dodging.
type Category int

const (
	Asset Category = iota
	Liability
)

func (c Category) String() string {
	switch c {
	case Asset:
		return "asset"
	case Liability:
		return "liability"
	default:
		return "unknown"
	}
}

// Flags carries per-kind behaviour bits.
type Flags uint8

const (
	// FlagFlashing makes the renderer blink the object.
	FlagFlashing Flags = 1 << iota
	// FlagTerminal ends the run on contact regardless of remaining lives.
	FlagTerminal
)

// Has reports whether all bits of f2 are set.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// Visual selects the procedural shape used to draw a kind.
// The renderer owns the mapping from Visual to drawing code.
type Visual int

const (
	VisualStocks Visual = iota
	VisualSchool
	VisualHouse
	VisualPlaza
	VisualWrench
	VisualPercent
	VisualCrash
)

// Tint is an abstract colour tag; the renderer maps it to a palette colour.
type Tint int

const (
	TintLime Tint = iota
	TintPink
	TintRed
	TintGold
	TintCyan
	TintWhite
)
