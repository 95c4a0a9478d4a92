package object

import "github.com/tomz197/valdebt/internal/physics"

// Rotation rates in radians per frame. Liabilities spin faster.
const (
	assetSpin     = 0.02
	liabilitySpin = 0.05
)

// FallingObject is a catalog entity in flight.
type FallingObject struct {
	X, Y     float64 // Top-left corner
	Size     float64
	Category Category
	Kind     Kind
	Points   int
	Speed    float64 // Base speed times the speed multiplier at spawn time
	Rotation float64
	Flags    Flags
}

// NewFallingObject places an instance of def with its top-left at (x, y).
func NewFallingObject(def EntityDef, x, y, speedMultiplier float64) FallingObject {
	return FallingObject{
		X:        x,
		Y:        y,
		Size:     def.Size,
		Category: def.Category,
		Kind:     def.Kind,
		Points:   def.Points,
		Speed:    def.Speed * speedMultiplier,
		Flags:    def.Flags,
	}
}

// Advanced returns the object moved one frame down and rotated.
func (o FallingObject) Advanced() FallingObject {
	o.Y += o.Speed
	if o.Category == Liability {
		o.Rotation += liabilitySpin
	} else {
		o.Rotation += assetSpin
	}
	return o
}

// Bounds returns the collision box.
func (o FallingObject) Bounds() physics.Rect {
	return physics.Rect{X: o.X, Y: o.Y, W: o.Size, H: o.Size}
}

// Center returns the object's centre point.
func (o FallingObject) Center() (float64, float64) {
	return o.X + o.Size/2, o.Y + o.Size/2
}

// OffScreen reports whether the object has fully left a playfield of the given height.
func (o FallingObject) OffScreen(height float64) bool {
	return o.Y > height+o.Size
}

// IsTerminal reports whether the object ends the run on contact.
func (o FallingObject) IsTerminal() bool {
	return o.Flags.Has(FlagTerminal)
}
