package object

import "strconv"

// Floating text timing.
const (
	TextLife  = 60
	TextDrift = 1.0
)

// FloatingText is a short message drifting up from a collision point.
// Exactly one of Text and Label is set: Text is shown verbatim (numbers),
// Label is a key the renderer resolves to a localised string.
type FloatingText struct {
	X, Y    float64
	Text    string
	Label   string
	Color   Tint
	Life    float64
	MaxLife float64
}

// NewFloatingText creates a verbatim text centred on (x, y).
func NewFloatingText(x, y float64, text string, color Tint) FloatingText {
	return FloatingText{X: x, Y: y, Text: text, Color: color, Life: TextLife, MaxLife: TextLife}
}

// NewFloatingLabel creates a text whose content is the label key.
func NewFloatingLabel(x, y float64, key string, color Tint) FloatingText {
	return FloatingText{X: x, Y: y, Label: key, Color: color, Life: TextLife, MaxLife: TextLife}
}

// PointsText formats a point delta with an explicit sign.
func PointsText(delta int) string {
	if delta > 0 {
		return "+" + strconv.Itoa(delta)
	}
	return strconv.Itoa(delta)
}

// Stepped returns the text drifted up by one frame.
func (t FloatingText) Stepped() FloatingText {
	t.Y -= TextDrift
	t.Life--
	return t
}

// Alive reports whether the text should stay on screen.
func (t FloatingText) Alive() bool {
	return t.Life > 0
}

// Fraction returns remaining life in [0, 1].
func (t FloatingText) Fraction() float64 {
	if t.MaxLife <= 0 {
		return 0
	}
	f := t.Life / t.MaxLife
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// StepTexts advances every text and drops expired ones into a new slice.
func StepTexts(texts []FloatingText) []FloatingText {
	kept := make([]FloatingText, 0, len(texts))
	for _, t := range texts {
		t = t.Stepped()
		if t.Alive() {
			kept = append(kept, t)
		}
	}
	return kept
}
