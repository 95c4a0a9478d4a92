package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/valdebt/internal/draw"
	"github.com/tomz197/valdebt/internal/object"
)

// Palette colours.
var (
	Sky      = draw.Hex("#D0F0FD")
	Grid     = draw.Hex("#00C2FF")
	DeepByte = draw.Hex("#0A0047")
	Lime     = draw.Hex("#39FF14")
	Pink     = draw.Hex("#FF00FF")
	Red      = draw.Hex("#FF2E2E")
	Gold     = draw.Hex("#FFD700")
	White    = draw.Hex("#FFFFFF")
)

var tints = [...]colorful.Color{
	object.TintLime:  Lime,
	object.TintPink:  Pink,
	object.TintRed:   Red,
	object.TintGold:  Gold,
	object.TintCyan:  Grid,
	object.TintWhite: White,
}

// TintColor maps an abstract tint to its palette colour.
func TintColor(t object.Tint) colorful.Color {
	if int(t) < 0 || int(t) >= len(tints) {
		return White
	}
	return tints[t]
}

// fade blends c toward the sky as frac goes from 1 to 0.
func fade(c colorful.Color, frac float64) colorful.Color {
	return Sky.BlendRgb(c, frac)
}
