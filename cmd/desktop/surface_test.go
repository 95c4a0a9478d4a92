package main

import (
	"image/color"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestNRGBA(t *testing.T) {
	tests := []struct {
		c     colorful.Color
		alpha float64
		want  color.NRGBA
	}{
		{colorful.Color{R: 1, G: 0, B: 0}, 1, color.NRGBA{R: 255, A: 255}},
		{colorful.Color{R: 0, G: 0, B: 1}, 0.5, color.NRGBA{B: 255, A: 128}},
		{colorful.Color{R: 2, G: -1, B: 0}, 3, color.NRGBA{R: 255, A: 255}},
		{colorful.Color{}, -1, color.NRGBA{}},
	}
	for _, tt := range tests {
		if got := nrgba(tt.c, tt.alpha); got != tt.want {
			t.Errorf("nrgba(%v, %v) = %v, want %v", tt.c, tt.alpha, got, tt.want)
		}
	}
}

func TestSurfaceBounds(t *testing.T) {
	var s surface
	w, h := s.Bounds()
	if w != 960 || h != 540 {
		t.Errorf("Bounds = %v x %v, want 960 x 540", w, h)
	}
}
