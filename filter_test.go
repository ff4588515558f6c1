package main

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestHueDelta(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"Equal", 120, 120, 0},
		{"Simple", 130, 120, 10},
		{"Across zero", 10, 350, 20},
		{"Across zero negative", 350, 10, -20},
		{"Opposite", 0, 180, -180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hueDelta(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("hueDelta(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRemapImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 40, G: 80, B: 220, A: 200}) // bluish, in band
	src.SetNRGBA(1, 0, color.NRGBA{R: 220, G: 40, B: 40, A: 255}) // red, out of band

	out := remapImage(src, defaultAccent)

	inBand := out.NRGBAAt(0, 0)
	if inBand.A != 200 {
		t.Errorf("alpha changed: %d, want 200", inBand.A)
	}
	orig := src.NRGBAAt(0, 0)
	if inBand.R == orig.R && inBand.G == orig.G && inBand.B == orig.B {
		t.Errorf("in-band pixel was not remapped")
	}

	outBand := out.NRGBAAt(1, 0)
	if (outBand != color.NRGBA{R: 220, G: 40, B: 40, A: 255}) {
		t.Errorf("out-of-band pixel changed: %v", outBand)
	}
}

func TestRemapImageIsOneShot(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 40, G: 80, B: 220, A: 255})
	first := remapImage(src, defaultAccent)
	second := remapImage(src, defaultAccent)
	if first.NRGBAAt(0, 0) != second.NRGBAAt(0, 0) {
		t.Errorf("remap is not deterministic for identical input")
	}
}
