package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// buildAuraTexture precomputes the radial glow sprite once so the per-frame
// cost is a single scaled draw. The falloff is quadratic toward the rim.
func buildAuraTexture(accent rgb) *ebiten.Image {
	size := auraTextureSize
	half := float64(size) / 2
	pix := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - half
			dy := float64(y) + 0.5 - half
			d := math.Hypot(dx, dy) / half
			fall := clampf(1-d, 0, 1)
			a := fall * fall
			base := (y*size + x) * 4
			pix[base] = uint8(float64(accent.r) * a)
			pix[base+1] = uint8(float64(accent.g) * a)
			pix[base+2] = uint8(float64(accent.b) * a)
			pix[base+3] = uint8(255 * a)
		}
	}
	img := ebiten.NewImage(size, size)
	img.WritePixels(pix)
	return img
}

// auraFor returns the cached aura sprite, building it on first use. Kept
// lazy so tests can exercise the field without a graphics context.
func (g *Game) auraFor() *ebiten.Image {
	if g.aura == nil {
		g.aura = buildAuraTexture(g.pal.accent)
	}
	return g.aura
}
