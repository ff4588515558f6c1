package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// bgColor is the page backdrop behind everything else.
var bgColor = color.RGBA{R: 7, G: 11, B: 26, A: 255}

// scaled returns the color premultiplied by the given opacity.
func (c rgb) scaled(alpha float64) color.RGBA {
	a := clampf(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.r) * a),
		G: uint8(float64(c.g) * a),
		B: uint8(float64(c.b) * a),
		A: uint8(255 * a),
	}
}

// Draw renders the backdrop, the particle field, and optional overlays.
// When a screenshot is armed the scene renders into an offscreen image
// first, since the final screen cannot be read back.
func (g *Game) Draw(screen *ebiten.Image) {
	target := screen
	var shot *ebiten.Image
	if g.shotPending {
		shot = ebiten.NewImage(screen.Bounds().Dx(), screen.Bounds().Dy())
		target = shot
	}

	g.renderScene(target)

	if shot != nil {
		screen.DrawImage(shot, nil)
		g.captureShot(shot)
		shot.Deallocate()
	}

	if *debugFlag {
		mode := ""
		stars, comets := 0, 0
		if g.field != nil {
			mode = g.field.mode
			stars = len(g.field.stars)
			comets = len(g.field.comets)
		}
		msg := fmt.Sprintf("FPS: %.1f\nMode: %s\nStars: %d  Comets: %d\nAdvance: %.2f ms",
			ebiten.ActualFPS(), mode, stars, comets,
			g.lastAdvance.Seconds()*1000)
		ebitenutil.DebugPrint(screen, msg)
	}
}

// renderScene paints one frame of the scene into dst.
func (g *Game) renderScene(dst *ebiten.Image) {
	dst.Fill(bgColor)
	g.drawBackdrop(dst)
	if !g.limitMotion && g.field != nil && len(g.field.stars) > 0 {
		g.field.draw(dst, g.lastTS, g.pal, g.auraFor())
	}
}

// drawBackdrop paints the remapped backdrop image, scaled to cover and
// dimmed so the particles stay legible.
func (g *Game) drawBackdrop(screen *ebiten.Image) {
	if g.backdrop == nil {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	bw, bh := g.backdrop.Bounds().Dx(), g.backdrop.Bounds().Dy()
	if bw == 0 || bh == 0 {
		return
	}
	scale := math.Max(float64(sw)/float64(bw), float64(sh)/float64(bh))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((float64(sw)-float64(bw)*scale)/2, (float64(sh)-float64(bh)*scale)/2)
	op.ColorScale.Scale(remapDimScale, remapDimScale, remapDimScale, 1)
	screen.DrawImage(g.backdrop, op)
}

// draw renders every star, the link pass, the comets, and the aura for
// timestamp t.
func (f *starField) draw(screen *ebiten.Image, t float64, pal palette, aura *ebiten.Image) {
	for i := range f.stars {
		s := &f.stars[i]
		clr := pal.starColor(s.tone).scaled(s.alpha(t, f.mode))
		vector.DrawFilledCircle(screen, float32(s.x), float32(s.y), float32(s.radius), clr, true)
	}

	if f.mode == modeShowcase {
		f.drawLinks(screen, pal)
	}

	for i := range f.comets {
		c := &f.comets[i]
		if c.spawned {
			continue
		}
		drawComet(screen, c, pal)
	}

	if f.mode == modeShowcase && aura != nil {
		drawAura(screen, aura, t, f.width, f.height)
	}
}

// drawLinks connects nearby stars among the first linkStarCap by index. The
// index cap keeps the pair pass bounded regardless of population size.
func (f *starField) drawLinks(screen *ebiten.Image, pal palette) {
	n := len(f.stars)
	if n > linkStarCap {
		n = linkStarCap
	}
	const maxDistSq = linkDistance * linkDistance
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := f.stars[i].x - f.stars[j].x
			dy := f.stars[i].y - f.stars[j].y
			distSq := dx*dx + dy*dy
			if distSq > maxDistSq {
				continue
			}
			alpha := (1 - math.Sqrt(distSq)/linkDistance) * linkAlphaBase
			vector.StrokeLine(screen,
				float32(f.stars[i].x), float32(f.stars[i].y),
				float32(f.stars[j].x), float32(f.stars[j].y),
				linkWidth, pal.accent.scaled(alpha), true)
		}
	}
}

// drawComet strokes the trail from the head back along the velocity vector,
// fading to transparent, then draws the bright core.
func drawComet(screen *ebiten.Image, c *comet, pal palette) {
	speed := math.Hypot(c.vx, c.vy)
	if speed == 0 {
		return
	}
	ux, uy := c.vx/speed, c.vy/speed
	segLen := c.trail / cometTrailSegments
	for seg := 0; seg < cometTrailSegments; seg++ {
		t0 := float64(seg) * segLen
		t1 := t0 + segLen
		fade := 1 - float64(seg)/cometTrailSegments
		clr := pal.accent.scaled(c.alpha * fade)
		vector.StrokeLine(screen,
			float32(c.x-ux*t0), float32(c.y-uy*t0),
			float32(c.x-ux*t1), float32(c.y-uy*t1),
			float32(c.radius), clr, true)
	}
	core := rgb{255, 255, 255}.scaled(clampf(c.alpha+0.25, 0, 1))
	vector.DrawFilledCircle(screen, float32(c.x), float32(c.y), float32(c.radius), core, true)
}

// drawAura composites the pulsing radial glow additively at its fixed
// relative anchor point.
func drawAura(screen *ebiten.Image, aura *ebiten.Image, t, width, height float64) {
	pulse := auraAlphaBase + (math.Sin(t*auraPulseFreq)+1)*auraAlphaSwing
	radius := math.Max(width, height) * auraRadiusFrac
	size := float64(aura.Bounds().Dx())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2*radius/size, 2*radius/size)
	op.GeoM.Translate(width*auraCenterXFrac-radius, height*auraCenterYFrac-radius)
	op.ColorScale.ScaleAlpha(float32(pulse))
	op.Blend = ebiten.BlendLighter
	screen.DrawImage(aura, op)
}
