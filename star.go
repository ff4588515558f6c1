package main

import "math"

// star is one background point of light. Velocities are logical pixels per
// tick; vy is always negative so the field drifts upward.
type star struct {
	x, y      float64
	vx, vy    float64
	sway      float64
	radius    float64
	baseAlpha float64
	phase     float64
	tone      float64
}

// newStar constructs a randomized star within the mode's size and brightness
// bands.
func newStar(rng randSource, width, height float64, mode string) star {
	s := star{
		x:     rng.Float64() * width,
		y:     rng.Float64() * height,
		sway:  rangeFrom(rng.Float64(), starSwayMin, starSwayMax),
		phase: rng.Float64() * 2 * math.Pi,
		tone:  rng.Float64(),
	}
	if mode == modeQuiet {
		s.vx = (rng.Float64() - 0.5) * 2 * quietStarDriftX
		s.vy = -rangeFrom(rng.Float64(), quietStarSpeedMin, quietStarSpeedMax)
		s.radius = rangeFrom(rng.Float64(), quietStarRadiusMin, quietStarRadiusMax)
		s.baseAlpha = rangeFrom(rng.Float64(), quietBaseAlphaMin, quietBaseAlphaMax)
	} else {
		s.vx = (rng.Float64() - 0.5) * 2 * showcaseStarDriftX
		s.vy = -rangeFrom(rng.Float64(), showcaseStarSpeedMin, showcaseStarSpeedMax)
		s.radius = rangeFrom(rng.Float64(), showcaseStarRadiusMin, showcaseStarRadiusMax)
		s.baseAlpha = rangeFrom(rng.Float64(), showcaseBaseAlphaMin, showcaseBaseAlphaMax)
	}
	return s
}

// advance moves the star one tick and wraps it at the viewport margins. A
// star leaving the top re-enters from below at a fresh horizontal position;
// horizontal exits wrap to the opposite edge.
func (s *star) advance(t float64, rng randSource, width, height float64, swayScale float64) {
	s.x += s.vx + math.Sin(t*s.sway*0.1+s.phase)*swayScale
	s.y += s.vy
	if s.y < -wrapMargin {
		s.y = height + wrapMargin
		s.x = rng.Float64() * width
	}
	if s.x < -wrapMargin {
		s.x = width + wrapMargin
	} else if s.x > width+wrapMargin {
		s.x = -wrapMargin
	}
}

// alpha returns the star's twinkled opacity at timestamp t, clamped to the
// mode's band.
func (s *star) alpha(t float64, mode string) float64 {
	if mode == modeQuiet {
		return clampf(s.baseAlpha+math.Sin(t*quietTwinkleFreq+s.phase)*quietTwinkleAmp,
			quietAlphaFloor, quietAlphaCeil)
	}
	return clampf(s.baseAlpha+math.Sin(t*showcaseTwinkleFreq+s.phase)*showcaseTwinkleAmp,
		showcaseAlphaFloor, showcaseAlphaCeil)
}
