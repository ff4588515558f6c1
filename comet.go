package main

// comet is a fast streak entering from the top or a side edge, always moving
// down and through the visible area.
type comet struct {
	x, y    float64
	vx, vy  float64
	radius  float64
	alpha   float64
	trail   float64
	spawned bool // set on replacement; the frame that replaced it skips drawing
}

// spawnComet creates a comet just outside the viewport. Top-edge spawns are
// favored 0.7/0.3; side spawns pick left or right evenly and enter within the
// upper portion of the viewport.
func spawnComet(rng randSource, width, height float64) comet {
	c := comet{
		radius: rangeFrom(rng.Float64(), cometRadiusMin, cometRadiusMax),
		alpha:  rangeFrom(rng.Float64(), cometAlphaMin, cometAlphaMax),
		trail:  rangeFrom(rng.Float64(), cometTrailMin, cometTrailMax),
	}
	if rng.Float64() < cometTopChance {
		c.x = rng.Float64() * width
		c.y = cometTopYBase - rng.Float64()*cometTopYSpread
		c.vx = (rng.Float64() - 0.5) * cometTopDriftX
		c.vy = rangeFrom(rng.Float64(), cometTopVYMin, cometTopVYMax)
		return c
	}
	c.y = rng.Float64() * height * cometSideYBand
	c.vy = rangeFrom(rng.Float64(), cometSideVYMin, cometSideVYMax)
	if rng.Float64() < 0.5 {
		c.x = -cometSideMargin
		c.vx = rangeFrom(rng.Float64(), cometSideVXMin, cometSideVXMax)
	} else {
		c.x = width + cometSideMargin
		c.vx = -rangeFrom(rng.Float64(), cometSideVXMin, cometSideVXMax)
	}
	return c
}

// advance moves the comet one tick.
func (c *comet) advance() {
	c.x += c.vx
	c.y += c.vy
}

// exited reports whether the comet has left the viewport past the
// replacement margins.
func (c *comet) exited(width, height float64) bool {
	return c.y > height+cometExitMarginY ||
		c.x < -cometExitMarginX ||
		c.x > width+cometExitMarginX
}
