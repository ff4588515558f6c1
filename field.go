package main

import "math"

// Motion modes. Quiet keeps a sparse, slow field with no comets; showcase
// enables the full population, links, comets, and the ambient aura.
const (
	modeQuiet    = "quiet"
	modeShowcase = "showcase"
)

// randSource supplies unit random values. Production uses a seeded
// math/rand.Rand; tests substitute a scripted source.
type randSource interface {
	Float64() float64
}

// starField owns the particle populations and their per-frame evolution. All
// mutation happens on the game loop, so no locking is needed.
type starField struct {
	mode        string
	width       float64
	height      float64
	deviceScale float64
	deviceW     int
	deviceH     int

	stars  []star
	comets []comet
	rng    randSource

	cometRespawns int // respawns since last drain, drives the audio envelope
}

// newStarField constructs an empty field; resize populates it.
func newStarField(rng randSource) *starField {
	return &starField{rng: rng, deviceScale: 1}
}

// starCountFor derives the star population from the logical viewport width.
// Monotonically non-decreasing in width within each mode's clamp range.
func starCountFor(width float64, mode string) int {
	if mode == modeQuiet {
		return clampInt(int(math.Floor(width/quietStarDivisor)), quietStarMin, quietStarMax)
	}
	return clampInt(int(math.Floor(width/showcaseStarDivisor)), showcaseStarMin, showcaseStarMax)
}

// cometCountFor derives the comet population; always zero in quiet mode.
func cometCountFor(width float64, mode string) int {
	if mode != modeShowcase {
		return 0
	}
	switch {
	case width > cometWidthThree:
		return 3
	case width > cometWidthTwo:
		return 2
	default:
		return 1
	}
}

// resize recomputes the device-scaled surface dimensions and rebuilds the
// full population for the given mode. Safe to call repeatedly; every call
// produces a complete, freshly constructed particle set.
func (f *starField) resize(width, height, deviceScale float64, mode string) {
	if deviceScale <= 0 {
		deviceScale = 1
	}
	f.mode = mode
	f.width = width
	f.height = height
	f.deviceScale = deviceScale
	f.deviceW = int(math.Floor(width * deviceScale))
	f.deviceH = int(math.Floor(height * deviceScale))

	starCount := starCountFor(width, mode)
	f.stars = make([]star, starCount)
	for i := range f.stars {
		f.stars[i] = newStar(f.rng, width, height, mode)
	}

	cometCount := cometCountFor(width, mode)
	f.comets = make([]comet, cometCount)
	for i := range f.comets {
		f.comets[i] = spawnComet(f.rng, width, height)
	}
}

// advance evolves every particle by one tick at timestamp t (milliseconds).
// Comets that exited past their margins are replaced in place with fresh
// spawns and marked so the draw pass skips them for this frame.
func (f *starField) advance(t float64) {
	swayScale := showcaseSwayScale
	if f.mode == modeQuiet {
		swayScale = quietSwayScale
	}
	for i := range f.stars {
		f.stars[i].advance(t, f.rng, f.width, f.height, swayScale)
	}
	for i := range f.comets {
		c := &f.comets[i]
		c.spawned = false
		c.advance()
		if c.exited(f.width, f.height) {
			*c = spawnComet(f.rng, f.width, f.height)
			c.spawned = true
			f.cometRespawns++
		}
	}
}

// drainRespawns returns and clears the respawn count accumulated since the
// previous call.
func (f *starField) drainRespawns() int {
	n := f.cometRespawns
	f.cometRespawns = 0
	return n
}
