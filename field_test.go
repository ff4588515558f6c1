package main

import (
	"math/rand"
	"testing"
)

// seqSource replays a scripted sequence of unit values, cycling when
// exhausted.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestStarCountScenarios(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		mode  string
		stars int
	}{
		{"Showcase 1200", 1200, modeShowcase, 100},
		{"Quiet 500", 500, modeQuiet, 24},
		{"Showcase floor", 100, modeShowcase, 76},
		{"Showcase ceiling", 4000, modeShowcase, 170},
		{"Quiet ceiling", 4000, modeQuiet, 46},
		{"Quiet mid", 1890, modeQuiet, 35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := starCountFor(tt.width, tt.mode); got != tt.stars {
				t.Errorf("starCountFor(%v, %s) = %d, want %d", tt.width, tt.mode, got, tt.stars)
			}
		})
	}
}

func TestCometCount(t *testing.T) {
	tests := []struct {
		name   string
		width  float64
		mode   string
		comets int
	}{
		{"Showcase wide", 1200, modeShowcase, 3},
		{"Showcase medium", 900, modeShowcase, 2},
		{"Showcase narrow", 500, modeShowcase, 1},
		{"Quiet wide", 1200, modeQuiet, 0},
		{"Quiet narrow", 500, modeQuiet, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cometCountFor(tt.width, tt.mode); got != tt.comets {
				t.Errorf("cometCountFor(%v, %s) = %d, want %d", tt.width, tt.mode, got, tt.comets)
			}
		})
	}
}

func TestStarCountMonotonic(t *testing.T) {
	for _, mode := range []string{modeQuiet, modeShowcase} {
		prev := 0
		for width := 100.0; width <= 4000; width += 10 {
			n := starCountFor(width, mode)
			if n < prev {
				t.Fatalf("star count decreased in %s mode at width %v: %d -> %d", mode, width, prev, n)
			}
			prev = n
		}
	}
}

func TestResizeIdempotentSize(t *testing.T) {
	f := newStarField(rand.New(rand.NewSource(7)))
	f.resize(1200, 800, 1, modeShowcase)
	stars, comets := len(f.stars), len(f.comets)
	f.resize(1200, 800, 1, modeShowcase)
	if len(f.stars) != stars || len(f.comets) != comets {
		t.Errorf("repeated resize changed population: %d/%d -> %d/%d",
			stars, comets, len(f.stars), len(f.comets))
	}
}

func TestResizeQuietHasNoComets(t *testing.T) {
	f := newStarField(rand.New(rand.NewSource(3)))
	for _, width := range []float64{320, 500, 900, 1400, 3000} {
		f.resize(width, 700, 1, modeQuiet)
		if len(f.comets) != 0 {
			t.Errorf("quiet mode at width %v has %d comets, want 0", width, len(f.comets))
		}
	}
}

func TestResizeDeviceDimensions(t *testing.T) {
	f := newStarField(rand.New(rand.NewSource(1)))
	f.resize(1000, 600, 1.5, modeShowcase)
	if f.deviceW != 1500 || f.deviceH != 900 {
		t.Errorf("device dims = %dx%d, want 1500x900", f.deviceW, f.deviceH)
	}
	f.resize(1001, 601, 1.5, modeShowcase)
	if f.deviceW != 1501 || f.deviceH != 901 {
		t.Errorf("device dims = %dx%d, want 1501x901 (floor)", f.deviceW, f.deviceH)
	}
}

func TestStarWrapInvariant(t *testing.T) {
	const width, height = 900.0, 600.0
	f := newStarField(rand.New(rand.NewSource(42)))
	f.resize(width, height, 1, modeShowcase)
	for step := 0; step < 5000; step++ {
		f.advance(float64(step) * 16.7)
	}
	for i, s := range f.stars {
		if s.x < -wrapMargin || s.x > width+wrapMargin {
			t.Errorf("star %d x = %v outside [-8, width+8]", i, s.x)
		}
		if s.y < -wrapMargin || s.y > height+wrapMargin {
			t.Errorf("star %d y = %v outside [-8, height+8]", i, s.y)
		}
	}
}

func TestStarAtWrapBoundaryMovesAway(t *testing.T) {
	const width, height = 800.0, 600.0
	s := star{x: 400, y: height + wrapMargin, vy: -0.3, vx: 0}
	rng := &seqSource{vals: []float64{0.5}}
	s.advance(0, rng, width, height, showcaseSwayScale)
	if s.y >= height+wrapMargin {
		t.Errorf("star at lower wrap boundary did not move up: y = %v", s.y)
	}
	if s.y < 0 {
		t.Errorf("star jumped unexpectedly: y = %v", s.y)
	}
}

func TestStarVelocityAlwaysUpward(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, mode := range []string{modeQuiet, modeShowcase} {
		for i := 0; i < 200; i++ {
			s := newStar(rng, 1000, 700, mode)
			if s.vy >= 0 {
				t.Fatalf("%s star %d has vy = %v, want negative", mode, i, s.vy)
			}
		}
	}
}

func TestStarAlphaStaysInBand(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	for i := 0; i < 100; i++ {
		s := newStar(rng, 1000, 700, modeShowcase)
		for ts := 0.0; ts < 60000; ts += 137 {
			a := s.alpha(ts, modeShowcase)
			if a < showcaseAlphaFloor || a > showcaseAlphaCeil {
				t.Fatalf("showcase alpha %v outside band at t=%v", a, ts)
			}
		}
	}
}

func TestAdvanceReplacesExitedComets(t *testing.T) {
	const width, height = 1200.0, 800.0
	f := newStarField(rand.New(rand.NewSource(23)))
	f.resize(width, height, 1, modeShowcase)

	f.comets[0].y = height + cometExitMarginY + 1
	f.comets[1].x = -cometExitMarginX - 1
	f.comets[2].x = width + cometExitMarginX + 1
	f.advance(0)

	for i := 0; i < 3; i++ {
		c := f.comets[i]
		if !c.spawned {
			t.Errorf("comet %d was not replaced", i)
			continue
		}
		if c.exited(width, height) {
			t.Errorf("replacement comet %d spawned already out of bounds: (%v, %v)", i, c.x, c.y)
		}
		if c.vy <= 0 {
			t.Errorf("replacement comet %d has vy = %v, want downward", i, c.vy)
		}
	}
	if got := f.drainRespawns(); got != 3 {
		t.Errorf("drainRespawns = %d, want 3", got)
	}
	if got := f.drainRespawns(); got != 0 {
		t.Errorf("second drainRespawns = %d, want 0", got)
	}
}

func TestModeChangeRepopulates(t *testing.T) {
	f := newStarField(rand.New(rand.NewSource(31)))
	f.resize(1200, 800, 1, modeShowcase)
	if len(f.comets) == 0 {
		t.Fatal("showcase field has no comets")
	}
	f.resize(1200, 800, 1, modeQuiet)
	if len(f.comets) != 0 {
		t.Errorf("quiet field kept %d comets after mode change", len(f.comets))
	}
	if got, want := len(f.stars), starCountFor(1200, modeQuiet); got != want {
		t.Errorf("quiet star count = %d, want %d", got, want)
	}
}
