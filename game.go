package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game wires the particle field, its frame loop, and the optional audio and
// export features into the ebiten run loop.
type Game struct {
	field *starField
	sched *tickScheduler
	anim  *animator

	pal       palette
	pref      prefs
	prefsFile string

	limitMotion bool

	start    time.Time
	lastTS   float64
	outsideW int
	outsideH int
	appliedW int
	appliedH int

	backdrop *ebiten.Image
	aura     *ebiten.Image
	sound    *ambience

	wasFocused  bool
	lastAdvance time.Duration

	demo *demoWalk

	shotPending bool
	shotPath    string
}

// newGame constructs the game. When limitMotion is set the particle field is
// never initialized and no frame loop ever starts.
func newGame(pal palette, pref prefs, prefsFile string, limitMotion bool, rng randSource) *Game {
	g := &Game{
		pal:         pal,
		pref:        pref,
		prefsFile:   prefsFile,
		limitMotion: limitMotion,
		start:       time.Now(),
		wasFocused:  true,
	}
	g.sched = &tickScheduler{}
	if limitMotion {
		log.Printf("limit-motion active: particle field disabled")
		return g
	}
	g.field = newStarField(rng)
	g.anim = newAnimator(g.sched, g.stepField)
	return g
}

// stepField is the per-frame callback: advance the population and feed the
// audio envelope from comet respawns.
func (g *Game) stepField(ts float64) {
	begin := time.Now()
	g.field.advance(ts)
	g.lastAdvance = time.Since(begin)
	g.lastTS = ts
	if n := g.field.drainRespawns(); n > 0 && g.sound != nil && g.field.mode == modeShowcase {
		g.sound.surge(audioSurgeLevel)
	}
}

// Update handles input, viewport changes, focus gating, and pumps the frame
// scheduler. Everything runs on this single goroutine, so resize and mode
// changes always complete before the next frame callback reads the field.
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}

	if g.anim != nil {
		g.applyViewport()

		focused := ebiten.IsFocused()
		if focused != g.wasFocused {
			if focused {
				g.anim.show()
			} else {
				g.anim.hide()
			}
			g.wasFocused = focused
		}
	}

	ts := float64(time.Since(g.start)) / float64(time.Millisecond)
	g.sched.pump(ts)
	return nil
}

// applyViewport repopulates the field when the window dimensions change, and
// starts the loop once the first real layout is known.
func (g *Game) applyViewport() {
	if g.outsideW <= 0 || g.outsideH <= 0 {
		return
	}
	if g.outsideW == g.appliedW && g.outsideH == g.appliedH {
		return
	}
	g.appliedW = g.outsideW
	g.appliedH = g.outsideH
	scale := ebiten.Monitor().DeviceScaleFactor()
	g.field.resize(float64(g.appliedW), float64(g.appliedH), scale, g.pref.Mode)
	g.anim.start()
}

// toggleMode flips quiet/showcase, persists the choice, and fully
// reinitializes the population before the next frame draws.
func (g *Game) toggleMode() {
	if g.pref.Mode == modeQuiet {
		g.pref.Mode = modeShowcase
	} else {
		g.pref.Mode = modeQuiet
	}
	if g.prefsFile != "" {
		if err := savePrefs(g.prefsFile, g.pref); err != nil {
			log.Printf("saving preference: %v", err)
		}
	}
	if g.field != nil && g.appliedW > 0 {
		g.field.resize(float64(g.appliedW), float64(g.appliedH), g.field.deviceScale, g.pref.Mode)
	}
	if g.sound != nil {
		g.sound.setQuiet(g.pref.Mode == modeQuiet)
	}
}

// shutdown cancels the frame loop on teardown.
func (g *Game) shutdown() {
	if g.anim != nil {
		g.anim.stop()
	}
	if g.demo != nil {
		g.demo.finish()
		g.demo = nil
	}
}

// Layout records the window size; the real work happens in Update so resize
// handling stays on the game loop.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outsideW = outsideWidth
	g.outsideH = outsideHeight
	return outsideWidth, outsideHeight
}
