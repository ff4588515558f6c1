package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleInput processes hotkeys and drives the scripted demo walk.
func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.toggleMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.exportPDF()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.requestScreenshot()
	}
	if g.demo != nil {
		g.demo.tick(g)
	}
	return nil
}

// demoWalk cycles the motion mode on a fixed cadence for a limited duration.
// Used with -record-default-pgo so a profile covers both modes and the
// resize path.
type demoWalk struct {
	deadline time.Time
	ticks    int
	stop     func()
}

func newDemoWalk(duration time.Duration, stop func()) *demoWalk {
	return &demoWalk{deadline: time.Now().Add(duration), stop: stop}
}

func (d *demoWalk) tick(g *Game) {
	if time.Now().After(d.deadline) {
		d.finish()
		g.demo = nil
		log.Printf("demo walk complete, profile written")
		return
	}
	d.ticks++
	if d.ticks%demoModePeriodTicks == 0 {
		g.toggleMode()
	}
}

func (d *demoWalk) finish() {
	if d.stop != nil {
		d.stop()
		d.stop = nil
	}
}
