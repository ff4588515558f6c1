package main

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// envBool reports whether the named environment variable is set to a truthy
// value.
func envBool(name string) bool {
	switch os.Getenv(name) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func main() {
	flag.Parse()

	// Limit-motion is resolved once from two independent signals and stays
	// fixed for the run.
	reduced := *reducedMotionFlag || envBool("STARFIELD_REDUCED_MOTION")
	saveData := *saveDataFlag || envBool("STARFIELD_SAVE_DATA")
	limitMotion := reduced || saveData

	prefsFile, err := prefsPath()
	if err != nil {
		log.Printf("preference dir unavailable: %v", err)
		prefsFile = ""
	}
	pref := prefs{Mode: modeShowcase}
	if prefsFile != "" {
		pref = loadPrefs(prefsFile)
	}
	switch *modeFlag {
	case modeQuiet, modeShowcase:
		pref.Mode = *modeFlag
	case "":
	default:
		log.Printf("unknown mode %q, using %s", *modeFlag, pref.Mode)
	}

	pal := resolvePalette(loadThemeVars(*themeFlag))
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := newGame(pal, pref, prefsFile, limitMotion, rng)

	if *backdropFlag != "" {
		if img, err := loadBackdrop(*backdropFlag, pal.accent); err != nil {
			log.Printf("backdrop disabled: %v", err)
		} else {
			g.backdrop = ebiten.NewImageFromImage(img)
		}
	}

	if *enableAudioFlag && !limitMotion {
		if *ambienceFlag == "" {
			log.Printf("audio disabled: no -ambience file given")
		} else {
			ctx := audio.NewContext(audioSampleRate)
			if sound, err := newAmbience(ctx, *ambienceFlag); err != nil {
				log.Printf("audio disabled: %v", err)
			} else {
				sound.setQuiet(pref.Mode == modeQuiet)
				g.sound = sound
			}
		}
	}

	if *recordDefaultPGO {
		if stop, err := startProfileCapture("default.pgo"); err != nil {
			log.Printf("profile capture failed: %v", err)
		} else {
			g.demo = newDemoWalk(demoCaptureDuration, stop)
		}
	}

	ebiten.SetWindowSize(defaultWindowW, defaultWindowH)
	ebiten.SetWindowTitle("Starfield Backdrop")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	g.shutdown()
}
