package main

import "flag"

// Command-line flags that control optional rendering, audio, and runtime
// behavior.
var (
	// modeFlag forces the initial motion mode, overriding the saved preference.
	modeFlag = flag.String("mode", "", "initial motion mode: quiet or showcase (default: saved preference)")

	// reducedMotionFlag mirrors a platform reduced-motion preference. When the
	// combined limit-motion signal is set the particle field never starts.
	reducedMotionFlag = flag.Bool("reduced-motion", false, "disable the animated particle field")

	// saveDataFlag mirrors a data/power saving preference; combined with
	// -reduced-motion into a single limit-motion decision at startup.
	saveDataFlag = flag.Bool("save-data", false, "treat the run as data/power constrained (disables animation)")

	// debugFlag enables the FPS and population overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and particle population overlay")

	// enableAudioFlag toggles the optional ambience loop.
	enableAudioFlag = flag.Bool("enable-audio", false, "play the ambience loop (requires -ambience)")

	// ambienceFlag locates the WAV file looped as ambience.
	ambienceFlag = flag.String("ambience", "", "path to an ambience loop WAV")

	// backdropFlag locates an optional backdrop image, color-remapped once at
	// load toward the accent hue.
	backdropFlag = flag.String("backdrop", "", "path to a PNG drawn dimmed behind the particles")

	// cvFlag locates the text source for the PDF export.
	cvFlag = flag.String("cv", "cv.txt", "path to the text file used by the PDF export")

	// themeFlag locates the optional theme variable file.
	themeFlag = flag.String("theme", "theme.vars", "path to the theme variable file")

	// recordDefaultPGO runs a scripted mode-cycling demo for 15s while
	// capturing default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "cycle modes for 15s while capturing default.pgo")
)
