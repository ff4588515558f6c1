package main

import "time"

// Rendering and animation configuration constants used throughout the
// application. These values define the particle populations, motion, and
// audio behavior of the starfield backdrop.
const (
	defaultWindowW = 1280
	defaultWindowH = 800
	defaultTPS     = 60.0

	// Star population: count derives from the logical viewport width and is
	// clamped per mode.
	quietStarDivisor    = 54
	quietStarMin        = 24
	quietStarMax        = 46
	showcaseStarDivisor = 12
	showcaseStarMin     = 76
	showcaseStarMax     = 170

	// Comet population thresholds (showcase mode only).
	cometWidthThree = 1100
	cometWidthTwo   = 760

	// Star motion. Velocities are logical pixels per tick at 60 TPS; vy is
	// always negative so stars drift upward.
	quietStarSpeedMin    = 0.05
	quietStarSpeedMax    = 0.18
	showcaseStarSpeedMin = 0.12
	showcaseStarSpeedMax = 0.45
	quietStarDriftX      = 0.04
	showcaseStarDriftX   = 0.12
	starSwayMin          = 0.001
	starSwayMax          = 0.004
	quietSwayScale       = 0.07
	showcaseSwayScale    = 0.18
	wrapMargin           = 8

	// Star size and brightness bands, fixed at construction per mode.
	quietStarRadiusMin    = 0.4
	quietStarRadiusMax    = 1.3
	showcaseStarRadiusMin = 0.6
	showcaseStarRadiusMax = 2.2
	quietBaseAlphaMin     = 0.12
	quietBaseAlphaMax     = 0.42
	showcaseBaseAlphaMin  = 0.2
	showcaseBaseAlphaMax  = 0.7

	// Twinkle oscillation. The offset is added to the base alpha and the
	// result clamps to the mode's alpha band.
	quietTwinkleFreq    = 0.0006
	quietTwinkleAmp     = 0.1
	quietAlphaFloor     = 0.08
	quietAlphaCeil      = 0.5
	showcaseTwinkleFreq = 0.0011
	showcaseTwinkleAmp  = 0.22
	showcaseAlphaFloor  = 0.12
	showcaseAlphaCeil   = 0.9

	// Inter-star links (showcase only). The pair pass is capped by index so
	// per-frame cost stays bounded regardless of total star count.
	linkStarCap   = 92
	linkDistance  = 148.0
	linkAlphaBase = 0.11
	linkWidth     = 1.0

	// Comet spawn policy.
	cometTopChance     = 0.7
	cometTopYBase      = -80.0
	cometTopYSpread    = 120.0
	cometTopVYMin      = 0.3
	cometTopVYMax      = 0.8
	cometTopDriftX     = 0.4
	cometSideMargin    = 40.0
	cometSideYBand     = 0.72
	cometSideVXMin     = 0.25
	cometSideVXMax     = 0.6
	cometSideVYMin     = 0.14
	cometSideVYMax     = 0.42
	cometRadiusMin     = 1.2
	cometRadiusMax     = 3.0
	cometAlphaMin      = 0.35
	cometAlphaMax      = 0.57
	cometTrailMin      = 58.0
	cometTrailMax      = 120.0
	cometExitMarginY   = 120.0
	cometExitMarginX   = 140.0
	cometTrailSegments = 10

	// Ambient aura (showcase only), composited additively.
	auraCenterXFrac = 0.62
	auraCenterYFrac = 0.18
	auraRadiusFrac  = 0.58
	auraAlphaBase   = 0.06
	auraAlphaSwing  = 0.04
	auraPulseFreq   = 0.0012
	auraTextureSize = 256

	// Backdrop remap: hues within remapHueWidth of remapHueCenter shift
	// toward the accent hue. The image draws dimmed behind the particles.
	remapHueCenter = 220.0
	remapHueWidth  = 70.0
	remapDimScale  = 0.55

	// Ambient audio.
	audioSampleRate    = 48000
	audioFloorLevel    = 0.22
	audioSurgeLevel    = 0.85
	audioAttack        = 0.00045
	audioRelease       = 0.00008
	quietAudioCeiling  = 0.3
	audioPlayerLatency = 80 * time.Millisecond

	demoCaptureDuration = 15 * time.Second
	demoModePeriodTicks = 240
)

// Hardcoded palette fallbacks, used when a theme variable is absent or
// malformed.
var (
	defaultAccent    = rgb{96, 165, 250}
	defaultAccentAlt = rgb{167, 139, 250}
	defaultBaseTone  = rgb{148, 163, 184}
)
