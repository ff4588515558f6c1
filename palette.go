package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// rgb is a color triple with 8-bit channels.
type rgb struct {
	r, g, b uint8
}

// palette holds the three reference colors the renderer blends between.
type palette struct {
	accent    rgb
	accentAlt rgb
	baseTone  rgb
}

// defaultPalette returns the hardcoded fallback palette.
func defaultPalette() palette {
	return palette{
		accent:    defaultAccent,
		accentAlt: defaultAccentAlt,
		baseTone:  defaultBaseTone,
	}
}

// loadThemeVars reads "name: r,g,b" lines from path. A missing or unreadable
// file yields an empty map; resolution falls back per variable.
func loadThemeVars(path string) map[string]string {
	vars := make(map[string]string)
	f, err := os.Open(path)
	if err != nil {
		return vars
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		vars[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return vars
}

// resolvePalette builds the palette from named theme variables. Each triple
// must be exactly 3 comma-separated integers in 0-255; any other shape falls
// back to the hardcoded default for that variable.
func resolvePalette(vars map[string]string) palette {
	p := defaultPalette()
	if c, ok := parseRGBTriple(vars["accent"]); ok {
		p.accent = c
	}
	if c, ok := parseRGBTriple(vars["accent-alt"]); ok {
		p.accentAlt = c
	}
	if c, ok := parseRGBTriple(vars["base-tone"]); ok {
		p.baseTone = c
	}
	return p
}

// parseRGBTriple parses "r,g,b" with integer components in 0-255.
func parseRGBTriple(s string) (rgb, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return rgb{}, false
	}
	var ch [3]uint8
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 255 {
			return rgb{}, false
		}
		ch[i] = uint8(n)
	}
	return rgb{ch[0], ch[1], ch[2]}, true
}

// starColor blends the base tone toward the two accents by the star's tone
// scalar. The red channel blends base->accent while green and blue blend
// base->accentAlt; the asymmetry is intentional and gives the field its
// warm/cool shimmer.
func (p palette) starColor(tone float64) rgb {
	return rgb{
		r: uint8(lerp(float64(p.baseTone.r), float64(p.accent.r), tone)),
		g: uint8(lerp(float64(p.baseTone.g), float64(p.accentAlt.g), tone)),
		b: uint8(lerp(float64(p.baseTone.b), float64(p.accentAlt.b), tone)),
	}
}
