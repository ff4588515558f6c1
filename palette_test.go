package main

import "testing"

func TestParseRGBTriple(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  rgb
		ok    bool
	}{
		{"Plain", "96,165,250", rgb{96, 165, 250}, true},
		{"Spaces", " 12 , 34 , 56 ", rgb{12, 34, 56}, true},
		{"Bounds", "0,255,0", rgb{0, 255, 0}, true},
		{"Empty", "", rgb{}, false},
		{"Two components", "1,2", rgb{}, false},
		{"Four components", "1,2,3,4", rgb{}, false},
		{"Non-numeric", "a,b,c", rgb{}, false},
		{"Out of range high", "256,0,0", rgb{}, false},
		{"Out of range low", "-1,2,3", rgb{}, false},
		{"Float component", "1.5,2,3", rgb{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseRGBTriple(tt.input)
			if ok != tt.ok {
				t.Fatalf("parseRGBTriple(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("parseRGBTriple(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolvePaletteFallbacks(t *testing.T) {
	vars := map[string]string{
		"accent":     "10,20,30",
		"accent-alt": "not,a,color",
		// base-tone absent entirely
	}
	p := resolvePalette(vars)
	if (p.accent != rgb{10, 20, 30}) {
		t.Errorf("accent = %v, want parsed value", p.accent)
	}
	if p.accentAlt != defaultAccentAlt {
		t.Errorf("accentAlt = %v, want fallback %v", p.accentAlt, defaultAccentAlt)
	}
	if p.baseTone != defaultBaseTone {
		t.Errorf("baseTone = %v, want fallback %v", p.baseTone, defaultBaseTone)
	}
}

func TestStarColorBlendEndpoints(t *testing.T) {
	p := palette{
		accent:    rgb{200, 10, 20},
		accentAlt: rgb{30, 150, 250},
		baseTone:  rgb{100, 100, 100},
	}
	if got := p.starColor(0); got != p.baseTone {
		t.Errorf("tone 0 = %v, want base tone %v", got, p.baseTone)
	}
	// The asymmetric blend: red follows accent, green/blue follow accentAlt.
	want := rgb{r: 200, g: 150, b: 250}
	if got := p.starColor(1); got != want {
		t.Errorf("tone 1 = %v, want %v", got, want)
	}
	mid := p.starColor(0.5)
	if mid.r != 150 || mid.g != 125 || mid.b != 175 {
		t.Errorf("tone 0.5 = %v, want {150 125 175}", mid)
	}
}

func TestLoadThemeVarsMissingFile(t *testing.T) {
	vars := loadThemeVars("does/not/exist.vars")
	if len(vars) != 0 {
		t.Errorf("missing file produced %d vars, want 0", len(vars))
	}
	p := resolvePalette(vars)
	if p != defaultPalette() {
		t.Errorf("palette from empty vars = %+v, want defaults", p)
	}
}
