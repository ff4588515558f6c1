package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPrefsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	if err := savePrefs(path, prefs{Mode: modeQuiet}); err != nil {
		t.Fatalf("savePrefs: %v", err)
	}
	got := loadPrefs(path)
	if got.Mode != modeQuiet {
		t.Errorf("Mode = %q, want %q", got.Mode, modeQuiet)
	}
}

func TestLoadPrefsDegradesToDefaults(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "corrupt.json")
	if err := os.WriteFile(corrupt, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	unknown := filepath.Join(dir, "unknown.json")
	if err := os.WriteFile(unknown, []byte(`{"mode":"turbo"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"Missing file", filepath.Join(dir, "absent.json")},
		{"Corrupt JSON", corrupt},
		{"Unknown mode", unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := loadPrefs(tt.path); got.Mode != modeShowcase {
				t.Errorf("Mode = %q, want default %q", got.Mode, modeShowcase)
			}
		})
	}
}
