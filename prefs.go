package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// prefs is the single persisted preference: the motion mode chosen by the
// user. Anything unreadable or malformed degrades to defaults silently.
type prefs struct {
	Mode string `json:"mode"`
}

// prefsPath returns the preference file location under the user config dir.
func prefsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "starfield", "prefs.json"), nil
}

// loadPrefs reads the saved preference, returning defaults on any failure.
func loadPrefs(path string) prefs {
	p := prefs{Mode: modeShowcase}
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	var saved prefs
	if err := json.Unmarshal(data, &saved); err != nil {
		return p
	}
	if saved.Mode == modeQuiet || saved.Mode == modeShowcase {
		p.Mode = saved.Mode
	}
	return p
}

// savePrefs writes the preference, creating the directory as needed.
func savePrefs(path string, p prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
