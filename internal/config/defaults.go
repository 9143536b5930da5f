package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/wordle.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration.
// It matches defaults/wordle.yaml.
func DefaultConfig() Config {
	return Config{
		Keyboard: KeyboardConfig{
			Policy: "upgrade",
		},
		Restart: "menu",
		Timing: TimingConfig{
			InvalidNotice: 3 * time.Second,
			ResultDelay:   2 * time.Second,
		},
		Theme: ThemeConfig{
			Correct: "2",
			Present: "3",
			Absent:  "238",
			Empty:   "236",
			Text:    "15",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
