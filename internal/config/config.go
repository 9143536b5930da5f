// Package config provides YAML-based settings loading for the game:
// language selection, keyboard hint policy, restart behavior, timings
// and tile colors.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// Config contains all user-tunable settings.
type Config struct {
	Language     string         `yaml:"language"`      // auto-select this language ID
	LanguagesDir string         `yaml:"languages_dir"` // custom language data directory
	Keyboard     KeyboardConfig `yaml:"keyboard"`
	Restart      string         `yaml:"restart"` // "menu" or "same_language"
	Timing       TimingConfig   `yaml:"timing"`
	Theme        ThemeConfig    `yaml:"theme"`
}

// KeyboardConfig controls the on-screen keyboard hints.
type KeyboardConfig struct {
	Policy string `yaml:"policy"` // "upgrade" or "first_write"
}

// TimingConfig defines cosmetic delays.
type TimingConfig struct {
	InvalidNotice time.Duration `yaml:"invalid_notice"` // how long "Not in word list" stays up
	ResultDelay   time.Duration `yaml:"result_delay"`   // pause before the result screen
}

// ThemeConfig defines tile colors as ANSI codes or hex values.
type ThemeConfig struct {
	Correct string `yaml:"correct"`
	Present string `yaml:"present"`
	Absent  string `yaml:"absent"`
	Empty   string `yaml:"empty"`
	Text    string `yaml:"text"`
}

// KeyPolicy returns the parsed keyboard policy.
// Call Validate first; an invalid value falls back to the default.
func (c Config) KeyPolicy() wordle.KeyPolicy {
	p, err := wordle.ParseKeyPolicy(c.Keyboard.Policy)
	if err != nil {
		return wordle.KeyPolicyUpgrade
	}
	return p
}

// RestartMode returns the parsed restart mode.
// Call Validate first; an invalid value falls back to the default.
func (c Config) RestartMode() wordle.RestartMode {
	m, err := wordle.ParseRestartMode(c.Restart)
	if err != nil {
		return wordle.RestartToMenu
	}
	return m
}

// Validate reports every invalid setting in c.
func (c Config) Validate() error {
	var errs []error

	if _, err := wordle.ParseKeyPolicy(c.Keyboard.Policy); err != nil {
		errs = append(errs, fmt.Errorf("keyboard.policy: %w", err))
	}
	if _, err := wordle.ParseRestartMode(c.Restart); err != nil {
		errs = append(errs, fmt.Errorf("restart: %w", err))
	}
	if c.Timing.InvalidNotice < 0 {
		errs = append(errs, fmt.Errorf("timing.invalid_notice: negative duration %s", c.Timing.InvalidNotice))
	}
	if c.Timing.ResultDelay < 0 {
		errs = append(errs, fmt.Errorf("timing.result_delay: negative duration %s", c.Timing.ResultDelay))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
