package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded): %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded defaults = %+v\nhardcoded = %+v", cfg, DefaultConfig())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("restart: same_language\ntiming:\n  result_delay: 500ms\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.RestartMode() != wordle.RestartSameLanguage {
		t.Errorf("RestartMode() = %q, expected same_language", cfg.RestartMode())
	}
	if cfg.Timing.ResultDelay != 500*time.Millisecond {
		t.Errorf("ResultDelay = %s, expected 500ms", cfg.Timing.ResultDelay)
	}
	if cfg.Timing.InvalidNotice != 3*time.Second {
		t.Errorf("InvalidNotice = %s, expected default 3s", cfg.Timing.InvalidNotice)
	}
	if cfg.KeyPolicy() != wordle.KeyPolicyUpgrade {
		t.Errorf("KeyPolicy() = %q, expected upgrade", cfg.KeyPolicy())
	}
	if cfg.Theme.Correct != "2" {
		t.Errorf("Theme.Correct = %q, expected default", cfg.Theme.Correct)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"first write policy", func(c *Config) { c.Keyboard.Policy = "first_write" }, ""},
		{"empty enums", func(c *Config) { c.Keyboard.Policy = ""; c.Restart = "" }, ""},
		{"bad policy", func(c *Config) { c.Keyboard.Policy = "sticky" }, "keyboard.policy"},
		{"bad restart", func(c *Config) { c.Restart = "forever" }, "restart"},
		{"negative notice", func(c *Config) { c.Timing.InvalidNotice = -time.Second }, "timing.invalid_notice"},
		{"negative delay", func(c *Config) { c.Timing.ResultDelay = -time.Second }, "timing.result_delay"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keyboard.Policy = "sticky"
	cfg.Restart = "forever"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"keyboard.policy", "restart"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("language: pt\nkeyboard:\n  policy: first_write\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Language != "pt" {
		t.Errorf("Language = %q, expected pt", cfg.Language)
	}
	if cfg.KeyPolicy() != wordle.KeyPolicyFirstWrite {
		t.Errorf("KeyPolicy() = %q, expected first_write", cfg.KeyPolicy())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("restart: forever\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for invalid custom config")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// ./configs/wordle.yaml is picked up.
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", FileName), []byte("language: en\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Language != "en" {
		t.Errorf("Language = %q, expected en from ./configs", cfg.Language)
	}

	// ~/.wordle/config.yaml wins over ./configs.
	if err := os.MkdirAll(filepath.Join(home, ".wordle"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".wordle", "config.yaml"), []byte("language: pt\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Language != "pt" {
		t.Errorf("Language = %q, expected pt from home", cfg.Language)
	}
}
