// wordle is a terminal copy of the daily five-letter word game.
//
// Usage:
//
//	wordle                        - Pick a language and play
//	wordle play [language]        - Play, optionally skipping the language menu
//	wordle languages              - List available languages
//	wordle score <secret> <guess> - Print the verdicts of one guess
//
// Global flags:
//
//	--config <path>     - Settings file (default: ~/.wordle/config.yaml)
//	--languages <dir>   - Language data directory (default: built-in lists)
//	--seed <value>      - RNG seed for reproducible secret words
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file while playing
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/config"
)

var (
	// Global flags
	flagConfig    string
	flagLanguages string
	flagSeed      int64
	flagLogLevel  string
	flagLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Wordle - Guess the five-letter word in six tries",
	Long: `A terminal copy of the word guessing game.

Guess the secret five-letter word in six tries. After each guess the tiles
show which letters are in the right spot (green), in the word but elsewhere
(yellow), or not in the word at all (gray).

Available commands:
  play       - Play (the default command)
  languages  - Show all available languages
  score      - Score one guess against a secret

Examples:
  wordle
  wordle play en
  wordle languages --languages ./my-languages
  wordle score crane eerie`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLanguages, "languages", "", "Directory with languages.yaml and word lists")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(scoreCmd)
}

// newLogger builds the logger for a command. Logs go to --log-file when set,
// otherwise to fallback. The returned closer must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}

	var w io.Writer = fallback
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordle",
		Level:           level,
	})
	return logger, closer, nil
}

// loadSettings reads the settings file and applies flag overrides.
func loadSettings() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagLanguages != "" {
		cfg.LanguagesDir = flagLanguages
	}
	return cfg, nil
}
