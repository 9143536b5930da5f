package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/platform/tui"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
	"github.com/vovakirdan/tui-wordle/internal/words"
)

var playCmd = &cobra.Command{
	Use:   "play [language]",
	Short: "Play a game",
	Long: `Start the game. Without a language the language menu is shown first.

Controls:
  A-Z        - Type a letter
  Backspace  - Erase the last letter
  Enter      - Submit the guess / play again
  Ctrl+R     - Play again in the same language
  Esc        - Back to the language menu
  ?          - Toggle help
  Ctrl+C     - Quit

Examples:
  wordle play
  wordle play en
  wordle play pt --seed 42
  wordle play --config ./my-wordle.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		settings.Language = args[0]
	}

	// Logs would corrupt the alternate screen unless they go to a file
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	packs, err := words.LoadDefault(settings.LanguagesDir, logger)
	if err != nil {
		return err
	}

	if id := settings.Language; id != "" && !packs.Exists(id) {
		return fmt.Errorf("unknown language %q\nRun 'wordle languages' to see available languages", id)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	var rng wordle.Rand
	if runtime.Seeded() {
		rng = rand.New(rand.NewSource(runtime.Seed))
	}

	err = tui.Run(tui.Options{
		Packs:    packs,
		Settings: settings,
		Runtime:  runtime,
		Rand:     rng,
		Logger:   logger,
	})
	if errors.Is(err, wordle.ErrLanguageDisabled) {
		return fmt.Errorf("%w\nRun 'wordle languages' to see available languages", err)
	}
	return err
}
