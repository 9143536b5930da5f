package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/words"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List all available languages",
	Long:  `Shows the languages found in the language data, with word list sizes.`,
	Args:  cobra.NoArgs,
	RunE:  runLanguages,
}

func runLanguages(_ *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	fsys, where, err := words.Open(settings.LanguagesDir)
	if err != nil {
		return err
	}
	_, stats, err := words.NewLoader(logger).Load(fsys)
	if err != nil {
		return err
	}

	if len(stats) == 0 {
		fmt.Println("No languages available.")
		return nil
	}

	fmt.Printf("Available languages (%s):\n", where)
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range stats {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %7s  %7s  %s\n", maxIDLen, "ID", "Answers", "Valid", "Status")
	fmt.Printf("  %-*s  %7s  %7s  %s\n", maxIDLen, "--", "-------", "-----", "------")

	for _, s := range stats {
		status := "ready"
		if s.Disabled {
			status = "disabled"
		}
		fmt.Printf("  %-*s  %7d  %7d  %s\n", maxIDLen, s.ID, s.Answers, s.Valid, status)
	}

	fmt.Println()
	fmt.Println("Run 'wordle play <id>' to play in a language.")
	return nil
}
