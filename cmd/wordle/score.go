package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/platform/tui"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

var flagPlain bool

var scoreCmd = &cobra.Command{
	Use:   "score <secret> <guess>",
	Short: "Score a guess against a secret word",
	Long: `Prints the verdict of every letter of guess against secret, using the
same rules as the game. Neither word has to be in a word list.

Symbols in --plain mode:
  *  - correct letter, correct spot
  ?  - letter is in the word, wrong spot
  .  - letter is not in the word

Examples:
  wordle score crane eerie
  wordle score crane react --plain`,
	Args: cobra.ExactArgs(2),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print symbols instead of colored tiles")
}

func runScore(_ *cobra.Command, args []string) error {
	secret := strings.ToUpper(strings.TrimSpace(args[0]))
	guess := strings.ToUpper(strings.TrimSpace(args[1]))

	if err := wordle.ValidateWord(secret); err != nil {
		return fmt.Errorf("secret: %w", err)
	}
	if err := wordle.ValidateWord(guess); err != nil {
		return fmt.Errorf("guess: %w", err)
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	theme := tui.ThemeFromConfig(settings.Theme)

	verdicts := wordle.Score(secret, guess)

	var sb strings.Builder
	for i, v := range verdicts {
		if flagPlain {
			sb.WriteRune(v.Symbol())
			continue
		}
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(theme.Tile(rune(guess[i]), v))
	}
	fmt.Println(sb.String())

	if wordle.Solved(verdicts) {
		fmt.Println("Solved!")
	}
	return nil
}
