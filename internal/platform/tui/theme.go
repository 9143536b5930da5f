package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// Theme holds the tile colors used by the board and keyboard views.
type Theme struct {
	Correct core.Color
	Present core.Color
	Absent  core.Color
	Empty   core.Color
	Text    core.Color
}

// DefaultTheme returns the built-in colors.
func DefaultTheme() Theme {
	return ThemeFromConfig(config.DefaultConfig().Theme)
}

// ThemeFromConfig converts configured colors, keeping a built-in color for
// every empty entry.
func ThemeFromConfig(c config.ThemeConfig) Theme {
	pick := func(v string, def core.Color) core.Color {
		if v == "" {
			return def
		}
		return core.Color(v)
	}
	return Theme{
		Correct: pick(c.Correct, core.ColorGreen),
		Present: pick(c.Present, core.ColorYellow),
		Absent:  pick(c.Absent, core.ColorDarkGray),
		Empty:   pick(c.Empty, "236"),
		Text:    pick(c.Text, core.ColorBrightWhite),
	}
}

// Background returns the tile color for a verdict. Unseen uses Empty.
func (t Theme) Background(v wordle.Verdict) core.Color {
	switch v {
	case wordle.Correct:
		return t.Correct
	case wordle.Present:
		return t.Present
	case wordle.Absent:
		return t.Absent
	default:
		return t.Empty
	}
}

// Tile renders a single letter as a colored tile, for plain text output
// outside the full-screen UI.
func (t Theme) Tile(letter rune, v wordle.Verdict) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Text)).
		Background(lipgloss.Color(t.Background(v))).
		Render(" " + string(letter) + " ")
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("2")).
			Padding(0, 2)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)
