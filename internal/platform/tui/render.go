package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordle/internal/core"
)

// colorRun is a horizontal stretch of cells sharing the same colors.
type colorRun struct {
	Text string
	Fg   core.Color
	Bg   core.Color
}

// rowRuns groups row y of s into runs of equal colors.
func rowRuns(s *core.Screen, y int) []colorRun {
	var runs []colorRun

	x := 0
	for x < s.Width() {
		start := s.GetCell(x, y)

		var run strings.Builder
		for x < s.Width() {
			cell := s.GetCell(x, y)
			if cell.Fg != start.Fg || cell.Bg != start.Bg {
				break
			}
			run.WriteRune(cell.Rune)
			x++
		}

		runs = append(runs, colorRun{Text: run.String(), Fg: start.Fg, Bg: start.Bg})
	}
	return runs
}

// styleFor builds the lipgloss style for a pair of cell colors.
func styleFor(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if !fg.IsDefault() {
		style = style.Foreground(lipgloss.Color(fg))
	}
	if !bg.IsDefault() {
		style = style.Background(lipgloss.Color(bg))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, run := range rowRuns(s, y) {
			if run.Fg.IsDefault() && run.Bg.IsDefault() {
				sb.WriteString(run.Text)
				continue
			}
			sb.WriteString(styleFor(run.Fg, run.Bg).Render(run.Text))
		}
	}
	return sb.String()
}
