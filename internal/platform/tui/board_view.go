package tui

import (
	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// Board and keyboard layout constants
const (
	tileW   = 3 // " A "
	tileGap = 1
	rowGap  = 1

	boardW = wordle.WordLength*tileW + (wordle.WordLength-1)*tileGap
	boardH = wordle.MaxAttempts*(1+rowGap) - rowGap

	keyboardH = 3*(1+rowGap) - rowGap

	// title, gap, board, gap, notice, gap, keyboard
	gameH = 1 + 1 + boardH + 1 + 1 + 1 + keyboardH
)

// keyboardRows is the on-screen QWERTY layout.
var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// keyboardW is the width of the widest keyboard row.
var keyboardW = len(keyboardRows[0])*tileW + (len(keyboardRows[0])-1)*tileGap

// drawTile draws one letter tile with its top-left corner at (x, y).
func drawTile(s *core.Screen, x, y int, letter rune, fg, bg core.Color) {
	s.SetCell(x, y, core.Cell{Rune: ' ', Bg: bg})
	s.SetCell(x+1, y, core.Cell{Rune: letter, Fg: fg, Bg: bg})
	s.SetCell(x+2, y, core.Cell{Rune: ' ', Bg: bg})
}

// drawBoard draws the attempt grid with its top-left corner at (x, y).
// Scored attempts come first, then the row being typed, then empty rows.
func drawBoard(s *core.Screen, x, y int, attempts []wordle.Attempt, input string, typing bool, th Theme) {
	for row := 0; row < wordle.MaxAttempts; row++ {
		ty := y + row*(1+rowGap)

		for col := 0; col < wordle.WordLength; col++ {
			tx := x + col*(tileW+tileGap)
			letter, bg := ' ', th.Empty

			switch {
			case row < len(attempts):
				letter = rune(attempts[row].Word[col])
				bg = th.Background(attempts[row].Verdicts[col])
			case row == len(attempts) && typing && col < len(input):
				letter = rune(input[col])
			}

			drawTile(s, tx, ty, letter, th.Text, bg)
		}
	}
}

// drawKeyboard draws the letter hints with the widest row starting at (x, y).
// Shorter rows are centered under it.
func drawKeyboard(s *core.Screen, x, y int, keys *wordle.KeyState, th Theme) {
	for i, row := range keyboardRows {
		rowW := len(row)*tileW + (len(row)-1)*tileGap
		rx := x + (keyboardW-rowW)/2
		ry := y + i*(1+rowGap)

		for j := 0; j < len(row); j++ {
			v := wordle.Unseen
			if keys != nil {
				v = keys.Get(row[j])
			}
			drawTile(s, rx+j*(tileW+tileGap), ry, rune(row[j]), th.Text, th.Background(v))
		}
	}
}
