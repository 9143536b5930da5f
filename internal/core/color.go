package core

// Color is a terminal color value for a screen cell: an ANSI
// 0-255 code ("2", "245") or a hex value ("#6aaa64").
// The zero value ColorDefault leaves the terminal color unchanged.
type Color string

// Predefined colors for tiles and text.
const (
	ColorDefault     Color = ""
	ColorBlack       Color = "0"
	ColorRed         Color = "1"
	ColorGreen       Color = "2"
	ColorYellow      Color = "3"
	ColorBlue        Color = "4"
	ColorWhite       Color = "7"
	ColorBrightWhite Color = "15"
	ColorDarkGray    Color = "238"
	ColorGray        Color = "245"
)

// IsDefault reports whether c leaves the terminal color unchanged.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
