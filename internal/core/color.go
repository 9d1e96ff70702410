package core

// Color is a foreground color for a screen cell. The zero value is the
// terminal's default.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorNavy
	ColorMaroon
	ColorTeal

	numColors
)

// ansi256 holds the 256-color palette index of each color. Default is
// never looked up.
var ansi256 = [numColors]uint8{
	ColorRed:           1,
	ColorGreen:         2,
	ColorYellow:        3,
	ColorBlue:          4,
	ColorMagenta:       5,
	ColorCyan:          6,
	ColorWhite:         7,
	ColorBrightRed:     9,
	ColorBrightGreen:   10,
	ColorBrightYellow:  11,
	ColorBrightBlue:    12,
	ColorBrightMagenta: 13,
	ColorBrightCyan:    14,
	ColorBrightWhite:   15,
	ColorOrange:        208,
	ColorGray:          245,
	ColorNavy:          18,
	ColorMaroon:        88,
	ColorTeal:          30,
}

// Colors returns every color except the default, in declaration order.
func Colors() []Color {
	out := make([]Color, 0, numColors-1)
	for c := ColorDefault + 1; c < numColors; c++ {
		out = append(out, c)
	}
	return out
}

// ANSI256 returns the palette index of c. ok is false for the default
// color and for unknown values.
func (c Color) ANSI256() (code uint8, ok bool) {
	if c == ColorDefault || c >= numColors {
		return 0, false
	}
	return ansi256[c], true
}

// Dark reports whether c is too dim to read on a black background without
// bold.
func (c Color) Dark() bool {
	return c == ColorNavy || c == ColorMaroon
}
