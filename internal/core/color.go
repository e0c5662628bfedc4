package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
)

// LevelColors cycles through distinct colors for successive tile levels.
var LevelColors = [...]Color{
	ColorBrightWhite,
	ColorBrightCyan,
	ColorBrightRed,
	ColorYellow,
	ColorGreen,
	ColorGray,
	ColorBlue,
	ColorBrightBlue,
	ColorBrightGreen,
	ColorMagenta,
	ColorOrange,
	ColorBrightMagenta,
	ColorWhite,
	ColorCyan,
	ColorRed,
	ColorBrightYellow,
}

// LevelColor returns the display color for a tile level. Levels below 1 use
// the default color.
func LevelColor(level int) Color {
	if level < 1 {
		return ColorDefault
	}
	return LevelColors[(level-1)%len(LevelColors)]
}
