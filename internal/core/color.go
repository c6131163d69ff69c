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

// ColorByName maps a disc color name to a terminal color.
// Unknown names map to ColorWhite so a custom palette still renders.
func ColorByName(name string) Color {
	switch name {
	case "red":
		return ColorBrightRed
	case "yellow":
		return ColorBrightYellow
	case "green":
		return ColorBrightGreen
	case "blue":
		return ColorBrightBlue
	case "purple", "magenta":
		return ColorBrightMagenta
	case "cyan":
		return ColorBrightCyan
	case "orange":
		return ColorOrange
	case "white":
		return ColorBrightWhite
	case "gray", "grey":
		return ColorGray
	default:
		return ColorWhite
	}
}

// SparkColors is the cycle of colors used for celebration particles.
var SparkColors = []Color{
	ColorBrightRed,
	ColorOrange,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightCyan,
	ColorBrightBlue,
	ColorBrightMagenta,
}
