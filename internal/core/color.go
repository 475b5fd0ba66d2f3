package core

// Color is the foreground color of a screen cell. The platform decides how
// each value looks on the terminal.
type Color uint8

const (
	ColorDefault Color = iota
	ColorMagenta
	ColorRed
	ColorYellow
	ColorGreen
	ColorOrange
	ColorCyan
	ColorBlue
	ColorWhite
	ColorGray
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorMagenta:
		return "magenta"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorOrange:
		return "orange"
	case ColorCyan:
		return "cyan"
	case ColorBlue:
		return "blue"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
