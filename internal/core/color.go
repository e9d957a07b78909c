package core

// Color represents a foreground color for a screen cell.
// Basic entries use ANSI 256-color codes; the piece palette uses true color
// and degrades through lipgloss on limited terminals.
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
	ColorBrightWhite
	ColorGray

	// Piece palette.
	ColorLemon
	ColorSky
	ColorStone
	ColorPink
	ColorLeaf
	ColorAmber

	// Effects.
	ColorFlash
	ColorSpread
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBrightWhite:
		return "bright-white"
	case ColorGray:
		return "gray"
	case ColorLemon:
		return "lemon"
	case ColorSky:
		return "sky"
	case ColorStone:
		return "stone"
	case ColorPink:
		return "pink"
	case ColorLeaf:
		return "leaf"
	case ColorAmber:
		return "amber"
	case ColorFlash:
		return "flash"
	case ColorSpread:
		return "spread"
	default:
		return "unknown"
	}
}
