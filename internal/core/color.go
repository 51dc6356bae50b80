package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette colors.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorBrightGreen
	ColorPaleGreen
	ColorNeonPink
)

// Semantic colors for board elements. Mirrors the canvas palette:
// body #0f0, head #ccffcc, food #ff0055.
const (
	ColorBody   = ColorBrightGreen
	ColorHead   = ColorPaleGreen
	ColorFood   = ColorNeonPink
	ColorBorder = ColorGray
	ColorHUD    = ColorWhite
)

// RGBA returns the 8-bit channel values used by pixel renderers.
func (c Color) RGBA() (r, g, b, a uint8) {
	switch c {
	case ColorGray:
		return 0x80, 0x80, 0x80, 0xff
	case ColorBrightGreen:
		return 0x00, 0xff, 0x00, 0xff
	case ColorPaleGreen:
		return 0xcc, 0xff, 0xcc, 0xff
	case ColorNeonPink:
		return 0xff, 0x00, 0x55, 0xff
	default:
		return 0xff, 0xff, 0xff, 0xff
	}
}
