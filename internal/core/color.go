package core

import "strings"

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightCyan
	ColorBrightWhite
	ColorPink
	ColorPeach
	ColorOrange
	ColorGray
)

// hexColors maps the web colors used by game configs to the palette.
var hexColors = map[string]Color{
	"#ff0000": ColorBrightRed,
	"#ffb8ff": ColorPink,
	"#00ffff": ColorBrightCyan,
	"#ffb852": ColorOrange,
	"#ffff00": ColorBrightYellow,
	"#2121de": ColorBlue,
	"#ffb897": ColorPeach,
	"#2121ff": ColorBrightBlue,
	"#ffffff": ColorBrightWhite,
}

// ColorFromHex returns the palette color for a "#rrggbb" string, or fallback
// when the color is not in the palette.
func ColorFromHex(hex string, fallback Color) Color {
	if c, ok := hexColors[strings.ToLower(strings.TrimSpace(hex))]; ok {
		return c
	}
	return fallback
}
