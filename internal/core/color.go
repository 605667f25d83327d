package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color code.
type Color uint8

// Base terminal colors.
const (
	ColorDefault Color = iota
	ColorGray
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite

	// Scene palette
	ColorHill
	ColorCloud
	ColorCloudFaint
	ColorGround
	ColorCactus
	ColorCactusDark
	ColorRock
	ColorBird
	ColorCat
	ColorCatLight
)
