package core

// Color is a foreground color for a screen cell. The platform maps each one
// to a terminal color.
type Color uint8

// The textagons palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite // Cursor and menu titles
	ColorGray  // Panel labels
	ColorLightGray
	ColorTeal
)

var colorNames = [...]string{
	ColorDefault:   "default",
	ColorRed:       "red",
	ColorGreen:     "green",
	ColorYellow:    "yellow",
	ColorWhite:     "white",
	ColorGray:      "gray",
	ColorLightGray: "light-gray",
	ColorTeal:      "teal",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
