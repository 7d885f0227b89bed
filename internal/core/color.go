package core

// Color is the role of a screen cell. The platform layer maps roles to
// terminal styles, so the board view never deals with palettes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorMarkX
	ColorMarkO
	ColorWin
	ColorCursor
	ColorGrid
	ColorDim
	ColorTitle
)

// String returns the role name, matching the theme keys in the config file.
func (c Color) String() string {
	switch c {
	case ColorMarkX:
		return "mark_x"
	case ColorMarkO:
		return "mark_o"
	case ColorWin:
		return "win"
	case ColorCursor:
		return "cursor"
	case ColorGrid:
		return "grid"
	case ColorDim:
		return "dim"
	case ColorTitle:
		return "title"
	default:
		return "default"
	}
}
