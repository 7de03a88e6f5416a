package surface

// Color names a terminal colour. The empty string is the terminal default,
// decimal strings ("0".."255") are palette entries and "#rrggbb" is RGB.
// Backends translate it to their own colour type.
type Color string

// ColorDefault leaves the terminal's own colour in place.
const ColorDefault Color = ""

// Style is the attribute set of one cell. The zero value is the terminal
// default with no attributes.
type Style struct {
	Fg      Color
	Bg      Color
	Bold    bool
	Reverse bool
}

// Emphasis returns s with reverse video switched on or off.
func (s Style) Emphasis(on bool) Style {
	s.Reverse = on
	return s
}

// Monochrome drops colours and keeps attributes.
func (s Style) Monochrome() Style {
	return Style{Bold: s.Bold, Reverse: s.Reverse}
}
