package surface

// Backend is the physical character grid.
type Backend interface {
	// Size returns the grid dimensions in cells.
	Size() (width, height int)
	// SetCell writes one rune. Out-of-range coordinates are ignored.
	SetCell(x, y int, r rune, st Style)
	// Clear blanks the grid without showing it.
	Clear()
	// Show makes everything written since the last Show visible.
	Show()
	// Colors returns the number of colours the terminal supports.
	Colors() int
}
