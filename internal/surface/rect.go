package surface

// Rect is a rectangle of cells. Field order follows the (height, width, top,
// left) convention used by geometry functions.
type Rect struct {
	Height int
	Width  int
	Top    int
	Left   int
}

// Inset shrinks r by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{
		Height: r.Height - 2*n,
		Width:  r.Width - 2*n,
		Top:    r.Top + n,
		Left:   r.Left + n,
	}.Normalize()
}

// Normalize clamps negative sizes to zero.
func (r Rect) Normalize() Rect {
	if r.Height < 0 {
		r.Height = 0
	}
	if r.Width < 0 {
		r.Width = 0
	}
	return r
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Height <= 0 || r.Width <= 0
}

// Bottom returns the row just below r.
func (r Rect) Bottom() int { return r.Top + r.Height }
