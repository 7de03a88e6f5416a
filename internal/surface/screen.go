package surface

// Screen composites Windows onto a Backend.
type Screen struct {
	backend Backend
	windows []*Window
}

// NewScreen returns a Screen drawing on b.
func NewScreen(b Backend) *Screen {
	return &Screen{backend: b}
}

// Size returns the backend dimensions.
func (s *Screen) Size() (width, height int) { return s.backend.Size() }

// Colors returns the backend colour count.
func (s *Screen) Colors() int { return s.backend.Colors() }

// NewWindow creates a sub-surface at r with the default style.
func (s *Screen) NewWindow(r Rect) *Window {
	w := newWindow(r, Style{})
	s.windows = append(s.windows, w)
	return w
}

// Destroy removes w. Its pending content disappears on the next Flush.
func (s *Screen) Destroy(w *Window) {
	for i, o := range s.windows {
		if o == w {
			s.windows = append(s.windows[:i], s.windows[i+1:]...)
			return
		}
	}
}

// Windows returns the number of live windows.
func (s *Screen) Windows() int { return len(s.windows) }

// Flush redraws the backend from every window's pending update, in creation
// order, and shows it.
func (s *Screen) Flush() {
	s.backend.Clear()
	bw, bh := s.backend.Size()
	for _, w := range s.windows {
		if !w.hasPending {
			continue
		}
		at := w.pendingAt
		for row := 0; row < at.Height; row++ {
			y := at.Top + row
			if y < 0 || y >= bh {
				continue
			}
			for col := 0; col < at.Width; col++ {
				x := at.Left + col
				if x < 0 || x >= bw {
					continue
				}
				g := w.pending[row*at.Width+col]
				if g.Rune == 0 {
					continue
				}
				s.backend.SetCell(x, y, g.Rune, g.Style)
			}
		}
	}
	s.backend.Show()
}
