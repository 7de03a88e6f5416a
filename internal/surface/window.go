package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Glyph is one cell of a Window. Rune 0 marks the trailing half of a wide
// rune.
type Glyph struct {
	Rune  rune
	Style Style
}

// Window is a buffered sub-surface positioned on a Screen. Writes go to the
// working buffer and stay invisible until Stage and Screen.Flush.
type Window struct {
	rect  Rect
	style Style
	cells []Glyph

	pending    []Glyph
	pendingAt  Rect
	hasPending bool
}

func newWindow(r Rect, st Style) *Window {
	w := &Window{style: st}
	w.Reshape(r)
	return w
}

// Rect returns the window's current position and size.
func (w *Window) Rect() Rect { return w.rect }

// Style returns the style used by Clear and Print.
func (w *Window) Style() Style { return w.style }

// SetStyle sets the style used by Clear and Print.
func (w *Window) SetStyle(st Style) { w.style = st }

// Reshape moves and resizes the window. The working buffer is blanked.
func (w *Window) Reshape(r Rect) {
	r = r.Normalize()
	w.rect = r
	n := r.Height * r.Width
	if cap(w.cells) >= n {
		w.cells = w.cells[:n]
	} else {
		w.cells = make([]Glyph, n)
	}
	w.Clear()
}

// Clear fills the working buffer with blanks in the window style.
func (w *Window) Clear() {
	for i := range w.cells {
		w.cells[i] = Glyph{Rune: ' ', Style: w.style}
	}
}

// At returns the working-buffer glyph at a window-relative position.
func (w *Window) At(row, col int) (Glyph, bool) {
	if !w.inside(row, col) {
		return Glyph{}, false
	}
	return w.cells[row*w.rect.Width+col], true
}

// Line returns the text of one working-buffer row.
func (w *Window) Line(row int) string {
	if row < 0 || row >= w.rect.Height {
		return ""
	}
	var b strings.Builder
	for _, g := range w.cells[row*w.rect.Width : (row+1)*w.rect.Width] {
		if g.Rune != 0 {
			b.WriteRune(g.Rune)
		}
	}
	return b.String()
}

// Print writes text at a window-relative position in the window style.
func (w *Window) Print(row, col int, text string) int {
	return w.PrintStyled(row, col, text, w.style)
}

// PrintStyled writes text at a window-relative position. Text past either
// edge is clipped. It returns the number of columns written.
func (w *Window) PrintStyled(row, col int, text string, st Style) int {
	if row < 0 || row >= w.rect.Height {
		return 0
	}
	written := 0
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if col+rw > w.rect.Width {
			break
		}
		if col >= 0 {
			w.set(row, col, Glyph{Rune: r, Style: st})
			if rw == 2 {
				w.set(row, col+1, Glyph{Style: st})
			}
			written += rw
		}
		col += rw
	}
	return written
}

// Box draws a border around the window edge using the first rune of each
// side of b.
func (w *Window) Box(b lipgloss.Border, st Style) {
	h, wd := w.rect.Height, w.rect.Width
	if h < 2 || wd < 2 {
		return
	}
	top, bottom := firstRune(b.Top, '-'), firstRune(b.Bottom, '-')
	left, right := firstRune(b.Left, '|'), firstRune(b.Right, '|')
	for c := 1; c < wd-1; c++ {
		w.set(0, c, Glyph{Rune: top, Style: st})
		w.set(h-1, c, Glyph{Rune: bottom, Style: st})
	}
	for r := 1; r < h-1; r++ {
		w.set(r, 0, Glyph{Rune: left, Style: st})
		w.set(r, wd-1, Glyph{Rune: right, Style: st})
	}
	w.set(0, 0, Glyph{Rune: firstRune(b.TopLeft, '+'), Style: st})
	w.set(0, wd-1, Glyph{Rune: firstRune(b.TopRight, '+'), Style: st})
	w.set(h-1, 0, Glyph{Rune: firstRune(b.BottomLeft, '+'), Style: st})
	w.set(h-1, wd-1, Glyph{Rune: firstRune(b.BottomRight, '+'), Style: st})
}

// Stage snapshots the working buffer as the window's pending update.
func (w *Window) Stage() {
	if cap(w.pending) >= len(w.cells) {
		w.pending = w.pending[:len(w.cells)]
	} else {
		w.pending = make([]Glyph, len(w.cells))
	}
	copy(w.pending, w.cells)
	w.pendingAt = w.rect
	w.hasPending = true
}

func (w *Window) inside(row, col int) bool {
	return row >= 0 && row < w.rect.Height && col >= 0 && col < w.rect.Width
}

func (w *Window) set(row, col int, g Glyph) {
	if w.inside(row, col) {
		w.cells[row*w.rect.Width+col] = g
	}
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
