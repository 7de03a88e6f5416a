package ui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"panecalc/internal/surface"
)

// newTestScreen returns a screen over a plain-text frame.
func newTestScreen(t *testing.T, width, height int) (*surface.Screen, *surface.Frame) {
	t.Helper()
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	f := surface.NewFrame(width, height, r)
	return surface.NewScreen(f), f
}

// fixed returns a geometry function for a constant rectangle.
func fixed(h, w, top, left int) GeometryFunc {
	return func() surface.Rect {
		return surface.Rect{Height: h, Width: w, Top: top, Left: left}
	}
}

// titleRow returns row 0 of a pane's working buffer as runes.
func titleRow(p *Pane) []rune {
	return []rune(p.Window().Line(0))
}
