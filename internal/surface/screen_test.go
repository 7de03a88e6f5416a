package surface

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func plainRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}

func TestScreen_WritesStayPendingUntilFlush(t *testing.T) {
	f := NewFrame(6, 2, plainRenderer())
	s := NewScreen(f)
	w := s.NewWindow(Rect{Height: 1, Width: 4, Top: 1, Left: 1})

	w.Print(0, 0, "hi")
	s.Flush()
	assert.Equal(t, "      \n      ", f.String(), "unstaged writes are not composited")

	w.Stage()
	assert.Equal(t, "      \n      ", f.String(), "staged writes are not visible before Flush")

	s.Flush()
	assert.Equal(t, "      \n hi   ", f.String())

	w.Print(0, 0, "yo")
	s.Flush()
	assert.Equal(t, "      \n hi   ", f.String(), "later writes wait for the next Stage")
}

func TestScreen_FlushCompositesAllWindows(t *testing.T) {
	f := NewFrame(4, 2, plainRenderer())
	s := NewScreen(f)
	a := s.NewWindow(Rect{Height: 1, Width: 2})
	b := s.NewWindow(Rect{Height: 1, Width: 2, Top: 1, Left: 2})
	a.Print(0, 0, "ab")
	b.Print(0, 0, "cd")
	a.Stage()
	b.Stage()

	s.Flush()
	assert.Equal(t, "ab  \n  cd", f.String())
	assert.Equal(t, 2, s.Windows())
}

func TestScreen_FlushClipsToBackend(t *testing.T) {
	f := NewFrame(3, 1, plainRenderer())
	s := NewScreen(f)
	w := s.NewWindow(Rect{Height: 2, Width: 4, Left: 1})
	w.Print(0, 0, "wxyz")
	w.Print(1, 0, "hidden")
	w.Stage()

	s.Flush()
	assert.Equal(t, " wx", f.String())
}

func TestScreen_Destroy(t *testing.T) {
	f := NewFrame(2, 1, plainRenderer())
	s := NewScreen(f)
	w := s.NewWindow(Rect{Height: 1, Width: 2})
	w.Print(0, 0, "ok")
	w.Stage()
	s.Flush()
	assert.Equal(t, "ok", f.String())

	s.Destroy(w)
	s.Flush()
	assert.Equal(t, "  ", f.String())
	assert.Zero(t, s.Windows())
}

func TestFrame_Colors(t *testing.T) {
	tests := []struct {
		profile termenv.Profile
		want    int
	}{
		{termenv.Ascii, 0},
		{termenv.ANSI, 16},
		{termenv.ANSI256, 256},
		{termenv.TrueColor, 1 << 24},
	}
	for _, tt := range tests {
		r := lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(tt.profile)
		assert.Equal(t, tt.want, NewFrame(1, 1, r).Colors())
	}
}

func TestFrame_ResizeAndCell(t *testing.T) {
	f := NewFrame(2, 2, plainRenderer())
	f.SetCell(1, 1, 'x', Style{Bold: true})
	assert.Equal(t, Glyph{Rune: 'x', Style: Style{Bold: true}}, f.Cell(1, 1))

	f.SetCell(5, 5, 'y', Style{})
	assert.Equal(t, Glyph{}, f.Cell(5, 5))

	f.Resize(3, 1)
	w, h := f.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 1, h)
	assert.Equal(t, ' ', f.Cell(1, 0).Rune)
}
