package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// Frame is an in-memory Backend. Show renders the grid to a string, which a
// bubbletea View returns.
type Frame struct {
	width, height int
	cells         []Glyph

	renderer *lipgloss.Renderer
	styles   *lru.Cache[Style, lipgloss.Style]
	view     string
}

// NewFrame returns a blank frame rendered through r. A nil renderer uses the
// lipgloss default.
func NewFrame(width, height int, r *lipgloss.Renderer) *Frame {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles, _ := lru.New[Style, lipgloss.Style](64)
	f := &Frame{renderer: r, styles: styles}
	f.Resize(width, height)
	return f
}

// Resize changes the grid dimensions and blanks it.
func (f *Frame) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f.width, f.height = width, height
	f.cells = make([]Glyph, width*height)
	f.Clear()
}

// Size implements Backend.
func (f *Frame) Size() (int, int) { return f.width, f.height }

// SetCell implements Backend.
func (f *Frame) SetCell(x, y int, r rune, st Style) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.cells[y*f.width+x] = Glyph{Rune: r, Style: st}
}

// Cell returns the glyph written at x, y.
func (f *Frame) Cell(x, y int) Glyph {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return Glyph{}
	}
	return f.cells[y*f.width+x]
}

// Clear implements Backend.
func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = Glyph{Rune: ' '}
	}
}

// Colors implements Backend using the renderer's colour profile.
func (f *Frame) Colors() int {
	switch f.renderer.ColorProfile() {
	case termenv.TrueColor:
		return 1 << 24
	case termenv.ANSI256:
		return 256
	case termenv.ANSI:
		return 16
	default:
		return 0
	}
}

// Show implements Backend.
func (f *Frame) Show() {
	f.view = f.render()
}

// String returns the frame as of the last Show.
func (f *Frame) String() string { return f.view }

func (f *Frame) render() string {
	var b strings.Builder
	var run strings.Builder
	for y := 0; y < f.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		var cur Style
		run.Reset()
		for x := 0; x < f.width; x++ {
			g := f.cells[y*f.width+x]
			if g.Rune == 0 {
				continue
			}
			// A wide rune covers the next cell whatever the backend left there.
			x += max(runewidth.RuneWidth(g.Rune)-1, 0)
			if g.Style != cur && run.Len() > 0 {
				b.WriteString(f.paint(cur, run.String()))
				run.Reset()
			}
			cur = g.Style
			run.WriteRune(g.Rune)
		}
		if run.Len() > 0 {
			b.WriteString(f.paint(cur, run.String()))
		}
	}
	return b.String()
}

func (f *Frame) paint(st Style, s string) string {
	if st == (Style{}) {
		return s
	}
	ls, ok := f.styles.Get(st)
	if !ok {
		ls = f.renderer.NewStyle().Bold(st.Bold).Reverse(st.Reverse)
		if st.Fg != ColorDefault {
			ls = ls.Foreground(lipgloss.Color(st.Fg))
		}
		if st.Bg != ColorDefault {
			ls = ls.Background(lipgloss.Color(st.Bg))
		}
		f.styles.Add(st, ls)
	}
	return ls.Render(s)
}
