package surface

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// TcellBackend adapts a tcell screen to Backend.
type TcellBackend struct {
	screen tcell.Screen
}

// NewTcellBackend wraps an initialised tcell screen.
func NewTcellBackend(s tcell.Screen) *TcellBackend {
	return &TcellBackend{screen: s}
}

// Size implements Backend.
func (b *TcellBackend) Size() (int, int) { return b.screen.Size() }

// SetCell implements Backend.
func (b *TcellBackend) SetCell(x, y int, r rune, st Style) {
	b.screen.SetContent(x, y, r, nil, TcellStyle(st))
}

// Clear implements Backend.
func (b *TcellBackend) Clear() { b.screen.Clear() }

// Show implements Backend.
func (b *TcellBackend) Show() { b.screen.Show() }

// Sync repaints the whole terminal, used after a resize.
func (b *TcellBackend) Sync() { b.screen.Sync() }

// Colors implements Backend.
func (b *TcellBackend) Colors() int { return b.screen.Colors() }

// TcellStyle converts st to a tcell style.
func TcellStyle(st Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(st.Fg)).
		Background(tcellColor(st.Bg)).
		Bold(st.Bold).
		Reverse(st.Reverse)
}

func tcellColor(c Color) tcell.Color {
	if c == ColorDefault {
		return tcell.ColorDefault
	}
	if strings.HasPrefix(string(c), "#") {
		return tcell.GetColor(string(c))
	}
	if n, err := strconv.Atoi(string(c)); err == nil && n >= 0 && n < 256 {
		return tcell.PaletteColor(n)
	}
	return tcell.GetColor(string(c))
}
