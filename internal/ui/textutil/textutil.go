// Package textutil provides unicode-aware text measurements for cell layout.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// CenterOffset returns the column offset that centres s in width columns.
// Text wider than width gets offset 0 so its start stays visible.
func CenterOffset(s string, width int) int {
	off := (width - VisualWidth(s)) / 2
	if off < 0 {
		return 0
	}
	return off
}

// Truncate truncates a string to fit within maxWidth visual columns.
// If truncation is needed, it appends the unicode ellipsis character (…).
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}
