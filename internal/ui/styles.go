package ui

import (
	"github.com/charmbracelet/lipgloss"

	"panecalc/internal/surface"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles
	ColorHighlight = "205" // Magenta - for borders
	ColorText      = "252" // Light gray - for normal text
)

// MinColors is the colour count below which the monochrome theme is used.
const MinColors = 8

// Theme is the colour treatment applied to every pane.
type Theme struct {
	Pane   surface.Style // window fill and content text
	Border surface.Style
	Title  surface.Style // selected titles add reverse video
	Glyphs lipgloss.Border
}

// DefaultTheme returns the coloured theme.
func DefaultTheme() Theme {
	return Theme{
		Pane:   surface.Style{Fg: ColorText},
		Border: surface.Style{Fg: ColorHighlight},
		Title:  surface.Style{Fg: ColorAccent, Bold: true},
		Glyphs: lipgloss.NormalBorder(),
	}
}

// MonochromeTheme returns DefaultTheme without colours.
func MonochromeTheme() Theme {
	t := DefaultTheme()
	t.Pane = t.Pane.Monochrome()
	t.Border = t.Border.Monochrome()
	t.Title = t.Title.Monochrome()
	return t
}

// ThemeFor picks a theme for a terminal with the given colour count.
func ThemeFor(colors int) Theme {
	if colors < MinColors {
		return MonochromeTheme()
	}
	return DefaultTheme()
}
