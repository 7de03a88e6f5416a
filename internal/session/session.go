// Package session owns the terminal for the lifetime of the process. A
// Session exposes a surface.Screen for panes to draw on and runs the input
// loop that feeds a ui.App.
//
// Two drivers exist: a bubbletea program (the default) and a tcell poll
// loop. Both dispatch on a single goroutine and flush after every event.
package session

import (
	"context"
	"log"

	"panecalc/internal/surface"
	"panecalc/internal/ui"
)

// Session is an initialised terminal.
type Session interface {
	// Screen returns the drawing surface panes are created on.
	Screen() *surface.Screen
	// Run feeds input to app until it quits or ctx is cancelled.
	Run(ctx context.Context, app *ui.App) error
	// Close restores the terminal. It is safe to call more than once.
	Close()
}

// Theme picks the pane theme for s. Terminals with fewer than ui.MinColors
// colours, or a forced monochrome setting, get ui.MonochromeTheme.
func Theme(s Session, monochrome bool) ui.Theme {
	colors := s.Screen().Colors()
	if monochrome {
		log.Printf("theme: monochrome forced")
		return ui.MonochromeTheme()
	}
	if colors < ui.MinColors {
		log.Printf("theme: terminal reports %d colours, using monochrome", colors)
	}
	return ui.ThemeFor(colors)
}
