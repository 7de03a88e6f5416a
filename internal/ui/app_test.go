package ui

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"panecalc/internal/surface"
	"panecalc/internal/ui/content"
)

// splitLayout is two side-by-side panes and a status line reading the left
// pane's position.
type splitLayout struct{}

func (splitLayout) Panes(env LayoutEnv) []PaneSpec {
	half := func() int {
		w, _ := env.Screen.Size()
		return w / 2
	}
	height := func() int {
		_, h := env.Screen.Size()
		return h - 1
	}
	return []PaneSpec{
		{
			Name: "Left",
			Geometry: func() surface.Rect {
				return surface.Rect{Height: height(), Width: half()}
			},
			Content: []content.Source{content.Static("L")},
		},
		{
			Name: "Right",
			Geometry: func() surface.Rect {
				w, _ := env.Screen.Size()
				return surface.Rect{Height: height(), Width: w - half(), Left: half()}
			},
			Options: []Option{CenterAlign},
		},
		{
			Name: "Status",
			Geometry: func() surface.Rect {
				w, _ := env.Screen.Size()
				return surface.Rect{Height: 1, Width: w, Top: height()}
			},
			Options: []Option{Unbordered, Untitled},
			Content: []content.Source{content.Computed(func() string {
				p, err := env.Registry.Lookup("Left")
				if err != nil {
					return "?"
				}
				r := p.Rect()
				return fmt.Sprintf("%dx%d", r.Width, r.Height)
			})},
		},
	}
}

func (splitLayout) FocusOrder() []string { return []string{"Left", "Right"} }

func startApp(t *testing.T, width, height int) (*App, *surface.Frame) {
	t.Helper()
	screen, frame := newTestScreen(t, width, height)
	app := NewApp(screen, DefaultTheme(), DefaultKeymap())
	require.NoError(t, app.Start(splitLayout{}))
	return app, frame
}

func TestApp_StartMarksInitialSelection(t *testing.T) {
	app, _ := startApp(t, 20, 6)
	reg := app.Registry()

	assert.Equal(t, []string{"Left", "Right", "Status"}, reg.Names())
	assert.Equal(t, []string{"Right", "Left"}, reg.FocusOrder())
	assert.True(t, reg.MustLookup("Right").Selected())
	assert.False(t, reg.MustLookup("Left").Selected())
	assert.False(t, reg.MustLookup("Status").Selected())
}

func TestApp_DispatchKeys(t *testing.T) {
	ctx := context.Background()
	app, _ := startApp(t, 20, 6)
	reg := app.Registry()

	assert.False(t, app.Dispatch(ctx, KeyEvent("tab")))
	assert.Equal(t, []string{"Left", "Right"}, reg.FocusOrder())
	assert.True(t, reg.MustLookup("Left").Selected())

	assert.False(t, app.Dispatch(ctx, KeyEvent("shift+tab")))
	assert.Equal(t, []string{"Right", "Left"}, reg.FocusOrder())

	assert.False(t, app.Dispatch(ctx, KeyEvent("x")))
	assert.False(t, app.Dispatch(ctx, Event{}))
	assert.Equal(t, []string{"Right", "Left"}, reg.FocusOrder())

	assert.True(t, app.Dispatch(ctx, KeyEvent("q")))
}

func TestApp_FlushShowsPanes(t *testing.T) {
	app, frame := startApp(t, 20, 6)
	app.Flush()

	lines := strings.Split(frame.String(), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "┌─ Left ─┐┌ Right ─┐", lines[0])
	assert.Equal(t, "│   L    ││        │", lines[1])
	assert.Equal(t, "        10x5        ", lines[5])
}

func TestApp_DispatchResizeRelayouts(t *testing.T) {
	ctx := context.Background()
	app, frame := startApp(t, 20, 6)

	frame.Resize(30, 8)
	assert.False(t, app.Dispatch(ctx, ResizeEvent()))
	app.Flush()

	reg := app.Registry()
	assert.Equal(t, surface.Rect{Height: 7, Width: 15}, reg.MustLookup("Left").Rect())
	assert.Equal(t, surface.Rect{Height: 7, Width: 15, Left: 15}, reg.MustLookup("Right").Rect())
	lines := strings.Split(frame.String(), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[7], "15x7")
	assert.True(t, reg.MustLookup("Right").Selected(), "resize keeps the selection")
}

type badLayout struct{ focus []string }

func (badLayout) Panes(LayoutEnv) []PaneSpec {
	g := func() surface.Rect { return surface.Rect{Height: 3, Width: 3} }
	return []PaneSpec{{Name: "A", Geometry: g}, {Name: "A", Geometry: g}}
}

func (l badLayout) FocusOrder() []string { return l.focus }

func TestApp_StartErrors(t *testing.T) {
	screen, _ := newTestScreen(t, 10, 10)
	err := NewApp(screen, DefaultTheme(), DefaultKeymap()).Start(badLayout{})
	assert.ErrorIs(t, err, ErrDuplicatePane)

	screen, _ = newTestScreen(t, 10, 10)
	err = NewApp(screen, DefaultTheme(), DefaultKeymap()).Start(missingFocus{})
	assert.ErrorIs(t, err, ErrPaneNotFound)
}

type missingFocus struct{}

func (missingFocus) Panes(LayoutEnv) []PaneSpec {
	return []PaneSpec{{Name: "A", Geometry: func() surface.Rect { return surface.Rect{Height: 3, Width: 3} }}}
}

func (missingFocus) FocusOrder() []string { return []string{"A", "B"} }
