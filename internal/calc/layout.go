// Package calc lays out the panes of the RPN calculator screen: a stack
// and variables column on the left, operations, result and input on the
// right, and a key help line along the bottom.
package calc

import (
	"fmt"

	"panecalc/internal/surface"
	"panecalc/internal/ui"
	"panecalc/internal/ui/content"
)

// Layout constants, in terminal cells.
const (
	LeftColumnWidth = 28
	InputFieldWidth = 40
	KeysHeight      = 1

	resultHeight = 3
	inputHeight  = 3
)

// Pane names.
const (
	Stack  = "Stack"
	Vars   = "Vars"
	Ops    = "Ops"
	Result = "Result"
	Input  = "Input"
	Keys   = "Keys"
)

// Layout is the calculator screen. It implements ui.Layout.
type Layout struct{}

var _ ui.Layout = Layout{}

// FocusOrder implements ui.Layout. Keys is never focused.
func (Layout) FocusOrder() []string {
	return []string{Stack, Ops, Vars, Result, Input}
}

// Panes implements ui.Layout. Input is registered before Result so the
// Result text reads Input's geometry after Input has been resized.
func (Layout) Panes(env ui.LayoutEnv) []ui.PaneSpec {
	g := geometry{screen: env.Screen}
	return []ui.PaneSpec{
		{
			Name:     Stack,
			Geometry: g.stack,
			Content:  []content.Source{content.Static("empty")},
		},
		{
			Name:     Vars,
			Geometry: g.vars,
			Content:  []content.Source{content.Static("no variables")},
		},
		{
			Name:     Ops,
			Geometry: g.ops,
			Options:  []ui.Option{ui.CenterAlign},
			Content:  []content.Source{content.Static("+  -  *  /  swap  drop")},
		},
		{
			Name:     Input,
			Geometry: g.input,
			Content:  []content.Source{content.Static("> ")},
		},
		{
			Name:     Result,
			Geometry: g.result,
			Options:  []ui.Option{ui.RightAlign},
			Content: []content.Source{content.Computed(func() string {
				p, err := env.Registry.Lookup(Input)
				if err != nil {
					return ""
				}
				r := p.Rect()
				return fmt.Sprintf("input at %d,%d", r.Top, r.Left)
			})},
		},
		{
			Name:     Keys,
			Geometry: g.keys,
			Options:  []ui.Option{ui.Unbordered, ui.Untitled},
			Content: []content.Source{content.Computed(func() string {
				w, _ := env.Screen.Size()
				return env.Keymap.HelpLine(w)
			})},
		},
	}
}

// geometry computes pane rectangles from the current screen size.
type geometry struct {
	screen *surface.Screen
}

// body returns the screen width and the height above the Keys line.
func (g geometry) body() (w, body int) {
	w, h := g.screen.Size()
	return w, h - KeysHeight
}

func (g geometry) stack() surface.Rect {
	_, body := g.body()
	return surface.Rect{Height: body / 2, Width: LeftColumnWidth}
}

func (g geometry) vars() surface.Rect {
	_, body := g.body()
	return surface.Rect{Height: body - body/2, Width: LeftColumnWidth, Top: body / 2}
}

func (g geometry) ops() surface.Rect {
	w, body := g.body()
	return surface.Rect{
		Height: body - resultHeight - inputHeight,
		Width:  w - LeftColumnWidth,
		Left:   LeftColumnWidth,
	}
}

func (g geometry) result() surface.Rect {
	w, body := g.body()
	return surface.Rect{
		Height: resultHeight,
		Width:  w - LeftColumnWidth,
		Top:    body - resultHeight - inputHeight,
		Left:   LeftColumnWidth,
	}
}

func (g geometry) input() surface.Rect {
	w, body := g.body()
	return surface.Rect{
		Height: inputHeight,
		Width:  min(InputFieldWidth, w-LeftColumnWidth),
		Top:    body - inputHeight,
		Left:   LeftColumnWidth,
	}
}

func (g geometry) keys() surface.Rect {
	w, body := g.body()
	return surface.Rect{Height: KeysHeight, Width: w, Top: body}
}
