package session

import (
	"panecalc/internal/surface"
	"panecalc/internal/ui"
	"panecalc/internal/ui/content"
)

// twoPanes fills the screen with two stacked panes.
type twoPanes struct{}

func (twoPanes) Panes(env ui.LayoutEnv) []ui.PaneSpec {
	top := func() surface.Rect {
		w, h := env.Screen.Size()
		return surface.Rect{Height: h / 2, Width: w}
	}
	bottom := func() surface.Rect {
		w, h := env.Screen.Size()
		return surface.Rect{Height: h - h/2, Width: w, Top: h / 2}
	}
	return []ui.PaneSpec{
		{Name: "Top", Geometry: top, Content: []content.Source{content.Static("up")}},
		{Name: "Bottom", Geometry: bottom},
	}
}

func (twoPanes) FocusOrder() []string { return []string{"Top", "Bottom"} }
