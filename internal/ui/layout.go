package ui

import (
	"panecalc/internal/surface"
	"panecalc/internal/ui/content"
)

// PaneSpec describes one pane of a Layout.
type PaneSpec struct {
	Name     string
	Geometry GeometryFunc
	Options  []Option
	Content  []content.Source
}

// LayoutEnv is what a Layout may capture in its geometry and content
// closures. Closures must only read from it.
type LayoutEnv struct {
	Screen   *surface.Screen
	Registry *Registry
	Keymap   Keymap
}

// Layout arranges panes and defines focus order.
type Layout interface {
	// Panes returns specs in registration order. Resize notifications
	// follow the same order.
	Panes(env LayoutEnv) []PaneSpec
	FocusOrder() []string // Tab order for focus
}
