package ui

import (
	"errors"
	"fmt"

	"panecalc/internal/surface"
)

var (
	// ErrPaneNotFound is returned for names that were never added.
	ErrPaneNotFound = errors.New("pane not found")
	// ErrDuplicatePane is returned when a name is added twice.
	ErrDuplicatePane = errors.New("pane already registered")
)

// Registry owns every pane and the focus order. Pane handles stay valid for
// the registry's lifetime; panes are never removed.
type Registry struct {
	screen *surface.Screen
	theme  Theme
	panes  []*Pane
	index  map[string]int
	focus  FocusRing
}

// NewRegistry returns an empty registry drawing on screen.
func NewRegistry(screen *surface.Screen, theme Theme) *Registry {
	return &Registry{
		screen: screen,
		theme:  theme,
		index:  make(map[string]int),
	}
}

// Add creates a pane, applies opts in order and registers it under name.
func (r *Registry) Add(name string, geometry GeometryFunc, opts ...Option) (*Pane, error) {
	if _, exists := r.index[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicatePane, name)
	}
	p := newPane(r.screen, name, geometry, r.theme)
	for _, opt := range opts {
		p.SetOption(opt)
	}
	r.index[name] = len(r.panes)
	r.panes = append(r.panes, p)
	return p, nil
}

// Lookup returns the pane registered under name.
func (r *Registry) Lookup(name string) (*Pane, error) {
	i, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPaneNotFound, name)
	}
	return r.panes[i], nil
}

// MustLookup is Lookup for names fixed at startup. It panics on a miss.
func (r *Registry) MustLookup(name string) *Pane {
	p, err := r.Lookup(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Names returns pane names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.panes))
	for i, p := range r.panes {
		names[i] = p.name
	}
	return names
}

// Len returns the number of registered panes.
func (r *Registry) Len() int { return len(r.panes) }

// SetFocusOrder replaces the focus order. Every name must be registered.
// If a pane is already selected the selection moves to the new head;
// before the first cycle nothing is marked.
func (r *Registry) SetFocusOrder(names ...string) error {
	for _, name := range names {
		if _, err := r.Lookup(name); err != nil {
			return fmt.Errorf("set focus order: %w", err)
		}
	}
	r.focus.Set(names)
	if r.hasSelection() {
		r.remark()
	}
	return nil
}

// AppendFocusOrder adds a registered name at the end of the focus order.
func (r *Registry) AppendFocusOrder(name string) error {
	if _, err := r.Lookup(name); err != nil {
		return fmt.Errorf("append focus order: %w", err)
	}
	r.focus.Append(name)
	return nil
}

// FocusOrder returns the focus order, head first.
func (r *Registry) FocusOrder() []string { return r.focus.Order() }

// Focused returns the pane at the head of the focus order.
func (r *Registry) Focused() (*Pane, bool) {
	name, ok := r.focus.Head()
	if !ok {
		return nil, false
	}
	p, err := r.Lookup(name)
	if err != nil {
		return nil, false
	}
	return p, true
}

// OnFocusChange registers fn to run whenever the focus head changes.
func (r *Registry) OnFocusChange(fn func(from, to string)) {
	r.focus.OnChange = fn
}

// Notify applies a signal. Unknown signals are ignored.
func (r *Registry) Notify(sig Signal) {
	switch sig {
	case SignalResize:
		for _, p := range r.panes {
			p.Resize()
		}
	case SignalCycleForward:
		r.focus.RotateRight()
		r.remark()
	case SignalCycleBackward:
		r.focus.RotateLeft()
		r.remark()
	}
}

func (r *Registry) hasSelection() bool {
	for _, p := range r.panes {
		if p.selected {
			return true
		}
	}
	return false
}

// remark selects the focus head and deselects every other pane.
func (r *Registry) remark() {
	head, ok := r.focus.Head()
	for _, p := range r.panes {
		if ok && p.name == head {
			p.MarkSelected()
		} else {
			p.UnmarkSelected()
		}
	}
}
