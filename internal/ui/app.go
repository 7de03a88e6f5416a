package ui

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"panecalc/internal/surface"
)

// App is the root of the pane layer. A session driver feeds it Events and
// calls Flush after each one.
type App struct {
	screen   *surface.Screen
	registry *Registry
	keymap   Keymap
	tracer   trace.Tracer
}

// NewApp creates an App drawing on screen.
func NewApp(screen *surface.Screen, theme Theme, keymap Keymap) *App {
	reg := NewRegistry(screen, theme)
	reg.OnFocusChange(func(from, to string) {
		log.Printf("focus: %s -> %s", from, to)
	})
	return &App{
		screen:   screen,
		registry: reg,
		keymap:   keymap,
		tracer:   otel.Tracer("panecalc/ui"),
	}
}

// Registry returns the pane registry.
func (a *App) Registry() *Registry { return a.registry }

// Screen returns the drawing surface.
func (a *App) Screen() *surface.Screen { return a.screen }

// Start adds the layout's panes, sets its focus order and marks the initial
// selection with one forward cycle.
func (a *App) Start(l Layout) error {
	env := LayoutEnv{Screen: a.screen, Registry: a.registry, Keymap: a.keymap}
	for _, spec := range l.Panes(env) {
		p, err := a.registry.Add(spec.Name, spec.Geometry, spec.Options...)
		if err != nil {
			return fmt.Errorf("add pane: %w", err)
		}
		for _, src := range spec.Content {
			p.ContentAdd(src)
		}
	}
	if err := a.registry.SetFocusOrder(l.FocusOrder()...); err != nil {
		return err
	}
	a.registry.Notify(SignalCycleForward)
	w, h := a.screen.Size()
	log.Printf("started: %d panes on %dx%d, focus %v", a.registry.Len(), w, h, a.registry.FocusOrder())
	return nil
}

// Dispatch applies one event. It returns true when the event asks the
// session to end.
func (a *App) Dispatch(ctx context.Context, ev Event) (quit bool) {
	_, span := a.tracer.Start(ctx, "dispatch", trace.WithAttributes(
		attribute.String("event.kind", ev.Kind.String()),
		attribute.String("event.key", ev.Key),
	))
	defer span.End()

	switch ev.Kind {
	case EventResize:
		w, h := a.screen.Size()
		log.Printf("resize: %dx%d", w, h)
		a.registry.Notify(SignalResize)
	case EventKey:
		action := a.keymap.Resolve(ev.Key)
		span.SetAttributes(attribute.String("action", action.String()))
		switch action {
		case ActionQuit:
			return true
		case ActionFocusForward:
			a.registry.Notify(SignalCycleForward)
		case ActionFocusBackward:
			a.registry.Notify(SignalCycleBackward)
		}
	}
	if head, ok := a.registry.focus.Head(); ok {
		span.SetAttributes(attribute.String("focus.head", head))
	}
	return false
}

// Flush makes every pending pane update visible.
func (a *App) Flush() { a.screen.Flush() }
