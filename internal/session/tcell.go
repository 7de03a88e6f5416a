package session

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"panecalc/internal/surface"
	"panecalc/internal/ui"
)

var newScreen = tcell.NewScreen

// TcellSession drives the App from a blocking tcell PollEvent loop.
type TcellSession struct {
	term    tcell.Screen
	backend *surface.TcellBackend
	screen  *surface.Screen
	once    sync.Once
}

var _ Session = (*TcellSession)(nil)

// NewTcell opens the controlling terminal.
func NewTcell() (*TcellSession, error) {
	s, err := newScreen()
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}
	return NewTcellOn(s)
}

// NewTcellOn initialises s and wraps it.
func NewTcellOn(s tcell.Screen) (*TcellSession, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.HideCursor()
	b := surface.NewTcellBackend(s)
	return &TcellSession{term: s, backend: b, screen: surface.NewScreen(b)}, nil
}

// Screen implements Session.
func (t *TcellSession) Screen() *surface.Screen { return t.screen }

// Close implements Session.
func (t *TcellSession) Close() {
	t.once.Do(t.term.Fini)
}

// Run implements Session. The terminal is restored before a panic
// propagates.
func (t *TcellSession) Run(ctx context.Context, app *ui.App) error {
	defer func() {
		if r := recover(); r != nil {
			t.Close()
			panic(r)
		}
	}()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			t.term.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	app.Flush()
	for {
		ev := t.term.PollEvent()
		if ev == nil {
			return nil // screen finalised
		}
		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			if err := ctx.Err(); err != nil {
				return err
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			log.Printf("tcell: resize %dx%d", w, h)
			app.Dispatch(ctx, ui.ResizeEvent())
			app.Flush()
			t.backend.Sync()
			continue
		case *tcell.EventKey:
			if app.Dispatch(ctx, ui.KeyEvent(keyName(ev))) {
				return nil
			}
		}
		app.Flush()
	}
}

// keyName converts a tcell key to the names used by ui.Keymap, which follow
// bubbletea's spelling.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBacktab:
		return "shift+tab"
	case tcell.KeyRune:
		return string(ev.Rune())
	default:
		return strings.ToLower(ev.Name())
	}
}
