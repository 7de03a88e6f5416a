package session

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"panecalc/internal/pty"
	"panecalc/internal/surface"
	"panecalc/internal/ui"
)

// TeaSession drives the App from a bubbletea program. Panes draw into a
// surface.Frame that the program's View returns.
type TeaSession struct {
	frame  *surface.Frame
	screen *surface.Screen
	opts   []tea.ProgramOption
}

var _ Session = (*TeaSession)(nil)

// TeaOption configures a TeaSession.
type TeaOption func(*TeaSession)

// WithProgramOptions appends bubbletea program options, e.g. tea.WithInput
// in tests.
func WithProgramOptions(opts ...tea.ProgramOption) TeaOption {
	return func(s *TeaSession) { s.opts = append(s.opts, opts...) }
}

// WithRenderer replaces the renderer built for the output terminal.
func WithRenderer(r *lipgloss.Renderer) TeaOption {
	return func(s *TeaSession) {
		w, h := s.frame.Size()
		s.frame = surface.NewFrame(w, h, r)
	}
}

// NewTea creates a session on the terminal behind out. The frame starts at
// the terminal's current size (80x24 if unknown) and follows
// tea.WindowSizeMsg afterwards.
func NewTea(out *os.File, opts ...TeaOption) *TeaSession {
	size := pty.QueryOrDefault(out)
	s := &TeaSession{
		frame: surface.NewFrame(int(size.Cols), int(size.Rows), lipgloss.NewRenderer(out)),
		opts:  []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(out)},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.screen = surface.NewScreen(s.frame)
	return s
}

// Screen implements Session.
func (s *TeaSession) Screen() *surface.Screen { return s.screen }

// Frame returns the backing frame.
func (s *TeaSession) Frame() *surface.Frame { return s.frame }

// Run implements Session.
func (s *TeaSession) Run(ctx context.Context, app *ui.App) error {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, s.opts...)
	p := tea.NewProgram(newTeaModel(ctx, app, s.frame), opts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// Close implements Session. The program restores the terminal itself when
// Run returns.
func (s *TeaSession) Close() {}

// teaModel adapts an App to tea.Model.
type teaModel struct {
	ctx   context.Context
	app   *ui.App
	frame *surface.Frame
}

var _ tea.Model = (*teaModel)(nil)

func newTeaModel(ctx context.Context, app *ui.App, frame *surface.Frame) *teaModel {
	return &teaModel{ctx: ctx, app: app, frame: frame}
}

func (m *teaModel) Init() tea.Cmd { return nil }

func (m *teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.frame.Resize(msg.Width, msg.Height)
		m.app.Dispatch(m.ctx, ui.ResizeEvent())
	case tea.KeyMsg:
		if m.app.Dispatch(m.ctx, ui.KeyEvent(msg.String())) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *teaModel) View() string {
	m.app.Flush()
	return m.frame.String()
}
