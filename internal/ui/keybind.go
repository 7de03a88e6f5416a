package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// Action is what a key press asks the App to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionFocusForward
	ActionFocusBackward
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionFocusForward:
		return "focus-forward"
	case ActionFocusBackward:
		return "focus-backward"
	default:
		return "none"
	}
}

// Keymap binds keys to Actions. It implements help.KeyMap.
type Keymap struct {
	Forward  key.Binding
	Backward key.Binding
	Quit     key.Binding
}

var _ help.KeyMap = Keymap{}

// DefaultKeymap binds Tab, Shift+Tab and q.
func DefaultKeymap() Keymap {
	return Keymap{
		Forward: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		Backward: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev pane"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// keyPress adapts a key name to the fmt.Stringer key.Matches expects.
type keyPress string

func (k keyPress) String() string { return string(k) }

// Resolve returns the action bound to a key name. Unbound keys resolve to
// ActionNone.
func (k Keymap) Resolve(name string) Action {
	kp := keyPress(name)
	switch {
	case key.Matches(kp, k.Quit):
		return ActionQuit
	case key.Matches(kp, k.Forward):
		return ActionFocusForward
	case key.Matches(kp, k.Backward):
		return ActionFocusBackward
	default:
		return ActionNone
	}
}

// ShortHelp implements help.KeyMap.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.Backward, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// HelpLine renders the short help as plain text fitting width columns.
// Plain styles keep escape sequences out of pane cells.
func (k Keymap) HelpLine(width int) string {
	h := help.New()
	h.Width = width
	plain := lipgloss.NewStyle()
	h.Styles = help.Styles{
		Ellipsis:       plain,
		ShortKey:       plain,
		ShortDesc:      plain,
		ShortSeparator: plain,
		FullKey:        plain,
		FullDesc:       plain,
		FullSeparator:  plain,
	}
	return h.ShortHelpView(k.ShortHelp())
}
