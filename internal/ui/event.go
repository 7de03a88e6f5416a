package ui

// EventKind classifies terminal input.
type EventKind int

const (
	EventNone EventKind = iota
	EventKey
	EventResize
)

func (k EventKind) String() string {
	switch k {
	case EventKey:
		return "key"
	case EventResize:
		return "resize"
	default:
		return "none"
	}
}

// Event is one unit of terminal input, already translated from the driver's
// own event type. Key uses bubbletea key names ("tab", "shift+tab", "q").
type Event struct {
	Kind EventKind
	Key  string
}

// KeyEvent returns a key press event.
func KeyEvent(key string) Event { return Event{Kind: EventKey, Key: key} }

// ResizeEvent returns a terminal resize event.
func ResizeEvent() Event { return Event{Kind: EventResize} }
