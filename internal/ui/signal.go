package ui

// Signal is a high-level notification for the registry.
type Signal int

const (
	SignalNone Signal = iota
	SignalResize
	SignalCycleForward
	SignalCycleBackward
)

func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case SignalResize:
		return "resize"
	case SignalCycleForward:
		return "cycle-forward"
	case SignalCycleBackward:
		return "cycle-backward"
	default:
		return "unknown"
	}
}
