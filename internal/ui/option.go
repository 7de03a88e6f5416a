package ui

// Option changes one display setting of a pane.
type Option int

const (
	Bordered Option = iota
	Unbordered
	Titled
	Untitled
	LeftAlign
	CenterAlign
	RightAlign
)

func (o Option) String() string {
	switch o {
	case Bordered:
		return "Bordered"
	case Unbordered:
		return "Unbordered"
	case Titled:
		return "Titled"
	case Untitled:
		return "Untitled"
	case LeftAlign:
		return "LeftAlign"
	case CenterAlign:
		return "CenterAlign"
	case RightAlign:
		return "RightAlign"
	default:
		return "Unknown"
	}
}

// Align is the horizontal placement of a pane title.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}
