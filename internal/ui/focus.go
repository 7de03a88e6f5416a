package ui

// FocusRing holds the focus order. The head is the focused name; rotation
// moves the head without copying the order.
type FocusRing struct {
	order    []string
	head     int
	OnChange func(from, to string)
}

// Set replaces the order. The first name becomes the head.
func (f *FocusRing) Set(names []string) {
	f.order = append([]string(nil), names...)
	f.head = 0
}

// Append adds name at the tail of the current order.
func (f *FocusRing) Append(name string) {
	f.order = append(f.Order(), name)
	f.head = 0
}

// Len returns the number of names in the order.
func (f *FocusRing) Len() int { return len(f.order) }

// Head returns the focused name.
func (f *FocusRing) Head() (string, bool) {
	if len(f.order) == 0 {
		return "", false
	}
	return f.order[f.head], true
}

// Order returns the names starting at the head.
func (f *FocusRing) Order() []string {
	out := make([]string, 0, len(f.order))
	out = append(out, f.order[f.head:]...)
	return append(out, f.order[:f.head]...)
}

// RotateRight moves the last name to the front.
func (f *FocusRing) RotateRight() {
	f.rotate(-1)
}

// RotateLeft moves the first name to the back.
func (f *FocusRing) RotateLeft() {
	f.rotate(1)
}

func (f *FocusRing) rotate(step int) {
	n := len(f.order)
	if n == 0 {
		return
	}
	from := f.order[f.head]
	f.head = ((f.head+step)%n + n) % n
	to := f.order[f.head]
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}
