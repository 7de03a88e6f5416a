// Package content holds the text units a pane displays.
package content

import "panecalc/internal/ui/textutil"

//go:generate mockgen -destination=mock_writer_test.go -package=content panecalc/internal/ui/content Writer

// Writer is the drawing capability a cell renders through.
type Writer interface {
	Print(row, col int, text string) int
}

// Source produces a cell's text. It is implemented by Static and Computed
// only.
type Source interface {
	isSource()
}

// Static is fixed text.
type Static string

// Computed is text re-evaluated on every resolve. It must be safe to call on
// every render.
type Computed func() string

func (Static) isSource()   {}
func (Computed) isSource() {}

// Cell is one displayable unit. The zero value is disabled and empty.
type Cell struct {
	source  Source
	enabled bool
}

// SetStatic stores fixed text and enables the cell.
func (c *Cell) SetStatic(text string) { c.Set(Static(text)) }

// SetComputed stores a text function and enables the cell.
func (c *Cell) SetComputed(fn func() string) { c.Set(Computed(fn)) }

// Set stores src and enables the cell. A nil src or nil Computed disables it.
func (c *Cell) Set(src Source) {
	if fn, ok := src.(Computed); src == nil || (ok && fn == nil) {
		*c = Cell{}
		return
	}
	c.source = src
	c.enabled = true
}

// Disable stops the cell from rendering. The source is kept.
func (c *Cell) Disable() { c.enabled = false }

// Enabled reports whether the cell renders.
func (c Cell) Enabled() bool { return c.enabled }

// Resolve returns the cell text, calling a Computed source each time.
func (c Cell) Resolve() string {
	switch s := c.source.(type) {
	case Static:
		return string(s)
	case Computed:
		return s()
	default:
		return ""
	}
}

// Render writes the resolved text centred in width starting at row, col.
// Text wider than width is truncated with an ellipsis to stay in its span.
func (c Cell) Render(w Writer, row, col, width int) {
	if !c.enabled {
		return
	}
	text := textutil.Truncate(c.Resolve(), width)
	if text == "" {
		return
	}
	w.Print(row, col+textutil.CenterOffset(text, width), text)
}
