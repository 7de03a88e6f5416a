package ui

import (
	"panecalc/internal/surface"
	"panecalc/internal/ui/content"
	"panecalc/internal/ui/textutil"
)

// GeometryFunc returns a pane's rectangle under current conditions. It is
// called on every resize and never cached.
type GeometryFunc func() surface.Rect

// Pane is a named region of the screen with a border, a title and a content
// grid. Panes are created through Registry.Add.
type Pane struct {
	name     string
	geometry GeometryFunc
	bordered bool
	titled   bool
	align    Align
	selected bool
	content  content.Grid
	window   *surface.Window
	theme    Theme
}

func newPane(screen *surface.Screen, name string, geometry GeometryFunc, theme Theme) *Pane {
	p := &Pane{
		name:     name,
		geometry: geometry,
		bordered: true,
		titled:   true,
		align:    AlignLeft,
		theme:    theme,
	}
	p.window = screen.NewWindow(geometry())
	p.window.SetStyle(theme.Pane)
	p.draw()
	return p
}

// Name returns the registry key of the pane.
func (p *Pane) Name() string { return p.name }

// Rect returns the geometry applied by the last resize.
func (p *Pane) Rect() surface.Rect { return p.window.Rect() }

// Interior returns the screen region content is drawn into.
func (p *Pane) Interior() surface.Rect {
	r := p.window.Rect()
	if p.bordered {
		return r.Inset(1)
	}
	return r
}

func (p *Pane) Bordered() bool { return p.bordered }
func (p *Pane) Titled() bool   { return p.titled }
func (p *Pane) Align() Align   { return p.align }
func (p *Pane) Selected() bool { return p.selected }

// Window returns the backing sub-surface.
func (p *Pane) Window() *surface.Window { return p.window }

// Content returns the pane's grid for inspection. Use ContentAdd and
// ContentReplace to change it.
func (p *Pane) Content() *content.Grid { return &p.content }

// SetOption applies one display option, then resizes and redraws.
func (p *Pane) SetOption(opt Option) {
	switch opt {
	case Bordered:
		p.bordered = true
	case Unbordered:
		p.bordered = false
	case Titled:
		p.titled = true
	case Untitled:
		p.titled = false
	case LeftAlign:
		p.align = AlignLeft
	case CenterAlign:
		p.align = AlignCenter
	case RightAlign:
		p.align = AlignRight
	}
	p.Resize()
}

// Resize re-queries the geometry function, reshapes the window and redraws.
func (p *Pane) Resize() {
	p.window.Reshape(p.geometry())
	p.draw()
}

// MarkSelected sets the selection flag and redraws.
func (p *Pane) MarkSelected() {
	p.selected = true
	p.draw()
}

// UnmarkSelected clears the selection flag and redraws.
func (p *Pane) UnmarkSelected() {
	p.selected = false
	p.draw()
}

// ContentAdd stores src in the grid's next free cell and resizes.
func (p *Pane) ContentAdd(src content.Source) (row, col int) {
	row, col = p.content.Add(src)
	p.Resize()
	return row, col
}

// ContentReplace changes an existing cell and redraws.
func (p *Pane) ContentReplace(row, col int, src content.Source) error {
	if err := p.content.Replace(row, col, src); err != nil {
		return err
	}
	p.draw()
	return nil
}

// Title returns the title text: the name padded by one space on each side.
func (p *Pane) Title() string { return " " + p.name + " " }

// TitleColumn returns the window column the title starts at.
func (p *Pane) TitleColumn() int {
	width := p.window.Rect().Width
	n := textutil.VisualWidth(p.Title())
	switch p.align {
	case AlignCenter:
		return (width - n) / 2
	case AlignRight:
		return width - n - 2
	default:
		return 2
	}
}

// draw renders border, title and content into the working buffer and stages
// it. Nothing is visible until the screen flushes.
func (p *Pane) draw() {
	p.window.Clear()
	if p.bordered {
		p.window.Box(p.theme.Glyphs, p.theme.Border)
	}
	if p.titled {
		p.window.PrintStyled(0, p.TitleColumn(), p.Title(), p.theme.Title.Emphasis(p.selected))
	}
	p.content.Render(p.window, p.region())
	p.window.Stage()
}

// region is Interior in window coordinates.
func (p *Pane) region() surface.Rect {
	r := p.window.Rect()
	r.Top, r.Left = 0, 0
	if p.bordered {
		return r.Inset(1)
	}
	return r
}
