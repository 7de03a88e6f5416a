package content

import (
	"fmt"

	"panecalc/internal/surface"
)

// Grid is a row-major collection of cells with an append cursor.
type Grid struct {
	rows [][]Cell
	row  int // row Add appends to
}

// Add stores src in the next free cell of the current row, allocating the
// first row on first use. It returns the position written.
func (g *Grid) Add(src Source) (row, col int) {
	if len(g.rows) == 0 {
		g.rows = append(g.rows, nil)
		g.row = 0
	}
	var c Cell
	c.Set(src)
	g.rows[g.row] = append(g.rows[g.row], c)
	return g.row, len(g.rows[g.row]) - 1
}

// AddRow allocates an empty row and moves the append cursor to it.
func (g *Grid) AddRow() int {
	g.rows = append(g.rows, nil)
	g.row = len(g.rows) - 1
	return g.row
}

// Replace sets the source of an allocated cell.
func (g *Grid) Replace(row, col int, src Source) error {
	if !g.allocated(row, col) {
		return fmt.Errorf("replace (%d, %d): %w", row, col, ErrOutOfBounds)
	}
	g.rows[row][col].Set(src)
	return nil
}

// Cell returns a copy of an allocated cell.
func (g *Grid) Cell(row, col int) (Cell, error) {
	if !g.allocated(row, col) {
		return Cell{}, fmt.Errorf("cell (%d, %d): %w", row, col, ErrOutOfBounds)
	}
	return g.rows[row][col], nil
}

// Size returns the row count and the widest row's cell count.
func (g *Grid) Size() (rows, cols int) {
	for _, r := range g.rows {
		cols = max(cols, len(r))
	}
	return len(g.rows), cols
}

// Render draws every enabled cell into region. Rows split the region height
// evenly; cells split their row's width evenly. Each cell is centred on the
// first line of its band.
func (g *Grid) Render(w Writer, region surface.Rect) {
	if region.Empty() || len(g.rows) == 0 {
		return
	}
	n := len(g.rows)
	for r, cells := range g.rows {
		top := region.Top + r*region.Height/n
		if len(cells) == 0 || top >= region.Bottom() {
			continue
		}
		m := len(cells)
		for c, cell := range cells {
			left := region.Left + c*region.Width/m
			right := region.Left + (c+1)*region.Width/m
			cell.Render(w, top, left, right-left)
		}
	}
}

func (g *Grid) allocated(row, col int) bool {
	return row >= 0 && row < len(g.rows) && col >= 0 && col < len(g.rows[row])
}
