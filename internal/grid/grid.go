// Package grid provides the fixed box layout and flash sequence generation.
package grid

const (
	// Default grid dimensions
	DefaultColumns = 4
	DefaultRows    = 4
)

// Box is a single cell of the grid. Boxes are created once and never change.
type Box struct {
	ID    int    // 1-based, row-major
	Color string // Hex colour used by the presentation layer
}

// Grid is an immutable columns x rows arrangement of boxes.
type Grid struct {
	Columns int
	Rows    int
	boxes   []Box
}

// New creates a grid, assigning palette colours in repeating order.
// An empty palette leaves box colours blank.
func New(columns, rows int, palette []string) *Grid {
	if columns < 0 {
		columns = 0
	}
	if rows < 0 {
		rows = 0
	}

	boxes := make([]Box, columns*rows)
	for i := range boxes {
		boxes[i].ID = i + 1
		if len(palette) > 0 {
			boxes[i].Color = palette[i%len(palette)]
		}
	}

	return &Grid{
		Columns: columns,
		Rows:    rows,
		boxes:   boxes,
	}
}

// Size returns the number of boxes.
func (g *Grid) Size() int {
	return len(g.boxes)
}

// Boxes returns all boxes in id order.
func (g *Grid) Boxes() []Box {
	return g.boxes
}

// Contains returns true if id names a box on this grid.
func (g *Grid) Contains(id int) bool {
	return id >= 1 && id <= len(g.boxes)
}

// Box returns the box with the given id.
func (g *Grid) Box(id int) (Box, bool) {
	if !g.Contains(id) {
		return Box{}, false
	}
	return g.boxes[id-1], true
}

// At returns the id of the box at column col and row row, or 0 if out of bounds.
func (g *Grid) At(col, row int) int {
	if col < 0 || col >= g.Columns || row < 0 || row >= g.Rows {
		return 0
	}
	return row*g.Columns + col + 1
}

// Position returns the column and row of a box, or -1, -1 for an unknown id.
func (g *Grid) Position(id int) (int, int) {
	if !g.Contains(id) {
		return -1, -1
	}
	return (id - 1) % g.Columns, (id - 1) / g.Columns
}
