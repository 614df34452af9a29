package ui

const (
	boxWidth  = 8
	boxHeight = 3
	boxGap    = 1

	gridOriginX = 2
	gridOriginY = 3
	panelGap    = 4
	panelWidth  = 34
)

// Rect is a screen rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout places the grid, the start button and the side panel.
type Layout struct {
	Columns int
	Rows    int
}

// NewLayout creates a layout for a columns x rows grid.
func NewLayout(columns, rows int) Layout {
	return Layout{Columns: columns, Rows: rows}
}

// GridRect returns the area covered by all boxes.
func (l Layout) GridRect() Rect {
	return Rect{
		X: gridOriginX,
		Y: gridOriginY,
		W: l.Columns*(boxWidth+boxGap) - boxGap,
		H: l.Rows*(boxHeight+boxGap) - boxGap,
	}
}

// BoxRect returns the area of box id (1-based, row-major).
func (l Layout) BoxRect(id int) Rect {
	i := id - 1
	col, row := i%l.Columns, i/l.Columns
	return Rect{
		X: gridOriginX + col*(boxWidth+boxGap),
		Y: gridOriginY + row*(boxHeight+boxGap),
		W: boxWidth,
		H: boxHeight,
	}
}

// BoxAt returns the box under the given cell, or 0 for none. Gaps between
// boxes do not count as hits.
func (l Layout) BoxAt(x, y int) int {
	if l.Columns <= 0 || l.Rows <= 0 || !l.GridRect().Contains(x, y) {
		return 0
	}
	col := (x - gridOriginX) / (boxWidth + boxGap)
	row := (y - gridOriginY) / (boxHeight + boxGap)
	id := row*l.Columns + col + 1
	if !l.BoxRect(id).Contains(x, y) {
		return 0
	}
	return id
}

// ButtonRect returns the start button area below the grid.
func (l Layout) ButtonRect() Rect {
	g := l.GridRect()
	return Rect{X: g.X, Y: g.Y + g.H + 2, W: g.W, H: 1}
}

// PanelX returns the left edge of the side panel.
func (l Layout) PanelX() int {
	g := l.GridRect()
	return g.X + g.W + panelGap
}

// Width returns the columns needed to show everything.
func (l Layout) Width() int {
	return l.PanelX() + panelWidth
}
