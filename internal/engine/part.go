package engine

// Cell is a board coordinate. X grows to the right, Y grows downward.
type Cell struct {
	X, Y int
}

// Part is one square of a piece.
// Invisible parts have been cleared from the board: they stay attached to
// their piece but never occupy a cell.
type Part struct {
	X, Y    int
	Visible bool
}

// NewPart creates a visible part at (x, y).
func NewPart(x, y int) Part {
	return Part{X: x, Y: y, Visible: true}
}

// Cell returns the coordinate of the part.
func (p Part) Cell() Cell {
	return Cell{X: p.X, Y: p.Y}
}
