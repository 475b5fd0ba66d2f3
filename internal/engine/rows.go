package engine

import "slices"

// CheckAndClearRows clears the lowest full row, if there is one.
//
// The parts in that row become invisible and leave the board; every occupied
// cell above it moves down one row. The cleared row index is returned with
// true, or (0, false) when no row is full. Call it repeatedly to clear
// several rows.
func (e *Engine) CheckAndClearRows() (int, bool) {
	for y := e.cfg.Height - 1; y >= 0; y-- {
		if e.rowFull(y) {
			e.clearRow(y)
			return y, true
		}
	}
	return 0, false
}

func (e *Engine) rowFull(y int) bool {
	for x := 0; x < e.cfg.Width; x++ {
		if _, ok := e.occupancy[Cell{X: x, Y: y}]; !ok {
			return false
		}
	}
	return true
}

func (e *Engine) clearRow(y0 int) {
	for x := 0; x < e.cfg.Width; x++ {
		c := Cell{X: x, Y: y0}
		if p := e.owner(c); p != nil {
			if i := p.partAt(c); i >= 0 {
				p.Parts[i].Visible = false
			}
		}
		delete(e.occupancy, c)
	}

	// Walk upward so every cell lands in a row that has already been vacated.
	for y := y0 - 1; y >= 0; y-- {
		for x := 0; x < e.cfg.Width; x++ {
			from := Cell{X: x, Y: y}
			id, ok := e.occupancy[from]
			if !ok {
				continue
			}
			to := Cell{X: x, Y: y + 1}
			delete(e.occupancy, from)
			e.occupancy[to] = id
			if p, ok := e.pieces.Get(id); ok {
				if i := p.partAt(from); i >= 0 {
					p.Parts[i].Y++
				}
			}
		}
	}

	if !e.anim.Active() {
		e.anim.Rows = nil
	}
	if !slices.Contains(e.anim.Rows, y0) {
		e.anim.Rows = append(e.anim.Rows, y0)
	}
	e.anim.RemainingTicks = e.cfg.ClearAnimationFrames
}

func (e *Engine) owner(c Cell) *Piece {
	id, ok := e.occupancy[c]
	if !ok {
		return nil
	}
	p, ok := e.pieces.Get(id)
	if !ok {
		return nil
	}
	return p
}

// partAt returns the index of the visible part at c, or -1.
func (p *Piece) partAt(c Cell) int {
	for i, part := range p.Parts {
		if part.Visible && part.X == c.X && part.Y == c.Y {
			return i
		}
	}
	return -1
}
