package engine

// MoveLeft shifts the active piece one column left if the cells are free.
func (e *Engine) MoveLeft() bool { return e.move(-1, 0) }

// MoveRight shifts the active piece one column right if the cells are free.
func (e *Engine) MoveRight() bool { return e.move(1, 0) }

// MoveDown shifts the active piece one row down. When the piece cannot
// descend it lands: it stays where it is as terrain and the board is left
// without an active piece until the next Tick spawns one.
func (e *Engine) MoveDown() bool { return e.move(0, 1) }

func (e *Engine) move(dx, dy int) bool {
	cur := e.activePiece()
	if cur == nil {
		return false
	}
	next := cur.Translated(dx, dy)
	if !e.fits(next, cur.ID) {
		if dy > 0 {
			e.active = NoPiece
		}
		return false
	}
	e.commit(cur, next)
	return true
}

// Rotate turns the active piece one step clockwise using the shape's
// rotation table. The turn is rejected, leaving the piece untouched, when any
// resulting cell is off the board or held by another piece.
func (e *Engine) Rotate() bool {
	cur := e.activePiece()
	if cur == nil || !cur.Rotatable() {
		return false
	}
	next := cur.Rotated()
	if !e.fits(next, cur.ID) {
		return false
	}
	e.commit(cur, next)
	return true
}

// Drop moves the active piece down until it lands and returns the number of
// rows it fell.
func (e *Engine) Drop() int {
	rows := 0
	for e.MoveDown() {
		rows++
	}
	return rows
}

// activePiece returns the stored active piece, or nil when there is none or
// the game has ended.
func (e *Engine) activePiece() *Piece {
	if e.gameOver || e.active == NoPiece {
		return nil
	}
	p, ok := e.pieces.Get(e.active)
	if !ok {
		e.active = NoPiece
		return nil
	}
	return p
}
