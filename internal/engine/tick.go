package engine

import "slices"

// TickResult describes what a single Tick did.
type TickResult struct {
	Moved     bool // the active piece fell one row
	Landed    bool // the active piece could not fall and became terrain
	Spawned   bool // a new active piece entered the board
	ToppedOut bool // the next piece had nowhere to spawn
	Rows      int  // rows cleared before spawning
	Points    int  // score awarded for those rows
}

// Tick advances the game by one gravity step.
//
// With an active piece, Tick moves it down (which may land it). Without one,
// it clears every full row, awards the line score, and spawns the head of the
// lookahead queue. Tick is the only operation that scores or spawns.
func (e *Engine) Tick() TickResult {
	var res TickResult
	if e.gameOver {
		return res
	}

	if e.activePiece() != nil {
		res.Moved = e.MoveDown()
		res.Landed = !res.Moved
		return res
	}

	for {
		if _, ok := e.CheckAndClearRows(); !ok {
			break
		}
		res.Rows++
	}
	res.Points = e.award(res.Rows)

	if e.spawn() {
		res.Spawned = true
	} else {
		res.ToppedOut = true
	}
	return res
}

func (e *Engine) award(rows int) int {
	if rows <= 0 {
		return 0
	}
	e.lines += rows
	if rows >= len(e.cfg.LinePoints) {
		return 0
	}
	pts := e.cfg.LinePoints[rows] * e.level
	e.score += pts
	return pts
}

// spawn moves the head of the queue onto the board and refills the queue.
// It reports false and ends the game when the spawn cells are taken.
func (e *Engine) spawn() bool {
	p := e.next[0]
	e.next = slices.Delete(e.next, 0, 1)
	e.next = append(e.next, e.drawPiece())

	if !e.fits(p, NoPiece) {
		e.gameOver = true
		e.active = NoPiece
		return false
	}
	e.active = e.adopt(p)
	return true
}

// Snapshot is a comparable summary of engine state.
type Snapshot struct {
	Score          int
	Level          int
	Lines          int
	GameOver       bool
	HasActive      bool
	ActiveType     PieceType
	ActiveRotation Rotation
	ActiveCells    [4]Cell
	Occupied       int
	Pieces         int
	Next           [8]PieceType
	NextLen        int
}

// Snapshot returns the current summary.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Score:    e.score,
		Level:    e.level,
		Lines:    e.lines,
		GameOver: e.gameOver,
		Occupied: len(e.occupancy),
		Pieces:   e.pieces.Len(),
		NextLen:  len(e.next),
	}
	if p, ok := e.ActivePiece(); ok {
		s.HasActive = true
		s.ActiveType = p.Type
		s.ActiveRotation = p.Rotation
		for i, part := range p.Parts {
			s.ActiveCells[i] = part.Cell()
		}
	}
	for i, p := range e.next {
		if i >= len(s.Next) {
			break
		}
		s.Next[i] = p.Type
	}
	return s
}
