// Package engine implements the rules of a falling-block puzzle: board
// occupancy, spawning, gravity, movement, rotation, row clearing and scoring.
//
// The engine is synchronous and single-threaded. It performs no I/O, does no
// logging and holds no timers; a frame driver calls Tick and the move
// operations and reads the committed state between calls.
package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/kamstrup/intmap"
)

// Default board geometry and pacing.
const (
	DefaultWidth                = 10
	DefaultHeight               = 22
	DefaultSpawnColumn          = 3
	DefaultLookahead            = 3
	DefaultClearAnimationFrames = 12
)

// DefaultLinePoints is the base award for clearing 0..4 rows in one tick.
// The award is multiplied by the level.
var DefaultLinePoints = [5]int{0, 100, 300, 500, 800}

// Config holds the fixed parameters of one game.
type Config struct {
	Width                int
	Height               int
	SpawnColumn          int
	Lookahead            int
	Level                int
	ClearAnimationFrames int
	LinePoints           [5]int
}

// DefaultConfig returns the standard 10x22 board at level 1.
func DefaultConfig() Config {
	return Config{
		Width:                DefaultWidth,
		Height:               DefaultHeight,
		SpawnColumn:          DefaultSpawnColumn,
		Lookahead:            DefaultLookahead,
		Level:                1,
		ClearAnimationFrames: DefaultClearAnimationFrames,
		LinePoints:           DefaultLinePoints,
	}
}

// Validate checks that every spawn layout fits on the board.
func (c Config) Validate() error {
	switch {
	case c.Width < 4:
		return fmt.Errorf("engine: width %d is below 4", c.Width)
	case c.Height < 4:
		return fmt.Errorf("engine: height %d is below 4", c.Height)
	case c.SpawnColumn < 0 || c.SpawnColumn+4 > c.Width:
		return fmt.Errorf("engine: spawn column %d does not fit width %d", c.SpawnColumn, c.Width)
	case c.Lookahead < 1:
		return fmt.Errorf("engine: lookahead %d is below 1", c.Lookahead)
	case c.Level < 1:
		return fmt.Errorf("engine: level %d is below 1", c.Level)
	case c.ClearAnimationFrames < 0:
		return fmt.Errorf("engine: negative clear animation frames %d", c.ClearAnimationFrames)
	}
	for i, p := range c.LinePoints {
		if p < 0 {
			return fmt.Errorf("engine: negative points %d for %d rows", p, i)
		}
	}
	return nil
}

// ClearAnimation is the visual state left behind by row clears.
// RemainingTicks is counted down by the renderer through
// Engine.AdvanceClearAnimation; Tick never touches it.
type ClearAnimation struct {
	RemainingTicks int
	Rows           []int
}

// Active reports whether the cleared rows should still be highlighted.
func (a ClearAnimation) Active() bool {
	return a.RemainingTicks > 0
}

// Block is one visible occupied cell as seen by a renderer.
type Block struct {
	Cell
	Piece PieceID
	Type  PieceType
	Color Color
}

// Engine owns the board. The zero value is not usable; call New.
type Engine struct {
	cfg Config

	types  *Bag[PieceType]
	colors *Bag[Color]

	pieces    *intmap.Map[PieceID, *Piece]
	lastID    PieceID
	occupancy map[Cell]PieceID
	active    PieceID
	next      []Piece

	score    int
	level    int
	lines    int
	gameOver bool

	anim ClearAnimation
}

// New creates an empty board with a full lookahead queue and no active piece.
// The first Tick spawns the first piece.
func New(cfg Config, rng *rand.Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("engine: nil random source")
	}

	e := &Engine{
		cfg:       cfg,
		types:     NewBag(AllPieceTypes, rng),
		colors:    NewBag(AllColors, rng),
		pieces:    intmap.New[PieceID, *Piece](64),
		occupancy: make(map[Cell]PieceID, cfg.Width*cfg.Height),
		level:     cfg.Level,
	}
	e.next = make([]Piece, 0, cfg.Lookahead)
	for len(e.next) < cfg.Lookahead {
		e.next = append(e.next, e.drawPiece())
	}
	return e, nil
}

// drawPiece pulls a shape and a color from their bags.
func (e *Engine) drawPiece() Piece {
	return NewPiece(e.types.Draw(), e.cfg.SpawnColumn, e.colors.Draw())
}

// Width returns the number of columns.
func (e *Engine) Width() int { return e.cfg.Width }

// Height returns the number of rows.
func (e *Engine) Height() int { return e.cfg.Height }

// Score returns the accumulated score.
func (e *Engine) Score() int { return e.score }

// Level returns the scoring multiplier.
func (e *Engine) Level() int { return e.level }

// Lines returns the total number of rows cleared.
func (e *Engine) Lines() int { return e.lines }

// GameOver reports whether a spawn was blocked. Once set, every mutating
// operation is a no-op.
func (e *Engine) GameOver() bool { return e.gameOver }

// SetLevel changes the scoring multiplier. Values below 1 are raised to 1.
func (e *Engine) SetLevel(level int) {
	e.level = max(level, 1)
}

// ClearAnimation returns a copy of the row-clear animation state.
func (e *Engine) ClearAnimation() ClearAnimation {
	a := e.anim
	a.Rows = append([]int(nil), e.anim.Rows...)
	return a
}

// AdvanceClearAnimation counts the animation down by one rendered frame.
func (e *Engine) AdvanceClearAnimation() {
	if e.anim.RemainingTicks > 0 {
		e.anim.RemainingTicks--
	}
}

// ActivePiece returns a copy of the falling piece, if any.
func (e *Engine) ActivePiece() (Piece, bool) {
	if e.active == NoPiece {
		return Piece{}, false
	}
	return e.Piece(e.active)
}

// Piece returns a copy of the piece with the given ID.
func (e *Engine) Piece(id PieceID) (Piece, bool) {
	p, ok := e.pieces.Get(id)
	if !ok {
		return Piece{}, false
	}
	return *p, true
}

// PieceCount returns how many pieces have been placed on the board,
// including pieces whose parts have all been cleared.
func (e *Engine) PieceCount() int {
	return e.pieces.Len()
}

// NextPieces returns copies of the queued pieces, soonest first.
func (e *Engine) NextPieces() []Piece {
	return append([]Piece(nil), e.next...)
}

// Occupant returns the ID of the piece holding (x, y).
func (e *Engine) Occupant(x, y int) (PieceID, bool) {
	id, ok := e.occupancy[Cell{X: x, Y: y}]
	return id, ok
}

// OccupiedCount returns the number of occupied cells.
func (e *Engine) OccupiedCount() int {
	return len(e.occupancy)
}

// Blocks returns every visible part on the board, in piece order.
func (e *Engine) Blocks() []Block {
	blocks := make([]Block, 0, len(e.occupancy))
	for id := PieceID(1); id <= e.lastID; id++ {
		p, ok := e.pieces.Get(id)
		if !ok {
			continue
		}
		for _, part := range p.Parts {
			if !part.Visible {
				continue
			}
			blocks = append(blocks, Block{Cell: part.Cell(), Piece: id, Type: p.Type, Color: p.Color})
		}
	}
	return blocks
}

// inBounds reports whether c lies on the board.
func (e *Engine) inBounds(c Cell) bool {
	return c.X >= 0 && c.X < e.cfg.Width && c.Y >= 0 && c.Y < e.cfg.Height
}

// fits reports whether every visible part of p can sit on the board without
// overlapping a piece other than self.
func (e *Engine) fits(p Piece, self PieceID) bool {
	for _, c := range p.Cells() {
		if !e.inBounds(c) {
			return false
		}
		if owner, ok := e.occupancy[c]; ok && owner != self {
			return false
		}
	}
	return true
}

// lift removes the cells of p from occupancy.
func (e *Engine) lift(p *Piece) {
	for _, c := range p.Cells() {
		if e.occupancy[c] == p.ID {
			delete(e.occupancy, c)
		}
	}
}

// place writes the cells of p into occupancy.
func (e *Engine) place(p *Piece) {
	for _, c := range p.Cells() {
		e.occupancy[c] = p.ID
	}
}

// adopt assigns p an ID, stores it and marks its cells occupied.
// The caller must have checked that p fits.
func (e *Engine) adopt(p Piece) PieceID {
	e.lastID++
	p.ID = e.lastID
	stored := p
	e.pieces.Put(p.ID, &stored)
	e.place(&stored)
	return p.ID
}

// commit replaces the active piece's parts with next.
func (e *Engine) commit(cur *Piece, next Piece) {
	e.lift(cur)
	next.ID = cur.ID
	*cur = next
	e.place(cur)
}
