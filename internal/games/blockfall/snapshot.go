package blockfall

import "github.com/vovakirdan/blockfall/internal/engine"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Frame         uint64
	Phase         string
	GravityFrames int
	Board         engine.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{Frame: g.frame}
	if g.phase != nil {
		s.Phase = g.phase.Current()
	}
	if g.gravity != nil {
		s.GravityFrames = g.gravity.Period()
	}
	if g.eng != nil {
		s.Board = g.eng.Snapshot()
	}
	return s
}
