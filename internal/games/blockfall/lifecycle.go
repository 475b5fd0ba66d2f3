package blockfall

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/looplab/fsm"
)

// Phases of a run.
const (
	phasePlaying = "playing"
	phasePaused  = "paused"
	phaseOver    = "over"
)

// Lifecycle events.
const (
	evPause  = "pause"
	evResume = "resume"
	evTopOut = "topout"
)

func newLifecycle(logger *log.Logger) *fsm.FSM {
	return fsm.NewFSM(
		phasePlaying,
		fsm.Events{
			{Name: evPause, Src: []string{phasePlaying}, Dst: phasePaused},
			{Name: evResume, Src: []string{phasePaused}, Dst: phasePlaying},
			{Name: evTopOut, Src: []string{phasePlaying}, Dst: phaseOver},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				logger.Debug("phase change", "event", e.Event, "from", e.Src, "to", e.Dst)
			},
		},
	)
}

// fire triggers ev if the current phase allows it.
func (g *Game) fire(ev string) {
	if !g.phase.Can(ev) {
		return
	}
	if err := g.phase.Event(context.Background(), ev); err != nil {
		g.log.Warn("phase transition failed", "event", ev, "error", err)
	}
}
