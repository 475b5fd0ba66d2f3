// Package blockfall adapts the falling-block rules engine to the arcade
// platform: it turns input frames into engine calls, runs the gravity timer,
// tracks pause and game over, and draws the board.
package blockfall

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/looplab/fsm"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// GameID is the registry and score-storage identifier.
const GameID = "blockfall"

// Package-level settings applied on the next Reset, set by the CLI before
// the game is created.
var (
	configPath       string
	difficultyPreset string
	startLevel       int
	pkgLogger        = log.New(io.Discard)
)

// SetConfigPath sets a custom YAML config path. Empty means the search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects easy, normal, hard or fixed.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel overrides the configured level. 0 keeps the config value.
func SetStartLevel(level int) {
	startLevel = level
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	pkgLogger = l
}

// Game implements registry.Game.
type Game struct {
	cfg     config.BlockfallConfig
	runtime core.RuntimeConfig
	eng     *engine.Engine
	input   InputState
	gravity *GravityTimer
	phase   *fsm.FSM
	palette map[engine.Color]core.Color
	log     *log.Logger

	frame  uint64
	notice string // shown under the board, e.g. a config problem
}

// New creates a game. Call Reset before stepping it.
func New() *Game {
	return &Game{log: pkgLogger.WithPrefix(GameID)}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Blockfall" }

// Reset starts a new run with a fresh board.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = rc
	g.frame = 0
	g.notice = ""
	g.cfg = g.loadConfig()

	eng, err := engine.New(engineConfig(g.cfg), rand.New(rand.NewSource(rc.Seed)))
	if err != nil {
		g.log.Error("invalid engine config, using defaults", "error", err)
		g.notice = "config rejected, using defaults"
		g.cfg = config.DefaultBlockfallConfig()
		eng, _ = engine.New(engine.DefaultConfig(), rand.New(rand.NewSource(rc.Seed)))
	}
	g.eng = eng
	g.palette = buildPalette(g.cfg.Palette)
	g.input = NewInputState(g.cfg.Timing.RepeatDelayFrames, g.cfg.Timing.RepeatIntervalFrames)
	g.gravity = NewGravityTimer(g.cfg.GravityFrames(rc.TickRate))
	g.phase = newLifecycle(g.log)

	// The board starts with a piece in play rather than waiting a full
	// gravity period.
	g.applyTick(g.eng.Tick())

	g.log.Debug("run started",
		"seed", rc.Seed,
		"level", g.eng.Level(),
		"gravity_frames", g.gravity.Period(),
		"board", engineConfig(g.cfg).Width)
}

func (g *Game) loadConfig() config.BlockfallConfig {
	cfg, err := config.Load(configPath)
	if err != nil {
		g.log.Warn("could not load config, using defaults", "path", configPath, "error", err)
		g.notice = "config error, using defaults"
		cfg = config.DefaultBlockfallConfig()
	}

	preset, err := config.ParseDifficulty(difficultyPreset)
	if err != nil {
		g.log.Warn("ignoring difficulty", "error", err)
		preset = config.DifficultyFixed
	}
	config.ApplyPreset(&cfg, preset)

	if startLevel > 0 {
		cfg.Scoring.Level = startLevel
	}
	return cfg
}

func engineConfig(c config.BlockfallConfig) engine.Config {
	ec := engine.Config{
		Width:                c.Board.Width,
		Height:               c.Board.Height,
		SpawnColumn:          c.Board.SpawnColumn,
		Lookahead:            c.Board.Lookahead,
		Level:                c.Scoring.Level,
		ClearAnimationFrames: c.Timing.ClearAnimationFrames,
	}
	copy(ec.LinePoints[:], c.Scoring.LinePoints)
	return ec
}

// Step advances one frame: pause handling, at most one input command, and
// the gravity timer.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++

	if in.Has(core.ActionRestart) && g.phase.Current() != phasePlaying {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.phase.Current() {
		case phasePlaying:
			g.fire(evPause)
		case phasePaused:
			g.fire(evResume)
			g.input.Reset()
		}
	}

	if g.phase.Current() != phasePlaying {
		return core.StepResult{State: g.State()}
	}

	g.input.Update(in)
	if cmd := g.input.Next(); cmd != cmdNone {
		g.dispatch(cmd)
	}

	if g.gravity.Advance() {
		g.applyTick(g.eng.Tick())
	}

	return core.StepResult{State: g.State()}
}

// dispatch makes the engine call for cmd.
func (g *Game) dispatch(cmd command) {
	switch cmd {
	case cmdLeft:
		g.eng.MoveLeft()
	case cmdRight:
		g.eng.MoveRight()
	case cmdRotate:
		g.eng.Rotate()
	case cmdDown:
		g.eng.MoveDown()
		g.gravity.Reset()
	case cmdDrop:
		rows := g.eng.Drop()
		g.log.Debug("hard drop", "rows", rows)
	}

	// A piece locked by the player is followed by the next one right away.
	if _, active := g.eng.ActivePiece(); !active {
		g.gravity.Expire()
	}
}

// applyTick reacts to the outcome of an engine tick.
func (g *Game) applyTick(res engine.TickResult) {
	if res.Rows > 0 {
		g.log.Debug("rows cleared",
			"rows", res.Rows,
			"points", res.Points,
			"score", g.eng.Score(),
			"lines", g.eng.Lines())
	}
	if res.ToppedOut {
		g.log.Info("game over", "score", g.eng.Score(), "lines", g.eng.Lines(), "frame", g.frame)
		g.fire(evTopOut)
	}
}

// State returns the current score and status.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.eng.Score(),
		Lines:    g.eng.Lines(),
		Level:    g.eng.Level(),
		GameOver: g.phase.Current() == phaseOver,
		Paused:   g.phase.Current() == phasePaused,
	}
}
