package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing straight away. The game defaults to blockfall.

Controls:
  Left/A, Right/D   - Move
  Down/S            - Move down one row
  Up/W/Space        - Rotate
  X                 - Hard drop
  P/Esc             - Pause
  R                 - Restart (paused or after game over)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Level 1, one row per second
  normal - Level 2, faster gravity
  hard   - Level 4, fast gravity
  fixed  - Use the config file as is (default)

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall play --level 3 --seed 42
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd, configCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	}
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (overrides config and difficulty)")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Apply a difficulty preset before printing")
	configCmd.Flags().IntVar(&flagLevel, "level", 0, "Override the starting level before printing")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := blockfall.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'blockfall list' to see available games", gameID)
	}
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}
	if flagLevel < 0 {
		return fmt.Errorf("--level must not be negative, got %d", flagLevel)
	}

	blockfall.SetConfigPath(flagConfig)
	blockfall.SetDifficultyPreset(flagDifficulty)
	blockfall.SetStartLevel(flagLevel)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	final, err := tui.Run(game, store, gameLogger(), runtimeConfig())
	if err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	printSummary(cmd, final)
	return nil
}

// runtimeConfig builds the per-run settings from the terminal and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. A failure is logged and play goes on
// without saving scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func printSummary(cmd *cobra.Command, m tui.Model) {
	st := m.GameState()
	if st.Score == 0 && st.Lines == 0 {
		return
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Score %d  Lines %d  Level %d\n", st.Score, st.Lines, st.Level)
	if id := m.LastRunID(); id != "" {
		fmt.Fprintf(out, "Saved as run %s\n", id)
	}
}
