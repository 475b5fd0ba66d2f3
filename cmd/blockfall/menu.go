package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start menu to pick a difficulty",
	Long: `Start Blockfall in interactive menu mode.

Use arrow keys or j/k to pick a difficulty and Enter to play.
After a game ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - High scores
  Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	blockfall.SetConfigPath(flagConfig)

	for {
		best := 0
		if store != nil {
			if high, err := store.HighScore(blockfall.GameID); err == nil {
				best = high
			}
		}

		res, err := tui.RunMenu(cfg, best)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, blockfall.GameID, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}
			continue
		}

		blockfall.SetDifficultyPreset(string(res.Difficulty))
		game, err := registry.Create(blockfall.GameID)
		if err != nil {
			return err
		}

		run := cfg
		if run.Seed == 0 {
			run.Seed = time.Now().UnixNano()
		}
		final, err := tui.Run(game, store, gameLogger(), run)
		if err != nil {
			logger.Error("game ended with an error", "error", err)
			continue
		}
		gameLogger().Debug("run finished", "score", final.GameState().Score, "run_id", final.LastRunID())
	}
}
