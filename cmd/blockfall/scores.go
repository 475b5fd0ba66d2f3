package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresRun   string
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top scores for a game (default blockfall) with overall stats.

Examples:
  blockfall scores
  blockfall scores --limit 25
  blockfall scores --tui
  blockfall scores --run 3f2b...   # show a single run
  blockfall scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show the run with this id")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := blockfall.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'blockfall list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagScoresTUI:
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, gameID, cfg.ScreenW, cfg.ScreenH)
		return err

	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID)
		return nil

	case flagScoresRun != "":
		return printRun(out, store, flagScoresRun)
	}

	return printScores(out, store, gameID, flagScoresLimit)
}

func printScores(out io.Writer, store *storage.Store, gameID string, limit int) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'blockfall play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-6s  %-6s  %s\n", "Rank", "Score", "Lines", "Level", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-6s  %-6s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %-6d  %-6d  %s\n",
			i+1, e.Score, e.Lines, e.Level, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d   Games: %d   Average: %.0f   Lines: %d (best %d)\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines, stats.BestLines)
	return nil
}

func printRun(out io.Writer, store *storage.Store, runID string) error {
	e, err := store.Run(runID)
	if err != nil {
		return err
	}
	if e == nil {
		return fmt.Errorf("no run with id %q", runID)
	}
	fmt.Fprintf(out, "Run     %s\n", e.RunID)
	fmt.Fprintf(out, "Game    %s\n", e.GameID)
	fmt.Fprintf(out, "Score   %d\n", e.Score)
	fmt.Fprintf(out, "Lines   %d\n", e.Lines)
	fmt.Fprintf(out, "Level   %d\n", e.Level)
	fmt.Fprintf(out, "Played  %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}
