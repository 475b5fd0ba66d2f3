package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// execute runs the root command with args and returns its stdout. Flag values
// are reset first since cobra keeps them between runs.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "blockfall")
	assert.Contains(t, out, "Blockfall")
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config", "--difficulty", "hard", "--level", "6")
	require.NoError(t, err)

	cfg, err := config.Parse([]byte(out))
	require.NoError(t, err, "printed config should load back:\n%s", out)
	assert.Equal(t, 6, cfg.Scoring.Level)
	assert.Equal(t, 10, cfg.Board.Width)

	out, err = execute(t, "config", "--default")
	require.NoError(t, err)
	assert.Equal(t, string(config.DefaultYAML()), out)

	_, err = execute(t, "config", "--difficulty", "insane")
	assert.Error(t, err)
}

func TestScoresCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")

	out, err := execute(t, "scores", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No scores recorded yet.")

	store, err := storage.Open(db)
	require.NoError(t, err)
	saved, err := store.SaveScore(storage.ScoreEntry{GameID: "blockfall", Score: 1500, Lines: 12, Level: 2})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	out, err = execute(t, "scores", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "1500")
	assert.Contains(t, out, "Best: 1500")

	out, err = execute(t, "scores", "--db", db, "--run", saved.RunID)
	require.NoError(t, err)
	assert.Contains(t, out, saved.RunID)
	assert.Contains(t, out, "Lines   12")

	_, err = execute(t, "scores", "--db", db, "--clear")
	require.NoError(t, err)
	out, err = execute(t, "scores", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No scores recorded yet.")

	_, err = execute(t, "scores", "nope", "--db", db)
	assert.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "list", "--log-level", "loud")
	assert.Error(t, err)
}
