package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, s *Store, gameID string, score, lines int) ScoreEntry {
	t.Helper()
	e, err := s.SaveScore(ScoreEntry{GameID: gameID, Score: score, Lines: lines, Level: 1})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	return e
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.blockfall/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".blockfall", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestSaveScoreAssignsRunID(t *testing.T) {
	store := openTestStore(t)

	e := save(t, store, "blockfall", 1200, 9)
	if e.ID == 0 {
		t.Error("expected inserted ID")
	}
	if _, err := uuid.Parse(e.RunID); err != nil {
		t.Errorf("RunID %q is not a uuid: %v", e.RunID, err)
	}

	got, err := store.Run(e.RunID)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if got == nil {
		t.Fatal("saved run not found")
	}
	if got.Score != 1200 || got.Lines != 9 || got.Level != 1 || got.GameID != "blockfall" {
		t.Errorf("Run() = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	missing, err := store.Run(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("unknown run should return nil, nil; got %v, %v", missing, err)
	}
}

func TestSaveScoreKeepsGivenRunID(t *testing.T) {
	store := openTestStore(t)
	id := uuid.NewString()

	e, err := store.SaveScore(ScoreEntry{RunID: id, GameID: "blockfall", Score: 10})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if e.RunID != id {
		t.Errorf("RunID = %q, expected %q", e.RunID, id)
	}
	if e.Level != 1 {
		t.Errorf("missing level should default to 1, got %d", e.Level)
	}

	if _, err := store.SaveScore(ScoreEntry{RunID: id, GameID: "blockfall", Score: 20}); err == nil {
		t.Error("duplicate run id should be rejected")
	}
	if _, err := store.SaveScore(ScoreEntry{Score: 20}); err == nil {
		t.Error("score without game id should be rejected")
	}
}

func TestTopScoresOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		save(t, store, "blockfall", i*100, i)
	}
	save(t, store, "other", 9999, 0)

	scores, err := store.TopScores("blockfall", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("scores not in expected order: %+v", scores)
	}
	if scores[0].Lines != 5 {
		t.Errorf("lines not stored, got %d", scores[0].Lines)
	}

	all, _ := store.TopScores("blockfall", 0)
	if len(all) != 5 {
		t.Errorf("default limit should return all 5, got %d", len(all))
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("blockfall")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for empty game, got %d", high)
	}

	save(t, store, "blockfall", 100, 1)
	save(t, store, "blockfall", 300, 2)
	save(t, store, "blockfall", 200, 1)

	if high, _ = store.HighScore("blockfall"); high != 300 {
		t.Errorf("expected high score 300, got %d", high)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "blockfall", 100, 1)
	save(t, store, "other", 300, 0)

	if err := store.ClearScores("blockfall"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("blockfall", 10); len(scores) != 0 {
		t.Errorf("expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("other games should not be affected")
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("blockfall")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	save(t, store, "blockfall", 100, 1)
	save(t, store, "blockfall", 500, 4)
	before := time.Now().UTC().Add(-time.Minute)

	stats, err := store.GetGameStats("blockfall")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 500 || stats.AvgScore != 300 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalLines != 5 || stats.BestLines != 4 {
		t.Errorf("line stats = %d/%d, expected 5/4", stats.TotalLines, stats.BestLines)
	}
	if stats.LastPlayed.Before(before) {
		t.Errorf("LastPlayed = %v, expected recent", stats.LastPlayed)
	}
}

func TestParseTime(t *testing.T) {
	ref := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	tests := []struct {
		name string
		in   any
	}{
		{"time", ref},
		{"sqlite string", "2024-05-06 07:08:09"},
		{"rfc3339", "2024-05-06T07:08:09Z"},
		{"bytes", []byte("2024-05-06 07:08:09")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseTime(tc.in); !got.Equal(ref) {
				t.Errorf("parseTime(%v) = %v", tc.in, got)
			}
		})
	}
	if !parseTime(nil).IsZero() || !parseTime("garbage").IsZero() {
		t.Error("unparseable values should give zero time")
	}
}
