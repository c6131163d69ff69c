package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("colorfour", "ann", 3, 4); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("colorfour")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 3 {
		t.Errorf("HighScore() = %d, expected 3 after reopening", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		player       string
		score, level int
	}{
		{"ann", 4, 5},
		{"bob", 2, 3},
		{"cid", 9, 10},
	}
	for _, r := range runs {
		if _, err := store.SaveScore("colorfour", r.player, r.score, r.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different game
	if _, err := store.SaveScore("other", "dan", 50, 1); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("colorfour", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []string{"cid", "ann", "bob"}
	for i, p := range want {
		if scores[i].Player != p {
			t.Errorf("scores[%d].Player = %q, expected %q", i, scores[i].Player, p)
		}
	}
	if scores[0].Score != 9 || scores[0].Level != 10 {
		t.Errorf("top entry = %+v, expected score 9 at level 10", scores[0])
	}
	if scores[0].GameID != "colorfour" {
		t.Errorf("GameID = %q, expected colorfour", scores[0].GameID)
	}
}

func TestStoreTopScoresTieBreak(t *testing.T) {
	store := openTestStore(t)

	// Same score: higher level first, then earlier run
	store.SaveScore("colorfour", "first", 2, 3)
	store.SaveScore("colorfour", "deeper", 2, 4)
	store.SaveScore("colorfour", "second", 2, 3)

	scores, err := store.TopScores("colorfour", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	want := []string{"deeper", "first", "second"}
	for i, p := range want {
		if scores[i].Player != p {
			t.Errorf("scores[%d].Player = %q, expected %q", i, scores[i].Player, p)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", "p", i+1, i+2)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 5 || scores[1].Score != 4 || scores[2].Score != 3 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("TopScores(0) returned %d entries, expected 5", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("colorfour")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 for empty table, got %d", high)
	}

	store.SaveScore("colorfour", "a", 3, 4)
	store.SaveScore("colorfour", "b", 7, 8)
	store.SaveScore("colorfour", "c", 5, 6)

	high, err = store.HighScore("colorfour")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 7 {
		t.Errorf("Expected high score 7, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("colorfour", "a", 1, 2)
	store.SaveScore("other", "a", 1, 2)

	if err := store.ClearScores("colorfour"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("colorfour", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	// Other games are untouched
	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Expected 1 score for other game, got %d", len(other))
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", "p", i, i+1)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("colorfour")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v, expected zero values", stats)
	}

	store.SaveScore("colorfour", "a", 2, 3)
	store.SaveScore("colorfour", "b", 4, 10)

	stats, err = store.GetGameStats("colorfour")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 4 {
		t.Errorf("HighScore = %d, expected 4", stats.HighScore)
	}
	if stats.BestLevel != 10 {
		t.Errorf("BestLevel = %d, expected 10", stats.BestLevel)
	}
	if stats.AvgScore != 3 {
		t.Errorf("AvgScore = %v, expected 3", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
