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

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("flappy", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("flappy", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("flappy", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("other", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for flappy
	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for other
	otherScores, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(otherScores) != 1 {
		t.Errorf("Expected 1 other score, got %d", len(otherScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("flappy", 100)
	store.SaveScore("flappy", 300)
	store.SaveScore("flappy", 200)

	high, err = store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("flappy", 100)
	store.SaveScore("flappy", 200)
	store.SaveScore("other", 300)

	// Clear only flappy scores
	err = store.ClearScores("flappy")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Flappy should be empty
	flappyScores, _ := store.TopScores("flappy", 10)
	if len(flappyScores) != 0 {
		t.Errorf("Expected 0 flappy scores after clear, got %d", len(flappyScores))
	}

	// Other should still have scores
	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Other scores should not be affected by clearing flappy")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
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

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.flappy/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".flappy", "scores.db"); got != want {
		t.Errorf("ExpandHome() = %q, expected %q", got, want)
	}

	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute paths should be unchanged, got %q", got)
	}
}

func TestBestScoreMissingKey(t *testing.T) {
	store := openTestStore(t)

	best, err := store.LoadBestScore("flappy.best_score")
	if err != nil {
		t.Fatalf("LoadBestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("missing key should read as 0, got %d", best)
	}
}

func TestBestScoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	const key = "flappy.best_score"

	if err := store.SaveBestScore(key, 5); err != nil {
		t.Fatalf("SaveBestScore() failed: %v", err)
	}
	if err := store.SaveBestScore(key, 12); err != nil {
		t.Fatalf("SaveBestScore() failed: %v", err)
	}

	best, err := store.LoadBestScore(key)
	if err != nil {
		t.Fatalf("LoadBestScore() failed: %v", err)
	}
	if best != 12 {
		t.Errorf("best = %d, expected 12", best)
	}

	// A lower score never replaces a higher one
	if err := store.SaveBestScore(key, 7); err != nil {
		t.Fatalf("SaveBestScore() failed: %v", err)
	}
	if best, _ := store.LoadBestScore(key); best != 12 {
		t.Errorf("best = %d after lower save, expected 12", best)
	}
}

func TestBestScoreMalformed(t *testing.T) {
	store := openTestStore(t)
	const key = "flappy.best_score"

	if _, err := store.db.Exec("INSERT INTO settings (key, value) VALUES (?, ?)", key, "lots"); err != nil {
		t.Fatal(err)
	}

	if _, err := store.LoadBestScore(key); err == nil {
		t.Error("malformed value should return an error")
	}

	// A real score overwrites the garbage
	if err := store.SaveBestScore(key, 3); err != nil {
		t.Fatalf("SaveBestScore() failed: %v", err)
	}
	if best, err := store.LoadBestScore(key); err != nil || best != 3 {
		t.Errorf("LoadBestScore() = %d, %v; expected 3", best, err)
	}
}

func TestBestScorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveBestScore("k", 9); err != nil {
		t.Fatalf("SaveBestScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if best, _ := store.LoadBestScore("k"); best != 9 {
		t.Errorf("best = %d after reopen, expected 9", best)
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, score := range []int{2, 4, 9} {
		if _, err := store.SaveScore("flappy", score); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 9 || stats.TotalScore != 15 || stats.AvgScore != 5 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
