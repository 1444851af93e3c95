package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func result(preset, outcome string, d time.Duration) GameResult {
	return GameResult{
		Preset:   preset,
		Rows:     9,
		Cols:     9,
		Mines:    10,
		Seed:     42,
		Outcome:  outcome,
		Cleared:  71,
		Moves:    30,
		Duration: d,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	first, err := store.SaveResult(result("beginner", OutcomeLost, 5*time.Second))
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	second, err := store.SaveResult(result("expert", OutcomeWon, 90*time.Second))
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if second <= first {
		t.Errorf("IDs not increasing: %d then %d", first, second)
	}

	recent, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(recent))
	}

	// Newest first
	got := recent[0]
	if got.ID != second || got.Preset != "expert" || got.Outcome != OutcomeWon {
		t.Errorf("unexpected newest result %+v", got)
	}
	if got.Duration != 90*time.Second {
		t.Errorf("Duration = %v, expected 90s", got.Duration)
	}
	if got.Rows != 9 || got.Cols != 9 || got.Mines != 10 || got.Seed != 42 || got.Cleared != 71 || got.Moves != 30 {
		t.Errorf("fields not round-tripped: %+v", got)
	}
}

func TestStoreBestTimes(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(result("beginner", OutcomeWon, 40*time.Second))
	store.SaveResult(result("beginner", OutcomeLost, 1*time.Second))
	store.SaveResult(result("beginner", OutcomeWon, 12*time.Second))
	store.SaveResult(result("beginner", OutcomeWon, 25*time.Second))
	store.SaveResult(result("expert", OutcomeWon, 2*time.Second))

	best, err := store.BestTimes("beginner", 2)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("Expected 2 results with limit, got %d", len(best))
	}
	if best[0].Duration != 12*time.Second || best[1].Duration != 25*time.Second {
		t.Errorf("Best times not in expected order: %v, %v", best[0].Duration, best[1].Duration)
	}
	for _, r := range best {
		if r.Outcome != OutcomeWon || r.Preset != "beginner" {
			t.Errorf("unexpected result in best times: %+v", r)
		}
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("beginner")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Played != 0 || stats.Won != 0 || stats.BestTime != 0 || stats.WinRate() != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveResult(result("beginner", OutcomeWon, 30*time.Second))
	store.SaveResult(result("beginner", OutcomeLost, 3*time.Second))
	store.SaveResult(result("beginner", OutcomeAbandoned, 8*time.Second))
	store.SaveResult(result("beginner", OutcomeWon, 20*time.Second))

	stats, err = store.Stats("beginner")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Played != 4 {
		t.Errorf("Played = %d, expected 4", stats.Played)
	}
	if stats.Won != 2 {
		t.Errorf("Won = %d, expected 2", stats.Won)
	}
	if stats.BestTime != 20*time.Second {
		t.Errorf("BestTime = %v, expected 20s", stats.BestTime)
	}
	if stats.WinRate() != 0.5 {
		t.Errorf("WinRate = %f, expected 0.5", stats.WinRate())
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(result("beginner", OutcomeWon, time.Second))
	store.SaveResult(result("expert", OutcomeWon, time.Second))

	if err := store.ClearResults("beginner"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	recent, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 1 || recent[0].Preset != "expert" {
		t.Errorf("Expected only the expert result to remain, got %+v", recent)
	}
}
