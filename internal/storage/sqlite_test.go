package storage

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
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

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.RecordRun("dash", 120, 7); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if coins, _ := store.Coins(); coins != 7 {
		t.Errorf("wallet after reopen = %d, expected 7", coins)
	}
	if high, _ := store.HighScore("dash"); high != 120 {
		t.Errorf("high score after reopen = %d, expected 120", high)
	}
}

func TestStoreRecordRun(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		score, coins int
		newBest      bool
		best, wallet int
	}{
		{100, 3, true, 100, 3},
		{50, 0, false, 100, 3},
		{200, 5, true, 200, 8},
		{200, 1, false, 200, 9},
	}

	for i, r := range runs {
		rec, err := store.RecordRun("dash", r.score, r.coins)
		if err != nil {
			t.Fatalf("run %d: RecordRun() failed: %v", i, err)
		}
		if rec.NewBest != r.newBest || rec.Best != r.best || rec.Wallet != r.wallet {
			t.Errorf("run %d: got %+v, expected best=%d newBest=%v wallet=%d",
				i, rec, r.best, r.newBest, r.wallet)
		}
		if rec.ID == 0 {
			t.Errorf("run %d: missing ID", i)
		}
	}
}

func TestStoreRecordRunZeroScoreIsNotBest(t *testing.T) {
	store := openTestStore(t)

	rec, err := store.RecordRun("dash", 0, 0)
	if err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if rec.NewBest {
		t.Error("a zero score should not count as a new best")
	}
}

func TestStoreRecordRunClampsNegative(t *testing.T) {
	store := openTestStore(t)

	rec, err := store.RecordRun("dash", -5, -3)
	if err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if rec.Wallet != 0 || rec.Credited != 0 {
		t.Errorf("negative coins were credited: %+v", rec)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200, 400, 300} {
		if _, err := store.RecordRun("dash", score, 1); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}
	store.RecordRun("other", 999, 0)

	scores, err := store.TopScores("dash", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 400 || scores[1].Score != 300 || scores[2].Score != 200 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Coins != 1 || scores[0].GameID != "dash" {
		t.Errorf("entry = %+v", scores[0])
	}

	all, _ := store.TopScores("dash", 0)
	if len(all) != 5 {
		t.Errorf("default limit returned %d entries", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("dash")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.RecordRun("dash", 100, 0)
	store.RecordRun("dash", 300, 0)
	store.RecordRun("dash", 200, 0)

	if high, _ = store.HighScore("dash"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScoresKeepsWallet(t *testing.T) {
	store := openTestStore(t)

	store.RecordRun("dash", 100, 4)
	store.RecordRun("other", 300, 0)

	if err := store.ClearScores("dash"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("dash", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("other game should not be affected")
	}
	if coins, _ := store.Coins(); coins != 4 {
		t.Errorf("wallet = %d, expected 4", coins)
	}
}

func TestStoreDefaultSkin(t *testing.T) {
	store := openTestStore(t)

	owned, err := store.OwnedSkins()
	if err != nil {
		t.Fatalf("OwnedSkins() failed: %v", err)
	}
	if !slices.Equal(owned, []string{DefaultSkin}) {
		t.Errorf("owned = %v, expected only %s", owned, DefaultSkin)
	}

	equipped, err := store.EquippedSkin()
	if err != nil {
		t.Fatalf("EquippedSkin() failed: %v", err)
	}
	if equipped != DefaultSkin {
		t.Errorf("equipped = %q, expected %q", equipped, DefaultSkin)
	}
}

func TestStoreBuySkin(t *testing.T) {
	store := openTestStore(t)
	store.RecordRun("dash", 10, 40)

	if _, err := store.BuySkin("neon", 60); !errors.Is(err, ErrInsufficientCoins) {
		t.Fatalf("BuySkin() error = %v, expected ErrInsufficientCoins", err)
	}
	if coins, _ := store.Coins(); coins != 40 {
		t.Errorf("failed purchase changed wallet to %d", coins)
	}

	left, err := store.BuySkin("violet", 35)
	if err != nil {
		t.Fatalf("BuySkin() failed: %v", err)
	}
	if left != 5 {
		t.Errorf("remaining = %d, expected 5", left)
	}

	if _, err := store.BuySkin("violet", 35); !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("second purchase error = %v, expected ErrAlreadyOwned", err)
	}
	if coins, _ := store.Coins(); coins != 5 {
		t.Errorf("wallet = %d, expected 5", coins)
	}

	owned, _ := store.OwnedSkins()
	if !slices.Contains(owned, "violet") {
		t.Errorf("owned = %v, expected violet", owned)
	}
}

func TestStoreEquipSkin(t *testing.T) {
	store := openTestStore(t)

	if err := store.EquipSkin("gold"); !errors.Is(err, ErrSkinNotOwned) {
		t.Fatalf("EquipSkin() error = %v, expected ErrSkinNotOwned", err)
	}

	store.RecordRun("dash", 10, 200)
	if _, err := store.BuySkin("gold", 160); err != nil {
		t.Fatalf("BuySkin() failed: %v", err)
	}
	if err := store.EquipSkin("gold"); err != nil {
		t.Fatalf("EquipSkin() failed: %v", err)
	}
	if got, _ := store.EquippedSkin(); got != "gold" {
		t.Errorf("equipped = %q, expected gold", got)
	}

	// Switching back overwrites the setting.
	if err := store.EquipSkin(DefaultSkin); err != nil {
		t.Fatalf("EquipSkin() failed: %v", err)
	}
	if got, _ := store.EquippedSkin(); got != DefaultSkin {
		t.Errorf("equipped = %q, expected %q", got, DefaultSkin)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("dash")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	store.RecordRun("dash", 100, 2)
	store.RecordRun("dash", 300, 6)

	stats, err = store.GetGameStats("dash")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalScore != 400 || stats.TotalCoins != 8 {
		t.Errorf("totals = %d score, %d coins", stats.TotalScore, stats.TotalCoins)
	}
}
