// Package storage provides SQLite-based persistence for runs, the coin
// wallet and owned skins.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultSkin is owned by every player and equipped when nothing else is.
const DefaultSkin = "classic"

const settingEquippedSkin = "equipped_skin"

var (
	// ErrInsufficientCoins is returned when the wallet cannot cover a purchase.
	ErrInsufficientCoins = errors.New("storage: insufficient coins")
	// ErrSkinNotOwned is returned when equipping a skin that was never bought.
	ErrSkinNotOwned = errors.New("storage: skin not owned")
	// ErrAlreadyOwned is returned when buying a skin twice.
	ErrAlreadyOwned = errors.New("storage: skin already owned")
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished run.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Coins     int
	CreatedAt time.Time
}

// RunRecord is the outcome of committing a run.
type RunRecord struct {
	ID       int64
	NewBest  bool // score beat every previous run
	Best     int  // best score after this run
	Wallet   int  // wallet balance after crediting the run's coins
	Credited int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	// SQLite allows one writer; serialize through a single connection so
	// concurrent SSH sessions queue instead of failing with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS wallet (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			coins INTEGER NOT NULL DEFAULT 0 CHECK (coins >= 0)
		);
		INSERT OR IGNORE INTO wallet (id, coins) VALUES (1, 0);

		CREATE TABLE IF NOT EXISTS owned_skins (
			skin_id TEXT PRIMARY KEY,
			acquired_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT OR IGNORE INTO owned_skins (skin_id) VALUES ('` + DefaultSkin + `');

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun stores a finished run and credits its coins to the wallet in a
// single transaction. Negative values are treated as zero.
func (s *Store) RecordRun(gameID string, score, coins int) (RunRecord, error) {
	score = max(score, 0)
	coins = max(coins, 0)

	tx, err := s.db.Begin()
	if err != nil {
		return RunRecord{}, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	var prev sql.NullInt64
	if err := tx.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&prev); err != nil {
		return RunRecord{}, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	res, err := tx.Exec(
		"INSERT INTO scores (game_id, score, coins) VALUES (?, ?, ?)",
		gameID, score, coins,
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return RunRecord{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if _, err := tx.Exec("UPDATE wallet SET coins = coins + ? WHERE id = 1", coins); err != nil {
		return RunRecord{}, fmt.Errorf("storage: cannot credit wallet: %w", err)
	}

	var wallet int
	if err := tx.QueryRow("SELECT coins FROM wallet WHERE id = 1").Scan(&wallet); err != nil {
		return RunRecord{}, fmt.Errorf("storage: cannot read wallet: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return RunRecord{}, fmt.Errorf("storage: cannot commit run: %w", err)
	}

	best := int(prev.Int64) // 0 when there is no previous run
	return RunRecord{
		ID:       id,
		NewBest:  score > best,
		Best:     max(score, best),
		Wallet:   wallet,
		Credited: coins,
	}, nil
}

// TopScores retrieves the top N runs for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, coins, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Coins, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all runs for the given game. The wallet is untouched.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Coins returns the wallet balance.
func (s *Store) Coins() (int, error) {
	var coins int
	if err := s.db.QueryRow("SELECT coins FROM wallet WHERE id = 1").Scan(&coins); err != nil {
		return 0, fmt.Errorf("storage: cannot read wallet: %w", err)
	}
	return coins, nil
}

// OwnedSkins returns the identifiers of every owned skin in purchase order.
func (s *Store) OwnedSkins() ([]string, error) {
	rows, err := s.db.Query("SELECT skin_id FROM owned_skins ORDER BY acquired_at, rowid")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query skins: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return ids, nil
}

// OwnsSkin reports whether the skin has been bought.
func (s *Store) OwnsSkin(skinID string) (bool, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM owned_skins WHERE skin_id = ?", skinID).Scan(&n); err != nil {
		return false, fmt.Errorf("storage: cannot query skin: %w", err)
	}
	return n > 0, nil
}

// BuySkin debits price from the wallet and marks the skin owned.
// It returns the remaining balance.
func (s *Store) BuySkin(skinID string, price int) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	var owned int
	if err := tx.QueryRow("SELECT COUNT(*) FROM owned_skins WHERE skin_id = ?", skinID).Scan(&owned); err != nil {
		return 0, fmt.Errorf("storage: cannot query skin: %w", err)
	}
	if owned > 0 {
		return 0, fmt.Errorf("%w: %s", ErrAlreadyOwned, skinID)
	}

	var coins int
	if err := tx.QueryRow("SELECT coins FROM wallet WHERE id = 1").Scan(&coins); err != nil {
		return 0, fmt.Errorf("storage: cannot read wallet: %w", err)
	}
	if coins < price {
		return coins, fmt.Errorf("%w: have %d, need %d", ErrInsufficientCoins, coins, price)
	}

	if _, err := tx.Exec("UPDATE wallet SET coins = coins - ? WHERE id = 1", price); err != nil {
		return 0, fmt.Errorf("storage: cannot debit wallet: %w", err)
	}
	if _, err := tx.Exec("INSERT INTO owned_skins (skin_id) VALUES (?)", skinID); err != nil {
		return 0, fmt.Errorf("storage: cannot record skin: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit purchase: %w", err)
	}
	return coins - price, nil
}

// EquipSkin selects an owned skin.
func (s *Store) EquipSkin(skinID string) error {
	owned, err := s.OwnsSkin(skinID)
	if err != nil {
		return err
	}
	if !owned {
		return fmt.Errorf("%w: %s", ErrSkinNotOwned, skinID)
	}

	_, err = s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		settingEquippedSkin, skinID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot equip skin: %w", err)
	}
	return nil
}

// EquippedSkin returns the selected skin, or DefaultSkin if none was chosen.
func (s *Store) EquippedSkin() (string, error) {
	var id string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", settingEquippedSkin).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultSkin, nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot read equipped skin: %w", err)
	}
	return id, nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	TotalCoins int64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(SUM(coins), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &stats.TotalCoins, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTimestamp(lastPlayed)

	return stats, nil
}

// parseTimestamp handles the driver returning either time.Time or text.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
