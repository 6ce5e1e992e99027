// Package storage provides SQLite-based persistence for match results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/gridrun/lightcycles/internal/core"
)

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// MatchRecord is the outcome of one finished match.
type MatchRecord struct {
	ID        int64
	Mode      string        // "solo", "duel" or "demo"
	Winner    core.PlayerID // 0 on a draw
	Draw      bool
	Score1    int // session tally after the match
	Score2    int
	Ticks     uint64
	CreatedAt time.Time
}

// Tally aggregates a session's match outcomes per mode.
type Tally struct {
	Mode    string
	Matches int
	Wins1   int
	Wins2   int
	Draws   int
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			winner INTEGER NOT NULL DEFAULT 0,
			draw INTEGER NOT NULL DEFAULT 0,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_mode ON matches(mode);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
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

// SaveMatch records a finished match. Returns the ID of the inserted row.
func (s *Store) SaveMatch(rec MatchRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO matches (mode, winner, draw, score1, score2, ticks)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Mode, int(rec.Winner), boolToInt(rec.Draw), rec.Score1, rec.Score2, rec.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, winner, draw, score1, score2, ticks, created_at
		 FROM matches
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var rec MatchRecord
		var winner, draw int
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.Mode, &winner, &draw,
			&rec.Score1, &rec.Score2, &rec.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Winner = core.PlayerID(winner)
		rec.Draw = draw != 0
		rec.CreatedAt = parseTimestamp(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// ModeTally returns the aggregated outcome counts for one mode.
func (s *Store) ModeTally(mode string) (Tally, error) {
	tally := Tally{Mode: mode}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 1 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 2 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(draw), 0)
		 FROM matches WHERE mode = ?`,
		mode,
	).Scan(&tally.Matches, &tally.Wins1, &tally.Wins2, &tally.Draws)
	if err != nil {
		return tally, fmt.Errorf("storage: cannot tally mode %s: %w", mode, err)
	}

	return tally, nil
}

// AllTallies returns the per-mode tallies for every mode ever recorded.
func (s *Store) AllTallies() ([]Tally, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 1 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 2 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(draw), 0)
		 FROM matches
		 GROUP BY mode
		 ORDER BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query tallies: %w", err)
	}
	defer rows.Close()

	var tallies []Tally
	for rows.Next() {
		var t Tally
		if err := rows.Scan(&t.Mode, &t.Matches, &t.Wins1, &t.Wins2, &t.Draws); err != nil {
			return nil, fmt.Errorf("storage: cannot scan tally row: %w", err)
		}
		tallies = append(tallies, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return tallies, nil
}

// ClearMatches deletes all recorded matches for the given mode.
func (s *Store) ClearMatches(mode string) error {
	_, err := s.db.Exec("DELETE FROM matches WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// parseTimestamp handles the driver returning either time.Time or a
// SQLite datetime string.
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
