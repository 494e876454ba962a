// Package storage keeps the round history of the current session in an
// in-memory SQLite database. Nothing is written to disk; the history is gone
// when the process exits.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the session database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// RoundRecord is one finished round.
type RoundRecord struct {
	ID            int64
	Level         int
	Tier          string
	GridSize      int
	Outcome       string // "complete" or "failed"
	RevealSeconds float64
	Clicks        int
	PlayedFor     float64 // Seconds spent pressing tiles
	CreatedAt     time.Time
}

// SessionStats aggregates the rounds of the session.
type SessionStats struct {
	Rounds       int
	Completed    int
	Failed       int
	BestLevel    int // Highest completed level, -1 if none
	BestGridSize int // Largest completed grid, 0 if none
	TotalClicks  int
	PlayedFor    float64
}

// Outcome names stored in the outcome column.
const (
	OutcomeComplete = "complete"
	OutcomeFailed   = "failed"
)

// OpenMemory creates an empty in-memory session database.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level INTEGER NOT NULL,
			tier TEXT NOT NULL,
			grid_size INTEGER NOT NULL,
			outcome TEXT NOT NULL CHECK (outcome IN ('complete', 'failed')),
			reveal_secs REAL NOT NULL,
			clicks INTEGER NOT NULL DEFAULT 0,
			played_secs REAL NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_outcome ON rounds(outcome);
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

// RecordRound stores a finished round and returns its ID.
func (s *Store) RecordRound(r RoundRecord) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds
		 (level, tier, grid_size, outcome, reveal_secs, clicks, played_secs, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Level, r.Tier, r.GridSize, r.Outcome, r.RevealSeconds, r.Clicks, r.PlayedFor, r.CreatedAt.UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRounds returns up to limit rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level, tier, grid_size, outcome, reveal_secs, clicks, played_secs, created_at
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var createdAt int64
		if err := rows.Scan(&r.ID, &r.Level, &r.Tier, &r.GridSize, &r.Outcome,
			&r.RevealSeconds, &r.Clicks, &r.PlayedFor, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = time.Unix(0, createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// Stats returns aggregated statistics for the session.
func (s *Store) Stats() (SessionStats, error) {
	var stats SessionStats
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'complete'), 0),
		        COALESCE(SUM(outcome = 'failed'), 0),
		        COALESCE(MAX(CASE WHEN outcome = 'complete' THEN level END), -1),
		        COALESCE(MAX(CASE WHEN outcome = 'complete' THEN grid_size END), 0),
		        COALESCE(SUM(clicks), 0),
		        COALESCE(SUM(played_secs), 0)
		 FROM rounds`,
	).Scan(&stats.Rounds, &stats.Completed, &stats.Failed, &stats.BestLevel,
		&stats.BestGridSize, &stats.TotalClicks, &stats.PlayedFor)
	if err != nil {
		return SessionStats{}, fmt.Errorf("storage: cannot get session stats: %w", err)
	}
	return stats, nil
}

// Clear deletes every recorded round.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}
