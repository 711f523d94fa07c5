// Package storage provides the rally ledger: an SQLite database that lives in
// memory for the duration of the process and records how every rally ended.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Nothing is written to disk; the ledger disappears when the program exits.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-tennis/internal/games/tennis"
)

// Store manages the in-memory rally ledger of one play session.
type Store struct {
	db        *sql.DB
	sessionID string
}

// RallyEntry is a recorded rally.
type RallyEntry struct {
	ID        int64
	SessionID string
	tennis.RallyResult
	CreatedAt time.Time
}

// Summary contains aggregated statistics for the session.
type Summary struct {
	SessionID    string
	Rallies      int
	LeftPoints   int
	RightPoints  int
	LeftWins     int // Matches won by the player
	RightWins    int // Matches won by the CPU
	LongestRally time.Duration
	MostBalls    int
	TopSpeed     float64
	MostHits     int
}

// Open creates an empty in-memory ledger with a fresh session ID.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: gets its own database; pin a single one.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, sessionID: uuid.NewString()}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rallies (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			rally INTEGER NOT NULL,
			scorer TEXT NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			left_score INTEGER NOT NULL,
			right_score INTEGER NOT NULL,
			balls INTEGER NOT NULL,
			speed REAL NOT NULL,
			hits INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rallies_session ON rallies(session_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding the ledger.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SessionID returns the ID rallies are recorded under.
func (s *Store) SessionID() string {
	return s.sessionID
}

// RecordRally implements tennis.RallyRecorder.
func (s *Store) RecordRally(r tennis.RallyResult) error {
	_, err := s.db.Exec(
		`INSERT INTO rallies
		 (session_id, rally, scorer, won, left_score, right_score, balls, speed, hits, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.sessionID,
		r.Rally,
		r.Scorer.String(),
		r.Won,
		r.LeftScore,
		r.RightScore,
		r.Balls,
		r.Speed,
		r.Hits,
		r.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record rally: %w", err)
	}
	return nil
}

// Ensure Store implements RallyRecorder
var _ tennis.RallyRecorder = (*Store)(nil)

// Rallies retrieves the most recent rallies of the session, newest first.
func (s *Store) Rallies(limit int) ([]RallyEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, rally, scorer, won, left_score, right_score,
		        balls, speed, hits, duration_ms, created_at
		 FROM rallies
		 WHERE session_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		s.sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rallies: %w", err)
	}
	defer rows.Close()

	var entries []RallyEntry
	for rows.Next() {
		var (
			e          RallyEntry
			scorer     string
			durationMS int64
			createdAt  any
		)
		if err := rows.Scan(
			&e.ID,
			&e.SessionID,
			&e.Rally,
			&scorer,
			&e.Won,
			&e.LeftScore,
			&e.RightScore,
			&e.Balls,
			&e.Speed,
			&e.Hits,
			&durationMS,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		e.Scorer = parseSide(scorer)
		e.Duration = time.Duration(durationMS) * time.Millisecond

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Summary aggregates the session's rallies.
func (s *Store) Summary() (*Summary, error) {
	sum := &Summary{SessionID: s.sessionID}

	var longestMS int64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(scorer = 'left'), 0),
		        COALESCE(SUM(scorer = 'right'), 0),
		        COALESCE(SUM(won AND scorer = 'left'), 0),
		        COALESCE(SUM(won AND scorer = 'right'), 0),
		        COALESCE(MAX(duration_ms), 0),
		        COALESCE(MAX(balls), 0),
		        COALESCE(MAX(speed), 0),
		        COALESCE(MAX(hits), 0)
		 FROM rallies WHERE session_id = ?`,
		s.sessionID,
	).Scan(
		&sum.Rallies,
		&sum.LeftPoints,
		&sum.RightPoints,
		&sum.LeftWins,
		&sum.RightWins,
		&longestMS,
		&sum.MostBalls,
		&sum.TopSpeed,
		&sum.MostHits,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot summarize rallies: %w", err)
	}
	sum.LongestRally = time.Duration(longestMS) * time.Millisecond

	return sum, nil
}

// parseSide converts a stored scorer name back to a side.
func parseSide(name string) tennis.Side {
	if name == tennis.SideLeft.String() {
		return tennis.SideLeft
	}
	return tennis.SideRight
}
