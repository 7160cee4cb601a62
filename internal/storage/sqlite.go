// Package storage provides the SQLite-backed round log for a play session.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The log lives in memory by default and disappears with the process.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Result is how a round ended.
type Result string

const (
	ResultWon  Result = "won"
	ResultLost Result = "lost"
)

// Store manages the SQLite connection for the round log.
type Store struct {
	db *sql.DB
}

// RoundRecord is one finished round.
type RoundRecord struct {
	ID         int64
	Round      int
	Secret     int
	Result     Result
	Score      int
	Guesses    int
	FinishedAt time.Time
}

// Stats aggregates the rounds recorded so far.
type Stats struct {
	Rounds    int
	Wins      int
	Losses    int
	BestScore int
	AvgScore  float64
}

// OpenSession opens an in-memory round log scoped to the current process.
func OpenSession() (*Store, error) {
	return Open(MemoryDSN)
}

// Open creates or opens a SQLite database at the given path.
// MemoryDSN keeps everything in memory; any other path gets its parent
// directories created first.
func Open(dbPath string) (*Store, error) {
	if dbPath != MemoryDSN {
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
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round INTEGER NOT NULL,
			secret INTEGER NOT NULL,
			result TEXT NOT NULL CHECK (result IN ('won', 'lost')),
			score INTEGER NOT NULL,
			guesses INTEGER NOT NULL DEFAULT 0,
			finished_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_score ON rounds(score DESC);
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

// RecordRound stores a finished round and returns its row ID.
func (s *Store) RecordRound(rec RoundRecord) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO rounds (round, secret, result, score, guesses) VALUES (?, ?, ?, ?, ?)",
		rec.Round, rec.Secret, string(rec.Result), rec.Score, rec.Guesses,
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

// Rounds returns up to limit rounds, most recent first.
// A non-positive limit returns every round.
func (s *Store) Rounds(limit int) ([]RoundRecord, error) {
	query := `SELECT id, round, secret, result, score, guesses, finished_at
		 FROM rounds
		 ORDER BY round DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	return s.queryRounds(query, args...)
}

// TopRounds returns the best won rounds, highest score first.
func (s *Store) TopRounds(limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryRounds(
		`SELECT id, round, secret, result, score, guesses, finished_at
		 FROM rounds
		 WHERE result = 'won'
		 ORDER BY score DESC, round ASC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRounds(query string, args ...any) ([]RoundRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var result string
		var finishedAt any
		if err := rows.Scan(&r.ID, &r.Round, &r.Secret, &result, &r.Score, &r.Guesses, &finishedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Result = Result(result)
		r.FinishedAt = parseTime(finishedAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats returns aggregate numbers over every recorded round.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN result = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(CASE WHEN result = 'won' THEN score ELSE 0 END), 0),
		        COALESCE(AVG(score), 0)
		 FROM rounds`,
	).Scan(&st.Rounds, &st.Wins, &st.BestScore, &st.AvgScore)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.Losses = st.Rounds - st.Wins

	return st, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
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
