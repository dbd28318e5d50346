// Package history persists quiz answers to a local SQLite database so
// accuracy can be reviewed across sessions. The quiz itself never depends
// on it; recording is best-effort and a missing or broken database must
// never interrupt a session.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS answers (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT    NOT NULL,
	headword    TEXT    NOT NULL,
	correct     INTEGER NOT NULL,
	answered_at TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_answers_headword ON answers(headword);
`

// Store is the answer log. Each Store carries a fresh session ID stamped
// onto every answer it records.
type Store struct {
	db        *sql.DB
	sessionID string
}

// Open connects to the SQLite database at dsn, applies pragmas and creates
// the schema if needed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, sessionID: uuid.New().String()}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SessionID returns the ID stamped on answers recorded by this store.
func (s *Store) SessionID() string {
	return s.sessionID
}

// RecordAnswer appends one evaluated answer to the log.
func (s *Store) RecordAnswer(ctx context.Context, headword string, correct bool) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO answers (session_id, headword, correct, answered_at) VALUES (?, ?, ?, ?)`,
		s.sessionID, headword, correct, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("record answer: %w", err)
	}
	return nil
}

// WordStats aggregates the answer log for one headword.
type WordStats struct {
	Headword string
	Attempts int
	Correct  int
}

// Accuracy returns the fraction of correct answers, 0 when unattempted.
func (w WordStats) Accuracy() float64 {
	if w.Attempts == 0 {
		return 0
	}
	return float64(w.Correct) / float64(w.Attempts)
}

// Stats returns per-headword totals, hardest words first (lowest accuracy,
// ties broken by attempt count then name).
func (s *Store) Stats(ctx context.Context) ([]WordStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT headword, COUNT(*), SUM(correct)
		FROM answers
		GROUP BY headword
		ORDER BY CAST(SUM(correct) AS REAL) / COUNT(*), COUNT(*) DESC, headword`,
	)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	var stats []WordStats
	for rows.Next() {
		var ws WordStats
		if err := rows.Scan(&ws.Headword, &ws.Attempts, &ws.Correct); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		stats = append(stats, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	return stats, nil
}

// applyPragmas configures SQLite for single-user interactive use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LANGLEARN_DB environment variable
// 2. $XDG_DATA_HOME/langlearn/history.db
// 3. ~/.local/share/langlearn/history.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LANGLEARN_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "langlearn", "history.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it does not exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
