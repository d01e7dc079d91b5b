// Package transcript persists handled turns to a local SQLite database.
package transcript

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/bgdnvk/parley/internal/agent/model"
)

// DefaultMaxTurns bounds the table when no limit is configured.
const DefaultMaxTurns = 500

var ErrInvalidRecord = errors.New("turn record needs a session id")

// Store keeps the most recent turns across sessions.
type Store struct {
	db       *sql.DB
	mu       sync.RWMutex
	maxTurns int
}

// Open creates (or reuses) the database at path. The parent directory is
// created if needed. maxTurns <= 0 selects DefaultMaxTurns.
func Open(path string, maxTurns int) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create transcript directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping transcript: %w", err)
	}

	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	store := &Store{db: db, maxTurns: maxTurns}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate transcript: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS turns (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		turn INTEGER NOT NULL,
		utterance TEXT NOT NULL,
		intents TEXT NOT NULL,
		output TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_turns_session_id ON turns(session_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append stores rec and prunes the oldest rows beyond the turn limit.
func (s *Store) Append(ctx context.Context, rec model.TurnRecord) error {
	if rec.SessionID == "" {
		return ErrInvalidRecord
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	intents, err := json.Marshal(rec.Intents)
	if err != nil {
		return fmt.Errorf("encode intents: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO turns (session_id, turn, utterance, intents, output, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.Turn, rec.Utterance, string(intents), rec.Output,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append turn: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`DELETE FROM turns WHERE id NOT IN (SELECT id FROM turns ORDER BY id DESC LIMIT ?)`,
		s.maxTurns,
	)
	if err != nil {
		return fmt.Errorf("prune turns: %w", err)
	}
	return nil
}

// Recent returns up to limit turns, oldest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]model.TurnRecord, error) {
	if limit <= 0 {
		limit = s.maxTurns
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
	SELECT session_id, turn, utterance, intents, output, created_at
	FROM (SELECT * FROM turns ORDER BY id DESC LIMIT ?)
	ORDER BY id ASC
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}
	defer rows.Close()

	var records []model.TurnRecord
	for rows.Next() {
		var rec model.TurnRecord
		var intents, createdAt string
		if err := rows.Scan(&rec.SessionID, &rec.Turn, &rec.Utterance, &intents, &rec.Output, &createdAt); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		if err := json.Unmarshal([]byte(intents), &rec.Intents); err != nil {
			return nil, fmt.Errorf("decode intents: %w", err)
		}
		rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes every stored turn and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM turns`)
	if err != nil {
		return 0, fmt.Errorf("clear turns: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) Close() error {
	return s.db.Close()
}
