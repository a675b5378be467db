package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/samdwyer/warband/internal/game"
)

const schema = `CREATE TABLE IF NOT EXISTS saves (
	slot       TEXT PRIMARY KEY,
	snapshot   TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLiteStore keeps one snapshot per slot in an SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	slot string
}

// OpenSQLite opens (creating if needed) the database at path and binds the
// store to slot.
func OpenSQLite(path, slot string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	if strings.TrimSpace(slot) == "" {
		return nil, errors.New("save slot is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db, slot: slot}, nil
}

// Close closes the database handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load reads the slot's snapshot. A missing row means no game.
func (s *SQLiteStore) Load(ctx context.Context) (game.State, bool, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT snapshot FROM saves WHERE slot = ?`, s.slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return game.State{}, false, nil
	}
	if err != nil {
		return game.State{}, false, fmt.Errorf("select save %q: %w", s.slot, err)
	}
	return DecodeJSON([]byte(data))
}

// Save upserts the slot's snapshot in a single statement.
func (s *SQLiteStore) Save(ctx context.Context, st game.State) error {
	data, err := EncodeJSON(st)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO saves (slot, snapshot, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET snapshot = excluded.snapshot, updated_at = excluded.updated_at`,
		s.slot, string(data), time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("upsert save %q: %w", s.slot, err)
	}
	return nil
}
