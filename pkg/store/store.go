package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	// use the sqlite db driver.
	_ "github.com/mattn/go-sqlite3"
)

// The two fixed logical keys under which the collections are mirrored.
const (
	TasksKey   = "recreo_tasks"
	PartiesKey = "recreo_parties"
)

//go:embed base.sql
var baseSQL string

// Store is a keyed persistence surface backed by a single sqlite file.
// It holds the last-saved serialized form of each collection; it knows
// nothing about what the values mean.
type Store struct {
	conn *sql.DB
}

// NewStore opens the sqlite database at the given filename and
// initializes the structure if not present.
func NewStore(ctx context.Context, filename string) (*Store, error) {
	conn, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("error connecting to sqlite db at %s: %w", filename, err)
	}

	store := Store{conn: conn}

	// run idempotent setup sql to create the empty table if it doesn't exist
	if _, err := store.conn.ExecContext(ctx, baseSQL); err != nil {
		return nil, fmt.Errorf("error running base sql: %w", err)
	}

	return &store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Load returns the serialized value stored under key. The second return
// value is false when no prior value exists.
func (s *Store) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var value string

	err := s.conn.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("error loading value for key %s: %w", key, err)
	}

	return []byte(value), true, nil
}

// Save writes the serialized value under key, replacing any prior value.
func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES ($1, $2)
		     ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("error saving value for key %s: %w", key, err)
	}

	return nil
}
