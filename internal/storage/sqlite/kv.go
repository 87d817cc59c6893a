package sqlite

import (
	"context"
	"database/sql"

	"task-manager/internal/errors"
	"task-manager/internal/storage/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// KV is a durable key-value store backed by a single SQLite table.
// Values are opaque strings; serialization is the caller's concern.
type KV struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and runs migrations.
// Use ":memory:" for an ephemeral store in tests.
func New(dbPath string) (*KV, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// The pool must stay on one connection: an in-memory DSN opens a fresh
	// empty database per connection.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &KV{db: db}, nil
}

// Close closes the database connection
func (s *KV) Close() error {
	return s.db.Close()
}

// Get retrieves the value stored under key. The second return value reports
// whether the key was present.
func (s *KV) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM kv_cells WHERE key = ?`

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.NewStorageError("get value", err).WithContext("key", key)
	}
	return value, true, nil
}

// Put stores value under key, overwriting any prior value. Exactly one row
// is mutated per successful call.
func (s *KV) Put(ctx context.Context, key, value string) error {
	query := `
	INSERT INTO kv_cells (key, value, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return errors.NewStorageError("put value", err).WithContext("key", key)
	}
	return nil
}

// Delete removes the entry under key. Deleting an absent key is not an error.
func (s *KV) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv_cells WHERE key = ?`

	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return errors.NewStorageError("delete value", err).WithContext("key", key)
	}
	return nil
}
