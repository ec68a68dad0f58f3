package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists documents in a single key-value table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Set implements Store. Serialization and write failures are logged and
// reported as false, never propagated.
func (s *SQLiteStore) Set(ctx context.Context, key string, value any) bool {
	payload, err := json.Marshal(value)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to serialize document", "key", key, "error", err)
		return false
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, payload)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to write document", "key", key, "error", err)
		return false
	}

	return true
}

// Get implements Store. A missing or corrupt document leaves dest untouched
// and reports false so the caller keeps its default.
func (s *SQLiteStore) Get(ctx context.Context, key string, dest any) bool {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM documents WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		slog.ErrorContext(ctx, "Failed to read document", "key", key, "error", err)
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		slog.WarnContext(ctx, "Corrupt document, treating as absent", "key", key, "error", err)
		return false
	}

	return true
}

// Remove implements Store.
func (s *SQLiteStore) Remove(ctx context.Context, key string) {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE key = ?`, key); err != nil {
		slog.ErrorContext(ctx, "Failed to remove document", "key", key, "error", err)
	}
}
