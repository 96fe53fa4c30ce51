package sqlitekv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/keygate/keygate/internal/storage"
)

// Compile-time check that Storage implements the adapter contract
var _ storage.KVStore = (*Storage)(nil)

// Get returns the value stored under key.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores value under key.
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to save value: %w", err)
	}

	return nil
}

// Delete removes the value stored under key.
func (s *Storage) Delete(ctx context.Context, key string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrKeyNotFound
	}

	return nil
}

// KeysWithPrefix returns every stored key starting with prefix.
// substr comparison instead of LIKE: keys contain underscores, which LIKE
// treats as a wildcard.
func (s *Storage) KeysWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	query := `SELECT key FROM kv WHERE substr(key, 1, ?) = ? ORDER BY key`

	rows, err := s.db.QueryContext(ctx, query, len(prefix), prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate keys: %w", err)
	}

	return keys, nil
}
