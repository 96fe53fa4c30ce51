// Package storage defines the flat key-value adapter the engine persists
// through, plus the account and session stores built on top of it.
package storage

import "context"

// KVStore is the storage adapter contract: a synchronous flat string-keyed
// store. Implementations are reliable but fallible; any failure is surfaced
// to the caller as-is and never retried here. The engine always validates
// first and mutates the store last, so a failed write means the operation did
// not happen.
type KVStore interface {
	// Get returns the value stored under key.
	// Returns ErrKeyNotFound if no value exists.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key.
	// Returns ErrKeyNotFound if no value exists.
	Delete(ctx context.Context, key string) error

	// KeysWithPrefix returns every stored key starting with prefix,
	// in lexicographic order.
	KeysWithPrefix(ctx context.Context, prefix string) ([]string, error)

	// Close releases the underlying store.
	Close() error
}
