// Package boltdb implements the storage adapter on a local BoltDB file.
package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

// All records live in a single flat bucket; namespacing happens in the keys
// themselves ("user_<username>", "session_current").
var bucketStore = []byte("store")

// Storage is the BoltDB implementation of storage.KVStore.
type Storage struct {
	db *bbolt.DB
}

// New opens (or creates) the BoltDB file at dbPath.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketStore); err != nil {
			return fmt.Errorf("failed to create store bucket: %w", err)
		}
		return nil
	})
}
