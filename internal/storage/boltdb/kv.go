package boltdb

import (
	"bytes"
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/keygate/keygate/internal/storage"
)

// Compile-time check that Storage implements the adapter contract
var _ storage.KVStore = (*Storage)(nil)

// Get returns the value stored under key.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketStore)
		if bucket == nil {
			return fmt.Errorf("store bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrKeyNotFound
		}

		// The slice is only valid inside the transaction; copy it out.
		value = make([]byte, len(data))
		copy(value, data)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return value, nil
}

// Set stores value under key.
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketStore)
		if bucket == nil {
			return fmt.Errorf("store bucket not found")
		}

		if err := bucket.Put([]byte(key), value); err != nil {
			return fmt.Errorf("failed to save value: %w", err)
		}

		return nil
	})
}

// Delete removes the value stored under key.
func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketStore)
		if bucket == nil {
			return fmt.Errorf("store bucket not found")
		}

		if bucket.Get([]byte(key)) == nil {
			return storage.ErrKeyNotFound
		}

		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete value: %w", err)
		}

		return nil
	})
}

// KeysWithPrefix returns every stored key starting with prefix.
func (s *Storage) KeysWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketStore)
		if bucket == nil {
			return fmt.Errorf("store bucket not found")
		}

		c := bucket.Cursor()
		p := []byte(prefix)
		for k, _ := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, _ = c.Next() {
			keys = append(keys, string(k))
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return keys, nil
}
