package storage

import (
	"context"
	"fmt"
)

// sessionKey is the reserved singleton key holding the current username.
// At most one session exists per store.
const sessionKey = "session_current"

// SessionStore persists the session pointer.
type SessionStore struct {
	kv KVStore
}

// NewSessionStore creates a SessionStore over the given adapter.
func NewSessionStore(kv KVStore) *SessionStore {
	return &SessionStore{kv: kv}
}

// Current returns the username of the logged-in account.
// Returns ErrNoSession if nobody is logged in.
func (s *SessionStore) Current(ctx context.Context) (string, error) {
	data, err := s.kv.Get(ctx, sessionKey)
	if err != nil {
		if err == ErrKeyNotFound {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}
	return string(data), nil
}

// Set records username as the current session, replacing any previous one.
func (s *SessionStore) Set(ctx context.Context, username string) error {
	if err := s.kv.Set(ctx, sessionKey, []byte(username)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear removes the session pointer. Idempotent: clearing an absent session
// is not an error.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, sessionKey); err != nil && err != ErrKeyNotFound {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
