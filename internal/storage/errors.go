package storage

import "errors"

// Common storage errors
var (
	// ErrKeyNotFound indicates that no value exists under the requested key
	ErrKeyNotFound = errors.New("key not found")

	// ErrAccountNotFound indicates that account was not found in storage
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountExists indicates that an account with this username already exists
	ErrAccountExists = errors.New("account already exists")

	// ErrNoSession indicates that no session pointer is stored
	ErrNoSession = errors.New("no active session")
)
