package auth

import "errors"

// Authentication errors. All are recoverable from the caller's point of view;
// the message is safe to show to the user.
var (
	// ErrUsernameTaken indicates the username is already registered
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrUserNotFound indicates no account exists for the username
	ErrUserNotFound = errors.New("user not found")

	// ErrWrongPassword indicates the supplied password does not match
	ErrWrongPassword = errors.New("wrong password")

	// ErrNotLoggedIn indicates no active session exists
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrPasswordMismatch indicates the new password and its confirmation differ
	ErrPasswordMismatch = errors.New("passwords do not match")
)
