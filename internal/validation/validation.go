// Package validation contains the stateless input checks that gate every
// registration and redemption.
package validation

import (
	"fmt"
	"regexp"

	"github.com/keygate/keygate/internal/catalog"
	"github.com/keygate/keygate/internal/models"
)

// Kind identifies which rule rejected the input.
type Kind string

const (
	KindTooShort     Kind = "too_short"
	KindTooLong      Kind = "too_long"
	KindInvalidChars Kind = "invalid_chars"
	KindMissing      Kind = "missing"
	KindBadFormat    Kind = "bad_format"
	KindNotFound     Kind = "not_found"
)

// Error is a validation rejection. Message is safe to show to the user
// verbatim.
type Error struct {
	Field   string
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// usernamePattern allows latin letters, digits and underscore only.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// keyPattern matches four uppercase-alphanumeric 4-character groups separated
// by hyphens: XXXX-XXXX-XXXX-XXXX.
var keyPattern = regexp.MustCompile(`^[A-Z0-9]{4}(?:-[A-Z0-9]{4}){3}$`)

const (
	// MinUsernameLen is the minimum username length.
	MinUsernameLen = 3
	// MaxUsernameLen is the maximum username length.
	MaxUsernameLen = 20
	// MinPasswordLen is the minimum password length.
	MinPasswordLen = 6
)

// ValidateUsername checks that username is 3-20 characters of letters, digits
// and underscores.
func ValidateUsername(username string) error {
	if len(username) < MinUsernameLen {
		return &Error{
			Field:   "username",
			Kind:    KindTooShort,
			Message: fmt.Sprintf("username must be at least %d characters long", MinUsernameLen),
		}
	}
	if len(username) > MaxUsernameLen {
		return &Error{
			Field:   "username",
			Kind:    KindTooLong,
			Message: fmt.Sprintf("username must not exceed %d characters", MaxUsernameLen),
		}
	}
	if !usernamePattern.MatchString(username) {
		return &Error{
			Field:   "username",
			Kind:    KindInvalidChars,
			Message: "username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)",
		}
	}
	return nil
}

// ValidatePassword checks the minimum password requirements.
func ValidatePassword(password string) error {
	if password == "" {
		return &Error{
			Field:   "password",
			Kind:    KindMissing,
			Message: "password cannot be empty",
		}
	}
	if len(password) < MinPasswordLen {
		return &Error{
			Field:   "password",
			Kind:    KindTooShort,
			Message: fmt.Sprintf("password must be at least %d characters long", MinPasswordLen),
		}
	}
	return nil
}

// ValidateKey checks the key code shape and looks it up in the catalog.
// The format is rejected before any catalog lookup happens.
func ValidateKey(code string, cat *catalog.Catalog) (models.KeyDefinition, error) {
	if code == "" {
		return models.KeyDefinition{}, &Error{
			Field:   "key",
			Kind:    KindMissing,
			Message: "license key cannot be empty",
		}
	}
	if !keyPattern.MatchString(code) {
		return models.KeyDefinition{}, &Error{
			Field:   "key",
			Kind:    KindBadFormat,
			Message: "license key must look like XXXX-XXXX-XXXX-XXXX (uppercase letters and digits)",
		}
	}
	def, ok := cat.Find(code)
	if !ok {
		return models.KeyDefinition{}, &Error{
			Field:   "key",
			Kind:    KindNotFound,
			Message: "license key is not recognized",
		}
	}
	return def, nil
}
