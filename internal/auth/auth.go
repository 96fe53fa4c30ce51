// Package auth orchestrates registration, login and the single-session
// lifecycle on top of the validators, the account store and the key ledger.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/keygate/keygate/internal/catalog"
	"github.com/keygate/keygate/internal/ledger"
	"github.com/keygate/keygate/internal/models"
	"github.com/keygate/keygate/internal/storage"
	"github.com/keygate/keygate/internal/validation"
)

// Destination tells the caller which dashboard to open after login.
type Destination string

const (
	DestinationAdmin    Destination = "admin"
	DestinationStandard Destination = "standard"
)

// Service runs the authentication and session flows. At most one session
// exists at a time: a stored pointer to the current username.
type Service struct {
	accounts *storage.AccountStore
	sessions *storage.SessionStore
	ledger   *ledger.Ledger
	catalog  *catalog.Catalog
	now      func() time.Time
}

// NewService creates the auth service. Collaborators are passed in
// explicitly; nothing here is a process-wide singleton.
func NewService(
	accounts *storage.AccountStore,
	sessions *storage.SessionStore,
	keys *ledger.Ledger,
	cat *catalog.Catalog,
) *Service {
	return &Service{
		accounts: accounts,
		sessions: sessions,
		ledger:   keys,
		catalog:  cat,
		now:      time.Now,
	}
}

// SetClock replaces the time source. Used by tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Register creates a new account gated by a redeemable key. The three inputs
// are validated in order (username, password, key), short-circuiting on the
// first failure. The key must not be held by any existing account; the scan
// runs here because no account exists yet to redeem onto.
// The account is admin iff the registration key's tier is admin; redeeming an
// admin key later does not upgrade an account.
func (s *Service) Register(ctx context.Context, username, password, code string) (*models.Account, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}
	def, err := validation.ValidateKey(code, s.catalog)
	if err != nil {
		return nil, err
	}

	exists, err := s.accounts.Exists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	taken, err := s.ledger.CodeTaken(ctx, def.Code, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ledger.ErrKeyAlreadyUsed
	}

	acct, err := s.accounts.Create(ctx, username, password, def, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return acct, nil
}

// Login authenticates the user, refreshes key status, records the login time
// and stores the session pointer. The returned destination depends on the
// account's role.
func (s *Service) Login(ctx context.Context, username, password string) (*models.Account, Destination, error) {
	acct, err := s.accounts.Get(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	if acct.Password != password {
		return nil, "", ErrWrongPassword
	}

	now := s.now()
	acct.LastLoginAt = now.UnixMilli()

	if _, err := s.ledger.RefreshStatus(ctx, acct, now); err != nil {
		return nil, "", err
	}
	if err := s.accounts.Update(ctx, acct); err != nil {
		return nil, "", err
	}

	if err := s.sessions.Set(ctx, username); err != nil {
		return nil, "", err
	}

	dest := DestinationStandard
	if acct.IsAdmin {
		dest = DestinationAdmin
	}

	return acct, dest, nil
}

// Logout clears the session pointer. Idempotent.
func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// CurrentAccount resolves the session pointer to a freshly refreshed account.
// Returns ErrNotLoggedIn if no session exists or the referenced account
// vanished.
func (s *Service) CurrentAccount(ctx context.Context) (*models.Account, error) {
	username, err := s.sessions.Current(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNoSession) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}

	acct, err := s.accounts.Get(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}

	if _, err := s.ledger.RefreshStatus(ctx, acct, s.now()); err != nil {
		return nil, err
	}

	return acct, nil
}

// Redeem adds code to the logged-in account.
func (s *Service) Redeem(ctx context.Context, code string) (*models.Account, error) {
	acct, err := s.CurrentAccount(ctx)
	if err != nil {
		return nil, err
	}

	return s.ledger.Redeem(ctx, acct, code, s.now())
}

// ChangePassword replaces the logged-in account's password after verifying
// the current one and the confirmation.
func (s *Service) ChangePassword(ctx context.Context, current, newPassword, confirm string) error {
	acct, err := s.CurrentAccount(ctx)
	if err != nil {
		return err
	}

	if acct.Password != current {
		return ErrWrongPassword
	}
	if err := validation.ValidatePassword(newPassword); err != nil {
		return err
	}
	if newPassword != confirm {
		return ErrPasswordMismatch
	}

	acct.Password = newPassword
	if err := s.accounts.Update(ctx, acct); err != nil {
		return fmt.Errorf("failed to persist password: %w", err)
	}

	return nil
}
