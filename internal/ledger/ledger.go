// Package ledger maintains the per-account list of redeemed keys: status
// refresh against the clock, redemption, and the global key-uniqueness rule.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/keygate/keygate/internal/catalog"
	"github.com/keygate/keygate/internal/models"
	"github.com/keygate/keygate/internal/storage"
	"github.com/keygate/keygate/internal/validation"
)

// Redemption errors
var (
	// ErrDuplicateKey indicates the account already holds this code
	ErrDuplicateKey = errors.New("key already redeemed on this account")

	// ErrKeyAlreadyUsed indicates another account already holds this code
	ErrKeyAlreadyUsed = errors.New("key already used by another account")
)

// Ledger derives key status and appends redeemed keys.
type Ledger struct {
	accounts *storage.AccountStore
	catalog  *catalog.Catalog
}

// New creates a Ledger over the given account store and catalog.
func New(accounts *storage.AccountStore, cat *catalog.Catalog) *Ledger {
	return &Ledger{accounts: accounts, catalog: cat}
}

// RefreshStatus recomputes Active for every key of acct from its expiry and
// now. The stored Active flag is only a cache and is never trusted. If any
// flag flipped, the account is persisted; otherwise this is a pure no-op.
// Must run before presenting any account's key data.
func (l *Ledger) RefreshStatus(ctx context.Context, acct *models.Account, now time.Time) (*models.Account, error) {
	changed := false
	for i := range acct.Keys {
		active := !catalog.IsExpired(acct.Keys[i].ExpiresAt, now)
		if acct.Keys[i].Active != active {
			acct.Keys[i].Active = active
			changed = true
		}
	}

	if changed {
		if err := l.accounts.Update(ctx, acct); err != nil {
			return nil, fmt.Errorf("failed to persist key status: %w", err)
		}
	}

	return acct, nil
}

// Redeem validates code, enforces both uniqueness rules, appends the new key
// to acct and persists it.
//
// The uniqueness check is scan-then-append: two processes sharing the store
// can both pass the scan before either writes, double-assigning the code.
// Accepted for the single-process target; a multi-writer store would need an
// atomic insert-if-absent on the code instead.
func (l *Ledger) Redeem(ctx context.Context, acct *models.Account, code string, now time.Time) (*models.Account, error) {
	def, err := validation.ValidateKey(code, l.catalog)
	if err != nil {
		return nil, err
	}

	if acct.HasKey(def.Code) {
		return nil, ErrDuplicateKey
	}

	taken, err := l.CodeTaken(ctx, def.Code, acct.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrKeyAlreadyUsed
	}

	acct.Keys = append(acct.Keys, catalog.Mint(def, now))
	if err := l.accounts.Update(ctx, acct); err != nil {
		return nil, fmt.Errorf("failed to persist redeemed key: %w", err)
	}

	return acct, nil
}

// ActiveCount returns the number of active keys after a status refresh.
func (l *Ledger) ActiveCount(ctx context.Context, acct *models.Account, now time.Time) (int, error) {
	if _, err := l.RefreshStatus(ctx, acct, now); err != nil {
		return 0, err
	}

	count := 0
	for _, k := range acct.Keys {
		if k.Active {
			count++
		}
	}
	return count, nil
}

// CodeTaken reports whether any account other than excludeUsername already
// holds code. Full-store linear scan; the store is small by design.
func (l *Ledger) CodeTaken(ctx context.Context, code, excludeUsername string) (bool, error) {
	accounts, err := l.accounts.ListAll(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to scan accounts: %w", err)
	}

	for _, other := range accounts {
		if other.Username == excludeUsername {
			continue
		}
		if other.HasKey(code) {
			return true, nil
		}
	}

	return false, nil
}
