package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/keygate/keygate/internal/catalog"
	"github.com/keygate/keygate/internal/models"
)

// accountKeyPrefix namespaces account records in the flat store.
const accountKeyPrefix = "user_"

// AccountStore persists one JSON record per account under "user_<username>".
type AccountStore struct {
	kv KVStore
}

// NewAccountStore creates an AccountStore over the given adapter.
func NewAccountStore(kv KVStore) *AccountStore {
	return &AccountStore{kv: kv}
}

func accountKey(username string) string {
	return accountKeyPrefix + username
}

// Exists reports whether an account with this username is persisted.
func (s *AccountStore) Exists(ctx context.Context, username string) (bool, error) {
	_, err := s.kv.Get(ctx, accountKey(username))
	if err != nil {
		if err == ErrKeyNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check account: %w", err)
	}
	return true, nil
}

// Get retrieves the account stored under username.
// Returns ErrAccountNotFound if no such account exists.
func (s *AccountStore) Get(ctx context.Context, username string) (*models.Account, error) {
	data, err := s.kv.Get(ctx, accountKey(username))
	if err != nil {
		if err == ErrKeyNotFound {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	acct := &models.Account{}
	if err := json.Unmarshal(data, acct); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	return acct, nil
}

// Create builds a fresh account holding exactly one redeemed key (the
// registration key) and persists it. IsAdmin is derived once here, from the
// registration key's tier, and never changes afterwards.
// Returns ErrAccountExists if the username is already taken.
func (s *AccountStore) Create(
	ctx context.Context,
	username, password string,
	def models.KeyDefinition,
	now time.Time,
) (*models.Account, error) {
	exists, err := s.Exists(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAccountExists
	}

	acct := &models.Account{
		ID:          uuid.New().String(),
		Username:    username,
		Password:    password,
		IsAdmin:     def.Tier == models.TierAdmin,
		Keys:        []models.RedeemedKey{catalog.Mint(def, now)},
		JoinedAt:    now.UnixMilli(),
		Balance:     decimal.Zero,
		TotalOrders: 0,
		LastLoginAt: 0,
	}

	if err := s.Update(ctx, acct); err != nil {
		return nil, err
	}

	return acct, nil
}

// Update overwrites the persisted record for acct.Username.
func (s *AccountStore) Update(ctx context.Context, acct *models.Account) error {
	data, err := json.Marshal(acct)
	if err != nil {
		return fmt.Errorf("failed to marshal account: %w", err)
	}

	if err := s.kv.Set(ctx, accountKey(acct.Username), data); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	return nil
}

// Delete removes the account stored under username. No in-scope flow calls
// this; it exists as a primitive.
// Returns ErrAccountNotFound if no such account exists.
func (s *AccountStore) Delete(ctx context.Context, username string) error {
	if err := s.kv.Delete(ctx, accountKey(username)); err != nil {
		if err == ErrKeyNotFound {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

// ListAll returns every persisted account. The store is small by design;
// this is a full linear scan used for key-uniqueness checks.
func (s *AccountStore) ListAll(ctx context.Context) ([]*models.Account, error) {
	keys, err := s.kv.KeysWithPrefix(ctx, accountKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate accounts: %w", err)
	}

	accounts := make([]*models.Account, 0, len(keys))
	for _, key := range keys {
		data, err := s.kv.Get(ctx, key)
		if err != nil {
			if err == ErrKeyNotFound {
				// Removed between enumeration and read.
				continue
			}
			return nil, fmt.Errorf("failed to get account %q: %w", key, err)
		}

		acct := &models.Account{}
		if err := json.Unmarshal(data, acct); err != nil {
			return nil, fmt.Errorf("failed to unmarshal account %q: %w", key, err)
		}
		accounts = append(accounts, acct)
	}

	return accounts, nil
}
