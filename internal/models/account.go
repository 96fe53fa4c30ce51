package models

import (
	"github.com/shopspring/decimal"
)

// DurationClass controls how long a redeemed key stays active.
type DurationClass string

const (
	DurationOneDay   DurationClass = "1day"
	DurationOneWeek  DurationClass = "1week"
	DurationOneMonth DurationClass = "1month"
	DurationLifetime DurationClass = "lifetime"
)

// Valid reports whether d is one of the known duration classes.
func (d DurationClass) Valid() bool {
	switch d {
	case DurationOneDay, DurationOneWeek, DurationOneMonth, DurationLifetime:
		return true
	}
	return false
}

// Tier is the account privilege class granted by a key.
type Tier string

const (
	TierTrial    Tier = "trial"
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
	TierAdmin    Tier = "admin"
)

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierTrial, TierStandard, TierPremium, TierAdmin:
		return true
	}
	return false
}

// KeyDefinition is a single redeemable entry of the compiled-in catalog.
// Codes are unique within the catalog.
type KeyDefinition struct {
	Code     string        `json:"code"`
	Duration DurationClass `json:"duration"`
	Tier     Tier          `json:"tier"`
}

// RedeemedKey is a catalog key bound to exactly one account.
// ExpiresAt is nil iff the key is a lifetime key. Active is a cache of
// (ExpiresAt == nil || ExpiresAt > now) and must be recomputed on every read,
// never trusted from storage.
type RedeemedKey struct {
	Code        string        `json:"code"`
	Duration    DurationClass `json:"duration"`
	Tier        Tier          `json:"tier"`
	Active      bool          `json:"active"`
	ActivatedAt int64         `json:"activated_at"`
	ExpiresAt   *int64        `json:"expires_at"`
}

// Account is a registered user record. Username is unique and immutable after
// creation. Keys is append-only; a key never moves between accounts.
// The password is stored and compared as-is, matching the original scheme this
// store replicates.
type Account struct {
	ID          string          `json:"id"`
	Username    string          `json:"username"`
	Password    string          `json:"password"`
	IsAdmin     bool            `json:"is_admin"`
	Keys        []RedeemedKey   `json:"keys"`
	JoinedAt    int64           `json:"joined_at"`
	Balance     decimal.Decimal `json:"balance"`
	TotalOrders int             `json:"total_orders"`
	LastLoginAt int64           `json:"last_login_at"`
}

// HasKey reports whether the account already holds code.
func (a *Account) HasKey(code string) bool {
	for _, k := range a.Keys {
		if k.Code == code {
			return true
		}
	}
	return false
}
