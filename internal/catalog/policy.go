package catalog

import (
	"time"

	"github.com/keygate/keygate/internal/models"
)

// Fixed lifetimes per duration class, in milliseconds.
const (
	dayMillis   = int64(24 * time.Hour / time.Millisecond)
	weekMillis  = 7 * dayMillis
	monthMillis = 30 * dayMillis
)

// Offset returns the fixed lifetime for class in milliseconds.
// ok is false for lifetime keys, which never expire.
func Offset(class models.DurationClass) (offset int64, ok bool) {
	switch class {
	case models.DurationOneDay:
		return dayMillis, true
	case models.DurationOneWeek:
		return weekMillis, true
	case models.DurationOneMonth:
		return monthMillis, true
	default:
		return 0, false
	}
}

// ExpiryFor computes the expiry timestamp for a key of the given class
// activated at now. Returns nil for lifetime keys.
func ExpiryFor(class models.DurationClass, now time.Time) *int64 {
	offset, ok := Offset(class)
	if !ok {
		return nil
	}
	expires := now.UnixMilli() + offset
	return &expires
}

// IsExpired reports whether a key with the given expiry is expired at now.
// A nil expiry never expires. The boundary instant now == expiresAt still
// counts as active; the key expires strictly after it.
func IsExpired(expiresAt *int64, now time.Time) bool {
	if expiresAt == nil {
		return false
	}
	return now.UnixMilli() > *expiresAt
}

// Mint builds the RedeemedKey recorded when def is redeemed at now.
func Mint(def models.KeyDefinition, now time.Time) models.RedeemedKey {
	return models.RedeemedKey{
		Code:        def.Code,
		Duration:    def.Duration,
		Tier:        def.Tier,
		Active:      true,
		ActivatedAt: now.UnixMilli(),
		ExpiresAt:   ExpiryFor(def.Duration, now),
	}
}
