// Package dashboard builds read-only display snapshots of account data.
// It never mutates anything; callers must hand it freshly refreshed accounts.
package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/keygate/keygate/internal/models"
)

// Summary is the header view of an account.
type Summary struct {
	Username    string
	Role        string
	JoinedAt    time.Time
	LastLoginAt time.Time
	Balance     decimal.Decimal
	TotalOrders int
	ActiveKeys  int
	TotalKeys   int
}

// KeyRow is one redeemed key as displayed in the subscription list.
type KeyRow struct {
	Code        string
	Tier        models.Tier
	Duration    models.DurationClass
	Status      string
	ActivatedAt time.Time
	ExpiresAt   *time.Time
}

// BuildSummary snapshots acct for display. acct must already be refreshed.
func BuildSummary(acct *models.Account) Summary {
	active := 0
	for _, k := range acct.Keys {
		if k.Active {
			active++
		}
	}

	role := "standard"
	if acct.IsAdmin {
		role = "admin"
	}

	var lastLogin time.Time
	if acct.LastLoginAt > 0 {
		lastLogin = time.UnixMilli(acct.LastLoginAt)
	}

	return Summary{
		Username:    acct.Username,
		Role:        role,
		JoinedAt:    time.UnixMilli(acct.JoinedAt),
		LastLoginAt: lastLogin,
		Balance:     acct.Balance,
		TotalOrders: acct.TotalOrders,
		ActiveKeys:  active,
		TotalKeys:   len(acct.Keys),
	}
}

// BuildKeyRows snapshots acct's keys for display, in redemption order.
func BuildKeyRows(acct *models.Account) []KeyRow {
	rows := make([]KeyRow, 0, len(acct.Keys))
	for _, k := range acct.Keys {
		status := "expired"
		if k.Active {
			status = "active"
		}

		var expires *time.Time
		if k.ExpiresAt != nil {
			t := time.UnixMilli(*k.ExpiresAt)
			expires = &t
		}

		rows = append(rows, KeyRow{
			Code:        k.Code,
			Tier:        k.Tier,
			Duration:    k.Duration,
			Status:      status,
			ActivatedAt: time.UnixMilli(k.ActivatedAt),
			ExpiresAt:   expires,
		})
	}
	return rows
}

// MaskCode hides everything but the first group of a key code:
// "DEMO-1234-ABCD-5678" becomes "DEMO-****-****-****".
func MaskCode(code string) string {
	if len(code) <= 5 {
		return code
	}
	masked := []byte(code)
	for i := 5; i < len(masked); i++ {
		if masked[i] != '-' {
			masked[i] = '*'
		}
	}
	return string(masked)
}
