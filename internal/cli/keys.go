package cli

import (
	"context"
	"time"

	"github.com/keygate/keygate/internal/dashboard"
)

func (c *Cli) runKeys(ctx context.Context) error {
	acct, err := c.authService.CurrentAccount(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Redeemed Keys ===")
	c.io.Println()

	rows := dashboard.BuildKeyRows(acct)
	for _, row := range rows {
		c.io.Printf("%s  [%s]  %s/%s\n", row.Code, row.Status, row.Tier, row.Duration)
		c.io.Printf("  activated: %s\n", row.ActivatedAt.Format(time.RFC3339))
		if row.ExpiresAt != nil {
			c.io.Printf("  expires:   %s\n", row.ExpiresAt.Format(time.RFC3339))
		} else {
			c.io.Println("  expires:   never")
		}
	}

	return nil
}
