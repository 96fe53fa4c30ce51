package cli

import (
	"context"
	"errors"
	"time"

	"github.com/keygate/keygate/internal/auth"
	"github.com/keygate/keygate/internal/dashboard"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Account Status ===")
	c.io.Println()

	acct, err := c.authService.CurrentAccount(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotLoggedIn) {
			c.io.Println("Status: Not logged in")
			c.io.Println()
			c.io.Println("Run 'keygate login' to log in.")
			return nil
		}
		return err
	}

	c.io.Println("Status: Logged in")
	c.io.Println()
	c.printSummary(dashboard.BuildSummary(acct))

	return nil
}

func (c *Cli) printSummary(s dashboard.Summary) {
	c.io.Printf("Username:    %s\n", s.Username)
	c.io.Printf("Role:        %s\n", s.Role)
	c.io.Printf("Joined:      %s\n", s.JoinedAt.Format(time.RFC3339))
	if !s.LastLoginAt.IsZero() {
		c.io.Printf("Last login:  %s\n", s.LastLoginAt.Format(time.RFC3339))
	}
	c.io.Printf("Balance:     %s\n", s.Balance.StringFixed(2))
	c.io.Printf("Orders:      %d\n", s.TotalOrders)
	c.io.Printf("Keys:        %d active / %d total\n", s.ActiveKeys, s.TotalKeys)
}
