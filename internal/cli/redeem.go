package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runRedeem(ctx context.Context, args []string) error {
	var code string
	var err error

	if len(args) > 0 {
		code = args[0]
	} else {
		code, err = c.io.ReadInput("License key (XXXX-XXXX-XXXX-XXXX): ")
		if err != nil {
			return fmt.Errorf("failed to read license key: %w", err)
		}
	}

	acct, err := c.authService.Redeem(ctx, code)
	if err != nil {
		return err
	}

	key := acct.Keys[len(acct.Keys)-1]
	c.io.Println("Key redeemed!")
	c.io.Printf("Key: %s (%s, %s)\n", key.Code, key.Tier, key.Duration)

	return nil
}
