package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	code, err := c.io.ReadInput("License key (XXXX-XXXX-XXXX-XXXX): ")
	if err != nil {
		return fmt.Errorf("failed to read license key: %w", err)
	}

	password, err := c.io.ReadPassword("Password (min 6 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	acct, err := c.authService.Register(ctx, username, password, code)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Registration successful!")
	c.io.Printf("Username: %s\n", acct.Username)

	key := acct.Keys[0]
	c.io.Printf("Key: %s (%s, %s)\n", key.Code, key.Tier, key.Duration)
	if acct.IsAdmin {
		c.io.Println("This account has admin privileges.")
	}
	c.io.Println()
	c.io.Println("Run 'keygate login' to open your dashboard.")

	return nil
}
