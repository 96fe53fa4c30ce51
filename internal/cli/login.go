package cli

import (
	"context"
	"fmt"

	"github.com/keygate/keygate/internal/auth"
	"github.com/keygate/keygate/internal/dashboard"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	acct, dest, err := c.authService.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Login successful!")
	if dest == auth.DestinationAdmin {
		c.io.Println("Opening admin dashboard.")
	} else {
		c.io.Println("Opening dashboard.")
	}
	c.io.Println()

	c.printSummary(dashboard.BuildSummary(acct))

	return nil
}
