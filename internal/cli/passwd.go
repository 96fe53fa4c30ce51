package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runPasswd(ctx context.Context) error {
	c.io.Println("=== Change Password ===")
	c.io.Println()

	current, err := c.io.ReadPassword("Current password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	newPassword, err := c.io.ReadPassword("New password (min 6 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm new password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if err := c.authService.ChangePassword(ctx, current, newPassword, confirm); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Password changed.")

	return nil
}
