// Package cli implements the command runners of the keygate tool.
package cli

import (
	"context"
	"fmt"

	"github.com/keygate/keygate/internal/auth"
	"github.com/keygate/keygate/internal/catalog"
	"github.com/keygate/keygate/internal/iocli"
)

// Cli holds the services a command needs. Output goes through the IO
// interface so commands stay testable.
type Cli struct {
	io          iocli.IO
	authService *auth.Service
	catalog     *catalog.Catalog
}

func New(io iocli.IO, authService *auth.Service, cat *catalog.Catalog) *Cli {
	return &Cli{
		io:          io,
		authService: authService,
		catalog:     cat,
	}
}

// Run dispatches command. Returned errors are user-facing.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "keys":
		return c.runKeys(ctx)
	case "redeem":
		return c.runRedeem(ctx, args)
	case "passwd":
		return c.runPasswd(ctx)
	case "catalog":
		return c.runCatalog(ctx)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage writes the command overview to io.
func (c *Cli) PrintUsage() {
	c.io.Println("Keygate - license-key-gated local account vault")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  keygate [OPTIONS] COMMAND")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  --version        Show version information")
	c.io.Println("  --config PATH    Path to YAML config file")
	c.io.Println("  --db PATH        Path to local database (default: keygate.db)")
	c.io.Println("  --driver NAME    Storage driver: bolt or sqlite (default: bolt)")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  register         Register a new account with a license key")
	c.io.Println("  login            Log in and open your dashboard")
	c.io.Println("  logout           Log out of the current session")
	c.io.Println("  status           Show the current account and subscription status")
	c.io.Println("  keys             List your redeemed keys")
	c.io.Println("  redeem <code>    Redeem an additional license key")
	c.io.Println("  passwd           Change the account password")
	c.io.Println("  catalog          List redeemable key codes (masked)")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println("  keygate register")
	c.io.Println("  keygate login")
	c.io.Println("  keygate redeem STND-30AB-77CD-EF19")
	c.io.Println("  keygate --driver sqlite --db keygate.sqlite status")
}
