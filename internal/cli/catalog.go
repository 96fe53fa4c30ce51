package cli

import (
	"context"

	"github.com/keygate/keygate/internal/dashboard"
)

func (c *Cli) runCatalog(ctx context.Context) error {
	c.io.Println("=== Key Catalog ===")
	c.io.Println()

	for _, def := range c.catalog.List() {
		c.io.Printf("%s  %s/%s\n", dashboard.MaskCode(def.Code), def.Tier, def.Duration)
	}

	return nil
}
