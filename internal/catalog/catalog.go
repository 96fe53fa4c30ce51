// Package catalog holds the fixed set of redeemable key definitions and the
// duration policy that turns a redeemed key into an expiry timestamp.
package catalog

import (
	"github.com/keygate/keygate/internal/models"
)

// Catalog is the compiled-in table of redeemable keys. It is not editable at
// runtime.
type Catalog struct {
	defs   []models.KeyDefinition
	byCode map[string]models.KeyDefinition
}

// New builds a catalog from the given definitions. Later duplicates of the
// same code are ignored; codes are unique within a catalog.
func New(defs ...models.KeyDefinition) *Catalog {
	c := &Catalog{
		defs:   make([]models.KeyDefinition, 0, len(defs)),
		byCode: make(map[string]models.KeyDefinition, len(defs)),
	}
	for _, def := range defs {
		if _, ok := c.byCode[def.Code]; ok {
			continue
		}
		c.byCode[def.Code] = def
		c.defs = append(c.defs, def)
	}
	return c
}

// Default returns the shipped demo catalog.
func Default() *Catalog {
	return New(
		models.KeyDefinition{Code: "DEMO-1234-ABCD-5678", Duration: models.DurationOneDay, Tier: models.TierTrial},
		models.KeyDefinition{Code: "TRIA-7D42-81QZ-MM3X", Duration: models.DurationOneWeek, Tier: models.TierTrial},
		models.KeyDefinition{Code: "STND-30AB-77CD-EF19", Duration: models.DurationOneMonth, Tier: models.TierStandard},
		models.KeyDefinition{Code: "PREM-30XY-44ZT-0K2L", Duration: models.DurationOneMonth, Tier: models.TierPremium},
		models.KeyDefinition{Code: "PREM-LIFE-9Q8W-7E6R", Duration: models.DurationLifetime, Tier: models.TierPremium},
		models.KeyDefinition{Code: "ADMN-2025-MSTR-KEYS", Duration: models.DurationLifetime, Tier: models.TierAdmin},
	)
}

// Find returns the definition matching code exactly.
func (c *Catalog) Find(code string) (models.KeyDefinition, bool) {
	def, ok := c.byCode[code]
	return def, ok
}

// List returns the catalog entries in declaration order.
func (c *Catalog) List() []models.KeyDefinition {
	out := make([]models.KeyDefinition, len(c.defs))
	copy(out, c.defs)
	return out
}
