/*
seed.go - Deterministic seed plan for a fresh ledger

PURPOSE:
  Builds the starting state of a run: the catalog with minimum stock
  levels assigned, the initial cash entry, and starting stock recorded as
  replenishment entries at catalog cost.

DETERMINISM:
  Stock selection and quantities come from a seeded PRNG, so the same
  seed always produces the same plan. The default covers ~40% of the
  catalog with stock between 200 and 799 units and minimum levels
  between 50 and 149.
*/
package papersupply

import (
	"context"
	"math/rand"

	"github.com/beaverschoice/supply-engine/engine"
)

// =============================================================================
// SEED CONSTANTS
// =============================================================================

const (
	// InitialCash is the opening cash position.
	InitialCash = 50000.00

	// DefaultSeed is the PRNG seed for the stock selection.
	DefaultSeed int64 = 137

	// DefaultCoverage is the fraction of catalog items stocked at seed time.
	DefaultCoverage = 0.4

	minSeedStock = 200
	maxSeedStock = 800 // exclusive
	minThreshold = 50
	maxThreshold = 150 // exclusive
)

// =============================================================================
// SEED PLAN
// =============================================================================

// StockSeed is one item's starting inventory.
type StockSeed struct {
	ItemName string
	Units    int
}

// SeedPlan is everything needed to stand up a fresh ledger.
type SeedPlan struct {
	Catalog []engine.CatalogItem
	Stock   []StockSeed
	Cash    engine.Money
	Date    engine.Date
}

// NewSeedPlan builds the deterministic plan for a seed value. Items not
// selected for stocking keep a zero minimum level: they stay quotable and
// sellable into backorder, but the reorder policy ignores them.
func NewSeedPlan(seed int64, date engine.Date) SeedPlan {
	items := Items()
	rng := rand.New(rand.NewSource(seed))

	count := int(float64(len(items)) * DefaultCoverage)
	selected := rng.Perm(len(items))[:count]

	stocked := make(map[int]bool, count)
	for _, idx := range selected {
		stocked[idx] = true
	}

	plan := SeedPlan{
		Cash: engine.NewMoney(InitialCash),
		Date: date,
	}
	for i, it := range items {
		if stocked[i] {
			it.MinStockLevel = minThreshold + rng.Intn(maxThreshold-minThreshold)
			plan.Stock = append(plan.Stock, StockSeed{
				ItemName: it.ItemName,
				Units:    minSeedStock + rng.Intn(maxSeedStock-minSeedStock),
			})
		}
		plan.Catalog = append(plan.Catalog, it)
	}
	return plan
}

// Apply seeds an empty engine: catalog first, then the cash entry, then
// each starting stock as a replenishment at catalog cost. Low-funds
// warnings from seeding are discarded; the opening cash covers the plan.
func (p SeedPlan) Apply(ctx context.Context, eng *engine.Engine) error {
	if err := eng.AppendCatalog(p.Catalog); err != nil {
		return err
	}
	if _, err := eng.SeedCash(ctx, p.Cash, p.Date); err != nil {
		return err
	}
	for _, s := range p.Stock {
		if _, err := eng.TriggerReorder(ctx, s.ItemName, s.Units, p.Date); err != nil {
			return err
		}
	}
	return nil
}
