/*
valuation.go - Stock and cash derivation from the ledger

PURPOSE:
  Computes every derived quantity the engine exposes: stock per item,
  cash balance, and the full inventory snapshot, all as of a given date.
  Nothing here mutates state; valuation is a pure fold over Query results.

DERIVATION:
  stock(item, d) = sum(replenishment.units <= d) - sum(sale.units <= d)
  cash(d)        = sum(sale.amount <= d) - sum(replenishment.amount <= d)

  Both use the same source of truth, so stock and cash are mutually
  consistent at any as-of date.

IDEMPOTENCE:
  Repeated calls with the same ledger state and date return identical
  results. Valuation reads are safe to run concurrently with each other.

SEE ALSO:
  - ledger.go: The Query these folds run over
  - reorder.go: Uses StockOf to project post-sale stock
*/
package engine

import "context"

// =============================================================================
// VALUATION - Point-in-time derived balances
// =============================================================================

type Valuation struct {
	Ledger *Ledger
}

func NewValuation(ledger *Ledger) *Valuation {
	return &Valuation{Ledger: ledger}
}

// StockOf returns the item's stock as of a date. Fails with an
// UnknownItemError for items absent from the catalog. The result can be
// negative when sales have run ahead of replenishment (backorder).
func (v *Valuation) StockOf(ctx context.Context, itemName string, asOf Date) (int, error) {
	entries, err := v.Ledger.Query(ctx, itemName, asOf)
	if err != nil {
		return 0, err
	}
	stock := 0
	for _, e := range entries {
		stock += e.StockDelta()
	}
	return stock, nil
}

// CashBalance returns sale revenue minus replenishment cost over all
// entries up to asOf, independent of item.
func (v *Valuation) CashBalance(ctx context.Context, asOf Date) (Money, error) {
	entries, err := v.Ledger.QueryAll(ctx, asOf)
	if err != nil {
		return Money{}, err
	}
	balance := NewMoney(0)
	for _, e := range entries {
		balance = balance.Add(e.CashDelta())
	}
	return balance, nil
}

// Snapshot returns every catalog item with positive stock as of a date.
// Items at zero or in backorder are omitted.
func (v *Valuation) Snapshot(ctx context.Context, asOf Date) (map[string]int, error) {
	entries, err := v.Ledger.QueryAll(ctx, asOf)
	if err != nil {
		return nil, err
	}
	stocks := make(map[string]int)
	for _, e := range entries {
		if e.CashOnly() {
			continue
		}
		stocks[e.ItemName] += e.StockDelta()
	}
	snapshot := make(map[string]int)
	for name, stock := range stocks {
		if stock > 0 {
			snapshot[name] = stock
		}
	}
	return snapshot, nil
}
