/*
reorder.go - Autonomous replenishment policy

PURPOSE:
  Decides, at fulfillment time, whether a prospective sale would breach an
  item's minimum stock threshold, and if so sizes and emits a
  replenishment entry BEFORE the sale entry. Evaluated per fulfillment,
  never on a schedule.

STATE MACHINE (per item):
  Sufficient -> BelowThreshold -> ReplenishmentIssued -> Sufficient

TRANSITION RULE:
  projected = stock(item, orderDate) - quantity
  projected may go negative: the engine sells into backorder rather than
  blocking the sale.
  if projected < min_stock_level:
      reorder max(min_stock_level*2 - projected, 0) units at catalog cost,
      dated orderDate, appended before the sale.

LOW FUNDS:
  If the reorder cost exceeds the current cash balance the reorder is
  still issued, flagged with a LowFunds warning. Continuity of service
  wins over hard blocking.

RACE AVOIDANCE:
  The pre-sale stock level is captured once inside the caller's write
  transaction and never re-read after the shortfall is computed. Two
  sequential fulfillments each re-evaluate against the ledger state left
  by the prior one, so a reorder already satisfied is not re-triggered.

SEE ALSO:
  - engine.go: Runs Evaluate inside TxStore.WithTx with the sale append
  - delivery.go: Lead-time estimate attached to the issued reorder
*/
package engine

import (
	"context"
	"fmt"
)

// =============================================================================
// REORDER POLICY
// =============================================================================

type ReorderPolicy struct {
	Catalog *Catalog
}

func NewReorderPolicy(catalog *Catalog) *ReorderPolicy {
	return &ReorderPolicy{Catalog: catalog}
}

// ReorderDecision is the outcome of evaluating the policy for one sale.
type ReorderDecision struct {
	// Triggered is true when projected stock breaches the threshold and a
	// replenishment of Units > 0 must be appended before the sale.
	Triggered bool
	Units     int
	Cost      Money

	// EstimatedDelivery of the replenishment, when triggered.
	EstimatedDelivery Date

	Warnings []Warning
}

// Evaluate applies the transition rule to a prospective sale.
//
// preSaleStock is the stock level captured once by the caller; cashBalance
// is the cash position at the same instant. Evaluate performs no reads of
// its own, which keeps the read-decide-append sequence inside one
// serialized write transaction.
func (rp *ReorderPolicy) Evaluate(ctx context.Context, item CatalogItem, quantity int, preSaleStock int, cashBalance Money, orderDate Date) (ReorderDecision, error) {
	if quantity <= 0 {
		return ReorderDecision{}, &InvalidQuantityError{ItemName: item.ItemName, Quantity: quantity}
	}

	var decision ReorderDecision

	projected := preSaleStock - quantity
	if projected < 0 {
		decision.Warnings = append(decision.Warnings, Warning{
			Code: WarnBackorder,
			Message: fmt.Sprintf("sale of %d units exceeds stock of %d for %s; selling into backorder",
				quantity, preSaleStock, item.ItemName),
		})
	}

	if item.MinStockLevel <= 0 || projected >= item.MinStockLevel {
		return decision, nil
	}

	units := item.MinStockLevel*2 - projected
	if units <= 0 {
		return decision, nil
	}

	est, err := EstimateDelivery(units, orderDate)
	if err != nil {
		return ReorderDecision{}, err
	}

	decision.Triggered = true
	decision.Units = units
	decision.Cost = item.UnitPrice.MulInt(units)
	decision.EstimatedDelivery = est

	if decision.Cost.GreaterThan(cashBalance) {
		decision.Warnings = append(decision.Warnings, Warning{
			Code: WarnLowFunds,
			Message: fmt.Sprintf("reorder of %d units of %s costs $%s against a cash balance of $%s",
				units, item.ItemName, decision.Cost, cashBalance),
		})
	}
	return decision, nil
}

// Entry materializes the replenishment ledger entry for a triggered decision.
func (d ReorderDecision) Entry(item CatalogItem, orderDate Date) Entry {
	return Entry{
		ItemName:   item.ItemName,
		Type:       EntryReplenishment,
		Units:      d.Units,
		Amount:     d.Cost,
		OccurredOn: orderDate,
	}
}
