/*
engine.go - Engine facade: the library boundary

PURPOSE:
  Wires the catalog, ledger, valuation, pricing, and reorder policy into
  the operations external collaborators call. The engine is a library
  boundary, not a network service; callers supply normalized inputs
  (exact catalog names, validated dates) and receive computed results.

OPERATIONS:
  AppendCatalog      One-time seed of static product data
  SeedCash           Initial cash-only ledger entry
  RecordFulfillment  Reorder-if-needed + sale, atomically
  TriggerReorder     Operator-initiated replenishment
  GenerateQuote      Itemized quote with discounts and rounding
  InventorySnapshot  item -> stock for everything in positive stock
  CashBalance        Point-in-time cash position
  StockLevel         One item's stock with threshold status
  FinancialReport    Cash + inventory valuation + total assets

TRANSACTION BOUNDARY:
  Each fulfillment performs its reads and its appends as one logical
  transaction via TxStore.WithTx: the reorder and sale entries land
  together or not at all, and concurrent fulfillments cannot both observe
  stale pre-threshold stock.

SEE ALSO:
  - reorder.go: The policy RecordFulfillment runs before each sale
  - report.go: FinancialReport implementation
*/
package engine

import (
	"context"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ENGINE
// =============================================================================

type Engine struct {
	catalog   *Catalog
	store     TxStore
	ledger    *Ledger
	valuation *Valuation
	pricing   *Pricing
	reorder   *ReorderPolicy
}

// New creates an engine over a transactional store. The catalog starts
// empty; call AppendCatalog exactly once before any other operation.
func New(store TxStore) *Engine {
	catalog := NewCatalog()
	ledger := NewLedger(store, catalog)
	valuation := NewValuation(ledger)
	return &Engine{
		catalog:   catalog,
		store:     store,
		ledger:    ledger,
		valuation: valuation,
		pricing:   NewPricing(catalog, valuation),
		reorder:   NewReorderPolicy(catalog),
	}
}

// Catalog exposes the read-only catalog for lookups and listings.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// AppendCatalog seeds the static product data. A second call fails with
// ErrCatalogSealed; catalog entries are immutable for the run.
func (e *Engine) AppendCatalog(items []CatalogItem) error {
	return e.catalog.Seed(items)
}

// SeedCash writes the initial cash-only ledger entry.
func (e *Engine) SeedCash(ctx context.Context, amount Money, date Date) (Entry, error) {
	if amount.IsNegative() {
		return Entry{}, &ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	return e.ledger.Append(ctx, Entry{
		Type:       EntrySale,
		Amount:     amount,
		OccurredOn: date,
	})
}

// =============================================================================
// FULFILLMENT
// =============================================================================

// ReorderNotice describes an auto-issued replenishment attached to a
// fulfillment result.
type ReorderNotice struct {
	TransactionID     EntryID
	Units             int
	Cost              Money
	EstimatedDelivery Date
}

type FulfillmentResult struct {
	TransactionID EntryID
	ItemName      string
	Quantity      int
	Revenue       Money
	OrderDate     Date
	DeliveryDate  Date

	UpdatedStock int
	UpdatedCash  Money

	// Reorder is non-nil when the reorder policy fired before this sale.
	Reorder  *ReorderNotice
	Warnings []Warning
}

// RecordFulfillment records a sale of quantity units of itemName, running
// the reorder policy first. The pre-sale stock level is captured once;
// the reorder entry (if any) and the sale entry are appended inside one
// store transaction, so both land or neither does.
//
// Revenue is derived from the catalog price with the bulk-discount tier
// applied, matching what GenerateQuote would have offered for the line.
func (e *Engine) RecordFulfillment(ctx context.Context, itemName string, quantity int, orderDate Date) (*FulfillmentResult, error) {
	if quantity <= 0 {
		return nil, &InvalidQuantityError{ItemName: itemName, Quantity: quantity}
	}
	item, err := e.catalog.Lookup(itemName)
	if err != nil {
		return nil, err
	}
	if orderDate.IsZero() {
		return nil, &ValidationError{Field: "order_date", Reason: "must be a valid calendar date"}
	}

	revenue := item.UnitPrice.MulInt(quantity).Mul(decimal.NewFromInt(1).Sub(BulkDiscount(quantity)))

	result := &FulfillmentResult{
		ItemName:  item.ItemName,
		Quantity:  quantity,
		Revenue:   revenue,
		OrderDate: orderDate,
	}

	err = e.store.WithTx(ctx, func(s Store) error {
		ledger := e.ledger.withStore(s)
		valuation := NewValuation(ledger)

		// Capture pre-sale state once. The threshold decision never
		// re-reads after the shortfall is computed.
		preStock, err := valuation.StockOf(ctx, item.ItemName, orderDate)
		if err != nil {
			return err
		}
		preCash, err := valuation.CashBalance(ctx, orderDate)
		if err != nil {
			return err
		}

		decision, err := e.reorder.Evaluate(ctx, item, quantity, preStock, preCash, orderDate)
		if err != nil {
			return err
		}
		result.Warnings = decision.Warnings

		if decision.Triggered {
			reorderEntry, err := ledger.Append(ctx, decision.Entry(item, orderDate))
			if err != nil {
				return err
			}
			result.Reorder = &ReorderNotice{
				TransactionID:     reorderEntry.ID,
				Units:             decision.Units,
				Cost:              decision.Cost,
				EstimatedDelivery: decision.EstimatedDelivery,
			}
		}

		saleEntry, err := ledger.Append(ctx, Entry{
			ItemName:   item.ItemName,
			Type:       EntrySale,
			Units:      quantity,
			Amount:     revenue,
			OccurredOn: orderDate,
		})
		if err != nil {
			return err
		}
		result.TransactionID = saleEntry.ID

		// Both entries are visible here: updated balances reflect the
		// reorder cost and the sale revenue together.
		result.UpdatedStock, err = valuation.StockOf(ctx, item.ItemName, orderDate)
		if err != nil {
			return err
		}
		result.UpdatedCash, err = valuation.CashBalance(ctx, orderDate)
		return err
	})
	if err != nil {
		return nil, err
	}

	result.DeliveryDate, err = EstimateDelivery(quantity, orderDate)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// =============================================================================
// MANUAL REORDER
// =============================================================================

// ReorderResult reports an operator-initiated replenishment.
type ReorderResult struct {
	TransactionID     EntryID
	ItemName          string
	Units             int
	Cost              Money
	OrderDate         Date
	EstimatedDelivery Date
	UpdatedStock      int
	UpdatedCash       Money
	Warnings          []Warning
}

// TriggerReorder records a replenishment of quantity units at catalog
// cost. A cost exceeding the cash balance is flagged with a LowFunds
// warning but never blocks the order.
func (e *Engine) TriggerReorder(ctx context.Context, itemName string, quantity int, orderDate Date) (*ReorderResult, error) {
	if quantity <= 0 {
		return nil, &InvalidQuantityError{ItemName: itemName, Quantity: quantity}
	}
	item, err := e.catalog.Lookup(itemName)
	if err != nil {
		return nil, err
	}

	cost := item.UnitPrice.MulInt(quantity)
	result := &ReorderResult{
		ItemName:  item.ItemName,
		Units:     quantity,
		Cost:      cost,
		OrderDate: orderDate,
	}

	err = e.store.WithTx(ctx, func(s Store) error {
		ledger := e.ledger.withStore(s)
		valuation := NewValuation(ledger)

		cash, err := valuation.CashBalance(ctx, orderDate)
		if err != nil {
			return err
		}
		if cost.GreaterThan(cash) {
			result.Warnings = append(result.Warnings, Warning{
				Code: WarnLowFunds,
				Message: "reorder cost $" + cost.String() + " exceeds cash balance $" + cash.String(),
			})
		}

		entry, err := ledger.Append(ctx, Entry{
			ItemName:   item.ItemName,
			Type:       EntryReplenishment,
			Units:      quantity,
			Amount:     cost,
			OccurredOn: orderDate,
		})
		if err != nil {
			return err
		}
		result.TransactionID = entry.ID

		result.UpdatedStock, err = valuation.StockOf(ctx, item.ItemName, orderDate)
		if err != nil {
			return err
		}
		result.UpdatedCash, err = valuation.CashBalance(ctx, orderDate)
		return err
	})
	if err != nil {
		return nil, err
	}

	result.EstimatedDelivery, err = EstimateDelivery(quantity, orderDate)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// =============================================================================
// QUERIES
// =============================================================================

// GenerateQuote computes an itemized quote. See pricing.go for tiers and
// rounding policy.
func (e *Engine) GenerateQuote(ctx context.Context, lines []LineRequest, asOf Date) (*Quote, error) {
	return e.pricing.PriceQuote(ctx, lines, asOf)
}

// InventorySnapshot returns item -> stock for every item in positive stock.
func (e *Engine) InventorySnapshot(ctx context.Context, asOf Date) (map[string]int, error) {
	return e.valuation.Snapshot(ctx, asOf)
}

// CashBalance returns the cash position as of a date.
func (e *Engine) CashBalance(ctx context.Context, asOf Date) (Money, error) {
	return e.valuation.CashBalance(ctx, asOf)
}

// StockLevel describes one item's inventory position.
type StockLevel struct {
	ItemName      string
	CurrentStock  int
	MinStockLevel int
	UnitPrice     Money
	Status        StockStatus
}

// StockLevel returns one item's stock with its threshold status.
func (e *Engine) StockLevel(ctx context.Context, itemName string, asOf Date) (*StockLevel, error) {
	item, err := e.catalog.Lookup(itemName)
	if err != nil {
		return nil, err
	}
	stock, err := e.valuation.StockOf(ctx, item.ItemName, asOf)
	if err != nil {
		return nil, err
	}
	return &StockLevel{
		ItemName:      item.ItemName,
		CurrentStock:  stock,
		MinStockLevel: item.MinStockLevel,
		UnitPrice:     item.UnitPrice,
		Status:        StatusFor(stock, item.MinStockLevel),
	}, nil
}
