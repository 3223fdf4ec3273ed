/*
ledger.go - Validating layer over the append-only store

PURPOSE:
  The Ledger is the single write path into the store. It validates every
  entry before it lands and guarantees nothing malformed is ever persisted.
  Balances are always computed by replaying entries - there is no separate
  stock or cash counter that can drift out of sync.

CRITICAL INVARIANTS:
  1. APPEND-ONLY: No Update, No Delete. EVER.
  2. VALIDATED: Units > 0 when an item is present, Amount >= 0, date set,
     item present in the catalog (cash-only seed entry excepted)
  3. ORDERED: Entries carry monotonic ids; queries return id order

WHY DERIVE EVERYTHING?
  - Audit trail: every balance is explainable from its entries
  - Reproducibility: any as-of date can be replayed exactly
  - Correctness: no partial counter updates to corrupt state

CORRECTIONS:
  A mistaken sale is not edited. A replenishment entry offsets it, and
  both remain in the ledger.

SEE ALSO:
  - store.go: Low-level persistence contract
  - valuation.go: Stock and cash derivation over Query results
*/
package engine

import "context"

// =============================================================================
// LEDGER - Validated append and query
// =============================================================================

type Ledger struct {
	Store   Store
	Catalog *Catalog
}

func NewLedger(store Store, catalog *Catalog) *Ledger {
	return &Ledger{Store: store, Catalog: catalog}
}

// Append validates the entry and persists it, returning the entry with its
// assigned id. Rejects before any write: no partial state on failure.
func (l *Ledger) Append(ctx context.Context, e Entry) (Entry, error) {
	if err := l.validate(e); err != nil {
		return Entry{}, err
	}
	return l.Store.Append(ctx, e)
}

// Query returns the entries for one item up to and including asOf,
// in id order. The result is a fresh slice on every call.
func (l *Ledger) Query(ctx context.Context, itemName string, asOf Date) ([]Entry, error) {
	if !l.Catalog.Contains(itemName) {
		return nil, &UnknownItemError{ItemName: itemName}
	}
	return l.Store.Load(ctx, itemName, asOf)
}

// QueryAll returns every entry (cash-only included) up to asOf, in id order.
func (l *Ledger) QueryAll(ctx context.Context, asOf Date) ([]Entry, error) {
	return l.Store.LoadAll(ctx, asOf)
}

// validate enforces the entry contract. Called on every write path.
func (l *Ledger) validate(e Entry) error {
	if e.Type != EntryReplenishment && e.Type != EntrySale {
		return &ValidationError{Field: "entry_type", Reason: "must be replenishment or sale"}
	}
	if e.OccurredOn.IsZero() {
		return &ValidationError{Field: "occurred_on", Reason: "must be a valid calendar date"}
	}
	if e.Amount.IsNegative() {
		return &ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	if e.CashOnly() {
		// The designated cash seed entry: no item, no units, sale type.
		if e.Units != 0 {
			return &ValidationError{Field: "units", Reason: "cash-only entry carries no units"}
		}
		if e.Type != EntrySale {
			return &ValidationError{Field: "entry_type", Reason: "cash-only entry must be a sale"}
		}
		return nil
	}
	if e.Units <= 0 {
		return &ValidationError{Field: "units", Reason: "must be positive"}
	}
	if !l.Catalog.Contains(e.ItemName) {
		return &UnknownItemError{ItemName: e.ItemName}
	}
	return nil
}

// withStore returns a Ledger bound to a different store, preserving the
// catalog. Used inside WithTx to keep validation on the transactional view.
func (l *Ledger) withStore(s Store) *Ledger {
	return &Ledger{Store: s, Catalog: l.Catalog}
}
