/*
store.go - Persistence interface for the append-only ledger

PURPOSE:
  Defines the interface between the engine and the database. Any durable
  ordered log works: the engine only needs appends with monotonic ids and
  filtered, id-ordered reads.

APPEND-ONLY CONTRACT:
  - Append(): the ONLY write operation; the store assigns the next id
  - NO Update() or Delete() methods exist
  - Corrections are new offsetting entries

ATOMIC WRITES:
  TxStore.WithTx gives all-or-nothing semantics for the reorder-before-sale
  pair: both entries land or neither does. A store is also expected to
  serialize writers; derived stock and cash stay mutually consistent at
  every externally observable point.

IMPLEMENTATIONS:
  - store/sqlite/sqlite.go: Production SQLite
  - engine/store/memory.go: In-memory for tests

SEE ALSO:
  - ledger.go: Validating layer over the Store
*/
package engine

import "context"

// =============================================================================
// STORE - Append-only entry persistence
// =============================================================================

// Store persists ledger entries.
// IMPORTANT: Store is APPEND-ONLY. No Update, No Delete. Ever.
type Store interface {
	// Append persists an entry and returns it with its assigned id.
	// Ids are monotonic and never reused. This is the ONLY write operation.
	Append(ctx context.Context, e Entry) (Entry, error)

	// Load returns entries for one item with OccurredOn <= asOf, ordered
	// by id. Cash-only entries are never returned by Load.
	Load(ctx context.Context, itemName string, asOf Date) ([]Entry, error)

	// LoadAll returns every entry (cash-only included) with
	// OccurredOn <= asOf, ordered by id.
	LoadAll(ctx context.Context, asOf Date) ([]Entry, error)
}

// =============================================================================
// TRANSACTIONAL STORE - Atomic multi-entry writes
// =============================================================================

// TxStore wraps Store with transaction support.
// Used for the reorder+sale pair: if fn returns an error the transaction
// is rolled back and neither entry is visible.
type TxStore interface {
	Store

	WithTx(ctx context.Context, fn func(Store) error) error
}

// =============================================================================
// CATALOG STORE - Optional persistence for the seed-once catalog
// =============================================================================

// CatalogStore persists catalog items so a restarted process can reload the
// same reference data. Write-once, like the in-memory Catalog.
type CatalogStore interface {
	SaveCatalog(ctx context.Context, items []CatalogItem) error
	LoadCatalog(ctx context.Context) ([]CatalogItem, error)
}
