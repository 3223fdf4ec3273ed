/*
Package sqlite provides a SQLite-backed implementation of the storage
interfaces.

PURPOSE:
  Implements engine.Store, engine.TxStore, and engine.CatalogStore over
  SQLite. Any durable ordered log satisfies the engine's contract; SQLite
  is the smallest one that survives a restart.

APPEND-ONLY ENFORCEMENT:
  - No UPDATE statements on the entries table
  - No DELETE statements on the entries table
  - AUTOINCREMENT guarantees monotonic, never-reused ids

KEY TABLES:
  entries:  Immutable ledger of inventory and cash movements
  catalog:  Seed-once product reference data

CONCURRENCY:
  A sync.Mutex serializes writers; WithTx holds it for the whole
  read-decide-append sequence so two concurrent fulfillments cannot both
  observe stale pre-threshold stock. Reads go through database/sql
  directly.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging): readers don't block,
  a single writer at a time, better crash recovery.

USAGE:
  store, err := sqlite.New("./data/supply.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()
  eng := engine.New(store)

SEE ALSO:
  - engine/store.go: Interface definitions
  - engine/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/beaverschoice/supply-engine/engine"
)

// Store implements the storage interfaces using SQLite.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// New creates a SQLite store at the given path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	-- Entries (append-only ledger). item_name is NULL only for the
	-- cash-only seed entry; units is NULL for the same entry.
	CREATE TABLE IF NOT EXISTS entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		item_name TEXT,
		entry_type TEXT NOT NULL CHECK (entry_type IN ('replenishment', 'sale')),
		units INTEGER,
		amount TEXT NOT NULL,
		occurred_on TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_entries_item_date
		ON entries(item_name, occurred_on);
	CREATE INDEX IF NOT EXISTS idx_entries_date
		ON entries(occurred_on);

	-- Catalog (seed-once reference data)
	CREATE TABLE IF NOT EXISTS catalog (
		item_name TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		unit_price TEXT NOT NULL,
		min_stock_level INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// ENTRY STORE (engine.Store interface)
// =============================================================================

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Append inserts an entry and returns it with its assigned id.
func (s *Store) Append(ctx context.Context, e engine.Entry) (engine.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return appendEntry(ctx, s.db, e)
}

func appendEntry(ctx context.Context, db querier, e engine.Entry) (engine.Entry, error) {
	var itemName, units any
	if !e.CashOnly() {
		itemName = e.ItemName
		units = e.Units
	}

	result, err := db.ExecContext(ctx, `
		INSERT INTO entries (item_name, entry_type, units, amount, occurred_on, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		itemName,
		string(e.Type),
		units,
		e.Amount.Value.String(),
		e.OccurredOn.String(),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return engine.Entry{}, fmt.Errorf("failed to append entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return engine.Entry{}, fmt.Errorf("failed to read entry id: %w", err)
	}
	e.ID = engine.EntryID(id)
	return e, nil
}

// Load returns entries for one item up to asOf, in id order.
func (s *Store) Load(ctx context.Context, itemName string, asOf engine.Date) ([]engine.Entry, error) {
	return loadEntries(ctx, s.db, itemName, asOf)
}

// LoadAll returns every entry (cash-only included) up to asOf, in id order.
func (s *Store) LoadAll(ctx context.Context, asOf engine.Date) ([]engine.Entry, error) {
	return loadAllEntries(ctx, s.db, asOf)
}

func loadEntries(ctx context.Context, db querier, itemName string, asOf engine.Date) ([]engine.Entry, error) {
	return queryEntries(ctx, db, `
		SELECT id, item_name, entry_type, units, amount, occurred_on
		FROM entries
		WHERE item_name = ? AND occurred_on <= ?
		ORDER BY id ASC`,
		itemName, asOf.String())
}

func loadAllEntries(ctx context.Context, db querier, asOf engine.Date) ([]engine.Entry, error) {
	return queryEntries(ctx, db, `
		SELECT id, item_name, entry_type, units, amount, occurred_on
		FROM entries
		WHERE occurred_on <= ?
		ORDER BY id ASC`,
		asOf.String())
}

func queryEntries(ctx context.Context, db querier, query string, args ...any) ([]engine.Entry, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []engine.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanEntry(rows *sql.Rows) (engine.Entry, error) {
	var (
		e          engine.Entry
		itemName   sql.NullString
		units      sql.NullInt64
		amount     string
		occurredOn string
	)

	if err := rows.Scan(&e.ID, &itemName, &e.Type, &units, &amount, &occurredOn); err != nil {
		return e, fmt.Errorf("failed to scan entry: %w", err)
	}

	e.ItemName = itemName.String
	e.Units = int(units.Int64)
	e.Amount = engine.MustParseMoney(amount)

	date, err := engine.ParseDate(occurredOn)
	if err != nil {
		return e, fmt.Errorf("failed to parse entry date %q: %w", occurredOn, err)
	}
	e.OccurredOn = date
	return e, nil
}

// =============================================================================
// TRANSACTIONAL STORE (engine.TxStore interface)
// =============================================================================

// WithTx executes fn within a database transaction, holding the writer
// lock for the whole read-decide-append sequence. If fn returns an error
// the transaction is rolled back and none of its entries are visible.
func (s *Store) WithTx(ctx context.Context, fn func(engine.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	if err := fn(&txView{tx: sqlTx}); err != nil {
		return err
	}
	return sqlTx.Commit()
}

// txView routes reads and writes through the open transaction, so fn
// observes its own uncommitted appends.
type txView struct {
	tx *sql.Tx
}

func (tv *txView) Append(ctx context.Context, e engine.Entry) (engine.Entry, error) {
	return appendEntry(ctx, tv.tx, e)
}

func (tv *txView) Load(ctx context.Context, itemName string, asOf engine.Date) ([]engine.Entry, error) {
	return loadEntries(ctx, tv.tx, itemName, asOf)
}

func (tv *txView) LoadAll(ctx context.Context, asOf engine.Date) ([]engine.Entry, error) {
	return loadAllEntries(ctx, tv.tx, asOf)
}

// =============================================================================
// CATALOG STORE (engine.CatalogStore interface)
// =============================================================================

// SaveCatalog persists the seed-once catalog.
func (s *Store) SaveCatalog(ctx context.Context, items []engine.CatalogItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, item := range items {
		_, err := sqlTx.ExecContext(ctx, `
			INSERT INTO catalog (item_name, category, unit_price, min_stock_level, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			item.ItemName,
			string(item.Category),
			item.UnitPrice.Value.String(),
			item.MinStockLevel,
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to save catalog item %q: %w", item.ItemName, err)
		}
	}
	return sqlTx.Commit()
}

// LoadCatalog returns the persisted catalog, empty if never seeded.
func (s *Store) LoadCatalog(ctx context.Context) ([]engine.CatalogItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT item_name, category, unit_price, min_stock_level
		FROM catalog ORDER BY rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	var items []engine.CatalogItem
	for rows.Next() {
		var (
			item     engine.CatalogItem
			category string
			price    string
		)
		if err := rows.Scan(&item.ItemName, &category, &price, &item.MinStockLevel); err != nil {
			return nil, fmt.Errorf("failed to scan catalog item: %w", err)
		}
		item.Category = engine.Category(category)
		item.UnitPrice = engine.MustParseMoney(price)
		items = append(items, item)
	}
	return items, rows.Err()
}
