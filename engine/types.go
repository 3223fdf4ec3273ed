/*
Package engine implements the ledger and business-rule core for a
paper-supply distributor.

PURPOSE:
  This package contains the source-of-truth ledger and the four engines
  built on top of it: valuation (stock and cash from the ledger), pricing
  (tiered bulk discounts with friendly rounding), delivery estimation,
  and the autonomous reorder policy evaluated at fulfillment time.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: A decimal dollar amount (never float64)
  - Date: A calendar date (the ledger's only time granularity)
  - Entry: An immutable ledger fact recording one inventory or cash movement
  - CatalogItem: Static reference data seeded once at startup

DESIGN PRINCIPLES:
  1. Immutability: Entries are never modified; corrections are new entries
  2. Precision: Uses decimal.Decimal to avoid floating-point errors
  3. Derived state: Stock and cash are always recomputed from the ledger,
     never stored as mutable counters

USAGE:
  entry := engine.Entry{
      ItemName:   "Glossy paper",
      Type:       engine.EntrySale,
      Units:      200,
      Amount:     engine.NewMoney(38),
      OccurredOn: engine.NewDate(2025, time.April, 1),
  }

SEE ALSO:
  - ledger.go: Validating append/query layer over the Store
  - catalog.go: Seed-once catalog of items and prices
  - valuation.go: Stock and cash derivation
*/
package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Decimal dollar amount
// =============================================================================

type Money struct {
	Value decimal.Decimal
}

func NewMoney(value float64) Money {
	return Money{Value: decimal.NewFromFloat(value)}
}

func NewMoneyFromInt(value int) Money {
	return Money{Value: decimal.NewFromInt(int64(value))}
}

func MustParseMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{Value: decimal.Zero}
	}
	return Money{Value: d}
}

func (m Money) Add(b Money) Money            { return Money{Value: m.Value.Add(b.Value)} }
func (m Money) Sub(b Money) Money            { return Money{Value: m.Value.Sub(b.Value)} }
func (m Money) Mul(s decimal.Decimal) Money  { return Money{Value: m.Value.Mul(s)} }
func (m Money) MulInt(n int) Money           { return Money{Value: m.Value.Mul(decimal.NewFromInt(int64(n)))} }
func (m Money) Neg() Money                   { return Money{Value: m.Value.Neg()} }
func (m Money) IsNegative() bool             { return m.Value.IsNegative() }
func (m Money) IsZero() bool                 { return m.Value.IsZero() }
func (m Money) IsPositive() bool             { return m.Value.IsPositive() }
func (m Money) GreaterThan(b Money) bool     { return m.Value.GreaterThan(b.Value) }
func (m Money) LessThan(b Money) bool        { return m.Value.LessThan(b.Value) }
func (m Money) Equal(b Money) bool           { return m.Value.Equal(b.Value) }

// String renders with two decimal places, the display precision for dollars.
func (m Money) String() string { return m.Value.StringFixed(2) }

// =============================================================================
// DATE - Calendar date (day granularity)
// =============================================================================

// Date is a calendar date. The ledger has no finer granularity: two entries
// on the same day are ordered by insertion id, not by clock time.
type Date struct {
	Time time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// MustParseDate is ParseDate for trusted literals. It panics on a malformed
// date, so it belongs in seed code and tests, never on request paths.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// Comparison
func (d Date) Before(other Date) bool        { return d.normalize().Before(other.normalize()) }
func (d Date) Equal(other Date) bool         { return d.normalize().Equal(other.normalize()) }
func (d Date) After(other Date) bool         { return d.normalize().After(other.normalize()) }
func (d Date) BeforeOrEqual(other Date) bool { return d.Before(other) || d.Equal(other) }
func (d Date) AfterOrEqual(other Date) bool  { return d.After(other) || d.Equal(other) }

func (d Date) normalize() time.Time {
	return time.Date(d.Time.Year(), d.Time.Month(), d.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{Time: d.Time.AddDate(0, 0, n)} }

// Properties
func (d Date) IsZero() bool   { return d.Time.IsZero() }
func (d Date) String() string { return d.Time.Format(dateLayout) }

// =============================================================================
// LEDGER ENTRY - Atomic inventory or cash movement
// =============================================================================

// EntryID is assigned on insert, monotonic, never reused.
type EntryID int64

type EntryType string

const (
	// EntryReplenishment records incoming stock. Amount is the cost paid.
	EntryReplenishment EntryType = "replenishment"

	// EntrySale records outgoing stock. Amount is the revenue received.
	// The cash-only seed entry is also a sale (revenue with no item).
	EntrySale EntryType = "sale"
)

// Entry is one immutable fact in the ledger.
//
// ItemName is empty only for the designated cash-only seed entry; every
// other entry must reference a catalog item and carry positive Units.
type Entry struct {
	ID         EntryID
	ItemName   string
	Type       EntryType
	Units      int
	Amount     Money
	OccurredOn Date
}

// CashOnly reports whether this is the item-less cash seed entry.
func (e Entry) CashOnly() bool { return e.ItemName == "" }

// StockDelta returns the signed effect of the entry on its item's stock.
func (e Entry) StockDelta() int {
	if e.CashOnly() {
		return 0
	}
	if e.Type == EntryReplenishment {
		return e.Units
	}
	return -e.Units
}

// CashDelta returns the signed effect of the entry on the cash balance.
func (e Entry) CashDelta() Money {
	if e.Type == EntrySale {
		return e.Amount
	}
	return e.Amount.Neg()
}

// =============================================================================
// CATALOG ITEM - Static reference data
// =============================================================================

type Category string

const (
	CategoryPaper       Category = "paper"
	CategoryProduct     Category = "product"
	CategoryLargeFormat Category = "large_format"
	CategorySpecialty   Category = "specialty"
)

// CatalogItem is seeded once and read-only for the lifetime of a run.
// MinStockLevel is the reorder threshold for stocked items; zero means the
// item is catalog-only (quotable, sellable into backorder, never reordered
// automatically until a threshold is configured).
type CatalogItem struct {
	ItemName      string
	Category      Category
	UnitPrice     Money
	MinStockLevel int
}

// =============================================================================
// STOCK STATUS - Derived inventory health, relative to the reorder threshold
// =============================================================================

type StockStatus string

const (
	StatusInStock    StockStatus = "in_stock"
	StatusLowStock   StockStatus = "low_stock"
	StatusOutOfStock StockStatus = "out_of_stock"
)

// StatusFor classifies a stock level against a minimum threshold.
func StatusFor(stock, minStock int) StockStatus {
	switch {
	case stock <= 0:
		return StatusOutOfStock
	case stock < minStock:
		return StatusLowStock
	default:
		return StatusInStock
	}
}
