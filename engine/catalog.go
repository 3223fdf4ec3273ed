/*
catalog.go - Seed-once, read-only product catalog

PURPOSE:
  Holds the static reference data the engine prices and validates against:
  item name (unique key), category, unit price, and the per-item minimum
  stock level used by the reorder policy.

LIFECYCLE:
  Seeded exactly once at startup via Seed(). A second Seed() call returns
  ErrCatalogSealed. After seeding, the catalog is read-only, so lookups
  need no locking.

SEE ALSO:
  - papersupply/catalog.go: The concrete 44-item paper-supply catalog
  - ledger.go: Rejects entries referencing items absent from the catalog
*/
package engine

import "sort"

// =============================================================================
// CATALOG - Seed-once item registry
// =============================================================================

type Catalog struct {
	items  map[string]CatalogItem
	order  []string // insertion order, for stable iteration
	sealed bool
}

func NewCatalog() *Catalog {
	return &Catalog{items: make(map[string]CatalogItem)}
}

// Seed loads the catalog exactly once. Items must have a name and a
// positive unit price; MinStockLevel may be zero for catalog-only items.
func (c *Catalog) Seed(items []CatalogItem) error {
	if c.sealed {
		return ErrCatalogSealed
	}

	// Validate everything before committing: a failed seed leaves the
	// catalog empty and seedable.
	staged := make(map[string]CatalogItem, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		if item.ItemName == "" {
			return &ValidationError{Field: "item_name", Reason: "must not be empty"}
		}
		if !item.UnitPrice.IsPositive() {
			return &ValidationError{Field: "unit_price", Reason: "must be positive"}
		}
		if item.MinStockLevel < 0 {
			return &ValidationError{Field: "min_stock_level", Reason: "must not be negative"}
		}
		if _, dup := staged[item.ItemName]; dup {
			return &ValidationError{Field: "item_name", Reason: "duplicate: " + item.ItemName}
		}
		staged[item.ItemName] = item
		order = append(order, item.ItemName)
	}

	c.items = staged
	c.order = order
	c.sealed = true
	return nil
}

// Sealed reports whether the one-time seed has happened.
func (c *Catalog) Sealed() bool { return c.sealed }

// Lookup returns the catalog item for an exact name.
func (c *Catalog) Lookup(itemName string) (CatalogItem, error) {
	item, ok := c.items[itemName]
	if !ok {
		return CatalogItem{}, &UnknownItemError{ItemName: itemName}
	}
	return item, nil
}

// Contains reports whether an exact item name is in the catalog.
func (c *Catalog) Contains(itemName string) bool {
	_, ok := c.items[itemName]
	return ok
}

// Items returns all catalog items in seed order.
func (c *Catalog) Items() []CatalogItem {
	out := make([]CatalogItem, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.items[name])
	}
	return out
}

// Names returns all item names sorted alphabetically.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.items))
	for name := range c.items {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of catalog items.
func (c *Catalog) Len() int { return len(c.items) }
