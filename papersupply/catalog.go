// Package papersupply carries the concrete product data for a paper-supply
// distributor: the fixed 44-item catalog and the deterministic seed plan
// used to stand up a fresh ledger (initial cash plus starting stock).
// The engine itself is domain-agnostic; this package is where the paper
// lives.
package papersupply

import "github.com/beaverschoice/supply-engine/engine"

// =============================================================================
// PRODUCT CATALOG (44 items)
// =============================================================================

func item(name string, category engine.Category, price float64) engine.CatalogItem {
	return engine.CatalogItem{ItemName: name, Category: category, UnitPrice: engine.NewMoney(price)}
}

// Items returns the full catalog in its canonical order. Minimum stock
// levels are zero here; SeedPlan assigns thresholds to the items it
// chooses to stock.
func Items() []engine.CatalogItem {
	return []engine.CatalogItem{
		// Paper types (priced per sheet unless specified)
		item("A4 paper", engine.CategoryPaper, 0.05),
		item("Letter-sized paper", engine.CategoryPaper, 0.06),
		item("Cardstock", engine.CategoryPaper, 0.15),
		item("Colored paper", engine.CategoryPaper, 0.10),
		item("Glossy paper", engine.CategoryPaper, 0.20),
		item("Matte paper", engine.CategoryPaper, 0.18),
		item("Recycled paper", engine.CategoryPaper, 0.08),
		item("Eco-friendly paper", engine.CategoryPaper, 0.12),
		item("Poster paper", engine.CategoryPaper, 0.25),
		item("Banner paper", engine.CategoryPaper, 0.30),
		item("Kraft paper", engine.CategoryPaper, 0.10),
		item("Construction paper", engine.CategoryPaper, 0.07),
		item("Wrapping paper", engine.CategoryPaper, 0.15),
		item("Glitter paper", engine.CategoryPaper, 0.22),
		item("Decorative paper", engine.CategoryPaper, 0.18),
		item("Letterhead paper", engine.CategoryPaper, 0.12),
		item("Legal-size paper", engine.CategoryPaper, 0.08),
		item("Crepe paper", engine.CategoryPaper, 0.05),
		item("Photo paper", engine.CategoryPaper, 0.25),
		item("Uncoated paper", engine.CategoryPaper, 0.06),
		item("Butcher paper", engine.CategoryPaper, 0.10),
		item("Heavyweight paper", engine.CategoryPaper, 0.20),
		item("Standard copy paper", engine.CategoryPaper, 0.04),
		item("Bright-colored paper", engine.CategoryPaper, 0.12),
		item("Patterned paper", engine.CategoryPaper, 0.15),
		// Product types (priced per unit)
		item("Paper plates", engine.CategoryProduct, 0.10),
		item("Paper cups", engine.CategoryProduct, 0.08),
		item("Paper napkins", engine.CategoryProduct, 0.02),
		item("Disposable cups", engine.CategoryProduct, 0.10),
		item("Table covers", engine.CategoryProduct, 1.50),
		item("Envelopes", engine.CategoryProduct, 0.05),
		item("Sticky notes", engine.CategoryProduct, 0.03),
		item("Notepads", engine.CategoryProduct, 2.00),
		item("Invitation cards", engine.CategoryProduct, 0.50),
		item("Flyers", engine.CategoryProduct, 0.15),
		item("Party streamers", engine.CategoryProduct, 0.05),
		item("Decorative adhesive tape (washi tape)", engine.CategoryProduct, 0.20),
		item("Paper party bags", engine.CategoryProduct, 0.25),
		item("Name tags with lanyards", engine.CategoryProduct, 0.75),
		item("Presentation folders", engine.CategoryProduct, 0.50),
		// Large-format items (priced per unit)
		item("Large poster paper (24x36 inches)", engine.CategoryLargeFormat, 1.00),
		item("Rolls of banner paper (36-inch width)", engine.CategoryLargeFormat, 2.50),
		// Specialty papers
		item("100 lb cover stock", engine.CategorySpecialty, 0.50),
		item("80 lb text paper", engine.CategorySpecialty, 0.40),
		item("250 gsm cardstock", engine.CategorySpecialty, 0.30),
		item("220 gsm poster paper", engine.CategorySpecialty, 0.35),
	}
}
