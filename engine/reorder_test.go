package engine_test

import (
	"context"
	"testing"

	"github.com/beaverschoice/supply-engine/engine"
)

func newTestReorderPolicy(t *testing.T) *engine.ReorderPolicy {
	t.Helper()
	catalog := engine.NewCatalog()
	if err := catalog.Seed(testCatalog()); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	return engine.NewReorderPolicy(catalog)
}

func glossyPaper() engine.CatalogItem {
	return engine.CatalogItem{
		ItemName: "Glossy paper", Category: engine.CategoryPaper,
		UnitPrice: money(0.20), MinStockLevel: 100,
	}
}

func TestEvaluate_ProjectedAtThreshold_NoTrigger(t *testing.T) {
	// GIVEN: min 100, stock 150
	// WHEN: Selling 50 units (projected exactly 100)
	// THEN: No reorder; the rule is strict inequality

	policy := newTestReorderPolicy(t)

	decision, err := policy.Evaluate(context.Background(), glossyPaper(), 50, 150, money(50000), apr1())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision.Triggered {
		t.Errorf("projected stock at the threshold must not trigger, got %d units", decision.Units)
	}
}

func TestEvaluate_ProjectedBelowThreshold_RestocksToDoubleMin(t *testing.T) {
	// GIVEN: min 100, stock 150
	// WHEN: Selling 80 units (projected 70)
	// THEN: Reorder 100*2-70=130 units at 130*0.20=$26.00

	policy := newTestReorderPolicy(t)

	decision, err := policy.Evaluate(context.Background(), glossyPaper(), 80, 150, money(50000), apr1())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decision.Triggered {
		t.Fatal("expected the reorder to trigger")
	}
	if decision.Units != 130 {
		t.Errorf("expected 130 units, got %d", decision.Units)
	}
	if !decision.Cost.Equal(money(26)) {
		t.Errorf("expected cost 26.00, got %s", decision.Cost)
	}
	// 130 units carry a 4-day lead time.
	if !decision.EstimatedDelivery.Equal(apr1().AddDays(4)) {
		t.Errorf("expected delivery %s, got %s", apr1().AddDays(4), decision.EstimatedDelivery)
	}
	if len(decision.Warnings) != 0 {
		t.Errorf("no warnings expected, got %v", decision.Warnings)
	}
}

func TestEvaluate_BackorderProjection_ReordersThroughZero(t *testing.T) {
	// GIVEN: min 100, stock 50
	// WHEN: Selling 120 units (projected -70)
	// THEN: Backorder warning plus a reorder of 200-(-70)=270 units

	policy := newTestReorderPolicy(t)

	decision, err := policy.Evaluate(context.Background(), glossyPaper(), 120, 50, money(50000), apr1())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision.Units != 270 {
		t.Errorf("expected 270 units, got %d", decision.Units)
	}
	found := false
	for _, w := range decision.Warnings {
		if w.Code == engine.WarnBackorder {
			found = true
		}
	}
	if !found {
		t.Error("expected a backorder warning")
	}
}

func TestEvaluate_NoThreshold_NeverTriggers(t *testing.T) {
	// Items without a min stock level are never auto-replenished,
	// however deep the sale cuts.

	policy := newTestReorderPolicy(t)
	item := engine.CatalogItem{
		ItemName: "Crepe paper", Category: engine.CategoryPaper, UnitPrice: money(0.05),
	}

	decision, err := policy.Evaluate(context.Background(), item, 500, 10, money(50000), apr1())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision.Triggered {
		t.Errorf("threshold-free item must not trigger, got %d units", decision.Units)
	}
}

func TestEvaluate_CostExceedsCash_FlagsLowFunds(t *testing.T) {
	// GIVEN: A reorder costing $26 against a $5 cash balance
	// WHEN: Evaluating
	// THEN: The decision still triggers, with a low-funds warning

	policy := newTestReorderPolicy(t)

	decision, err := policy.Evaluate(context.Background(), glossyPaper(), 80, 150, money(5), apr1())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !decision.Triggered {
		t.Fatal("low funds must not suppress the reorder")
	}
	found := false
	for _, w := range decision.Warnings {
		if w.Code == engine.WarnLowFunds {
			found = true
		}
	}
	if !found {
		t.Error("expected a low-funds warning")
	}
}

func TestDecisionEntry_MaterializesReplenishment(t *testing.T) {
	policy := newTestReorderPolicy(t)

	decision, err := policy.Evaluate(context.Background(), glossyPaper(), 80, 150, money(50000), apr1())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry := decision.Entry(glossyPaper(), apr1())
	if entry.Type != engine.EntryReplenishment {
		t.Errorf("expected a replenishment entry, got %s", entry.Type)
	}
	if entry.Units != 130 || !entry.Amount.Equal(money(26)) {
		t.Errorf("entry does not match the decision: %+v", entry)
	}
	if entry.StockDelta() != 130 {
		t.Errorf("expected stock delta +130, got %d", entry.StockDelta())
	}
	if !entry.CashDelta().Equal(money(-26)) {
		t.Errorf("expected cash delta -26.00, got %s", entry.CashDelta())
	}
}
