package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/beaverschoice/supply-engine/engine"
	"github.com/beaverschoice/supply-engine/engine/store"
)

func newTestPricing(t *testing.T) (*engine.Pricing, *engine.Ledger) {
	t.Helper()
	catalog := engine.NewCatalog()
	if err := catalog.Seed(testCatalog()); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	ledger := engine.NewLedger(store.NewMemory(), catalog)
	return engine.NewPricing(catalog, engine.NewValuation(ledger)), ledger
}

// =============================================================================
// DISCOUNT TIERS
// =============================================================================

func TestBulkDiscount_TierBoundaries(t *testing.T) {
	cases := []struct {
		quantity int
		want     string
	}{
		{1, "0"},
		{99, "0"},
		{100, "0.05"},
		{499, "0.05"},
		{500, "0.1"},
		{999, "0.1"},
		{1000, "0.15"},
		{5000, "0.15"},
	}

	for _, tc := range cases {
		got := engine.BulkDiscount(tc.quantity)
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("BulkDiscount(%d) = %s, want %s", tc.quantity, got, tc.want)
		}
	}
}

// =============================================================================
// FRIENDLY ROUNDING
// =============================================================================

func TestRoundFriendly_StepBands(t *testing.T) {
	cases := []struct {
		total float64
		want  float64
	}{
		{97.40, 95},    // under 100: nearest 5
		{97.50, 100},   // tie rounds away from zero
		{12.49, 10},
		{482, 480},     // under 500: nearest 10
		{485, 490},
		{1013, 1000},   // 500 and above: nearest 50
		{1025, 1050},
		{0, 0},
	}

	for _, tc := range cases {
		got := engine.RoundFriendly(money(tc.total))
		if !got.Equal(money(tc.want)) {
			t.Errorf("RoundFriendly(%.2f) = %s, want %.2f", tc.total, got, tc.want)
		}
	}
}

// =============================================================================
// QUOTE GENERATION
// =============================================================================

func TestPriceQuote_SingleLineWithDiscount(t *testing.T) {
	// GIVEN: Glossy paper at $0.20 with 150 units in stock
	// WHEN: Quoting 100 units (5% tier)
	// THEN: Subtotal 20.00, line total 19.00, rounded to nearest 5 = 20.00

	pricing, ledger := newTestPricing(t)
	ctx := context.Background()
	if _, err := ledger.Append(ctx, engine.Entry{
		ItemName: "Glossy paper", Type: engine.EntryReplenishment,
		Units: 150, Amount: money(30), OccurredOn: jan1(),
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	quote, err := pricing.PriceQuote(ctx, []engine.LineRequest{
		{ItemName: "Glossy paper", Quantity: 100},
	}, apr1())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line := quote.Lines[0]
	if !line.LineSubtotal.Equal(money(20)) {
		t.Errorf("expected subtotal 20.00, got %s", line.LineSubtotal)
	}
	if !line.DiscountRate.Equal(decimal.RequireFromString("0.05")) {
		t.Errorf("expected 5%% discount, got %s", line.DiscountRate)
	}
	if !line.LineTotal.Equal(money(19)) {
		t.Errorf("expected line total 19.00, got %s", line.LineTotal)
	}
	if !line.InStock {
		t.Error("line should be in stock")
	}
	if line.EstimatedDelivery != nil {
		t.Error("in-stock lines carry no delivery estimate")
	}
	if !quote.Total.Equal(money(19)) {
		t.Errorf("expected total 19.00, got %s", quote.Total)
	}
	if !quote.RoundedTotal.Equal(money(20)) {
		t.Errorf("expected rounded total 20.00, got %s", quote.RoundedTotal)
	}
	if quote.Explanation == "" {
		t.Error("quote should carry a human-readable explanation")
	}
}

func TestPriceQuote_OutOfStockLineStillQuoted(t *testing.T) {
	// GIVEN: Crepe paper with no stock
	// WHEN: Quoting 200 units
	// THEN: The line is priced, marked out of stock, and carries a
	//       delivery estimate (200 units -> 4 days from the quote date)

	pricing, _ := newTestPricing(t)

	quote, err := pricing.PriceQuote(context.Background(), []engine.LineRequest{
		{ItemName: "Crepe paper", Quantity: 200},
	}, apr1())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line := quote.Lines[0]
	if line.InStock {
		t.Error("line should be marked out of stock")
	}
	if line.EstimatedDelivery == nil {
		t.Fatal("out-of-stock line must carry a delivery estimate")
	}
	want := apr1().AddDays(4)
	if !line.EstimatedDelivery.Equal(want) {
		t.Errorf("expected delivery %s, got %s", want, line.EstimatedDelivery)
	}
	// 200 * 0.05 = 10.00, 5% tier -> 9.50
	if !line.LineTotal.Equal(money(9.50)) {
		t.Errorf("expected line total 9.50, got %s", line.LineTotal)
	}
}

func TestPriceQuote_MultiLineTotals(t *testing.T) {
	// GIVEN: Two lines in different discount tiers
	// WHEN: Quoting both together
	// THEN: Discounts apply per line, and totals sum across lines

	pricing, _ := newTestPricing(t)

	quote, err := pricing.PriceQuote(context.Background(), []engine.LineRequest{
		{ItemName: "Glossy paper", Quantity: 50},  // 10.00, no discount
		{ItemName: "Crepe paper", Quantity: 1000}, // 50.00, 15% -> 42.50
	}, apr1())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !quote.Subtotal.Equal(money(60)) {
		t.Errorf("expected subtotal 60.00, got %s", quote.Subtotal)
	}
	if !quote.TotalDiscount.Equal(money(7.50)) {
		t.Errorf("expected total discount 7.50, got %s", quote.TotalDiscount)
	}
	if !quote.Total.Equal(money(52.50)) {
		t.Errorf("expected total 52.50, got %s", quote.Total)
	}
	// 52.50 is under 100: nearest 5 -> 55.00 (tie-free, 52.50/5=10.5 rounds to 11)
	if !quote.RoundedTotal.Equal(money(55)) {
		t.Errorf("expected rounded total 55.00, got %s", quote.RoundedTotal)
	}
}

func TestPriceQuote_RejectsBadRequests(t *testing.T) {
	pricing, _ := newTestPricing(t)
	ctx := context.Background()

	_, err := pricing.PriceQuote(ctx, nil, apr1())
	if !errors.Is(err, engine.ErrEmptyQuote) {
		t.Errorf("empty request: expected ErrEmptyQuote, got %v", err)
	}

	_, err = pricing.PriceQuote(ctx, []engine.LineRequest{
		{ItemName: "Glossy paper", Quantity: -1},
	}, apr1())
	if !errors.Is(err, engine.ErrInvalidQuantity) {
		t.Errorf("negative quantity: expected ErrInvalidQuantity, got %v", err)
	}

	_, err = pricing.PriceQuote(ctx, []engine.LineRequest{
		{ItemName: "Glossy paper", Quantity: 10},
		{ItemName: "Vellum", Quantity: 10},
	}, apr1())
	if !errors.Is(err, engine.ErrUnknownItem) {
		t.Errorf("unknown item: expected ErrUnknownItem, got %v", err)
	}
}
