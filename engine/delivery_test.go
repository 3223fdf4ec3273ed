package engine_test

import (
	"errors"
	"testing"
	"time"

	"github.com/beaverschoice/supply-engine/engine"
)

func TestLeadTimeDays_QuantityBands(t *testing.T) {
	cases := []struct {
		quantity int
		want     int
	}{
		{1, 0},
		{10, 0},
		{11, 1},
		{100, 1},
		{101, 4},
		{1000, 4},
		{1001, 7},
		{25000, 7},
	}

	for _, tc := range cases {
		if got := engine.LeadTimeDays(tc.quantity); got != tc.want {
			t.Errorf("LeadTimeDays(%d) = %d, want %d", tc.quantity, got, tc.want)
		}
	}
}

func TestEstimateDelivery_AddsCalendarDays(t *testing.T) {
	// GIVEN: An order placed on 2025-04-28
	// WHEN: Estimating delivery for 1000 units (4-day lead time)
	// THEN: The estimate crosses the month boundary to 2025-05-02

	order := engine.NewDate(2025, time.April, 28)

	estimate, err := engine.EstimateDelivery(1000, order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := engine.NewDate(2025, time.May, 2)
	if !estimate.Equal(want) {
		t.Errorf("expected %s, got %s", want, estimate)
	}
}

func TestEstimateDelivery_SameDayForSmallOrders(t *testing.T) {
	order := engine.NewDate(2025, time.April, 28)

	estimate, err := engine.EstimateDelivery(10, order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !estimate.Equal(order) {
		t.Errorf("expected same-day delivery, got %s", estimate)
	}
}

func TestEstimateDelivery_RejectsNonPositiveQuantity(t *testing.T) {
	for _, quantity := range []int{0, -5} {
		_, err := engine.EstimateDelivery(quantity, jan1())
		if !errors.Is(err, engine.ErrInvalidQuantity) {
			t.Errorf("EstimateDelivery(%d): expected ErrInvalidQuantity, got %v", quantity, err)
		}
	}
}
