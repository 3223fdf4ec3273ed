/*
delivery.go - Supplier delivery estimation

PURPOSE:
  Maps an order quantity to a lead time and computes the estimated
  delivery date. Pure functions of their inputs; no ledger access.

LEAD TIMES:
  <= 10 units    same day
  11 - 100       1 day
  101 - 1000     4 days
  > 1000         7 days

Calendar-day arithmetic only: weekends and holidays are not skipped.
*/
package engine

// =============================================================================
// DELIVERY ESTIMATOR
// =============================================================================

// LeadTimeDays returns the supplier lead time in calendar days for a
// quantity. Callers must validate quantity first; see EstimateDelivery.
func LeadTimeDays(quantity int) int {
	switch {
	case quantity <= 10:
		return 0
	case quantity <= 100:
		return 1
	case quantity <= 1000:
		return 4
	default:
		return 7
	}
}

// EstimateDelivery returns the estimated delivery date for an order of the
// given quantity placed on orderDate. Fails with an InvalidQuantityError
// for quantity <= 0.
func EstimateDelivery(quantity int, orderDate Date) (Date, error) {
	if quantity <= 0 {
		return Date{}, &InvalidQuantityError{Quantity: quantity}
	}
	return orderDate.AddDays(LeadTimeDays(quantity)), nil
}
