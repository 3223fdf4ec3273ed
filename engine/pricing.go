/*
pricing.go - Itemized quotes with tiered bulk discounts

PURPOSE:
  Computes quotes from catalog prices: per-line bulk discounts, an
  auditable subtotal/discount breakdown, and a grand total rounded to a
  "friendly" amount. Quotes are ephemeral results; the engine never
  persists them.

DISCOUNT TIERS (per line, inclusive lower bounds):
  1 - 99 units     0%
  100 - 499        5%
  500 - 999       10%
  1000+           15%

ROUNDING POLICY:
  Applied to the grand total only, never to individual lines, so the
  itemized math stays auditable:
    total < 100          nearest 5
    100 <= total < 500   nearest 10
    total >= 500         nearest 50
  Ties round half away from zero. The delta is reported in the
  explanation, never silently absorbed.

OUT OF STOCK:
  Not an error. The line is priced at catalog rates and a supplier
  delivery estimate is attached instead.

SEE ALSO:
  - delivery.go: Estimates attached to out-of-stock lines
  - valuation.go: The single stock snapshot a quote prices against
*/
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// DISCOUNT TIERS
// =============================================================================

// BulkDiscount returns the discount rate for a line quantity.
func BulkDiscount(quantity int) decimal.Decimal {
	switch {
	case quantity < 100:
		return decimal.Zero
	case quantity < 500:
		return decimal.NewFromFloat(0.05)
	case quantity < 1000:
		return decimal.NewFromFloat(0.10)
	default:
		return decimal.NewFromFloat(0.15)
	}
}

// =============================================================================
// QUOTE - Ephemeral computed result
// =============================================================================

// LineRequest is one normalized (item, quantity) pair. The caller has
// already resolved informal names to exact catalog names.
type LineRequest struct {
	ItemName string
	Quantity int
}

type QuoteLine struct {
	ItemName     string
	Quantity     int
	UnitPrice    Money
	DiscountRate decimal.Decimal
	LineSubtotal Money // pre-discount
	LineTotal    Money // post-discount

	// InStock is evaluated against the quote's as-of snapshot. When false,
	// EstimatedDelivery carries the supplier lead-time estimate.
	InStock           bool
	EstimatedDelivery *Date
}

type Quote struct {
	AsOf          Date
	Lines         []QuoteLine
	Subtotal      Money
	TotalDiscount Money
	Total         Money // pre-rounding
	RoundedTotal  Money
	Explanation   string
}

// =============================================================================
// PRICING ENGINE
// =============================================================================

type Pricing struct {
	Catalog   *Catalog
	Valuation *Valuation
}

func NewPricing(catalog *Catalog, valuation *Valuation) *Pricing {
	return &Pricing{Catalog: catalog, Valuation: valuation}
}

// PriceQuote computes a quote for an ordered sequence of line requests.
// All lines are priced against one stock snapshot taken up front, so a
// multi-item quote is internally consistent even if the ledger moves
// between calls.
func (p *Pricing) PriceQuote(ctx context.Context, lines []LineRequest, asOf Date) (*Quote, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyQuote
	}
	for _, req := range lines {
		if req.Quantity <= 0 {
			return nil, &InvalidQuantityError{ItemName: req.ItemName, Quantity: req.Quantity}
		}
		if !p.Catalog.Contains(req.ItemName) {
			return nil, &UnknownItemError{ItemName: req.ItemName}
		}
	}

	// One consistent snapshot for the whole quote, not a read per line.
	snapshot, err := p.Valuation.Snapshot(ctx, asOf)
	if err != nil {
		return nil, err
	}

	quote := &Quote{AsOf: asOf, Subtotal: NewMoney(0), TotalDiscount: NewMoney(0)}
	for _, req := range lines {
		item, _ := p.Catalog.Lookup(req.ItemName)

		rate := BulkDiscount(req.Quantity)
		lineSubtotal := item.UnitPrice.MulInt(req.Quantity)
		lineTotal := lineSubtotal.Mul(decimal.NewFromInt(1).Sub(rate))

		line := QuoteLine{
			ItemName:     item.ItemName,
			Quantity:     req.Quantity,
			UnitPrice:    item.UnitPrice,
			DiscountRate: rate,
			LineSubtotal: lineSubtotal,
			LineTotal:    lineTotal,
			InStock:      snapshot[item.ItemName] >= req.Quantity,
		}
		if !line.InStock {
			// Out of stock is informational: price the line and attach a
			// supplier delivery estimate instead of rejecting it.
			est, err := EstimateDelivery(req.Quantity, asOf)
			if err != nil {
				return nil, err
			}
			line.EstimatedDelivery = &est
		}

		quote.Lines = append(quote.Lines, line)
		quote.Subtotal = quote.Subtotal.Add(lineSubtotal)
		quote.Total = quote.Total.Add(lineTotal)
	}
	quote.TotalDiscount = quote.Subtotal.Sub(quote.Total)
	quote.RoundedTotal = RoundFriendly(quote.Total)
	quote.Explanation = explain(quote)
	return quote, nil
}

// =============================================================================
// FRIENDLY ROUNDING
// =============================================================================

// RoundFriendly rounds a total to the nearest psychologically comfortable
// amount: nearest 5 under 100, nearest 10 under 500, nearest 50 above.
// Ties round half away from zero (97.50 -> 100, not 95).
func RoundFriendly(total Money) Money {
	step := friendlyStep(total)
	rounded := total.Value.Div(step).Round(0).Mul(step)
	return Money{Value: rounded}
}

func friendlyStep(total Money) decimal.Decimal {
	abs := total.Value.Abs()
	switch {
	case abs.LessThan(decimal.NewFromInt(100)):
		return decimal.NewFromInt(5)
	case abs.LessThan(decimal.NewFromInt(500)):
		return decimal.NewFromInt(10)
	default:
		return decimal.NewFromInt(50)
	}
}

// explain builds the human-readable justification attached to each quote:
// discount applied, rounding delta, and any lead-time notes.
func explain(q *Quote) string {
	var b strings.Builder
	b.WriteString("Thank you for your order! ")
	if q.TotalDiscount.IsPositive() {
		fmt.Fprintf(&b, "Bulk discounts of $%s were applied based on your order quantities. ", q.TotalDiscount)
	}
	delta := q.RoundedTotal.Sub(q.Total)
	if !delta.IsZero() {
		fmt.Fprintf(&b, "The total of $%s was rounded to $%s (adjustment of $%s) for your convenience. ",
			q.Total, q.RoundedTotal, delta)
	} else {
		fmt.Fprintf(&b, "The final total is $%s. ", q.RoundedTotal)
	}
	for _, line := range q.Lines {
		if line.EstimatedDelivery != nil {
			fmt.Fprintf(&b, "%s is currently out of stock; estimated delivery %s. ",
				line.ItemName, line.EstimatedDelivery)
		}
	}
	return strings.TrimSpace(b.String())
}
