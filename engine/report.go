/*
report.go - Point-in-time financial report

PURPOSE:
  Aggregates the derived state into the report an operator reads: cash
  balance, per-item stock and value at catalog prices, total inventory
  value, and total assets. Read-only; built from the same ledger fold as
  every other valuation.
*/
package engine

import (
	"context"
	"sort"
)

// =============================================================================
// FINANCIAL REPORT
// =============================================================================

type ReportLine struct {
	ItemName  string
	Stock     int
	UnitPrice Money
	Value     Money
}

type FinancialReport struct {
	AsOf           Date
	CashBalance    Money
	InventoryValue Money
	TotalAssets    Money
	Inventory      []ReportLine // items in positive stock, alphabetical
}

// FinancialReport values the company as of a date: cash plus inventory at
// catalog prices.
func (e *Engine) FinancialReport(ctx context.Context, asOf Date) (*FinancialReport, error) {
	cash, err := e.valuation.CashBalance(ctx, asOf)
	if err != nil {
		return nil, err
	}
	snapshot, err := e.valuation.Snapshot(ctx, asOf)
	if err != nil {
		return nil, err
	}

	report := &FinancialReport{
		AsOf:           asOf,
		CashBalance:    cash,
		InventoryValue: NewMoney(0),
	}

	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		item, err := e.catalog.Lookup(name)
		if err != nil {
			return nil, err
		}
		stock := snapshot[name]
		value := item.UnitPrice.MulInt(stock)
		report.Inventory = append(report.Inventory, ReportLine{
			ItemName:  name,
			Stock:     stock,
			UnitPrice: item.UnitPrice,
			Value:     value,
		})
		report.InventoryValue = report.InventoryValue.Add(value)
	}

	report.TotalAssets = report.CashBalance.Add(report.InventoryValue)
	return report, nil
}
