/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Handlers parse and validate; DTOs are pure data carriers. Dates travel
  as ISO strings (YYYY-MM-DD) and money as fixed two-decimal strings.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import "github.com/beaverschoice/supply-engine/engine"

// =============================================================================
// REQUEST TYPES
// =============================================================================

// QuoteRequest asks for a priced quote. Item names must be exact catalog
// names; resolving informal names is the client's concern.
type QuoteRequest struct {
	AsOf  string             `json:"as_of"`
	Lines []QuoteLineRequest `json:"lines"`
}

type QuoteLineRequest struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// FulfillmentRequest records a sale.
type FulfillmentRequest struct {
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	OrderDate string `json:"order_date"`
}

// ReorderRequest places a manual replenishment order.
type ReorderRequest struct {
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	OrderDate string `json:"order_date"`
}

// SeedRequest stands up a fresh ledger from the default paper-supply plan.
type SeedRequest struct {
	Date string `json:"date"`
	Seed *int64 `json:"seed,omitempty"` // default 137
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

type CatalogItemDTO struct {
	ItemName      string `json:"item_name"`
	Category      string `json:"category"`
	UnitPrice     string `json:"unit_price"`
	MinStockLevel int    `json:"min_stock_level"`
}

type QuoteLineDTO struct {
	ItemName          string `json:"item_name"`
	Quantity          int    `json:"quantity"`
	UnitPrice         string `json:"unit_price"`
	DiscountRate      string `json:"discount_rate"`
	LineSubtotal      string `json:"line_subtotal"`
	LineTotal         string `json:"line_total"`
	InStock           bool   `json:"in_stock"`
	EstimatedDelivery string `json:"estimated_delivery,omitempty"`
}

type QuoteDTO struct {
	AsOf          string         `json:"as_of"`
	Lines         []QuoteLineDTO `json:"lines"`
	Subtotal      string         `json:"subtotal"`
	TotalDiscount string         `json:"total_discount"`
	Total         string         `json:"total"`
	RoundedTotal  string         `json:"rounded_total"`
	Explanation   string         `json:"explanation"`
}

type WarningDTO struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ReorderNoticeDTO struct {
	TransactionID     int64  `json:"transaction_id"`
	Units             int    `json:"units"`
	Cost              string `json:"cost"`
	EstimatedDelivery string `json:"estimated_delivery"`
}

type FulfillmentDTO struct {
	TransactionID int64             `json:"transaction_id"`
	ItemName      string            `json:"item_name"`
	Quantity      int               `json:"quantity"`
	Revenue       string            `json:"revenue"`
	OrderDate     string            `json:"order_date"`
	DeliveryDate  string            `json:"delivery_date"`
	UpdatedStock  int               `json:"updated_stock"`
	UpdatedCash   string            `json:"updated_cash"`
	Reorder       *ReorderNoticeDTO `json:"reorder,omitempty"`
	Warnings      []WarningDTO      `json:"warnings,omitempty"`
}

type ReorderDTO struct {
	TransactionID     int64        `json:"transaction_id"`
	ItemName          string       `json:"item_name"`
	Units             int          `json:"units"`
	Cost              string       `json:"cost"`
	OrderDate         string       `json:"order_date"`
	EstimatedDelivery string       `json:"estimated_delivery"`
	UpdatedStock      int          `json:"updated_stock"`
	UpdatedCash       string       `json:"updated_cash"`
	Warnings          []WarningDTO `json:"warnings,omitempty"`
}

type StockLevelDTO struct {
	ItemName      string `json:"item_name"`
	CurrentStock  int    `json:"current_stock"`
	MinStockLevel int    `json:"min_stock_level"`
	UnitPrice     string `json:"unit_price"`
	Status        string `json:"status"`
}

type CashBalanceDTO struct {
	AsOf        string `json:"as_of"`
	CashBalance string `json:"cash_balance"`
}

type DeliveryEstimateDTO struct {
	Quantity          int    `json:"quantity"`
	OrderDate         string `json:"order_date"`
	LeadTimeDays      int    `json:"lead_time_days"`
	EstimatedDelivery string `json:"estimated_delivery"`
}

type ReportLineDTO struct {
	ItemName  string `json:"item_name"`
	Stock     int    `json:"stock"`
	UnitPrice string `json:"unit_price"`
	Value     string `json:"value"`
}

type FinancialReportDTO struct {
	AsOf           string          `json:"as_of"`
	CashBalance    string          `json:"cash_balance"`
	InventoryValue string          `json:"inventory_value"`
	TotalAssets    string          `json:"total_assets"`
	Inventory      []ReportLineDTO `json:"inventory"`
}

// ErrorDTO is the uniform error envelope.
type ErrorDTO struct {
	Error string `json:"error"`
}

// =============================================================================
// CONVERTERS
// =============================================================================

func toQuoteDTO(q *engine.Quote) QuoteDTO {
	dto := QuoteDTO{
		AsOf:          q.AsOf.String(),
		Subtotal:      q.Subtotal.String(),
		TotalDiscount: q.TotalDiscount.String(),
		Total:         q.Total.String(),
		RoundedTotal:  q.RoundedTotal.String(),
		Explanation:   q.Explanation,
	}
	for _, line := range q.Lines {
		lineDTO := QuoteLineDTO{
			ItemName:     line.ItemName,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice.String(),
			DiscountRate: line.DiscountRate.String(),
			LineSubtotal: line.LineSubtotal.String(),
			LineTotal:    line.LineTotal.String(),
			InStock:      line.InStock,
		}
		if line.EstimatedDelivery != nil {
			lineDTO.EstimatedDelivery = line.EstimatedDelivery.String()
		}
		dto.Lines = append(dto.Lines, lineDTO)
	}
	return dto
}

func toWarningDTOs(warnings []engine.Warning) []WarningDTO {
	var out []WarningDTO
	for _, w := range warnings {
		out = append(out, WarningDTO{Code: string(w.Code), Message: w.Message})
	}
	return out
}

func toFulfillmentDTO(r *engine.FulfillmentResult) FulfillmentDTO {
	dto := FulfillmentDTO{
		TransactionID: int64(r.TransactionID),
		ItemName:      r.ItemName,
		Quantity:      r.Quantity,
		Revenue:       r.Revenue.String(),
		OrderDate:     r.OrderDate.String(),
		DeliveryDate:  r.DeliveryDate.String(),
		UpdatedStock:  r.UpdatedStock,
		UpdatedCash:   r.UpdatedCash.String(),
		Warnings:      toWarningDTOs(r.Warnings),
	}
	if r.Reorder != nil {
		dto.Reorder = &ReorderNoticeDTO{
			TransactionID:     int64(r.Reorder.TransactionID),
			Units:             r.Reorder.Units,
			Cost:              r.Reorder.Cost.String(),
			EstimatedDelivery: r.Reorder.EstimatedDelivery.String(),
		}
	}
	return dto
}

func toReorderDTO(r *engine.ReorderResult) ReorderDTO {
	return ReorderDTO{
		TransactionID:     int64(r.TransactionID),
		ItemName:          r.ItemName,
		Units:             r.Units,
		Cost:              r.Cost.String(),
		OrderDate:         r.OrderDate.String(),
		EstimatedDelivery: r.EstimatedDelivery.String(),
		UpdatedStock:      r.UpdatedStock,
		UpdatedCash:       r.UpdatedCash.String(),
		Warnings:          toWarningDTOs(r.Warnings),
	}
}

func toReportDTO(r *engine.FinancialReport) FinancialReportDTO {
	dto := FinancialReportDTO{
		AsOf:           r.AsOf.String(),
		CashBalance:    r.CashBalance.String(),
		InventoryValue: r.InventoryValue.String(),
		TotalAssets:    r.TotalAssets.String(),
	}
	for _, line := range r.Inventory {
		dto.Inventory = append(dto.Inventory, ReportLineDTO{
			ItemName:  line.ItemName,
			Stock:     line.Stock,
			UnitPrice: line.UnitPrice.String(),
			Value:     line.Value.String(),
		})
	}
	return dto
}
