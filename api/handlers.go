/*
handlers.go - HTTP API handlers for the supply engine

PURPOSE:
  Exposes the engine via REST. Handles HTTP request/response, JSON
  serialization, and delegates all business decisions to the engine.

ENDPOINTS:
  Catalog:
    GET    /api/catalog                 List catalog items

  Inventory:
    GET    /api/inventory               Snapshot of items in stock
    GET    /api/inventory/{item}        One item's stock and status

  Quotes:
    POST   /api/quotes                  Generate a quote

  Fulfillment:
    POST   /api/fulfillments            Record a sale (reorder-if-needed)
    POST   /api/reorders                Manual replenishment
    GET    /api/delivery-estimate       Lead-time lookup

  Finance:
    GET    /api/cash                    Cash balance
    GET    /api/reports/financial       Full financial report

  Admin:
    POST   /api/seed                    Load the default seed plan

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Item not in catalog
  - 409: Catalog already seeded
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/beaverschoice/supply-engine/engine"
	"github.com/beaverschoice/supply-engine/papersupply"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Engine *engine.Engine
}

func NewHandler(eng *engine.Engine) *Handler {
	return &Handler{Engine: eng}
}

// =============================================================================
// CATALOG
// =============================================================================

func (h *Handler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	var items []CatalogItemDTO
	for _, item := range h.Engine.Catalog().Items() {
		items = append(items, CatalogItemDTO{
			ItemName:      item.ItemName,
			Category:      string(item.Category),
			UnitPrice:     item.UnitPrice.String(),
			MinStockLevel: item.MinStockLevel,
		})
	}
	writeJSON(w, http.StatusOK, items)
}

// =============================================================================
// INVENTORY
// =============================================================================

func (h *Handler) GetInventorySnapshot(w http.ResponseWriter, r *http.Request) {
	asOf, ok := h.parseAsOf(w, r)
	if !ok {
		return
	}
	snapshot, err := h.Engine.InventorySnapshot(r.Context(), asOf)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (h *Handler) GetStockLevel(w http.ResponseWriter, r *http.Request) {
	asOf, ok := h.parseAsOf(w, r)
	if !ok {
		return
	}
	itemName := chi.URLParam(r, "item")
	level, err := h.Engine.StockLevel(r.Context(), itemName, asOf)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StockLevelDTO{
		ItemName:      level.ItemName,
		CurrentStock:  level.CurrentStock,
		MinStockLevel: level.MinStockLevel,
		UnitPrice:     level.UnitPrice.String(),
		Status:        string(level.Status),
	})
}

// =============================================================================
// QUOTES
// =============================================================================

func (h *Handler) GenerateQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorDTO{Error: "invalid request body"})
		return
	}
	asOf, err := engine.ParseDate(req.AsOf)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorDTO{Error: "invalid as_of date, expected YYYY-MM-DD"})
		return
	}

	lines := make([]engine.LineRequest, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, engine.LineRequest{ItemName: l.ItemName, Quantity: l.Quantity})
	}

	quote, err := h.Engine.GenerateQuote(r.Context(), lines, asOf)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuoteDTO(quote))
}

// =============================================================================
// FULFILLMENT
// =============================================================================

func (h *Handler) RecordFulfillment(w http.ResponseWriter, r *http.Request) {
	var req FulfillmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorDTO{Error: "invalid request body"})
		return
	}
	orderDate, err := engine.ParseDate(req.OrderDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorDTO{Error: "invalid order_date, expected YYYY-MM-DD"})
		return
	}

	result, err := h.Engine.RecordFulfillment(r.Context(), req.ItemName, req.Quantity, orderDate)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFulfillmentDTO(result))
}

func (h *Handler) TriggerReorder(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorDTO{Error: "invalid request body"})
		return
	}
	orderDate, err := engine.ParseDate(req.OrderDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorDTO{Error: "invalid order_date, expected YYYY-MM-DD"})
		return
	}

	result, err := h.Engine.TriggerReorder(r.Context(), req.ItemName, req.Quantity, orderDate)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReorderDTO(result))
}

func (h *Handler) GetDeliveryEstimate(w http.ResponseWriter, r *http.Request) {
	quantity, err := strconv.Atoi(r.URL.Query().Get("quantity"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorDTO{Error: "invalid quantity"})
		return
	}
	orderDate, err := engine.ParseDate(r.URL.Query().Get("order_date"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorDTO{Error: "invalid order_date, expected YYYY-MM-DD"})
		return
	}

	estimate, err := engine.EstimateDelivery(quantity, orderDate)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DeliveryEstimateDTO{
		Quantity:          quantity,
		OrderDate:         orderDate.String(),
		LeadTimeDays:      engine.LeadTimeDays(quantity),
		EstimatedDelivery: estimate.String(),
	})
}

// =============================================================================
// FINANCE
// =============================================================================

func (h *Handler) GetCashBalance(w http.ResponseWriter, r *http.Request) {
	asOf, ok := h.parseAsOf(w, r)
	if !ok {
		return
	}
	balance, err := h.Engine.CashBalance(r.Context(), asOf)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CashBalanceDTO{AsOf: asOf.String(), CashBalance: balance.String()})
}

func (h *Handler) GetFinancialReport(w http.ResponseWriter, r *http.Request) {
	asOf, ok := h.parseAsOf(w, r)
	if !ok {
		return
	}
	report, err := h.Engine.FinancialReport(r.Context(), asOf)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportDTO(report))
}

// =============================================================================
// ADMIN
// =============================================================================

func (h *Handler) SeedDefault(w http.ResponseWriter, r *http.Request) {
	var req SeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorDTO{Error: "invalid request body"})
		return
	}
	date, err := engine.ParseDate(req.Date)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorDTO{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	seed := papersupply.DefaultSeed
	if req.Seed != nil {
		seed = *req.Seed
	}

	plan := papersupply.NewSeedPlan(seed, date)
	if err := plan.Apply(r.Context(), h.Engine); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"catalog_items": len(plan.Catalog),
		"stocked_items": len(plan.Stock),
		"cash":          plan.Cash.String(),
		"date":          plan.Date.String(),
	})
}

// =============================================================================
// HELPERS
// =============================================================================

// parseAsOf reads the as_of query parameter, defaulting to today.
func (h *Handler) parseAsOf(w http.ResponseWriter, r *http.Request) (engine.Date, bool) {
	raw := r.URL.Query().Get("as_of")
	if raw == "" {
		return engine.Today(), true
	}
	asOf, err := engine.ParseDate(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorDTO{Error: "invalid as_of date, expected YYYY-MM-DD"})
		return engine.Date{}, false
	}
	return asOf, true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case engine.IsNotFound(err):
		status = http.StatusNotFound
	case engine.IsClientError(err):
		status = http.StatusBadRequest
	case errors.Is(err, engine.ErrCatalogSealed):
		status = http.StatusConflict
	}
	writeJSON(w, status, ErrorDTO{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
