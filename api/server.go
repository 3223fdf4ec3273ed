/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontends

SECURITY NOTE:
  No authentication middleware. The server is an internal operations
  surface, not a public one.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", h.ListCatalog)

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", h.GetInventorySnapshot)
			r.Get("/{item}", h.GetStockLevel)
		})

		r.Post("/quotes", h.GenerateQuote)
		r.Post("/fulfillments", h.RecordFulfillment)
		r.Post("/reorders", h.TriggerReorder)
		r.Get("/delivery-estimate", h.GetDeliveryEstimate)

		r.Get("/cash", h.GetCashBalance)
		r.Get("/reports/financial", h.GetFinancialReport)

		r.Post("/seed", h.SeedDefault)
	})

	return r
}
