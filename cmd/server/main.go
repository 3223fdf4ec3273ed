/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the supply engine server. Handles configuration,
  dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Open the SQLite store
  3. Load the persisted catalog, or seed the default plan on first run
  4. Configure the HTTP router
  5. Start the server with graceful shutdown

COMMAND-LINE FLAGS:
  -port       HTTP server port (default: 8080)
  -db         SQLite database path (default: supply.db)
              Use ":memory:" for an in-memory database
  -seed-date  Seed date for a fresh database (default: 2025-01-01)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the database connection
  4. Exit

EXAMPLES:
  # Run with a file database
  ./server -db="./data/supply.db"

  # Run with an in-memory database
  ./server -db=":memory:"

SEE ALSO:
  - api/server.go: Router configuration
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beaverschoice/supply-engine/api"
	"github.com/beaverschoice/supply-engine/engine"
	"github.com/beaverschoice/supply-engine/papersupply"
	"github.com/beaverschoice/supply-engine/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "supply.db", "SQLite database path")
	seedDate := flag.String("seed-date", "2025-01-01", "seed date for a fresh database")
	flag.Parse()

	// Initialize store
	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	eng := engine.New(store)
	ctx := context.Background()

	// First run seeds the default plan; later runs reload the saved catalog.
	items, err := store.LoadCatalog(ctx)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	if len(items) == 0 {
		date, err := engine.ParseDate(*seedDate)
		if err != nil {
			log.Fatalf("Invalid -seed-date: %v", err)
		}
		plan := papersupply.NewSeedPlan(papersupply.DefaultSeed, date)
		if err := plan.Apply(ctx, eng); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		if err := store.SaveCatalog(ctx, plan.Catalog); err != nil {
			log.Fatalf("Failed to persist catalog: %v", err)
		}
		log.Printf("Seeded fresh database: %d catalog items, %d stocked, $%s cash",
			len(plan.Catalog), len(plan.Stock), plan.Cash)
	} else {
		if err := eng.AppendCatalog(items); err != nil {
			log.Fatalf("Failed to restore catalog: %v", err)
		}
		log.Printf("Restored catalog: %d items", len(items))
	}

	// Create router and server
	router := api.NewRouter(api.NewHandler(eng))
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		log.Printf("API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
