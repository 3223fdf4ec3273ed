/*
errors.go - Centralized error types for the engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Callers branch on sentinel errors with errors.Is and pull details
  from structured errors with errors.As.

ERROR CATEGORIES:
  1. Validation errors - Malformed input, rejected before any ledger write
  2. Catalog errors   - Unknown items, catalog re-seeding
  3. Warnings         - Non-fatal conditions attached to successful results

PROPAGATION POLICY:
  Every input defect is rejected before any ledger mutation; the engine
  never partially applies a reorder+sale pair. There are no retryable
  errors: given the same ledger state, every operation is deterministic.

USAGE:
    if errors.Is(err, engine.ErrUnknownItem) {
        // surface a "not in catalog" message to the caller
    }

SEE ALSO:
  - ledger.go: Validates entries and returns these errors
  - pricing.go: InvalidQuantityError, UnknownItemError on quote lines
*/
package engine

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrValidation is returned for malformed input: non-positive units,
	// negative amounts, zero dates. Always rejected before any write.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidQuantity is returned for a non-positive quantity on a quote
	// line, delivery estimate, or fulfillment request.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrUnknownItem is returned when an item name is not in the catalog.
	// Name resolution (fuzzy matching) is the caller's concern; the engine
	// expects exact catalog names.
	ErrUnknownItem = errors.New("item not in catalog")

	// ErrCatalogSealed is returned when AppendCatalog is called after the
	// one-time seed has already happened.
	ErrCatalogSealed = errors.New("catalog already seeded")

	// ErrEmptyQuote is returned when a quote is requested with no lines.
	ErrEmptyQuote = errors.New("quote has no line requests")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError describes a rejected ledger entry or request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// UnknownItemError identifies which requested name missed the catalog.
type UnknownItemError struct {
	ItemName string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("item %q not in catalog", e.ItemName)
}

func (e *UnknownItemError) Unwrap() error { return ErrUnknownItem }

// InvalidQuantityError carries the offending quantity and its context.
type InvalidQuantityError struct {
	ItemName string // empty for item-less operations (delivery estimates)
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	if e.ItemName == "" {
		return fmt.Sprintf("quantity %d must be positive", e.Quantity)
	}
	return fmt.Sprintf("quantity %d for %q must be positive", e.Quantity, e.ItemName)
}

func (e *InvalidQuantityError) Unwrap() error { return ErrInvalidQuantity }

// =============================================================================
// WARNINGS - Non-fatal, attached to successful results
// =============================================================================

type WarningCode string

const (
	// WarnLowFunds flags a reorder whose cost exceeds the current cash
	// balance. The reorder is still issued: the policy favors continuity
	// of service over hard blocking.
	WarnLowFunds WarningCode = "low_funds"

	// WarnBackorder flags a sale that drove projected stock negative.
	WarnBackorder WarningCode = "backorder"
)

// Warning is a non-fatal condition surfaced alongside a successful result.
// It is not an error and never blocks the transaction.
type Warning struct {
	Code    WarningCode
	Message string
}

func (w Warning) String() string { return fmt.Sprintf("%s: %s", w.Code, w.Message) }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
// These map to reject-before-write: the ledger is untouched.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrUnknownItem) ||
		errors.Is(err, ErrEmptyQuote)
}

// IsNotFound returns true if the error indicates a missing catalog item.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUnknownItem)
}
