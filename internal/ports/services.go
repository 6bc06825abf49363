// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrConflict, etc.)
package ports

import (
	"context"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// QuoteSource supplies random quotes from an upstream provider.
type QuoteSource interface {
	// RandomQuote fetches a single random quote.
	// Returns domain.ErrUnavailable if the provider is unreachable, answers
	// with a non-2xx status or returns a body that is not a valid quote.
	RandomQuote(ctx context.Context) (*domain.Quote, error)
}

// SavedQuoteRepository holds the favorited quotes, unique by ID and kept in
// insertion order.
type SavedQuoteRepository interface {
	// Find returns the saved quote with the given ID.
	// Returns domain.ErrNotFound if no such quote was saved.
	Find(ctx context.Context, id int64) (*domain.Quote, error)

	// Append adds a quote and returns the full list after the append.
	// Returns domain.ErrConflict, leaving the list unchanged, if the ID is
	// already present. The duplicate check and the append are atomic.
	Append(ctx context.Context, quote domain.Quote) ([]domain.Quote, error)

	// List returns a snapshot of all saved quotes in insertion order.
	List(ctx context.Context) ([]domain.Quote, error)
}
