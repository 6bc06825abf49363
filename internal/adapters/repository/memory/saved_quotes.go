// Package memory provides process-local implementations of repository ports.
// Nothing here survives a restart.
package memory

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// SavedQuotes implements ports.SavedQuoteRepository with an in-memory slice
// guarded by a mutex. Quotes keep insertion order and are unique by ID.
type SavedQuotes struct {
	mu     sync.Mutex
	quotes []domain.Quote
	index  map[int64]int

	size       prometheus.Gauge
	duplicates prometheus.Counter
}

// NewSavedQuotes creates an empty store. Its gauges are registered with reg;
// pass nil to leave them unregistered.
func NewSavedQuotes(reg prometheus.Registerer) *SavedQuotes {
	factory := promauto.With(reg)

	return &SavedQuotes{
		index: make(map[int64]int),
		size: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "quotebook",
			Name:      "saved_quotes",
			Help:      "Number of quotes currently saved.",
		}),
		duplicates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "quotebook",
			Name:      "saved_quotes_duplicates_total",
			Help:      "Save attempts rejected because the quote id was already saved.",
		}),
	}
}

// Find returns a copy of the saved quote with the given id.
func (s *SavedQuotes) Find(_ context.Context, id int64) (*domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return nil, domain.NewNotFoundError("quote", strconv.FormatInt(id, 10))
	}

	q := s.quotes[i]
	return &q, nil
}

// Append adds quote unless its id is already saved, and returns a snapshot
// of the list after the append.
func (s *SavedQuotes) Append(ctx context.Context, quote domain.Quote) ([]domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[quote.ID]; exists {
		s.duplicates.Inc()
		return nil, domain.NewConflictError("quote", "Quote already exists")
	}

	s.index[quote.ID] = len(s.quotes)
	s.quotes = append(s.quotes, quote)
	s.size.Set(float64(len(s.quotes)))

	return slices.Clone(s.quotes), nil
}

// List returns a snapshot of all saved quotes in insertion order.
func (s *SavedQuotes) List(_ context.Context) ([]domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := slices.Clone(s.quotes)
	if out == nil {
		out = []domain.Quote{}
	}

	return out, nil
}
