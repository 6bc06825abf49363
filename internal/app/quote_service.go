// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/platform/telemetry"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

// QuoteService fetches random quotes and manages the saved list.
// It depends only on ports, never on concrete adapters.
type QuoteService struct {
	source   ports.QuoteSource
	saved    ports.SavedQuoteRepository
	metrics  *telemetry.QuoteMetrics
	executor *Executor
	logger   *slog.Logger
}

// QuoteServiceConfig contains the dependencies of a QuoteService.
type QuoteServiceConfig struct {
	Source ports.QuoteSource
	Saved  ports.SavedQuoteRepository

	// Metrics is optional; nil disables the quote counters.
	Metrics *telemetry.QuoteMetrics

	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// NewQuoteService creates a quote service. It panics if Source or Saved is nil,
// since the service is unusable without them.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Source == nil {
		panic("app: QuoteServiceConfig.Source is required")
	}

	if cfg.Saved == nil {
		panic("app: QuoteServiceConfig.Saved is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		source:   cfg.Source,
		saved:    cfg.Saved,
		metrics:  cfg.Metrics,
		executor: NewExecutor(logger),
		logger:   logger,
	}
}

// RandomQuote fetches one quote from the upstream source. No retry is made;
// failures come back as the source reported them.
func (s *QuoteService) RandomQuote(ctx context.Context) (*domain.Quote, error) {
	quote, err := s.source.RandomQuote(ctx)
	if err != nil {
		s.metrics.RecordFetch(ctx, telemetry.OutcomeFailure)
		s.logger.ErrorContext(ctx, "failed to fetch random quote", slog.Any("error", err))

		return nil, err
	}

	s.metrics.RecordFetch(ctx, telemetry.OutcomeSuccess)
	s.logger.InfoContext(ctx, "fetched random quote",
		slog.Int64("quote_id", quote.ID),
		slog.String("author", quote.Author),
	)

	return quote, nil
}

// SaveQuote appends quote to the saved list and returns the whole list.
// Invalid quotes yield a domain.ValidationError and duplicates a
// domain.ConflictError; in both cases the list is left untouched.
func (s *QuoteService) SaveQuote(ctx context.Context, quote domain.Quote) ([]domain.Quote, error) {
	op := Operation[domain.Quote, []domain.Quote, []domain.Quote, []domain.Quote]{
		Name: "save_quote",
		Validate: func(_ context.Context, q domain.Quote) error {
			return q.Validate()
		},
		Perform: func(ctx context.Context, q domain.Quote) ([]domain.Quote, error) {
			return s.saved.Append(ctx, q)
		},
		Verify: func(_ context.Context, q domain.Quote, list []domain.Quote) ([]domain.Quote, error) {
			if !domain.ContainsQuote(list, q.ID) {
				return nil, fmt.Errorf("%w: quote %d missing from saved list", ErrNotVerified, q.ID)
			}

			return list, nil
		},
		Respond: func(_ context.Context, _ domain.Quote, list []domain.Quote) ([]domain.Quote, error) {
			return list, nil
		},
	}

	list, err := Execute(ctx, s.executor, op, quote)
	if err != nil {
		s.metrics.RecordSave(ctx, saveOutcome(err))

		return nil, err
	}

	s.metrics.RecordSave(ctx, telemetry.OutcomeSuccess)
	s.logger.InfoContext(ctx, "saved quote",
		slog.Int64("quote_id", quote.ID),
		slog.Int("saved_count", len(list)),
	)

	return list, nil
}

// SavedQuotes returns the saved list in insertion order.
func (s *QuoteService) SavedQuotes(ctx context.Context) ([]domain.Quote, error) {
	list, err := s.saved.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list saved quotes", slog.Any("error", err))

		return nil, err
	}

	return list, nil
}

func saveOutcome(err error) string {
	switch {
	case domain.IsValidation(err):
		return telemetry.OutcomeInvalid
	case domain.IsConflict(err):
		return telemetry.OutcomeDuplicate
	default:
		return telemetry.OutcomeFailure
	}
}
