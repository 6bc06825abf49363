package acl

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/quotebook/internal/adapters/clients"
	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/platform/logging"
)

// RandomQuotePath is the dummyjson endpoint returning one random quote.
const RandomQuotePath = "/quotes/random"

// QuoteSourceConfig configures QuoteSource.
type QuoteSourceConfig struct {
	// Client must have its BaseURL set to the quote API, e.g. https://dummyjson.com.
	Client *clients.Client

	Logger *slog.Logger
}

// QuoteSource implements ports.QuoteSource and ports.HealthChecker against
// the dummyjson quotes API.
type QuoteSource struct {
	BaseAdapter
	logger *slog.Logger
}

// NewQuoteSource creates a QuoteSource. Panics if Client is nil.
func NewQuoteSource(cfg QuoteSourceConfig) *QuoteSource {
	if cfg.Client == nil {
		panic("QuoteSource: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteSource{
		BaseAdapter: NewBaseAdapter(cfg.Client, cfg.Client.ServiceName()),
		logger:      logger,
	}
}

// dummyJSONQuote is the upstream wire shape.
type dummyJSONQuote struct {
	ID     int64  `json:"id"`
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// RandomQuote fetches one random quote. Non-2xx statuses map through
// MapHTTPError; transport failures, undecodable bodies and invalid quotes
// surface as domain.UnavailableError.
func (s *QuoteSource) RandomQuote(ctx context.Context) (*domain.Quote, error) {
	s.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", RandomQuotePath))

	body, err := s.Get(ctx, RandomQuotePath, "fetch random quote")
	if err != nil {
		return nil, err
	}

	ext, err := DecodeResponseForService[dummyJSONQuote](body, s.ServiceName())
	if err != nil {
		return nil, err
	}

	quote, err := s.translate(ext)
	if err != nil {
		s.logger.WarnContext(ctx, "upstream returned an invalid quote",
			slog.Int64("quote_id", ext.ID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.Log(ctx, logging.LevelTrace, "translated upstream quote",
		slog.Int64("quote_id", quote.ID),
		slog.String("author", quote.Author),
	)

	return quote, nil
}

func (s *QuoteSource) translate(ext *dummyJSONQuote) (*domain.Quote, error) {
	quote := &domain.Quote{
		ID:     ext.ID,
		Text:   ext.Quote,
		Author: ext.Author,
	}

	if err := quote.Validate(); err != nil {
		return nil, domain.NewUnavailableError(s.ServiceName(), "invalid quote: "+err.Error())
	}

	return quote, nil
}

// Name implements ports.HealthChecker.
func (s *QuoteSource) Name() string {
	return s.ServiceName()
}

// Check implements ports.HealthChecker by fetching a random quote.
func (s *QuoteSource) Check(ctx context.Context) error {
	_, err := s.RandomQuote(ctx)
	return err
}
