package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen/quotebook/internal/adapters/clients"
	"github.com/jsamuelsen/quotebook/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotebook/internal/domain"
)

// Service paths.
const (
	QuotePath       = "/quote"
	SavedQuotesPath = "/quote/saved"
)

const (
	apiServiceName = "quotebook-api"
	userAgent      = "quotebook-client"
)

// APIError is a non-2xx answer from the quotebook service. Message is the
// server's message, empty when the body carried none.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("quotebook API returned HTTP %d", e.Status)
	}

	return fmt.Sprintf("quotebook API returned HTTP %d: %s", e.Status, e.Message)
}

// API implements QuoteAPI over HTTP.
type API struct {
	client *clients.Client
}

var _ QuoteAPI = (*API)(nil)

// NewAPI creates an API for the service at cfg.BaseURL.
func NewAPI(cfg *APIConfig, logger *slog.Logger) (*API, error) {
	if cfg == nil {
		return nil, errors.New("api config is required")
	}

	c, err := clients.New(&clients.Config{
		BaseURL:     cfg.BaseURL,
		ServiceName: apiServiceName,
		Timeout:     cfg.Timeout,
		UserAgent:   userAgent,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating http client: %w", err)
	}

	return &API{client: c}, nil
}

type quoteBody struct {
	ID     int64  `json:"id"`
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// RandomQuote calls GET /quote.
func (a *API) RandomQuote(ctx context.Context) (*domain.Quote, error) {
	resp, err := a.client.Get(ctx, QuotePath)
	if err != nil {
		return nil, fmt.Errorf("fetching quote: %w", err)
	}

	body, err := checkResponse(resp)
	if err != nil {
		return nil, err
	}

	ext, err := acl.DecodeResponse[quoteBody](body)
	if err != nil {
		return nil, fmt.Errorf("fetching quote: %w", err)
	}

	return toQuote(ext)
}

// SaveQuote calls POST /quote and returns the full saved list.
func (a *API) SaveQuote(ctx context.Context, quote domain.Quote) ([]domain.Quote, error) {
	payload, err := json.Marshal(quoteBody{ID: quote.ID, Quote: quote.Text, Author: quote.Author})
	if err != nil {
		return nil, fmt.Errorf("encoding quote: %w", err)
	}

	resp, err := a.client.Post(ctx, QuotePath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("saving quote: %w", err)
	}

	return decodeList(resp, "saving quote")
}

// SavedQuotes calls GET /quote/saved.
func (a *API) SavedQuotes(ctx context.Context) ([]domain.Quote, error) {
	resp, err := a.client.Get(ctx, SavedQuotesPath)
	if err != nil {
		return nil, fmt.Errorf("listing saved quotes: %w", err)
	}

	return decodeList(resp, "listing saved quotes")
}

func decodeList(resp *http.Response, operation string) ([]domain.Quote, error) {
	body, err := checkResponse(resp)
	if err != nil {
		return nil, err
	}

	ext, err := acl.DecodeResponse[[]quoteBody](body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	quotes, err := acl.TranslateSlice(*ext, toQuote)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	return quotes, nil
}

// checkResponse returns the body of a 2xx response, otherwise an APIError
// built from the error body.
func checkResponse(resp *http.Response) (io.ReadCloser, error) {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return resp.Body, nil
	}
	defer func() { _ = resp.Body.Close() }()

	apiErr := &APIError{Status: resp.StatusCode}
	if parsed := acl.ParseErrorResponse(resp.Body); parsed != nil {
		apiErr.Message = parsed.Message
	}

	return nil, apiErr
}

func toQuote(ext *quoteBody) (*domain.Quote, error) {
	quote := &domain.Quote{ID: ext.ID, Text: ext.Quote, Author: ext.Author}
	if err := quote.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", acl.ErrMalformedResponse, err)
	}

	return quote, nil
}
