package acl

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotebook/internal/adapters/clients"
	"github.com/jsamuelsen/quotebook/internal/domain"
)

// setupQuoteSource creates a QuoteSource pointed at a test server.
func setupQuoteSource(t *testing.T, handler http.HandlerFunc) *QuoteSource {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewQuoteSource(QuoteSourceConfig{
		Client: newClient(t, server.URL, 5*time.Second),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func newClient(t *testing.T, baseURL string, timeout time.Duration) *clients.Client {
	t.Helper()

	client, err := clients.New(&clients.Config{
		ServiceName: "quote-source",
		BaseURL:     baseURL,
		Timeout:     timeout,
	})
	require.NoError(t, err)

	return client
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewQuoteSource_PanicsWithoutClient(t *testing.T) {
	assert.Panics(t, func() {
		NewQuoteSource(QuoteSourceConfig{})
	})
}

func TestQuoteSource_Name(t *testing.T) {
	source := setupQuoteSource(t, func(http.ResponseWriter, *http.Request) {})

	assert.Equal(t, "quote-source", source.Name())
}

func TestRandomQuote_Success(t *testing.T) {
	var gotPath string

	source := setupQuoteSource(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeJSON(w, http.StatusOK, map[string]any{
			"id":     42,
			"quote":  "Simplicity is prerequisite for reliability.",
			"author": "Edsger W. Dijkstra",
		})
	})

	quote, err := source.RandomQuote(context.Background())
	require.NoError(t, err)

	assert.Equal(t, RandomQuotePath, gotPath)
	assert.Equal(t, &domain.Quote{
		ID:     42,
		Text:   "Simplicity is prerequisite for reliability.",
		Author: "Edsger W. Dijkstra",
	}, quote)
}

func TestRandomQuote_WhitespaceAuthor(t *testing.T) {
	source := setupQuoteSource(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 7, "quote": "A", "author": " "})
	})

	quote, err := source.RandomQuote(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &domain.Quote{ID: 7, Text: "A", Author: " "}, quote)
}

func TestRandomQuote_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		reason  string
	}{
		{
			name: "server error with message",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "upstream exploded"})
			},
			reason: "upstream exploded",
		},
		{
			name: "service unavailable without body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			reason: "service temporarily unavailable",
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusNotFound, map[string]string{"message": "Quote not found"})
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id": "not-a-number"`))
			},
			reason: "malformed response body",
		},
		{
			name: "quote fails validation",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusOK, map[string]any{"id": 0, "quote": "", "author": "x"})
			},
			reason: "invalid quote",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := setupQuoteSource(t, tt.handler)

			quote, err := source.RandomQuote(context.Background())
			require.Error(t, err)
			assert.Nil(t, quote)

			if tt.reason == "" {
				assert.True(t, domain.IsNotFound(err))
				return
			}

			var unavailable *domain.UnavailableError
			require.True(t, errors.As(err, &unavailable), "got %T: %v", err, err)
			assert.Equal(t, "quote-source", unavailable.Service)
			assert.Contains(t, unavailable.Reason, tt.reason)
		})
	}
}

func TestRandomQuote_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	source := NewQuoteSource(QuoteSourceConfig{Client: newClient(t, url, time.Second)})

	_, err := source.RandomQuote(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestRandomQuote_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(server.Close)

	source := NewQuoteSource(QuoteSourceConfig{Client: newClient(t, server.URL, 50*time.Millisecond)})

	_, err := source.RandomQuote(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
}

func TestQuoteSource_Check(t *testing.T) {
	healthy := setupQuoteSource(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"id": 1, "quote": "q", "author": "a"})
	})
	assert.NoError(t, healthy.Check(context.Background()))

	unhealthy := setupQuoteSource(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	assert.Error(t, unhealthy.Check(context.Background()))
}
