package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotebook/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotebook/internal/adapters/repository/memory"
	"github.com/jsamuelsen/quotebook/internal/app"
	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/mocks"
)

// setupQuoteRouter wires a QuoteHandler over a mock source and a fresh
// in-memory saved list.
func setupQuoteRouter(t *testing.T, setupMock func(*mocks.MockQuoteSource)) *gin.Engine {
	t.Helper()

	source := mocks.NewMockQuoteSource(t)
	if setupMock != nil {
		setupMock(source)
	}

	service := app.NewQuoteService(app.QuoteServiceConfig{
		Source: source,
		Saved:  memory.NewSavedQuotes(nil),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	router := gin.New()
	NewQuoteHandler(service).RegisterQuoteRoutes(&router.RouterGroup)

	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []dto.QuoteResponse {
	t.Helper()

	var list []dto.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))

	return list
}

func TestQuoteHandler_GetRandomQuote(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(*mocks.MockQuoteSource)
		wantStatus int
		wantBody   string
	}{
		{
			name: "success",
			setupMock: func(m *mocks.MockQuoteSource) {
				m.EXPECT().RandomQuote(mock.Anything).Return(&domain.Quote{
					ID: 12, Text: "Simplicity is prerequisite for reliability.", Author: "Edsger W. Dijkstra",
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":12,"quote":"Simplicity is prerequisite for reliability.","author":"Edsger W. Dijkstra"}`,
		},
		{
			name: "upstream unavailable",
			setupMock: func(m *mocks.MockQuoteSource) {
				m.EXPECT().RandomQuote(mock.Anything).
					Return(nil, domain.NewUnavailableError("quote-source", "connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"service \"quote-source\" unavailable: connection refused"}`,
		},
		{
			name: "unexpected error",
			setupMock: func(m *mocks.MockQuoteSource) {
				m.EXPECT().RandomQuote(mock.Anything).Return(nil, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupQuoteRouter(t, tt.setupMock)

			w := do(router, http.MethodGet, "/quote", "")

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestQuoteHandler_SaveQuote_Scenario(t *testing.T) {
	router := setupQuoteRouter(t, nil)

	first := do(router, http.MethodPost, "/quote", `{"id":1,"quote":"A","author":"B"}`)
	require.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, `[{"id":1,"quote":"A","author":"B"}]`, first.Body.String())

	dup := do(router, http.MethodPost, "/quote", `{"id":1,"quote":"A","author":"B"}`)
	assert.Equal(t, http.StatusInternalServerError, dup.Code)
	assert.JSONEq(t, `{"message":"Quote already exists"}`, dup.Body.String())

	second := do(router, http.MethodPost, "/quote", `{"id":2,"quote":"C","author":"D"}`)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, []dto.QuoteResponse{
		{ID: 1, Quote: "A", Author: "B"},
		{ID: 2, Quote: "C", Author: "D"},
	}, decodeList(t, second))
}

func TestQuoteHandler_SaveQuote_AcceptsAnyNonEmptyText(t *testing.T) {
	router := setupQuoteRouter(t, nil)

	w := do(router, http.MethodPost, "/quote", `{"id":3,"quote":"   ","author":"B"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `[{"id":3,"quote":"   ","author":"B"}]`, w.Body.String())

	w = do(router, http.MethodPost, "/quote", `{"id":4.0,"quote":"C","author":"D"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []dto.QuoteResponse{
		{ID: 3, Quote: "   ", Author: "B"},
		{ID: 4, Quote: "C", Author: "D"},
	}, decodeList(t, w))
}

func TestQuoteHandler_SaveQuote_ValidationLeavesListUnchanged(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		details string
	}{
		{
			name:    "negative id",
			body:    `{"id":-1,"quote":"A","author":"B"}`,
			details: `[{"field":"id","message":"Number must be greater than 0"}]`,
		},
		{
			name:    "empty quote",
			body:    `{"id":1,"quote":"","author":"B"}`,
			details: `[{"field":"quote","message":"Quote is required"}]`,
		},
		{
			name:    "wrong type",
			body:    `{"id":"one","quote":"A","author":"B"}`,
			details: `[{"field":"id","message":"Expected number, received string"}]`,
		},
		{
			name:    "malformed json",
			body:    `{"id":`,
			details: `[{"field":"body","message":"malformed JSON"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupQuoteRouter(t, nil)

			w := do(router, http.MethodPost, "/quote", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"message":"Validation error","details":`+tt.details+`}`, w.Body.String())

			list := do(router, http.MethodGet, "/quote/saved", "")
			assert.JSONEq(t, `[]`, list.Body.String())
		})
	}
}

func TestQuoteHandler_ListSavedQuotes(t *testing.T) {
	router := setupQuoteRouter(t, nil)

	empty := do(router, http.MethodGet, "/quote/saved", "")
	assert.Equal(t, http.StatusOK, empty.Code)
	assert.JSONEq(t, `[]`, empty.Body.String())

	do(router, http.MethodPost, "/quote", `{"id":4,"quote":"Q","author":"W"}`)

	list := do(router, http.MethodGet, "/quote/saved", "")
	assert.Equal(t, http.StatusOK, list.Code)
	assert.Equal(t, []dto.QuoteResponse{{ID: 4, Quote: "Q", Author: "W"}}, decodeList(t, list))
}
