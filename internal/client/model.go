// Package client holds the quote browser's interaction model and its HTTP
// binding to the quotebook service. Front-ends drive a Model and render
// its View; they never talk to the service directly.
package client

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// User-facing texts.
const (
	MessageServerProblem = "We are having a problem with the server, please try again later"
	MessageQuoteSaved    = "Quote saved"
	MessageSaveFailed    = "Error saving quote"
)

// QuoteAPI is the quotebook service as seen by the client.
type QuoteAPI interface {
	RandomQuote(ctx context.Context) (*domain.Quote, error)
	SaveQuote(ctx context.Context, quote domain.Quote) ([]domain.Quote, error)
	SavedQuotes(ctx context.Context) ([]domain.Quote, error)
}

// Notifier shows transient notifications such as toasts.
type Notifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

// State is the raw view state.
type State struct {
	CurrentQuote *domain.Quote
	Error        bool
	SavedQuotes  []domain.Quote
	IsLoading    bool
	IsSaving     bool
}

// Content selects what the main panel shows.
type Content int

// Exactly one content kind is shown at a time.
const (
	ContentLoading Content = iota
	ContentError
	ContentQuote
)

func (c Content) String() string {
	switch c {
	case ContentError:
		return "error"
	case ContentQuote:
		return "quote"
	default:
		return "loading"
	}
}

// View is a render-ready snapshot of the model.
type View struct {
	Content Content

	// Quote is set when Content is ContentQuote.
	Quote *domain.Quote

	// Message is set when Content is ContentError.
	Message string

	// Loading and Saving drive the button spinners.
	Loading bool
	Saving  bool

	CanRefetch bool
	ShowSave   bool
	CanSave    bool

	SavedQuotes []domain.Quote
}

// ModelConfig configures a Model.
type ModelConfig struct {
	API      QuoteAPI
	Notifier Notifier
	Logger   *slog.Logger
}

// Model is the client state machine. The loading and saving flags guard
// Refetch and Save against double invocation; the mutex only keeps state
// reads consistent for concurrent renderers.
type Model struct {
	api      QuoteAPI
	notifier Notifier
	logger   *slog.Logger

	mu    sync.Mutex
	state State
}

// NewModel creates a Model. Panics if API or Notifier is nil.
func NewModel(cfg ModelConfig) *Model {
	if cfg.API == nil {
		panic("Model: API is required")
	}
	if cfg.Notifier == nil {
		panic("Model: Notifier is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Model{
		api:      cfg.API,
		notifier: cfg.Notifier,
		logger:   logger.With(slog.String("component", "client.Model")),
	}
}

// Mount performs the initial fetch. Unlike Refetch it does not raise the
// loading flag, so the quote panel shows the loading indicator instead.
func (m *Model) Mount(ctx context.Context) {
	m.fetchQuote(ctx)
}

// Refetch requests a new quote. It reports false without doing anything
// while a fetch or save is in flight.
func (m *Model) Refetch(ctx context.Context) bool {
	m.mu.Lock()
	if m.state.IsLoading || m.state.IsSaving {
		m.mu.Unlock()
		return false
	}
	m.state.IsLoading = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.state.IsLoading = false
		m.mu.Unlock()
	}()

	m.fetchQuote(ctx)

	return true
}

// Save posts the current quote. It reports false without doing anything
// while a fetch or save is in flight or when no quote is shown. The
// outcome is reported through the Notifier.
func (m *Model) Save(ctx context.Context) bool {
	m.mu.Lock()
	if m.state.IsSaving || m.state.IsLoading || m.state.CurrentQuote == nil {
		m.mu.Unlock()
		return false
	}
	m.state.IsSaving = true
	quote := *m.state.CurrentQuote
	m.mu.Unlock()

	saved, err := m.api.SaveQuote(ctx, quote)

	m.mu.Lock()
	m.state.IsSaving = false
	if err == nil {
		m.state.SavedQuotes = saved
	}
	m.mu.Unlock()

	if err != nil {
		m.logger.WarnContext(ctx, "saving quote failed",
			slog.Int64("quote_id", quote.ID),
			slog.Any("error", err),
		)
		m.notifier.Error(ctx, saveFailureMessage(err))
		return true
	}

	m.notifier.Success(ctx, MessageQuoteSaved)

	return true
}

// LoadSaved replaces the saved list with the service's current list.
// Failures leave the state untouched.
func (m *Model) LoadSaved(ctx context.Context) error {
	saved, err := m.api.SavedQuotes(ctx)
	if err != nil {
		m.logger.WarnContext(ctx, "loading saved quotes failed", slog.Any("error", err))
		return err
	}

	m.mu.Lock()
	m.state.SavedQuotes = saved
	m.mu.Unlock()

	return nil
}

// State returns a copy of the raw state.
func (m *Model) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.snapshot()
}

// View returns the render-ready view. Error takes precedence over the
// quote, which takes precedence over the loading indicator.
func (m *Model) View() View {
	m.mu.Lock()
	s := m.snapshot()
	m.mu.Unlock()

	v := View{
		Loading:     s.IsLoading,
		Saving:      s.IsSaving,
		CanRefetch:  !s.IsLoading && !s.IsSaving,
		ShowSave:    s.CurrentQuote != nil,
		SavedQuotes: s.SavedQuotes,
	}
	v.CanSave = v.ShowSave && !s.IsSaving && !s.IsLoading

	switch {
	case s.Error:
		v.Content = ContentError
		v.Message = MessageServerProblem
	case s.CurrentQuote != nil:
		v.Content = ContentQuote
		v.Quote = s.CurrentQuote
	default:
		v.Content = ContentLoading
	}

	return v
}

// fetchQuote clears the error flag, then stores either the new quote or
// the error. A failed fetch keeps the previous quote.
func (m *Model) fetchQuote(ctx context.Context) {
	m.mu.Lock()
	m.state.Error = false
	m.mu.Unlock()

	quote, err := m.api.RandomQuote(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.logger.WarnContext(ctx, "fetching quote failed", slog.Any("error", err))
		m.state.Error = true
		return
	}

	m.state.CurrentQuote = quote
}

// snapshot copies the state. Callers hold mu.
func (m *Model) snapshot() State {
	s := m.state
	if s.CurrentQuote != nil {
		q := *s.CurrentQuote
		s.CurrentQuote = &q
	}
	s.SavedQuotes = slices.Clone(s.SavedQuotes)

	return s
}

func saveFailureMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return MessageSaveFailed
}
