//go:build integration

package integration

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quotebook/internal/adapters/clients"
	"github.com/jsamuelsen/quotebook/internal/adapters/clients/acl"
	httpadapter "github.com/jsamuelsen/quotebook/internal/adapters/http"
	"github.com/jsamuelsen/quotebook/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotebook/internal/adapters/repository/memory"
	"github.com/jsamuelsen/quotebook/internal/app"
	"github.com/jsamuelsen/quotebook/internal/platform/config"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeUpstream stands in for dummyjson. It serves whatever status and
// body were set last.
type fakeUpstream struct {
	mu     sync.Mutex
	status int
	body   string
	delay  time.Duration
	calls  atomic.Int32
}

func (u *fakeUpstream) respond(status int, body string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.status = status
	u.body = body
}

func (u *fakeUpstream) serveQuote(id int, quote, author string) {
	u.respond(http.StatusOK, fmt.Sprintf(`{"id":%d,"quote":%q,"author":%q}`, id, quote, author))
}

func (u *fakeUpstream) setDelay(d time.Duration) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.delay = d
}

func (u *fakeUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.calls.Add(1)

	u.mu.Lock()
	status, body, delay := u.status, u.body, u.delay
	u.mu.Unlock()

	if r.URL.Path != acl.RandomQuotePath {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// harness is the service wired as in cmd/service, served in-process over
// a fake upstream.
type harness struct {
	upstream       *fakeUpstream
	upstreamServer *httptest.Server
	service        *httptest.Server
}

type harnessOption func(*harnessSettings)

type harnessSettings struct {
	clientTimeout  time.Duration
	requestTimeout time.Duration
	maxRequestSize int64
}

func withClientTimeout(d time.Duration) harnessOption {
	return func(s *harnessSettings) { s.clientTimeout = d }
}

func withRequestTimeout(d time.Duration) harnessOption {
	return func(s *harnessSettings) { s.requestTimeout = d }
}

func newHarness(opts ...harnessOption) (*harness, error) {
	settings := harnessSettings{
		clientTimeout:  2 * time.Second,
		requestTimeout: 5 * time.Second,
		maxRequestSize: 1 << 20,
	}
	for _, opt := range opts {
		opt(&settings)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	upstream := &fakeUpstream{status: http.StatusOK, body: `{"id":1,"quote":"A","author":"B"}`}
	upstreamServer := httptest.NewServer(upstream)

	httpClient, err := clients.New(&clients.Config{
		BaseURL:     upstreamServer.URL,
		ServiceName: config.DefaultQuoteSourceName,
		Timeout:     settings.clientTimeout,
		Logger:      logger,
	})
	if err != nil {
		upstreamServer.Close()
		return nil, fmt.Errorf("creating upstream client: %w", err)
	}

	source := acl.NewQuoteSource(acl.QuoteSourceConfig{Client: httpClient, Logger: logger})

	registry := ports.NewHealthRegistry()
	if err := registry.Register(source); err != nil {
		upstreamServer.Close()
		return nil, fmt.Errorf("registering health check: %w", err)
	}

	metricsRegistry := prometheus.NewRegistry()

	service := app.NewQuoteService(app.QuoteServiceConfig{
		Source: source,
		Saved:  memory.NewSavedQuotes(metricsRegistry),
		Logger: logger,
	})

	serverCfg := &config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            config.DefaultServerPort,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		RequestTimeout:  settings.requestTimeout,
		MaxRequestSize:  settings.maxRequestSize,
		CORS: config.CORSConfig{
			AllowOrigin:  "*",
			AllowMethods: "GET,POST,OPTIONS",
			AllowHeaders: "Content-Type,X-Request-ID,X-Correlation-ID",
		},
	}

	server := httpadapter.New(serverCfg, logger)
	httpadapter.SetupRouter(server.Engine(), httpadapter.RouterConfig{
		Logger:       logger,
		Server:       serverCfg,
		QuoteHandler: handlers.NewQuoteHandler(service),
		HealthHandler: handlers.NewHealthHandler(registry,
			handlers.NewBuildInfo("test", "integration", "now"),
			handlers.WithGatherer(metricsRegistry),
		),
	})

	return &harness{
		upstream:       upstream,
		upstreamServer: upstreamServer,
		service:        httptest.NewServer(server.Engine()),
	}, nil
}

func (h *harness) URL() string {
	return h.service.URL
}

func (h *harness) Close() {
	h.service.Close()
	h.upstreamServer.Close()
}
