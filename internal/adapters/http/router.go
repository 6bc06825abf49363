package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotebook/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotebook/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotebook/internal/platform/config"
	"github.com/jsamuelsen/quotebook/internal/platform/telemetry"
)

// defaultServiceName names spans when RouterConfig.ServiceName is empty.
const defaultServiceName = "quotebook"

// RouterConfig contains what SetupRouter wires together.
type RouterConfig struct {
	// Logger is stored in every request context.
	Logger *slog.Logger

	// ServiceName names the server spans.
	ServiceName string

	// Server supplies the request timeout and CORS settings.
	Server *config.ServerConfig

	QuoteHandler  *handlers.QuoteHandler
	HealthHandler *handlers.HealthHandler
}

// SetupRouter registers middleware and routes on engine.
// Global middleware, in order:
//  1. Logger - request-scoped logger
//  2. Recovery - panics become 500s
//  3. CORS - headers on cross-origin responses, preflight answered with 204
//  4. Request ID and Correlation ID
//  5. OpenTelemetry tracing and HTTP metrics
//  6. Logging - one line per request, probes skipped
//
// Routes:
//   - /-/live, /-/ready, /-/build, /-/metrics without timeout
//   - /quote, /quote/saved behind the request timeout
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.HandleMethodNotAllowed = true
	engine.NoRoute(noRoute)
	engine.NoMethod(noMethod)

	engine.Use(
		middleware.Logger(cfg.Logger),
		middleware.Recovery(nil),
		middleware.CORS(corsOptions(cfg.Server)),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	engine.Use(telemetry.Middleware(serviceName)...)
	engine.Use(middleware.Logging())

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	if cfg.QuoteHandler != nil {
		api := engine.Group("")
		if cfg.Server != nil {
			api.Use(middleware.Timeout(cfg.Server.RequestTimeout))
		}

		cfg.QuoteHandler.RegisterQuoteRoutes(api)
	}
}

func corsOptions(cfg *config.ServerConfig) middleware.CORSOptions {
	if cfg == nil {
		return middleware.CORSOptions{}
	}

	return middleware.CORSOptions{
		AllowOrigin:  cfg.CORS.AllowOrigin,
		AllowMethods: cfg.CORS.AllowMethods,
		AllowHeaders: cfg.CORS.AllowHeaders,
	}
}
