package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newReader(t *testing.T) (*sdkmetric.ManualReader, *sdkmetric.MeterProvider) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	return reader, provider
}

// sumByOutcome collects the named counter and returns its value per outcome.
func sumByOutcome(t *testing.T, reader *sdkmetric.ManualReader, name string) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value(attribute.Key("outcome"))
				out[v.AsString()] += dp.Value
			}
		}
	}
	return out
}

func TestNew_Disabled(t *testing.T) {
	p, err := New(context.Background(), &Config{Enabled: false})
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestQuoteMetrics(t *testing.T) {
	reader, provider := newReader(t)

	m, err := NewQuoteMetricsWithMeter(provider.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordFetch(ctx, OutcomeSuccess)
	m.RecordFetch(ctx, OutcomeSuccess)
	m.RecordFetch(ctx, OutcomeFailure)
	m.RecordSave(ctx, OutcomeDuplicate)

	assert.Equal(t, map[string]int64{OutcomeSuccess: 2, OutcomeFailure: 1}, sumByOutcome(t, reader, "quotebook.quote.fetches"))
	assert.Equal(t, map[string]int64{OutcomeDuplicate: 1}, sumByOutcome(t, reader, "quotebook.quote.saves"))
}

func TestQuoteMetrics_NilReceiver(t *testing.T) {
	var m *QuoteMetrics

	assert.NotPanics(t, func() {
		m.RecordFetch(context.Background(), OutcomeSuccess)
		m.RecordSave(context.Background(), OutcomeInvalid)
	})
}

func TestMetricsMiddleware_CountsRequests(t *testing.T) {
	reader, provider := newReader(t)

	engine := gin.New()
	engine.Use(MetricsMiddleware(provider.Meter("test")))
	engine.GET("/quote", func(c *gin.Context) { c.Status(http.StatusOK) })

	for range 3 {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quote", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == "http.server.request.total" {
				for _, dp := range m.Data.(metricdata.Sum[int64]).DataPoints {
					total += dp.Value
				}
			}
		}
	}
	assert.Equal(t, int64(3), total)
}

func TestMetricsMiddleware_TraceHeader(t *testing.T) {
	_, provider := newReader(t)
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		ctx, span := tp.Tracer("test").Start(c.Request.Context(), "request")
		defer span.End()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	engine.Use(MetricsMiddleware(provider.Meter("test")))

	var seen trace.TraceID
	engine.GET("/quote", func(c *gin.Context) {
		seen = trace.SpanFromContext(c.Request.Context()).SpanContext().TraceID()
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/quote", nil))

	assert.Equal(t, seen.String(), w.Header().Get(TraceIDHeader))
}
