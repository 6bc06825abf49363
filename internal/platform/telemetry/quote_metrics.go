package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Outcome labels for quote operations.
const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeDuplicate = "duplicate"
	OutcomeInvalid   = "invalid"
)

// QuoteMetrics counts quote fetches and saves by outcome.
type QuoteMetrics struct {
	fetches metric.Int64Counter
	saves   metric.Int64Counter
}

// NewQuoteMetrics creates quote instruments on the global meter provider.
func NewQuoteMetrics() (*QuoteMetrics, error) {
	return NewQuoteMetricsWithMeter(otel.Meter(InstrumentationName))
}

// NewQuoteMetricsWithMeter creates quote instruments on meter.
func NewQuoteMetricsWithMeter(meter metric.Meter) (*QuoteMetrics, error) {
	fetches, err := meter.Int64Counter(
		"quotebook.quote.fetches",
		metric.WithDescription("Random quote fetches from the upstream source"),
	)
	if err != nil {
		return nil, err
	}

	saves, err := meter.Int64Counter(
		"quotebook.quote.saves",
		metric.WithDescription("Attempts to save a quote"),
	)
	if err != nil {
		return nil, err
	}

	return &QuoteMetrics{fetches: fetches, saves: saves}, nil
}

// RecordFetch counts one upstream fetch. Safe on a nil receiver.
func (m *QuoteMetrics) RecordFetch(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.fetches.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// RecordSave counts one save attempt. Safe on a nil receiver.
func (m *QuoteMetrics) RecordSave(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.saves.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
