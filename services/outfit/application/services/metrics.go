package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/ghuser/wardrobe/services/outfit"

type metrics struct {
	writes  metric.Int64Counter
	queries metric.Int64Counter
}

// newMetrics registers the outfit instruments on the global meter provider.
// Instrument errors still yield usable no-op instruments.
func newMetrics() *metrics {
	meter := otel.Meter(meterName)
	writes, _ := meter.Int64Counter("wardrobe.outfit.writes",
		metric.WithDescription("Outfit ledger writes by operation"))
	queries, _ := meter.Int64Counter("wardrobe.history.queries",
		metric.WithDescription("History analytics queries by kind"))
	return &metrics{writes: writes, queries: queries}
}

func (m *metrics) write(ctx context.Context, op string) {
	m.writes.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
}

func (m *metrics) query(ctx context.Context, kind string) {
	m.queries.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}
