package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/ghuser/wardrobe/services/reminder"

type metrics struct {
	sent metric.Int64Counter
}

func newMetrics() *metrics {
	sent, _ := otel.Meter(meterName).Int64Counter("wardrobe.reminders.sent",
		metric.WithDescription("Reminder deliveries by outcome"))
	return &metrics{sent: sent}
}

func (m *metrics) delivered(ctx context.Context, outcome string) {
	m.sent.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
