package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	dispatchMeterName = "dispatch.service"
)

type DispatchMetrics struct {
	usersProcessed    metric.Int64Counter
	notifications     metric.Int64Counter
	deliveries        metric.Int64Counter
	endpointsRemoved  metric.Int64Counter
	feedFetchDuration metric.Float64Histogram
	cycleDuration     metric.Float64Histogram
}

func NewDispatchMetrics() (*DispatchMetrics, error) {
	meter := otel.Meter(dispatchMeterName)

	usersProcessed, err := meter.Int64Counter(
		"dispatch_users_processed_total",
		metric.WithDescription("Total number of (user, date) pairs processed"),
		metric.WithUnit("{pair}"),
	)
	if err != nil {
		return nil, err
	}

	notifications, err := meter.Int64Counter(
		"dispatch_notifications_total",
		metric.WithDescription("Delta decisions taken per (user, date) pair"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	deliveries, err := meter.Int64Counter(
		"dispatch_deliveries_total",
		metric.WithDescription("Per-endpoint push delivery attempts"),
		metric.WithUnit("{delivery}"),
	)
	if err != nil {
		return nil, err
	}

	endpointsRemoved, err := meter.Int64Counter(
		"dispatch_endpoints_removed_total",
		metric.WithDescription("Stale push endpoints removed after a permanent transport rejection"),
		metric.WithUnit("{endpoint}"),
	)
	if err != nil {
		return nil, err
	}

	feedFetchDuration, err := meter.Float64Histogram(
		"dispatch_feed_fetch_duration_seconds",
		metric.WithDescription("Upstream feed fetch duration per date"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30,
		),
	)
	if err != nil {
		return nil, err
	}

	cycleDuration, err := meter.Float64Histogram(
		"dispatch_cycle_duration_seconds",
		metric.WithDescription("Full dispatch cycle duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60,
		),
	)
	if err != nil {
		return nil, err
	}

	return &DispatchMetrics{
		usersProcessed:    usersProcessed,
		notifications:     notifications,
		deliveries:        deliveries,
		endpointsRemoved:  endpointsRemoved,
		feedFetchDuration: feedFetchDuration,
		cycleDuration:     cycleDuration,
	}, nil
}

func (m *DispatchMetrics) RecordUserProcessed(ctx context.Context) {
	m.usersProcessed.Add(ctx, 1)
}

// RecordDeltaAction counts one delta decision. action is send/skip/clear,
// outcome qualifies it further (e.g. "sent", "no_eligible_device").
func (m *DispatchMetrics) RecordDeltaAction(ctx context.Context, action, outcome string) {
	m.notifications.Add(ctx, 1, metric.WithAttributes(
		attribute.String("action", action),
		attribute.String("outcome", outcome),
	))
}

func (m *DispatchMetrics) RecordDelivery(ctx context.Context, platform, outcome string) {
	m.deliveries.Add(ctx, 1, metric.WithAttributes(
		attribute.String("platform", platform),
		attribute.String("outcome", outcome),
	))
}

func (m *DispatchMetrics) RecordEndpointRemoved(ctx context.Context, platform string) {
	m.endpointsRemoved.Add(ctx, 1, metric.WithAttributes(
		attribute.String("platform", platform),
	))
}

func (m *DispatchMetrics) RecordFeedFetchDuration(ctx context.Context, duration time.Duration) {
	m.feedFetchDuration.Record(ctx, duration.Seconds())
}

func (m *DispatchMetrics) RecordCycleDuration(ctx context.Context, duration time.Duration) {
	m.cycleDuration.Record(ctx, duration.Seconds())
}
