package tracing

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const dispatchTracerName = "github.com/subplan/notification-dispatch/internal/service/dispatch"

func DispatchTracer() trace.Tracer {
	return otel.Tracer(dispatchTracerName)
}

func StartDispatchCycleSpan(ctx context.Context, runID string, userCount int) (context.Context, trace.Span) {
	return DispatchTracer().Start(ctx, "dispatch.cycle",
		trace.WithAttributes(
			attribute.String("run_id", runID),
			attribute.Int("cycle.user_count", userCount),
		),
	)
}

func StartFeedFetchSpan(ctx context.Context, dateKey string) (context.Context, trace.Span) {
	return DispatchTracer().Start(ctx, "dispatch.feed_fetch",
		trace.WithAttributes(
			attribute.String("feed.date", dateKey),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func StartUserDateSpan(ctx context.Context, userID, dateKey string) (context.Context, trace.Span) {
	return DispatchTracer().Start(ctx, "dispatch.user_date",
		trace.WithAttributes(
			attribute.String("user_id", userID),
			attribute.String("target_date", dateKey),
		),
	)
}

func StartPushSendSpan(ctx context.Context, platform string) (context.Context, trace.Span) {
	return DispatchTracer().Start(ctx, "dispatch.push_send",
		trace.WithAttributes(
			attribute.String("device.platform", platform),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordFeedFetchResult(span trace.Span, rowCount int, err error) {
	span.SetAttributes(attribute.Int("feed.row_count", rowCount))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordUserDateResult(span trace.Span, action string, matchCount, sentEndpoints int, err error) {
	span.SetAttributes(
		attribute.String("delta.action", action),
		attribute.Int("delta.match_count", matchCount),
		attribute.Int("delta.sent_endpoints", sentEndpoints),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func RecordCycleResult(span trace.Span, processed, sent, skipped, cleared, failed int, err error) {
	span.SetAttributes(
		attribute.Int("cycle.processed", processed),
		attribute.Int("cycle.sent", sent),
		attribute.Int("cycle.skipped", skipped),
		attribute.Int("cycle.cleared", cleared),
		attribute.Int("cycle.failed", failed),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

// InjectToHTTPRequest propagates the active trace context onto an outbound
// request.
func InjectToHTTPRequest(ctx context.Context, req *http.Request) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
}
