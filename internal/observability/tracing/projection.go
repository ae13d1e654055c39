package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const projectionTracerName = "github.com/KasumiMercury/primind-autopost-scheduling/internal/service"

func ProjectionTracer() trace.Tracer {
	return otel.Tracer(projectionTracerName)
}

func StartProjectionSpan(ctx context.Context, projection, businessID string) (context.Context, trace.Span) {
	return ProjectionTracer().Start(ctx, "projection."+projection,
		trace.WithAttributes(
			attribute.String("business_id", businessID),
		),
	)
}

func StartSnapshotLoadSpan(ctx context.Context, businessID string) (context.Context, trace.Span) {
	return ProjectionTracer().Start(ctx, "projection.snapshot_load",
		trace.WithAttributes(
			attribute.String("business_id", businessID),
		),
	)
}

func StartCacheOperationSpan(ctx context.Context, operation, key string) (context.Context, trace.Span) {
	return ProjectionTracer().Start(ctx, "projection.cache."+operation,
		trace.WithAttributes(
			attribute.String("db.system", "redis"),
			attribute.String("db.operation", operation),
			attribute.String("db.key", key),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func SetWindow(span trace.Span, start, end time.Time, timezone string) {
	span.SetAttributes(
		attribute.String("window.start", start.Format(time.RFC3339)),
		attribute.String("window.end", end.Format(time.RFC3339)),
		attribute.String("window.timezone", timezone),
	)
}

func RecordSlotPipelineResult(span trace.Span, expanded, suppressed, assigned, unfilled, backlog int) {
	span.SetAttributes(
		attribute.Int("slots.expanded", expanded),
		attribute.Int("slots.suppressed", suppressed),
		attribute.Int("slots.assigned", assigned),
		attribute.Int("slots.unfilled", unfilled),
		attribute.Int("content.backlog", backlog),
	)
}

func RecordCountResult(span trace.Span, kind string, total int) {
	span.SetAttributes(
		attribute.String("count.kind", kind),
		attribute.Int("count.total", total),
	)
}

func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
