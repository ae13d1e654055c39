package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	projectionMeterName = "autopost.projection"
)

type ProjectionMetrics struct {
	slotsExpanded      metric.Int64Counter
	slotsSuppressed    metric.Int64Counter
	autoAssignments    metric.Int64Counter
	unfilledSlots      metric.Int64Counter
	invalidTimes       metric.Int64Counter
	projectionDuration metric.Float64Histogram
}

func NewProjectionMetrics() (*ProjectionMetrics, error) {
	meter := otel.Meter(projectionMeterName)

	slotsExpanded, err := meter.Int64Counter(
		"autopost_slots_expanded_total",
		metric.WithDescription("Total number of slots produced from weekly patterns"),
		metric.WithUnit("{slot}"),
	)
	if err != nil {
		return nil, err
	}

	slotsSuppressed, err := meter.Int64Counter(
		"autopost_slots_suppressed_total",
		metric.WithDescription("Total number of slots dropped because a manual post occupies the same minute"),
		metric.WithUnit("{slot}"),
	)
	if err != nil {
		return nil, err
	}

	autoAssignments, err := meter.Int64Counter(
		"autopost_auto_assignments_total",
		metric.WithDescription("Total number of content items assigned to auto slots"),
		metric.WithUnit("{post}"),
	)
	if err != nil {
		return nil, err
	}

	unfilledSlots, err := meter.Int64Counter(
		"autopost_unfilled_slots_total",
		metric.WithDescription("Total number of auto slots left without content"),
		metric.WithUnit("{slot}"),
	)
	if err != nil {
		return nil, err
	}

	invalidTimes, err := meter.Int64Counter(
		"autopost_invalid_pattern_times_total",
		metric.WithDescription("Total number of weekly pattern times that could not be parsed"),
		metric.WithUnit("{time}"),
	)
	if err != nil {
		return nil, err
	}

	projectionDuration, err := meter.Float64Histogram(
		"autopost_projection_duration_seconds",
		metric.WithDescription("Time spent computing a projection, including snapshot reads"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5,
		),
	)
	if err != nil {
		return nil, err
	}

	return &ProjectionMetrics{
		slotsExpanded:      slotsExpanded,
		slotsSuppressed:    slotsSuppressed,
		autoAssignments:    autoAssignments,
		unfilledSlots:      unfilledSlots,
		invalidTimes:       invalidTimes,
		projectionDuration: projectionDuration,
	}, nil
}

// RecordSlots records the outcome of one slot pipeline run.
func (m *ProjectionMetrics) RecordSlots(ctx context.Context, expanded, suppressed, assigned, unfilled int) {
	m.slotsExpanded.Add(ctx, int64(expanded))
	m.slotsSuppressed.Add(ctx, int64(suppressed))
	m.autoAssignments.Add(ctx, int64(assigned))
	m.unfilledSlots.Add(ctx, int64(unfilled))
}

func (m *ProjectionMetrics) RecordInvalidTimes(ctx context.Context, count int) {
	if count == 0 {
		return
	}
	m.invalidTimes.Add(ctx, int64(count))
}

func (m *ProjectionMetrics) RecordProjectionDuration(ctx context.Context, projection, outcome string, duration time.Duration) {
	m.projectionDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("projection", projection),
		attribute.String("outcome", outcome),
	))
}
