package count

import (
	"context"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/observability/metrics"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/observability/tracing"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/queue"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/snapshot"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/timezone"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/window"
)

type Query struct {
	BusinessID string
	Start      *window.Bound
	End        *window.Bound
}

type Option func(*Service)

// WithClock overrides the source of "now".
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

type Service struct {
	loader   *snapshot.Loader
	counter  *Counter
	recorder domain.ProjectionRecorder
	metrics  *metrics.ProjectionMetrics
	now      func() time.Time
}

func NewService(
	loader *snapshot.Loader,
	counter *Counter,
	recorder domain.ProjectionRecorder,
	projectionMetrics *metrics.ProjectionMetrics,
	opts ...Option,
) *Service {
	s := &Service{
		loader:   loader,
		counter:  counter,
		recorder: recorder,
		metrics:  projectionMetrics,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PostedCount counts what the business has already published per platform.
func (s *Service) PostedCount(ctx context.Context, q Query) (result *domain.PlatformCount, err error) {
	ctx, span := tracing.StartProjectionSpan(ctx, "posted_count", q.BusinessID)
	started := time.Now()
	defer func() {
		s.recordDuration(ctx, "posted_count", started, err)
		tracing.EndSpan(span, err)
	}()

	cfg, rng, err := s.resolve(ctx, q)
	if err != nil {
		return nil, err
	}

	snap, err := s.loader.LoadParts(ctx, cfg, snapshot.Options{PostedRecords: &rng})
	if err != nil {
		return nil, err
	}

	counted, err := s.counter.Posted(snap.PostedRecords, rng)
	if err != nil {
		return nil, err
	}

	tracing.RecordCountResult(span, domain.ProjectionKindPosted, counted.Total)
	s.record(ctx, q.BusinessID, domain.ProjectionKindPosted, counted, rng)

	return &counted, nil
}

// UpcomingCount counts the manual posts still to go out plus the ready
// content waiting for an auto slot.
func (s *Service) UpcomingCount(ctx context.Context, q Query) (result *domain.PlatformCount, err error) {
	ctx, span := tracing.StartProjectionSpan(ctx, "upcoming_count", q.BusinessID)
	started := time.Now()
	defer func() {
		s.recordDuration(ctx, "upcoming_count", started, err)
		tracing.EndSpan(span, err)
	}()

	now := s.now()

	cfg, rng, err := s.resolve(ctx, q)
	if err != nil {
		return nil, err
	}

	snap, err := s.loader.LoadParts(ctx, cfg, snapshot.Options{
		Content:     true,
		ManualPosts: &rng,
	})
	if err != nil {
		return nil, err
	}

	pending := make([]domain.ManualPost, 0, len(snap.ManualPosts))
	for _, m := range snap.ManualPosts {
		if !m.Date.Before(now) {
			pending = append(pending, m)
		}
	}

	ready := len(queue.Eligible(snap.Content))
	counted, err := s.counter.Upcoming(pending, ready, snap.Config, rng)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "counted upcoming posts",
		slog.String("business_id", q.BusinessID),
		slog.Int("manual_count", len(pending)),
		slog.Int("ready_content_count", ready),
		slog.Int("total", counted.Total),
	)

	tracing.RecordCountResult(span, domain.ProjectionKindUpcoming, counted.Total)
	s.record(ctx, q.BusinessID, domain.ProjectionKindUpcoming, counted, rng)

	return &counted, nil
}

func (s *Service) resolve(ctx context.Context, q Query) (*domain.BusinessScheduleConfig, domain.DateRange, error) {
	cfg, err := s.loader.Config(ctx, q.BusinessID)
	if err != nil {
		return nil, domain.DateRange{}, err
	}

	rng, err := window.Range(q.Start, q.End, timezone.Location(cfg.Timezone))
	if err != nil {
		return nil, domain.DateRange{}, err
	}
	return cfg, rng, nil
}

func (s *Service) record(ctx context.Context, businessID, kind string, counted domain.PlatformCount, rng domain.DateRange) {
	if s.recorder == nil {
		return
	}

	records := domain.ProjectionRecords(businessID, kind, counted, s.counter.Platforms(), rng, s.now())
	if err := s.recorder.RecordCounts(ctx, records); err != nil {
		slog.WarnContext(ctx, "failed to record projection counts",
			slog.String("business_id", businessID),
			slog.String("kind", kind),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) recordDuration(ctx context.Context, projection string, started time.Time, err error) {
	if s.metrics == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	s.metrics.RecordProjectionDuration(ctx, projection, outcome, time.Since(started))
}
