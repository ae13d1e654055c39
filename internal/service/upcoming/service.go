package upcoming

import (
	"context"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/observability/metrics"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/observability/tracing"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/snapshot"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/timezone"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/window"
)

type Query struct {
	BusinessID string
	Start      *window.Bound
	End        *window.Bound
}

type Result struct {
	Posts    []domain.UpcomingPost
	Window   window.Window
	Timezone string
}

type SlotsResult struct {
	Slots        []time.Time
	Window       window.Window
	Timezone     string
	InvalidTimes []string
}

// DefaultMaxWindowDays caps how many calendar days one request may expand.
const DefaultMaxWindowDays = 366

type Option func(*Service)

// WithClock overrides the source of "now".
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithMaxWindowDays overrides DefaultMaxWindowDays.
func WithMaxWindowDays(days int) Option {
	return func(s *Service) {
		s.maxWindowDays = days
	}
}

type Service struct {
	loader        *snapshot.Loader
	autoEligible  domain.PlatformSet
	horizonDays   int
	maxWindowDays int
	metrics       *metrics.ProjectionMetrics
	now           func() time.Time
}

func NewService(
	loader *snapshot.Loader,
	autoEligible domain.PlatformSet,
	horizonDays int,
	projectionMetrics *metrics.ProjectionMetrics,
	opts ...Option,
) *Service {
	s := &Service{
		loader:        loader,
		autoEligible:  autoEligible,
		horizonDays:   horizonDays,
		maxWindowDays: DefaultMaxWindowDays,
		metrics:       projectionMetrics,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UpcomingPosts projects the manual and auto posts a business will publish
// inside the requested window.
func (s *Service) UpcomingPosts(ctx context.Context, q Query) (result *Result, err error) {
	ctx, span := tracing.StartProjectionSpan(ctx, "upcoming_posts", q.BusinessID)
	started := time.Now()
	defer func() {
		s.recordDuration(ctx, "upcoming_posts", started, err)
		tracing.EndSpan(span, err)
	}()

	snap, w, now, err := s.load(ctx, q, true)
	if err != nil {
		return nil, err
	}
	tracing.SetWindow(span, w.Start, w.End, snap.Config.Timezone)

	p, err := Project(snap, w, now, s.autoEligible)
	if err != nil {
		return nil, err
	}

	tracing.RecordSlotPipelineResult(span, p.Expanded, p.Suppressed, p.Assigned, len(p.UnfilledSlots), p.Backlog)
	s.observe(ctx, q.BusinessID, p)

	slog.InfoContext(ctx, "projected upcoming posts",
		slog.String("business_id", q.BusinessID),
		slog.Int("post_count", len(p.Posts)),
		slog.Int("auto_count", p.Assigned),
		slog.Int("unfilled_slot_count", len(p.UnfilledSlots)),
		slog.Int("backlog_count", p.Backlog),
	)

	return &Result{
		Posts:    p.Posts,
		Window:   w,
		Timezone: timezone.Resolve(snap.Config.Timezone),
	}, nil
}

// ScheduleSlots lists the future pattern slots inside the window that no
// manual post occupies, whether or not content is available for them.
func (s *Service) ScheduleSlots(ctx context.Context, q Query) (result *SlotsResult, err error) {
	ctx, span := tracing.StartProjectionSpan(ctx, "schedule_slots", q.BusinessID)
	started := time.Now()
	defer func() {
		s.recordDuration(ctx, "schedule_slots", started, err)
		tracing.EndSpan(span, err)
	}()

	snap, w, now, err := s.load(ctx, q, false)
	if err != nil {
		return nil, err
	}
	tracing.SetWindow(span, w.Start, w.End, snap.Config.Timezone)

	p, err := Project(snap, w, now, s.autoEligible)
	if err != nil {
		return nil, err
	}

	slots := make([]time.Time, len(p.FreeSlots))
	for i, t := range p.FreeSlots {
		slots[i] = t.In(p.Location)
	}

	return &SlotsResult{
		Slots:        slots,
		Window:       w,
		Timezone:     timezone.Resolve(snap.Config.Timezone),
		InvalidTimes: p.InvalidTimes,
	}, nil
}

func (s *Service) load(ctx context.Context, q Query, withContent bool) (*domain.Snapshot, window.Window, time.Time, error) {
	now := s.now()

	ctx, span := tracing.StartSnapshotLoadSpan(ctx, q.BusinessID)
	var err error
	defer func() { tracing.EndSpan(span, err) }()

	cfg, err := s.loader.Config(ctx, q.BusinessID)
	if err != nil {
		return nil, window.Window{}, now, err
	}

	loc := timezone.Location(cfg.Timezone)
	w, err := window.Resolve(q.Start, q.End, loc, now, s.horizonDays, s.maxWindowDays)
	if err != nil {
		return nil, window.Window{}, now, err
	}

	rng := w.Range()
	snap, err := s.loader.LoadParts(ctx, cfg, snapshot.Options{
		WeeklyPattern: true,
		Content:       withContent,
		ManualPosts:   &rng,
	})
	if err != nil {
		return nil, window.Window{}, now, err
	}

	return snap, w, now, nil
}

func (s *Service) observe(ctx context.Context, businessID string, p Projection) {
	if len(p.InvalidTimes) > 0 {
		slog.WarnContext(ctx, "skipped unparseable weekly pattern times",
			slog.String("business_id", businessID),
			slog.Any("times", p.InvalidTimes),
		)
	}

	if s.metrics == nil {
		return
	}
	s.metrics.RecordSlots(ctx, p.Expanded, p.Suppressed, p.Assigned, len(p.UnfilledSlots))
	s.metrics.RecordInvalidTimes(ctx, len(p.InvalidTimes))
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
