package snapshot

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
)

// Options selects which parts of a snapshot to read. The business config is
// always read since it carries the timezone.
type Options struct {
	WeeklyPattern bool
	Content       bool
	// ManualPosts is read when non-nil, bounded by the given range.
	ManualPosts *domain.DateRange
	// PostedRecords is read when non-nil, bounded by the given range.
	PostedRecords *domain.DateRange
}

type Loader struct {
	repo domain.ScheduleRepository
}

func NewLoader(repo domain.ScheduleRepository) *Loader {
	return &Loader{repo: repo}
}

// Config reads only the business configuration.
func (l *Loader) Config(ctx context.Context, businessID string) (*domain.BusinessScheduleConfig, error) {
	cfg, err := l.repo.GetBusinessScheduleConfig(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("load schedule config: %w", err)
	}
	return cfg, nil
}

// Load reads the config and then the requested parts.
func (l *Loader) Load(ctx context.Context, businessID string, opts Options) (*domain.Snapshot, error) {
	cfg, err := l.Config(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return l.LoadParts(ctx, cfg, opts)
}

// LoadParts reads the requested parts for an already loaded config
// concurrently and fails on the first error.
func (l *Loader) LoadParts(ctx context.Context, cfg *domain.BusinessScheduleConfig, opts Options) (*domain.Snapshot, error) {
	businessID := cfg.BusinessID
	snap := &domain.Snapshot{Config: *cfg}

	g, gctx := errgroup.WithContext(ctx)

	if opts.WeeklyPattern {
		g.Go(func() error {
			pattern, err := l.repo.GetWeeklyPattern(gctx, businessID)
			if err != nil {
				return fmt.Errorf("load weekly pattern: %w", err)
			}
			snap.WeeklyPattern = pattern
			return nil
		})
	}

	if opts.Content {
		g.Go(func() error {
			content, err := l.repo.ListContent(gctx, businessID)
			if err != nil {
				return fmt.Errorf("load content: %w", err)
			}
			snap.Content = content
			return nil
		})
	}

	if opts.ManualPosts != nil {
		rng := *opts.ManualPosts
		g.Go(func() error {
			posts, err := l.repo.ListManualPosts(gctx, businessID, rng)
			if err != nil {
				return fmt.Errorf("load manual posts: %w", err)
			}
			snap.ManualPosts = posts
			return nil
		})
	}

	if opts.PostedRecords != nil {
		rng := *opts.PostedRecords
		g.Go(func() error {
			records, err := l.repo.ListPostedRecords(gctx, businessID, rng)
			if err != nil {
				return fmt.Errorf("load posted records: %w", err)
			}
			snap.PostedRecords = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return snap, nil
}
