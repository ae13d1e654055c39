package domain

import (
	"context"
	"time"
)

const (
	ProjectionKindPosted   = "posted"
	ProjectionKindUpcoming = "upcoming"
)

// ProjectionRecord is one per-platform row of a computed count.
type ProjectionRecord struct {
	BusinessID string
	Kind       string
	Platform   PlatformID
	Count      int
	RangeStart *time.Time
	RangeEnd   *time.Time
	ComputedAt time.Time
}

type ProjectionRecorder interface {
	RecordCounts(ctx context.Context, records []ProjectionRecord) error
	Flush(ctx context.Context) error
	Close() error
}

// ProjectionRecords flattens a count into one record per platform, in the
// order of platforms.
func ProjectionRecords(businessID, kind string, count PlatformCount, platforms PlatformSet, rng DateRange, computedAt time.Time) []ProjectionRecord {
	records := make([]ProjectionRecord, 0, len(platforms))
	for _, p := range platforms {
		records = append(records, ProjectionRecord{
			BusinessID: businessID,
			Kind:       kind,
			Platform:   p,
			Count:      count.Detail[p],
			RangeStart: rng.Start,
			RangeEnd:   rng.End,
			ComputedAt: computedAt,
		})
	}
	return records
}
