//go:build gcloud

package projectionrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
)

type bigQueryRecord struct {
	ComputedAt time.Time              `bigquery:"computed_at"`
	BusinessID string                 `bigquery:"business_id"`
	Kind       string                 `bigquery:"kind"`
	Platform   string                 `bigquery:"platform"`
	Count      int64                  `bigquery:"count"`
	RangeStart bigquery.NullTimestamp `bigquery:"range_start"`
	RangeEnd   bigquery.NullTimestamp `bigquery:"range_end"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.ProjectionRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "projection recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, projection recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, projection recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	slog.InfoContext(ctx, "projection recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable).Inserter(),
	}, nil
}

func (r *bigQueryRecorder) RecordCounts(ctx context.Context, records []domain.ProjectionRecord) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([]*bigQueryRecord, 0, len(records))
	for _, record := range records {
		rows = append(rows, &bigQueryRecord{
			ComputedAt: record.ComputedAt,
			BusinessID: record.BusinessID,
			Kind:       record.Kind,
			Platform:   record.Platform.String(),
			Count:      int64(record.Count),
			RangeStart: nullTimestamp(record.RangeStart),
			RangeEnd:   nullTimestamp(record.RangeEnd),
		})
	}

	if err := r.inserter.Put(ctx, rows); err != nil {
		slog.WarnContext(ctx, "failed to insert projection counts to BigQuery",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func nullTimestamp(t *time.Time) bigquery.NullTimestamp {
	if t == nil {
		return bigquery.NullTimestamp{}
	}
	return bigquery.NullTimestamp{Timestamp: *t, Valid: true}
}

func (r *bigQueryRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
