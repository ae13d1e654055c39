//go:build !gcloud

package projectionrecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
)

const influxMeasurement = "platform_count"

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.ProjectionRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "projection recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, projection recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)

	slog.InfoContext(ctx, "projection recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket),
	}, nil
}

func (r *influxDBRecorder) RecordCounts(ctx context.Context, records []domain.ProjectionRecord) error {
	if len(records) == 0 {
		return nil
	}

	points := make([]*write.Point, 0, len(records))
	for _, record := range records {
		points = append(points, toPoint(record))
	}

	if err := r.writeAPI.WritePoint(ctx, points...); err != nil {
		slog.WarnContext(ctx, "failed to write projection counts to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("business_id", records[0].BusinessID),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func toPoint(record domain.ProjectionRecord) *write.Point {
	fields := map[string]any{
		"count": record.Count,
	}
	if record.RangeStart != nil {
		fields["range_start_unix"] = record.RangeStart.Unix()
	}
	if record.RangeEnd != nil {
		fields["range_end_unix"] = record.RangeEnd.Unix()
	}

	return influxdb2.NewPoint(
		influxMeasurement,
		map[string]string{
			"business_id": record.BusinessID,
			"kind":        record.Kind,
			"platform":    record.Platform.String(),
		},
		fields,
		record.ComputedAt.UTC().Truncate(time.Microsecond),
	)
}

func (r *influxDBRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
