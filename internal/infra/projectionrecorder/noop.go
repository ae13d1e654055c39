package projectionrecorder

import (
	"context"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.ProjectionRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordCounts(_ context.Context, _ []domain.ProjectionRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
