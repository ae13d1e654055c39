package domain

import "context"

//go:generate mockgen -source=schedule_repository.go -destination=schedule_repository_mock.go -package=domain

// ScheduleRepository reads the per-business inputs of the projection engine.
// Implementations never write; the owning subsystems do.
type ScheduleRepository interface {
	GetBusinessScheduleConfig(ctx context.Context, businessID string) (*BusinessScheduleConfig, error)
	GetWeeklyPattern(ctx context.Context, businessID string) (WeeklyPattern, error)
	ListManualPosts(ctx context.Context, businessID string, rng DateRange) ([]ManualPost, error)
	ListContent(ctx context.Context, businessID string) ([]ContentItem, error)
	ListPostedRecords(ctx context.Context, businessID string, rng DateRange) ([]PostedRecord, error)
}

// SettingsInvalidator drops cached scheduler settings for a business.
type SettingsInvalidator interface {
	InvalidateSettings(ctx context.Context, businessID string) error
}
