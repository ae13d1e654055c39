package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
)

const contentStateSelect = `contents.*,
	EXISTS (SELECT 1 FROM posted_records pr WHERE pr.content_id = contents.id) AS has_posted_record,
	EXISTS (SELECT 1 FROM manual_postings mp WHERE mp.content_id = contents.id) AS has_manual_schedule`

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) domain.ScheduleRepository {
	return &scheduleRepository{
		db: db,
	}
}

// Migrate creates or updates the tables the repository reads.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(Models()...)
}

func (r *scheduleRepository) GetBusinessScheduleConfig(ctx context.Context, businessID string) (*domain.BusinessScheduleConfig, error) {
	var business businessModel
	if err := r.db.WithContext(ctx).First(&business, "id = ?", businessID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("query business: %w", err)
	}

	var connections []platformConnectionModel
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at ASC, id ASC").
		Find(&connections).Error; err != nil {
		return nil, fmt.Errorf("query platform connections: %w", err)
	}

	platforms := make([]domain.PlatformID, len(connections))
	for i, c := range connections {
		platforms[i] = domain.PlatformID(c.Platform)
	}

	return &domain.BusinessScheduleConfig{
		BusinessID:         business.ID,
		Timezone:           business.Timezone,
		IsAutoPosting:      business.IsAutoPosting,
		ConnectedPlatforms: domain.NewPlatformSet(platforms...),
	}, nil
}

func (r *scheduleRepository) GetWeeklyPattern(ctx context.Context, businessID string) (domain.WeeklyPattern, error) {
	var days []schedulerDayModel
	if err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("day ASC, id ASC").
		Find(&days).Error; err != nil {
		return nil, fmt.Errorf("query scheduler days: %w", err)
	}

	pattern := make(domain.WeeklyPattern, len(days))
	for i, d := range days {
		pattern[i] = d.toDomain()
	}
	return pattern, nil
}

func (r *scheduleRepository) ListManualPosts(ctx context.Context, businessID string, rng domain.DateRange) ([]domain.ManualPost, error) {
	query := r.db.WithContext(ctx).Where("business_id = ?", businessID)
	if rng.Start != nil {
		query = query.Where("date >= ?", rng.Start.UTC())
	}
	if rng.End != nil {
		query = query.Where("date <= ?", rng.End.UTC())
	}

	var rows []manualPostingModel
	if err := query.Order("date ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query manual postings: %w", err)
	}

	posts := make([]domain.ManualPost, len(rows))
	for i, row := range rows {
		posts[i] = row.toDomain()
	}
	return posts, nil
}

// ListContent returns the business's ready, non-deleted content in creation
// order, the queue order auto slots are filled in.
func (r *scheduleRepository) ListContent(ctx context.Context, businessID string) ([]domain.ContentItem, error) {
	var rows []contentRow
	if err := r.db.WithContext(ctx).
		Model(&contentModel{}).
		Select(contentStateSelect).
		Where("contents.business_id = ? AND contents.ready_to_post = ?", businessID, true).
		Order("contents.created_at ASC, contents.id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query contents: %w", err)
	}

	items := make([]domain.ContentItem, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}
	return items, nil
}

func (r *scheduleRepository) ListPostedRecords(ctx context.Context, businessID string, rng domain.DateRange) ([]domain.PostedRecord, error) {
	query := r.db.WithContext(ctx).Where("business_id = ?", businessID)
	if rng.Start != nil {
		query = query.Where("created_at >= ?", rng.Start.UTC())
	}
	if rng.End != nil {
		query = query.Where("created_at <= ?", rng.End.UTC())
	}

	var rows []postedRecordModel
	if err := query.Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query posted records: %w", err)
	}

	records := make([]domain.PostedRecord, len(rows))
	for i, row := range rows {
		records[i] = domain.PostedRecord{
			Platform:  domain.PlatformID(row.Platform),
			CreatedAt: row.CreatedAt.UTC(),
		}
	}
	return records, nil
}
