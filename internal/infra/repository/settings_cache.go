package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/observability/tracing"
)

const (
	settingsConfigKeyPrefix  = "autopost:settings:config:"
	settingsPatternKeyPrefix = "autopost:settings:pattern:"
)

type configRecord struct {
	BusinessID         string    `json:"business_id"`
	Timezone           string    `json:"timezone"`
	IsAutoPosting      bool      `json:"is_auto_posting"`
	ConnectedPlatforms []string  `json:"connected_platforms"`
	CachedAt           time.Time `json:"cached_at"`
}

type patternRecord struct {
	Days     []domain.DayPattern `json:"days"`
	CachedAt time.Time           `json:"cached_at"`
}

// CachedSettingsRepository serves business config and weekly patterns from
// Redis and reads everything else through to the wrapped repository. Redis
// failures fall back to the wrapped repository.
type CachedSettingsRepository struct {
	domain.ScheduleRepository
	client *redis.Client
	ttl    time.Duration
}

var (
	_ domain.ScheduleRepository  = (*CachedSettingsRepository)(nil)
	_ domain.SettingsInvalidator = (*CachedSettingsRepository)(nil)
)

func NewCachedSettingsRepository(next domain.ScheduleRepository, client *redis.Client, ttl time.Duration) *CachedSettingsRepository {
	return &CachedSettingsRepository{
		ScheduleRepository: next,
		client:             client,
		ttl:                ttl,
	}
}

func (r *CachedSettingsRepository) GetBusinessScheduleConfig(ctx context.Context, businessID string) (*domain.BusinessScheduleConfig, error) {
	key := settingsConfigKeyPrefix + businessID

	var record configRecord
	hit, err := r.get(ctx, key, &record)
	if err != nil {
		slog.WarnContext(ctx, "settings cache read failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
	if hit {
		platforms := make([]domain.PlatformID, len(record.ConnectedPlatforms))
		for i, p := range record.ConnectedPlatforms {
			platforms[i] = domain.PlatformID(p)
		}
		return &domain.BusinessScheduleConfig{
			BusinessID:         record.BusinessID,
			Timezone:           record.Timezone,
			IsAutoPosting:      record.IsAutoPosting,
			ConnectedPlatforms: domain.NewPlatformSet(platforms...),
		}, nil
	}

	cfg, err := r.ScheduleRepository.GetBusinessScheduleConfig(ctx, businessID)
	if err != nil {
		return nil, err
	}

	r.set(ctx, key, configRecord{
		BusinessID:         cfg.BusinessID,
		Timezone:           cfg.Timezone,
		IsAutoPosting:      cfg.IsAutoPosting,
		ConnectedPlatforms: cfg.ConnectedPlatforms.Strings(),
		CachedAt:           time.Now().UTC(),
	})

	return cfg, nil
}

func (r *CachedSettingsRepository) GetWeeklyPattern(ctx context.Context, businessID string) (domain.WeeklyPattern, error) {
	key := settingsPatternKeyPrefix + businessID

	var record patternRecord
	hit, err := r.get(ctx, key, &record)
	if err != nil {
		slog.WarnContext(ctx, "settings cache read failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
	if hit {
		return domain.WeeklyPattern(record.Days), nil
	}

	pattern, err := r.ScheduleRepository.GetWeeklyPattern(ctx, businessID)
	if err != nil {
		return nil, err
	}

	r.set(ctx, key, patternRecord{
		Days:     pattern,
		CachedAt: time.Now().UTC(),
	})

	return pattern, nil
}

// InvalidateSettings drops both cached settings entries for a business.
func (r *CachedSettingsRepository) InvalidateSettings(ctx context.Context, businessID string) error {
	key := settingsConfigKeyPrefix + businessID
	ctx, span := tracing.StartCacheOperationSpan(ctx, "del", key)

	err := r.client.Del(ctx, key, settingsPatternKeyPrefix+businessID).Err()
	tracing.EndSpan(span, err)
	if err != nil {
		return errors.Join(ErrRedisConnection, err)
	}
	return nil
}

func (r *CachedSettingsRepository) get(ctx context.Context, key string, dst any) (bool, error) {
	ctx, span := tracing.StartCacheOperationSpan(ctx, "get", key)

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			tracing.EndSpan(span, nil)
			return false, nil
		}
		tracing.EndSpan(span, err)
		return false, errors.Join(ErrRedisConnection, err)
	}
	tracing.EndSpan(span, nil)

	if err := json.Unmarshal(data, dst); err != nil {
		return false, ErrInvalidSettingsData
	}
	return true, nil
}

func (r *CachedSettingsRepository) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	ctx, span := tracing.StartCacheOperationSpan(ctx, "set", key)
	err = r.client.Set(ctx, key, data, r.ttl).Err()
	tracing.EndSpan(span, err)
	if err != nil {
		slog.WarnContext(ctx, "settings cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

// NoopSettingsInvalidator stands in when the settings cache is disabled.
type NoopSettingsInvalidator struct{}

func (NoopSettingsInvalidator) InvalidateSettings(_ context.Context, _ string) error {
	return nil
}
