package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
)

const (
	scheduleHorizonDaysEnv     = "SCHEDULE_HORIZON_DAYS"
	scheduleMaxWindowDaysEnv   = "SCHEDULE_MAX_WINDOW_DAYS"
	schedulePlatformsEnv       = "SCHEDULE_PLATFORMS"
	scheduleAutoPlatformsEnv   = "SCHEDULE_AUTO_PLATFORMS"
	settingsCacheTTLSecondsEnv = "SETTINGS_CACHE_TTL_SECONDS"

	defaultScheduleHorizonDays     = 14
	defaultScheduleMaxWindowDays   = 366
	defaultSchedulePlatforms       = "facebook,instagram,linkedin,tiktok,twitter"
	defaultScheduleAutoPlatforms   = "linkedin"
	defaultSettingsCacheTTLSeconds = 60
)

type ScheduleConfig struct {
	HorizonDays int
	// MaxWindowDays caps the calendar days one upcoming-posts request may span.
	MaxWindowDays int
	// Platforms is the known platform set every count is seeded with.
	Platforms domain.PlatformSet
	// AutoPlatforms are the platforms auto-posting publishes to when connected.
	AutoPlatforms    domain.PlatformSet
	SettingsCacheTTL time.Duration
}

func LoadScheduleConfig() *ScheduleConfig {
	horizon := defaultScheduleHorizonDays
	if v := os.Getenv(scheduleHorizonDaysEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			horizon = parsed
		}
	}

	maxWindow := defaultScheduleMaxWindowDays
	if v := os.Getenv(scheduleMaxWindowDaysEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxWindow = parsed
		}
	}

	platforms := os.Getenv(schedulePlatformsEnv)
	if platforms == "" {
		platforms = defaultSchedulePlatforms
	}

	autoPlatforms, ok := os.LookupEnv(scheduleAutoPlatformsEnv)
	if !ok {
		autoPlatforms = defaultScheduleAutoPlatforms
	}

	ttlSeconds := defaultSettingsCacheTTLSeconds
	if v := os.Getenv(settingsCacheTTLSecondsEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			ttlSeconds = parsed
		}
	}

	return &ScheduleConfig{
		HorizonDays:      horizon,
		MaxWindowDays:    maxWindow,
		Platforms:        parsePlatformList(platforms),
		AutoPlatforms:    parsePlatformList(autoPlatforms),
		SettingsCacheTTL: time.Duration(ttlSeconds) * time.Second,
	}
}

func (c *ScheduleConfig) Validate() error {
	if c == nil || len(c.Platforms) == 0 {
		return ErrNoPlatforms
	}
	if c.HorizonDays <= 0 {
		return ErrInvalidHorizon
	}
	// The default window spans HorizonDays+1 calendar days.
	if c.MaxWindowDays <= c.HorizonDays {
		return ErrInvalidMaxWindow
	}
	for _, p := range c.AutoPlatforms {
		if !c.Platforms.Contains(p) {
			return ErrUnknownAutoPlatform
		}
	}
	return nil
}

func parsePlatformList(raw string) domain.PlatformSet {
	parts := strings.Split(raw, ",")
	ids := make([]domain.PlatformID, 0, len(parts))
	for _, part := range parts {
		ids = append(ids, domain.PlatformID(strings.ToLower(strings.TrimSpace(part))))
	}
	return domain.NewPlatformSet(ids...)
}
