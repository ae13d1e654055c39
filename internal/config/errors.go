package config

import "errors"

var (
	ErrRedisAddrMissing          = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB            = errors.New("REDIS_DB must be a valid integer")
	ErrDatabaseDSNMissing        = errors.New("DATABASE_DSN is required")
	ErrUnsupportedDatabaseDriver = errors.New("DATABASE_DRIVER must be postgres or sqlite")
	ErrNoPlatforms               = errors.New("SCHEDULE_PLATFORMS must list at least one platform")
	ErrUnknownAutoPlatform       = errors.New("SCHEDULE_AUTO_PLATFORMS must be a subset of SCHEDULE_PLATFORMS")
	ErrInvalidHorizon            = errors.New("SCHEDULE_HORIZON_DAYS must be positive")
	ErrInvalidMaxWindow          = errors.New("SCHEDULE_MAX_WINDOW_DAYS must be greater than SCHEDULE_HORIZON_DAYS")
)
