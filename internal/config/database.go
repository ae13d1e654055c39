package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	databaseDriverEnv          = "DATABASE_DRIVER"
	databaseDSNEnv             = "DATABASE_DSN"
	databaseMaxOpenConnsEnv    = "DATABASE_MAX_OPEN_CONNS"
	databaseMaxIdleConnsEnv    = "DATABASE_MAX_IDLE_CONNS"
	databaseConnMaxLifetimeEnv = "DATABASE_CONN_MAX_LIFETIME"
	databaseAutoMigrateEnv     = "DATABASE_AUTO_MIGRATE"

	defaultDatabaseMaxOpenConns    = 10
	defaultDatabaseMaxIdleConns    = 5
	defaultDatabaseConnMaxLifetime = 30 * time.Minute
)

type DatabaseDriver string

const (
	DatabaseDriverPostgres DatabaseDriver = "postgres"
	DatabaseDriverSQLite   DatabaseDriver = "sqlite"
)

type DatabaseConfig struct {
	Driver          DatabaseDriver
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

func LoadDatabaseConfig() (*DatabaseConfig, error) {
	driver := DatabaseDriverPostgres
	if raw := strings.ToLower(os.Getenv(databaseDriverEnv)); raw != "" {
		switch DatabaseDriver(raw) {
		case DatabaseDriverPostgres, DatabaseDriverSQLite:
			driver = DatabaseDriver(raw)
		default:
			return nil, ErrUnsupportedDatabaseDriver
		}
	}

	maxOpen := defaultDatabaseMaxOpenConns
	if v := os.Getenv(databaseMaxOpenConnsEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxOpen = parsed
		}
	}

	maxIdle := defaultDatabaseMaxIdleConns
	if v := os.Getenv(databaseMaxIdleConnsEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			maxIdle = parsed
		}
	}

	lifetime := defaultDatabaseConnMaxLifetime
	if v := os.Getenv(databaseConnMaxLifetimeEnv); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			lifetime = parsed
		}
	}

	return &DatabaseConfig{
		Driver:          driver,
		DSN:             os.Getenv(databaseDSNEnv),
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: lifetime,
		AutoMigrate:     os.Getenv(databaseAutoMigrateEnv) == "true",
	}, nil
}

func (c *DatabaseConfig) Validate() error {
	if c == nil || c.DSN == "" {
		return ErrDatabaseDSNMissing
	}
	return nil
}
