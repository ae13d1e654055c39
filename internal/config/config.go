package config

import (
	"log/slog"
	"os"
	"strings"
)

const (
	defaultPort        = "8080"
	defaultServiceName = "autopost-scheduling"
	defaultEnv         = "development"
)

type Config struct {
	Port        string
	LogLevel    slog.Level
	ServiceName string
	Env         string
	Database    *DatabaseConfig
	Redis       *RedisConfig
	Schedule    *ScheduleConfig
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = defaultEnv
	}

	databaseConfig, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:        port,
		LogLevel:    parseLogLevel(os.Getenv("LOG_LEVEL")),
		ServiceName: serviceName,
		Env:         env,
		Database:    databaseConfig,
		Redis:       redisConfig,
		Schedule:    LoadScheduleConfig(),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
