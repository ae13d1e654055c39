package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/config"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/domain"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/handler"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/health"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/infra/database"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/infra/projectionrecorder"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/infra/repository"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/observability/logging"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/observability/metrics"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/observability/middleware"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/count"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/snapshot"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/service/upcoming"
)

// Version is set via ldflags at build time
var Version = "dev"

const serviceModule = logging.Module("autopost-scheduling")

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	projectionMetrics, err := metrics.NewProjectionMetrics()
	if err != nil {
		slog.Error("failed to initialize projection metrics", slog.String("error", err.Error()))
		return 1
	}

	// InfluxDB locally, BigQuery on gcloud.
	recorder, err := projectionrecorder.NewRecorder(ctx, projectionrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize projection recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to close projection recorder", slog.String("error", err.Error()))
		}
	}()

	db, err := database.Open(cfg.Database)
	if err != nil {
		slog.Error("failed to open database",
			slog.String("event", "database.connect.fail"),
			slog.String("driver", string(cfg.Database.Driver)),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		if err := database.Close(db); err != nil {
			slog.Warn("failed to close database", slog.String("error", err.Error()))
		}
	}()

	if err := database.Ping(ctx, db); err != nil {
		slog.Error("failed to connect database",
			slog.String("event", "database.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if cfg.Database.AutoMigrate {
		if err := repository.Migrate(ctx, db); err != nil {
			slog.Error("failed to migrate database", slog.String("error", err.Error()))
			return 1
		}
		slog.Info("database migrated")
	}

	slog.Info("database connected",
		slog.String("driver", string(cfg.Database.Driver)),
	)

	redisClient := redis.NewClient(cfg.Redis.Options())

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	scheduleRepo := repository.NewScheduleRepository(db)
	var invalidator domain.SettingsInvalidator = repository.NoopSettingsInvalidator{}
	if cfg.Schedule.SettingsCacheTTL > 0 {
		cached := repository.NewCachedSettingsRepository(scheduleRepo, redisClient, cfg.Schedule.SettingsCacheTTL)
		scheduleRepo = cached
		invalidator = cached
	} else {
		slog.Warn("settings cache disabled")
	}

	loader := snapshot.NewLoader(scheduleRepo)
	upcomingService := upcoming.NewService(
		loader,
		cfg.Schedule.AutoPlatforms,
		cfg.Schedule.HorizonDays,
		projectionMetrics,
		upcoming.WithMaxWindowDays(cfg.Schedule.MaxWindowDays),
	)
	countService := count.NewService(
		loader,
		count.NewCounter(cfg.Schedule.Platforms, cfg.Schedule.AutoPlatforms),
		recorder,
		projectionMetrics,
	)

	scheduleHandler := handler.NewScheduleHandler(upcomingService, countService)
	settingsHandler := handler.NewSettingsHandler(invalidator)

	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready", "/metrics"},
		Module:      serviceModule,
		TracerName:  "github.com/KasumiMercury/primind-autopost-scheduling/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(db, redisClient, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	handler.RegisterBusinessRoutes(r.Group("/api/v1"), scheduleHandler, settingsHandler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Int("horizon_days", cfg.Schedule.HorizonDays),
			slog.Int("max_window_days", cfg.Schedule.MaxWindowDays),
			slog.Any("platforms", cfg.Schedule.Platforms.Strings()),
			slog.Any("auto_platforms", cfg.Schedule.AutoPlatforms.Strings()),
			slog.Duration("settings_cache_ttl", cfg.Schedule.SettingsCacheTTL),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		if err := recorder.Flush(shutdownCtx); err != nil {
			slog.Warn("failed to flush projection recorder", slog.String("error", err.Error()))
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
