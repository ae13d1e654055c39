//go:build !gcloud

package main

import (
	"context"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/config"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/observability"
	"github.com/KasumiMercury/primind-autopost-scheduling/internal/observability/logging"
)

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	env := logging.EnvDev
	if cfg.Env != "" && cfg.Env != "development" {
		env = logging.Environment(cfg.Env)
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    cfg.ServiceName,
			Version: Version,
		},
		Environment:   env,
		SamplingRate:  1.0,
		DefaultModule: serviceModule,
		LogLevel:      cfg.LogLevel,
	})
}
