//go:build gcloud

package config

import "errors"

func validatePlatform(cfg *Config) error {
	if cfg.Database != nil && cfg.Database.Driver != DatabaseDriverPostgres {
		return errors.New("DATABASE_DRIVER must be postgres on gcloud")
	}
	return nil
}
