package database

import (
	"context"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-autopost-scheduling/internal/config"
)

func TestOpen_SQLiteInMemory(t *testing.T) {
	db, err := Open(&config.DatabaseConfig{
		Driver:          config.DatabaseDriverSQLite,
		DSN:             "file::memory:",
		ConnMaxLifetime: time.Minute,
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() {
		if err := Close(db); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	}()

	if err := Ping(context.Background(), db); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	if _, err := Open(&config.DatabaseConfig{Driver: "mysql", DSN: "x"}); err == nil {
		t.Fatal("Open() error = nil, want error")
	}
}
