package database

import (
	"context"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	timeprovider "github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/time"
)

// NewTestManager connects to a private in-memory sqlite database, migrates
// it and closes it when the test ends
func NewTestManager(t *testing.T, logger coreport.Logger) *Manager {
	t.Helper()
	return NewTestManagerWithTimeProvider(t, logger, timeprovider.NewRealTimeProvider())
}

// NewTestManagerWithTimeProvider is NewTestManager with query deadlines
// taken from timeProvider
func NewTestManagerWithTimeProvider(t *testing.T, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	t.Helper()

	config := &Config{
		Driver:        DriverSQLite,
		Database:      ":memory:",
		MaxOpenConns:  1,
		MaxIdleConns:  1,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 1,
	}

	manager := NewManager(config, logger, timeProvider)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return manager
}
