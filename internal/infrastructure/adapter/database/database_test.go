package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConfigValidateAndDSN(t *testing.T) {
	pg := &Config{
		Driver: DriverPostgres, Host: "db", Port: 5432, Username: "u", Password: "p",
		Database: "evr", SSLMode: "disable", MaxOpenConns: 5, MaxIdleConns: 5, QueryTimeout: time.Second,
	}
	require.NoError(t, pg.Validate())
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=evr sslmode=disable TimeZone=UTC", pg.DSN())

	my := *pg
	my.Driver = DriverMySQL
	require.NoError(t, my.Validate())
	assert.Equal(t, "u:p@tcp(db:5432)/evr?charset=utf8mb4&parseTime=True&loc=UTC", my.DSN())

	lite := &Config{Driver: DriverSQLite, Database: "file:evr.db?mode=rwc", MaxOpenConns: 1, MaxIdleConns: 1, QueryTimeout: time.Second}
	require.NoError(t, lite.Validate())
	assert.Equal(t, "file:evr.db?mode=rwc&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", lite.DSN())

	bad := *pg
	bad.SSLMode = "sometimes"
	assert.Error(t, bad.Validate())

	bad = *pg
	bad.Driver = "oracle"
	assert.Error(t, bad.Validate())

	assert.Equal(t, 0, ParsePort("abc"))
	assert.Equal(t, 3306, ParsePort("3306"))
}

func TestFromAppConfig(t *testing.T) {
	appConf := &config.Config{
		Database: config.DatabaseConfig{Driver: "mysql", Host: "h", Port: "3306", QueryTimeout: 3 * time.Second},
		Logger:   config.LoggerConfig{Level: "warn"},
	}

	dbConf := FromAppConfig(appConf)

	assert.Equal(t, DriverMySQL, dbConf.Driver)
	assert.Equal(t, 3306, dbConf.Port)
	assert.Equal(t, 3*time.Second, dbConf.QueryTimeout)
	assert.Equal(t, "warn", dbConf.LogLevel)
}

func TestErrorMapper(t *testing.T) {
	mapper := NewErrorMapper()

	tests := []struct {
		name   string
		err    error
		entity EntityType
		want   error
	}{
		{"Record not found user", gorm.ErrRecordNotFound, EntityTypeUser, errs.ErrUserNotFound},
		{"Record not found upload", gorm.ErrRecordNotFound, EntityTypeUpload, errs.ErrUploadNotFound},
		{"Postgres duplicate email", errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`), EntityTypeUser, errs.ErrDuplicateUser},
		{"SQLite duplicate key", errors.New("constraint failed: UNIQUE constraint failed: uploads.user_id, uploads.idempotency_key (2067)"), EntityTypeUpload, errs.ErrDuplicateUpload},
		{"Translated duplicate", gorm.ErrDuplicatedKey, EntityTypeUser, errs.ErrDuplicateUser},
		{"Deadlock", errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"), EntityTypeUser, errs.ErrUserLocked},
		{"SQLite busy", errors.New("database is locked (5) (SQLITE_BUSY)"), EntityTypeUpload, errs.ErrUserLocked},
		{"Connection refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), EntityTypeUser, errs.ErrDatabaseConnection},
		{"Foreign key", errors.New("insert violates foreign key constraint"), EntityTypeUpload, errs.ErrConstraintViolation},
		{"Unknown", errors.New("syntax error"), EntityTypeUser, errs.ErrInternalServer},
		{"Domain error passes through", errs.ErrInsufficientBalance, EntityTypeUser, errs.ErrInsufficientBalance},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, mapper.MapError(tc.err, tc.entity), tc.want)
		})
	}

	assert.NoError(t, mapper.MapError(nil, EntityTypeUser))
}

func TestRetrier(t *testing.T) {
	config := RetryConfig{MaxRetries: 3, RetryInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
	retrier := NewRetrier(config, NewErrorClassifier(), timeprovider.NewRealTimeProvider(), logger.NewNoopLogger())

	t.Run("Retries lock errors until success", func(t *testing.T) {
		calls := 0
		err := retrier.Do(context.Background(), "op", func() error {
			calls++
			if calls < 3 {
				return errors.New("deadlock detected")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Permanent errors are not retried", func(t *testing.T) {
		calls := 0
		err := retrier.Do(context.Background(), "op", func() error {
			calls++
			return errs.ErrUserNotFound
		})
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Equal(t, 1, calls)
	})

	t.Run("Gives up after max retries", func(t *testing.T) {
		calls := 0
		err := retrier.Do(context.Background(), "op", func() error {
			calls++
			return fmt.Errorf("attempt %d: database is locked", calls)
		})
		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("Stops when the context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		slow := NewRetrier(RetryConfig{MaxRetries: 5, RetryInterval: time.Hour, MaxInterval: time.Hour}, NewErrorClassifier(), timeprovider.NewRealTimeProvider(), logger.NewNoopLogger())

		err := slow.Do(ctx, "op", func() error { return errors.New("lock timeout") })
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestManagerWithSQLite(t *testing.T) {
	manager := NewTestManager(t, logger.NewNoopLogger())

	require.NoError(t, manager.Ping(context.Background()))
	assert.True(t, manager.PoolMetrics().Healthy)
	assert.Equal(t, 1, manager.PoolMetrics().MaxOpenConnections)

	version, err := migration.NewMigrationManager(manager.DB(), logger.NewNoopLogger(), timeprovider.NewRealTimeProvider()).
		GetCurrentVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, migration.CurrentSchemaVersion, version)

	// a second run is a no-op
	require.NoError(t, manager.Migrate(context.Background()))
	assert.True(t, manager.DB().Migrator().HasIndex(&model.Upload{}, "idx_uploads_user_listing"))
	assert.True(t, manager.DB().Migrator().HasColumn(&model.User{}, "rc_image_id"))
}

func TestExtractSQLParts(t *testing.T) {
	assert.Equal(t, "SELECT", extractQueryType(" select * from users"))
	assert.Equal(t, "USERS", extractTableName(`SELECT * FROM "users" WHERE id = 1`))
	assert.Equal(t, "UPLOADS", extractTableName("INSERT INTO uploads (user_id) VALUES (1)"))
	assert.Equal(t, "", extractTableName("BEGIN"))
}
