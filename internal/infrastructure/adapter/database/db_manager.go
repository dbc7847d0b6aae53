package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/database/migration"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const poolMonitorInterval = 30 * time.Second

// Manager owns the database connection and the helpers built on it
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	errorMapper       *ErrorMapper
	transactor        *Transactor
	metrics           *MetricsCollector
	connectionMonitor *ConnectionPoolMonitor
	timeProvider      coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		errorMapper:  NewErrorMapper(),
		metrics:      NewMetricsCollector(logger, timeProvider, 250*time.Millisecond),
		timeProvider: timeProvider,
	}
}

// Connect opens the database, retrying failed attempts, configures the pool
// and starts the pool monitor
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	if err := m.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	var gormDB *gorm.DB

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			m.logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      attempts,
				"delay":   m.config.RetryDelay.String(),
			})
			select {
			case <-m.timeProvider.After(coreport.Duration(m.config.RetryDelay)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		gormDB, err = gorm.Open(m.dialector(), &gorm.Config{
			Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel),
			NowFunc: func() time.Time {
				return m.timeProvider.Now()
			},
			PrepareStmt:    m.config.Driver != DriverSQLite,
			TranslateError: true,
		})
		if err == nil {
			break
		}

		m.logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	if m.config.Driver == DriverSQLite {
		// one connection serialises writers and keeps :memory: databases alive
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
	} else {
		sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
		sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)
	}

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":         m.config.Driver,
		"name":           m.config.Database,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
		"query_timeout":  m.config.QueryTimeout.String(),
	})

	m.db = gormDB
	m.transactor = NewTransactor(gormDB, NewRetrier(DefaultRetryConfig(), m.errorMapper.Classifier(), m.timeProvider, m.logger), m.logger)
	m.connectionMonitor = NewConnectionPoolMonitor(sqlDB, m.logger, m.timeProvider)
	m.connectionMonitor.Start(poolMonitorInterval)

	return m.db, nil
}

func (m *Manager) dialector() gorm.Dialector {
	dsn := m.config.DSN()
	switch m.config.Driver {
	case DriverMySQL:
		return mysql.Open(dsn)
	case DriverSQLite:
		return sqlite.Open(dsn)
	default:
		return postgres.Open(dsn)
	}
}

// Migrate brings the schema to the current version
func (m *Manager) Migrate(ctx context.Context) error {
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider).MigrateAll(ctx)
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Transactor returns the transaction runner bound to this connection
func (m *Manager) Transactor() *Transactor {
	return m.transactor
}

// ErrorMapper returns the error mapper
func (m *Manager) ErrorMapper() *ErrorMapper {
	return m.errorMapper
}

// Metrics returns the operation timer
func (m *Manager) Metrics() *MetricsCollector {
	return m.metrics
}

// PoolMetrics returns the latest connection pool snapshot
func (m *Manager) PoolMetrics() ConnectionPoolMetrics {
	if m.connectionMonitor == nil {
		return ConnectionPoolMetrics{}
	}
	return m.connectionMonitor.GetMetrics()
}

// WithTimeout bounds ctx by the configured query timeout
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return m.timeProvider.WithTimeout(ctx, coreport.Duration(m.config.QueryTimeout))
}

// Ping checks that the database answers
func (m *Manager) Ping(ctx context.Context) error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Close stops the pool monitor and closes the database connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}
