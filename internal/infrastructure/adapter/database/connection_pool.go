package database

import (
	"context"
	"database/sql"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
)

// ConnectionPoolMetrics tracks database connection pool metrics
type ConnectionPoolMetrics struct {
	OpenConnections    int   `json:"openConnections"`
	IdleConnections    int   `json:"idleConnections"`
	MaxOpenConnections int   `json:"maxOpenConnections"`
	InUse              int   `json:"inUse"`
	WaitCount          int64 `json:"waitCount"`
	WaitDurationMs     int64 `json:"waitDurationMs"`
	MaxIdleClosed      int64 `json:"maxIdleClosed"`
	MaxLifetimeClosed  int64 `json:"maxLifetimeClosed"`
	Healthy            bool  `json:"healthy"`
}

// ConnectionPoolMonitor periodically pings the database and records pool statistics
type ConnectionPoolMonitor struct {
	sqlDB        *sql.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	metricsCache *ConnectionPoolMetrics
	mutex        sync.RWMutex
	stopChan     chan struct{}
	stopOnce     sync.Once
	done         sync.WaitGroup
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(sqlDB *sql.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		sqlDB:        sqlDB,
		logger:       logger,
		timeProvider: timeProvider,
		stopChan:     make(chan struct{}),
	}
}

// Start collects metrics once and then every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) {
	m.collectMetrics()

	ticker := time.NewTicker(interval)
	m.done.Add(1)
	go func() {
		defer m.done.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.collectMetrics()
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop stops the monitoring goroutine and waits for it to exit
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
	m.done.Wait()
}

// GetMetrics returns the latest connection pool metrics
func (m *ConnectionPoolMonitor) GetMetrics() ConnectionPoolMetrics {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.metricsCache == nil {
		return ConnectionPoolMetrics{}
	}
	return *m.metricsCache
}

func (m *ConnectionPoolMonitor) collectMetrics() {
	ctx, cancel := m.timeProvider.WithTimeout(context.Background(), 5*coreport.Second)
	defer cancel()

	healthy := true
	if err := m.sqlDB.PingContext(ctx); err != nil {
		healthy = false
		m.logger.Error("Database ping failed", map[string]any{
			"error": err.Error(),
		})
	}

	stats := m.sqlDB.Stats()

	m.mutex.Lock()
	m.metricsCache = &ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDurationMs:     stats.WaitDuration.Milliseconds(),
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
		Healthy:            healthy,
	}
	m.mutex.Unlock()

	threshold := float64(stats.MaxOpenConnections) * 0.8
	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > threshold {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
}
