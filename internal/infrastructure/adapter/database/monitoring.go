package database

import (
	"time"

	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
)

// QueryMetrics holds metrics about a database operation
type QueryMetrics struct {
	Operation    string
	Duration     time.Duration
	Failed       bool
	ErrorMessage string
}

// MetricsCollector times database operations and reports slow ones
type MetricsCollector struct {
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	slowThreshold time.Duration
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider, slowThreshold time.Duration) *MetricsCollector {
	return &MetricsCollector{
		logger:        logger,
		timeProvider:  timeProvider,
		slowThreshold: slowThreshold,
	}
}

// Measure runs fn and logs a warning when it takes longer than the slow threshold
func (c *MetricsCollector) Measure(operation string, fn func() error) (*QueryMetrics, error) {
	start := c.timeProvider.Now()

	err := fn()

	metrics := &QueryMetrics{
		Operation: operation,
		Duration:  c.timeProvider.Since(start).Std(),
		Failed:    err != nil,
	}
	if err != nil {
		metrics.ErrorMessage = err.Error()
	}

	if c.slowThreshold > 0 && metrics.Duration > c.slowThreshold {
		c.logger.Warn("Slow database operation detected", map[string]any{
			"operation":     operation,
			"duration_ms":   metrics.Duration.Milliseconds(),
			"failed":        metrics.Failed,
			"error_message": metrics.ErrorMessage,
		})
	}

	return metrics, err
}
