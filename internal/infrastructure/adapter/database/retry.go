package database

import (
	"context"
	"math/rand"
	"time"

	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    5,
		RetryInterval: 20 * time.Millisecond,
		MaxInterval:   time.Second,
		JitterFactor:  0.2,
	}
}

// Retrier re-runs operations that failed with lock or transient errors
type Retrier struct {
	config       RetryConfig
	classifier   *ErrorClassifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewRetrier creates a new retrier
func NewRetrier(config RetryConfig, classifier *ErrorClassifier, timeProvider coreport.TimeProvider, logger coreport.Logger) *Retrier {
	if config.MaxRetries < 1 {
		config.MaxRetries = 1
	}
	return &Retrier{
		config:       config,
		classifier:   classifier,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Do runs operation until it succeeds, fails permanently, runs out of
// attempts or ctx is done. The last error is returned.
func (r *Retrier) Do(ctx context.Context, operationName string, operation func() error) error {
	var err error
	attempt := 0

	for ; attempt < r.config.MaxRetries; attempt++ {
		err = operation()
		if err == nil {
			return nil
		}
		if !r.classifier.IsRetryable(err) || attempt == r.config.MaxRetries-1 {
			break
		}

		backoff := r.backoff(attempt)
		r.logger.Warn("Transient database error, retrying operation", map[string]any{
			"operation":   operationName,
			"attempt":     attempt + 1,
			"max_retries": r.config.MaxRetries,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		select {
		case <-r.timeProvider.After(coreport.Duration(backoff)):
		case <-ctx.Done():
			r.logger.Warn("Retry operation canceled by context", map[string]any{
				"operation": operationName,
				"attempts":  attempt + 1,
				"error":     ctx.Err().Error(),
			})
			return ctx.Err()
		}
	}

	if r.classifier.IsRetryable(err) {
		r.logger.Error("All retry attempts failed", map[string]any{
			"operation":   operationName,
			"attempts":    attempt + 1,
			"max_retries": r.config.MaxRetries,
			"error":       err.Error(),
		})
	}
	return err
}

// backoff computes the exponential delay for attempt with jitter, capped at MaxInterval
func (r *Retrier) backoff(attempt int) time.Duration {
	backoff := r.config.RetryInterval * (1 << uint(attempt))
	if backoff > r.config.MaxInterval {
		backoff = r.config.MaxInterval
	}
	if r.config.JitterFactor > 0 {
		backoff += time.Duration(float64(backoff) * r.config.JitterFactor * rand.Float64())
	}
	return backoff
}
