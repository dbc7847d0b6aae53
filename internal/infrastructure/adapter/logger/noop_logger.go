package logger

import (
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
)

// NoopLogger implements the Logger interface but doesn't do anything
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.Logger {
	return &NoopLogger{
		level: core.LogLevelInfo,
	}
}

func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level = level }
func (l *NoopLogger) GetLevel() core.LogLevel      { return l.level }

func (l *NoopLogger) Debug(string, map[string]any) {}
func (l *NoopLogger) Info(string, map[string]any)  {}
func (l *NoopLogger) Warn(string, map[string]any)  {}
func (l *NoopLogger) Error(string, map[string]any) {}

func (l *NoopLogger) With(map[string]any) core.Logger { return l }

// Flush is a no-op
func (l *NoopLogger) Flush() error { return nil }
