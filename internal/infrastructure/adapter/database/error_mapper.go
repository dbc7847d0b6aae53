package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeUser represents the user entity
	EntityTypeUser EntityType = "user"
	// EntityTypeUpload represents the upload entity
	EntityTypeUpload EntityType = "upload"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// ErrorClassifier recognises driver errors of postgres, mysql and sqlite
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsLockError(err):
		return LockError
	case c.IsTransientError(err):
		return TransientError
	case c.IsConnectionError(err):
		return ConnectionError
	case c.IsConstraintError(err):
		return ConstraintError
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a unique index violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "Duplicate entry")
}

// IsLockError checks if the error is due to row locking or serialization
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "lock wait timeout") ||
		strings.Contains(msg, "lock timeout") ||
		strings.Contains(msg, "could not serialize access") ||
		strings.Contains(msg, "serialization failure") ||
		strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "sqlite_busy")
}

// IsTransientError checks if an error is transient and can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "too many connections") ||
		strings.Contains(msg, "server closed") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "unexpected eof")
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection") ||
		strings.Contains(msg, "dial") ||
		strings.Contains(msg, "network") ||
		strings.Contains(msg, "timeout") ||
		c.IsTransientError(err)
}

// IsConstraintError checks if the error is related to constraint violations
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "check constraint") ||
		strings.Contains(msg, "foreign key") ||
		strings.Contains(msg, "not null") ||
		strings.Contains(msg, "violates")
}

// IsRetryable reports whether running the operation again may succeed.
// Domain client errors are final.
func (c *ErrorClassifier) IsRetryable(err error) bool {
	if errs.IsClientError(err) {
		return false
	}
	return c.IsLockError(err) || c.IsTransientError(err)
}

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct {
	classifier *ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: NewErrorClassifier()}
}

// Classifier exposes the classifier used by the mapper
func (m *ErrorMapper) Classifier() *ErrorClassifier {
	return m.classifier
}

// MapError maps a database error raised while working on entityType to a
// domain error. Errors that already are domain errors pass through unchanged.
func (m *ErrorMapper) MapError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}
	if errs.ErrorCode(err) != errs.CodeInternalServer || errors.Is(err, errs.ErrInternalServer) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeUser:
			return errs.ErrUserNotFound
		case EntityTypeUpload:
			return errs.ErrUploadNotFound
		default:
			return errs.ErrNotFound
		}
	}

	switch m.classifier.Classify(err) {
	case DuplicateKeyError:
		if entityType == EntityTypeUpload {
			return errs.ErrDuplicateUpload
		}
		return errs.ErrDuplicateUser
	case LockError:
		return errs.ErrUserLocked
	case ConstraintError:
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	case TransientError, ConnectionError:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	return fmt.Errorf("%w: %s operation failed: %s", errs.ErrInternalServer, entityType, err.Error())
}
