package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest          = 4000
	CodeInsufficientBalance     = 4001
	CodeInvalidAmount           = 4002
	CodeInvalidUserID           = 4003
	CodeDuplicateUpload         = 4004
	CodeConstraintViolation     = 4005
	CodeAmountOverflow          = 4006
	CodeInvalidEmail            = 4007
	CodeInvalidName             = 4008
	CodeInvalidVehicleType      = 4009
	CodeUnauthorized            = 4010
	CodeInvalidWithdrawalMethod = 4020
	CodeMissingImage            = 4021
	CodeUnsupportedImage        = 4022
	CodeImageTooLarge           = 4023
	CodeForbidden               = 4030
	CodeUserNotFound            = 4040
	CodeUploadNotFound          = 4041
	CodeDuplicateUser           = 4090
	CodeUserLocked              = 4230
	CodeRateLimited             = 4290

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5001
	CodeImageStorage       = 5002
)

// Base error types
var (
	// ErrInsufficientBalance is returned when a withdrawal exceeds the wallet balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned when the amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrNegativeAmount is returned when the amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrAmountOverflow is returned when the amount is too large for the wallet columns
	ErrAmountOverflow = errors.New("amount is too large")

	ErrInvalidEmail            = errors.New("invalid email")
	ErrInvalidName             = errors.New("invalid name")
	ErrInvalidVehicleType      = errors.New("invalid vehicle type")
	ErrInvalidWithdrawalMethod = errors.New("invalid withdrawal method")

	// ErrMissingImage is returned when an upload carries no image file
	ErrMissingImage = errors.New("no image file provided")

	// ErrUnsupportedImage is returned when the uploaded file is not a decodable image
	ErrUnsupportedImage = errors.New("only image files are allowed")

	// ErrImageTooLarge is returned when the uploaded file exceeds the size limit
	ErrImageTooLarge = errors.New("image file too large")

	// ErrDuplicateUpload is returned when an idempotency key was already used by the user
	ErrDuplicateUpload = errors.New("upload with this idempotency key already exists")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrUploadNotFound is returned when the requested upload doesn't exist
	ErrUploadNotFound = errors.New("upload not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrUserLocked is returned when the user row stays locked past the retry budget
	ErrUserLocked = errors.New("user is locked by another operation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("access to this resource is forbidden")
	ErrRateLimited  = errors.New("too many requests")

	// ErrImageStorage is returned when the image backend fails to persist an object
	ErrImageStorage = errors.New("image storage failure")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrDuplicateUpload):
		return CodeDuplicateUpload
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidEmail):
		return CodeInvalidEmail
	case errors.Is(err, ErrInvalidName):
		return CodeInvalidName
	case errors.Is(err, ErrInvalidVehicleType):
		return CodeInvalidVehicleType
	case errors.Is(err, ErrInvalidWithdrawalMethod):
		return CodeInvalidWithdrawalMethod
	case errors.Is(err, ErrMissingImage):
		return CodeMissingImage
	case errors.Is(err, ErrUnsupportedImage):
		return CodeUnsupportedImage
	case errors.Is(err, ErrImageTooLarge):
		return CodeImageTooLarge
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrUploadNotFound):
		return CodeUploadNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrUserLocked):
		return CodeUserLocked
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	case errors.Is(err, ErrImageStorage):
		return CodeImageStorage
	default:
		return CodeInternalServer
	}
}

// IsClientError reports whether the error maps to a 4xxx code
func IsClientError(err error) bool {
	code := ErrorCode(err)
	return code >= 4000 && code < 5000
}

// UploadError represents an error raised while processing an odometer upload
type UploadError struct {
	UserID   uint64
	Filename string
	Stage    string
	Err      error
}

// Error implements the error interface for UploadError
func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed for user %d (file: %s) at %s: %v",
		e.UserID, e.Filename, e.Stage, e.Err)
}

// Unwrap returns the underlying error
func (e *UploadError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *UploadError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "upload_error",
		"user_id":    e.UserID,
		"filename":   e.Filename,
		"stage":      e.Stage,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewUploadError wraps err with the upload stage it happened in
func NewUploadError(userID uint64, filename, stage string, err error) error {
	return &UploadError{
		UserID:   userID,
		Filename: filename,
		Stage:    stage,
		Err:      err,
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID      uint64
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: required %s, available %s",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, amount, currentBalance string) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// DuplicateUploadError reports a replayed idempotency key and the upload it already produced
type DuplicateUploadError struct {
	IdempotencyKey   string
	UserID           uint64
	ExistingUploadID uint64
}

// Error implements the error interface
func (e *DuplicateUploadError) Error() string {
	return fmt.Sprintf("duplicate upload detected: key=%s for user %d (existing upload %d)",
		e.IdempotencyKey, e.UserID, e.ExistingUploadID)
}

// Is checks if the target error is an ErrDuplicateUpload
func (e *DuplicateUploadError) Is(target error) bool {
	return target == ErrDuplicateUpload
}

// LogFields returns a map of fields for structured logging
func (e *DuplicateUploadError) LogFields() map[string]any {
	return map[string]any{
		"error_type":         "duplicate_upload",
		"idempotency_key":    e.IdempotencyKey,
		"user_id":            e.UserID,
		"existing_upload_id": e.ExistingUploadID,
		"error_code":         CodeDuplicateUpload,
	}
}

// NewDuplicateUploadError creates a new detailed duplicate upload error
func NewDuplicateUploadError(key string, userID, existingUploadID uint64) error {
	return &DuplicateUploadError{
		IdempotencyKey:   key,
		UserID:           userID,
		ExistingUploadID: existingUploadID,
	}
}

// DuplicateUserError reports an onboarding attempt for an email that is already enrolled
type DuplicateUserError struct {
	Email string
}

// Error implements the error interface
func (e *DuplicateUserError) Error() string {
	return fmt.Sprintf("user with email %s already exists", e.Email)
}

// Is checks if the target error is an ErrDuplicateUser
func (e *DuplicateUserError) Is(target error) bool {
	return target == ErrDuplicateUser
}

// NewDuplicateUserError creates a duplicate user error for the email
func NewDuplicateUserError(email string) error {
	return &DuplicateUserError{Email: email}
}

// IsDuplicateUploadError checks if the error is a replayed idempotency key
func IsDuplicateUploadError(err error) bool {
	return errors.Is(err, ErrDuplicateUpload)
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrUploadNotFound)
}

// IsUserLockedError checks if the error is related to a locked user
func IsUserLockedError(err error) bool {
	return errors.Is(err, ErrUserLocked)
}
