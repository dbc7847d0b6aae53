package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInsufficientBalance.Error() != "insufficient balance" {
		t.Errorf("ErrInsufficientBalance has unexpected message: %s", ErrInsufficientBalance.Error())
	}
	if ErrUnsupportedImage.Error() != "only image files are allowed" {
		t.Errorf("ErrUnsupportedImage has unexpected message: %s", ErrUnsupportedImage.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientBalance", ErrInsufficientBalance, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"NegativeAmount", ErrNegativeAmount, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"DuplicateUpload", ErrDuplicateUpload, 4004},
		{"InvalidVehicleType", ErrInvalidVehicleType, 4009},
		{"ImageTooLarge", ErrImageTooLarge, 4023},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"DuplicateUser", ErrDuplicateUser, 4090},
		{"UserLocked", ErrUserLocked, 4230},
		{"ConstraintViolation", ErrConstraintViolation, 4005},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4003},
		{"TypedDuplicateUser", NewDuplicateUserError("a@b.io"), 4090},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestIsClientError(t *testing.T) {
	if !IsClientError(ErrMissingImage) {
		t.Errorf("IsClientError(ErrMissingImage) = false, want true")
	}
	if IsClientError(ErrDatabaseConnection) {
		t.Errorf("IsClientError(ErrDatabaseConnection) = true, want false")
	}
}

func TestUploadError(t *testing.T) {
	upErr := NewUploadError(42, "odo_120.jpg", "validate", ErrUnsupportedImage)

	expectedErrMsg := "upload failed for user 42 (file: odo_120.jpg) at validate: only image files are allowed"
	if upErr.Error() != expectedErrMsg {
		t.Errorf("UploadError.Error() = %s, want %s", upErr.Error(), expectedErrMsg)
	}

	if !errors.Is(upErr, ErrUnsupportedImage) {
		t.Errorf("errors.Is(upErr, ErrUnsupportedImage) = false, want true")
	}

	var cast *UploadError
	if !errors.As(upErr, &cast) {
		t.Fatalf("errors.As failed: not a *UploadError")
	}
	fields := cast.LogFields()
	if fields["error_code"] != CodeUnsupportedImage {
		t.Errorf("error_code = %v, want %d", fields["error_code"], CodeUnsupportedImage)
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError(789, "300.00", "150.00")
	if err == nil {
		t.Fatal("NewInsufficientBalanceError returned nil")
	}

	expectedErrMsg := "insufficient balance for user 789: required 300.00, available 150.00"
	if err.Error() != expectedErrMsg {
		t.Errorf("InsufficientBalanceError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !IsInsufficientBalanceError(err) {
		t.Errorf("IsInsufficientBalanceError(err) = false, want true")
	}
}

func TestDuplicateUploadError(t *testing.T) {
	err := NewDuplicateUploadError("key-9", 321, 17)

	expectedErrMsg := "duplicate upload detected: key=key-9 for user 321 (existing upload 17)"
	if err.Error() != expectedErrMsg {
		t.Errorf("DuplicateUploadError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !IsDuplicateUploadError(fmt.Errorf("wrapped: %w", err)) {
		t.Errorf("IsDuplicateUploadError(wrapped) = false, want true")
	}

	var dup *DuplicateUploadError
	if !errors.As(err, &dup) || dup.ExistingUploadID != 17 {
		t.Errorf("errors.As did not recover the existing upload id")
	}
}

func TestErrorHelperFunctions(t *testing.T) {
	if IsInsufficientBalanceError(ErrInvalidUserID) {
		t.Errorf("IsInsufficientBalanceError(ErrInvalidUserID) = true, want false")
	}

	if !IsNotFoundError(fmt.Errorf("lookup: %w", ErrUploadNotFound)) {
		t.Errorf("IsNotFoundError(wrapped ErrUploadNotFound) = false, want true")
	}

	if !IsUserNotFoundError(ErrUserNotFound) {
		t.Errorf("IsUserNotFoundError(ErrUserNotFound) = false, want true")
	}

	if !IsUserLockedError(fmt.Errorf("wrapped: %w", ErrUserLocked)) {
		t.Errorf("IsUserLockedError(wrapped) = false, want true")
	}
}
