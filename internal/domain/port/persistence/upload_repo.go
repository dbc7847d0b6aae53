package persistence

import (
	"context"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
)

// UploadRepository defines operations on odometer uploads
type UploadRepository interface {
	// CreateUpload stores the upload and credits its reward to the owning user
	// as one atomic unit. Concurrent calls for the same user are serialised so
	// no increment is lost. Returns the stored upload and the updated user.
	//
	// Possible errors:
	// - ErrUserNotFound: If the owning user doesn't exist (nothing is written)
	// - ErrDuplicateUpload: If the idempotency key was already used by the user
	// - ErrUserLocked: If the user row could not be locked within the retry budget
	// - ErrDatabaseConnection: If database connection fails
	CreateUpload(ctx context.Context, upload *entity.Upload) (*entity.Upload, *entity.User, error)

	// GetUploadByID retrieves a single upload
	//
	// Possible errors:
	// - ErrUploadNotFound: If upload doesn't exist
	GetUploadByID(ctx context.Context, id uint64) (*entity.Upload, error)

	// GetUploadByIdempotencyKey finds the upload a user submitted under key
	//
	// Possible errors:
	// - ErrUploadNotFound: If the key is unused
	GetUploadByIdempotencyKey(ctx context.Context, userID uint64, key string) (*entity.Upload, error)

	// GetUploadsByUserID lists a user's uploads newest first.
	// Unknown users yield an empty list.
	GetUploadsByUserID(ctx context.Context, userID uint64) ([]*entity.Upload, error)

	// GetUserStats aggregates a user's uploads; zero values when there are none
	GetUserStats(ctx context.Context, userID uint64) (entity.UserStats, error)
}
