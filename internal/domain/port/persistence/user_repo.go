package persistence

import (
	"context"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
)

// UserRepository defines the user lookups and mutations of the storage layer
type UserRepository interface {
	// GetUserByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetUserByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetUserByEmail retrieves a user by normalised email
	//
	// Possible errors:
	// - ErrUserNotFound: If no user is enrolled with the email
	// - ErrDatabaseConnection: If database connection fails
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// CreateUser persists a new user and assigns its ID and timestamps.
	// Balance and credits are stored as zero regardless of the input.
	//
	// Possible errors:
	// - ErrDuplicateUser: If a user with the same email already exists
	// - ErrDatabaseConnection: If database connection fails
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)

	// UpdateUser merges a partial profile change and returns the updated user
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	UpdateUser(ctx context.Context, id uint64, update entity.UserUpdate) (*entity.User, error)
}
