package usecase

import (
	"context"
	"io"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
)

// CreateUserRequest carries onboarding input
type CreateUserRequest struct {
	Email       string
	Name        string
	VehicleType string
}

// UpdateUserRequest carries a partial profile change; nil fields are kept
type UpdateUserRequest struct {
	Name        *string
	VehicleType *string
}

// UserUseCase defines onboarding and profile operations
type UserUseCase interface {
	// GetUserByEmail looks a user up by email (GET /api/user/:email)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetUserByID looks a user up by ID
	GetUserByID(ctx context.Context, userID uint64) (*entity.User, error)

	// CreateUser validates and enrols a new user (POST /api/user)
	CreateUser(ctx context.Context, req CreateUserRequest) (*entity.User, error)

	// UpdateUser applies a partial profile update (PATCH /api/user/:userId)
	UpdateUser(ctx context.Context, userID uint64, req UpdateUserRequest) (*entity.User, error)

	// AttachRegistrationDocument stores the vehicle registration image and
	// records its ID on the user
	AttachRegistrationDocument(ctx context.Context, userID uint64, image io.Reader) (*entity.User, error)
}
