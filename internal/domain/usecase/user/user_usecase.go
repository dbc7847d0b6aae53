package user

import (
	"context"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/identity"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/media"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/usecase"
)

// UserUseCase implements onboarding and profile management
type UserUseCase struct {
	userRepo     persistence.UserRepository
	images       media.ImageStore
	processor    media.ImageProcessor
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new user use case instance
func NewUserUseCase(
	userRepo persistence.UserRepository,
	images media.ImageStore,
	processor media.ImageProcessor,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		images:       images,
		processor:    processor,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetUserByEmail returns the user enrolled with the email
func (u *UserUseCase) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	email = entity.NormalizeEmail(email)
	if err := entity.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := identity.CheckOwner(ctx, email); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if !errs.IsUserNotFoundError(err) {
			u.logger.Error("Failed to get user by email", map[string]any{
				"email": email,
				"error": err.Error(),
			})
		}
		return nil, err
	}
	return user, nil
}

// GetUserByID returns the user with the ID
func (u *UserUseCase) GetUserByID(ctx context.Context, userID uint64) (*entity.User, error) {
	return u.loadOwnedUser(ctx, userID)
}

// loadOwnedUser fetches the user and checks it belongs to the caller
func (u *UserUseCase) loadOwnedUser(ctx context.Context, userID uint64) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if !errs.IsUserNotFoundError(err) {
			u.logger.Error("Failed to get user", map[string]any{
				"userId": userID,
				"error":  err.Error(),
			})
		}
		return nil, err
	}

	if err := identity.CheckOwner(ctx, user.Email); err != nil {
		return nil, err
	}
	return user, nil
}
