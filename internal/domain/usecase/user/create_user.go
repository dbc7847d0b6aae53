package user

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/identity"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/usecase"
)

// CreateUser validates onboarding data and enrols a new user with an empty wallet
func (u *UserUseCase) CreateUser(ctx context.Context, req usecase.CreateUserRequest) (*entity.User, error) {
	// The verified identity decides the email when authentication is on
	if id, ok := identity.FromContext(ctx); ok {
		if req.Email == "" {
			req.Email = id.Email
		} else if err := identity.CheckOwner(ctx, req.Email); err != nil {
			return nil, err
		}
	}

	user, err := entity.NewUser(req.Email, req.Name, req.VehicleType, u.timeProvider)
	if err != nil {
		return nil, err
	}

	_, err = u.userRepo.GetUserByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return nil, errs.NewDuplicateUserError(user.Email)
	case !errors.Is(err, errs.ErrUserNotFound):
		return nil, err
	}

	created, err := u.userRepo.CreateUser(ctx, user)
	if err != nil {
		if !errors.Is(err, errs.ErrDuplicateUser) {
			u.logger.Error("Failed to create user", map[string]any{
				"email": user.Email,
				"error": err.Error(),
			})
		}
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"userId":      created.ID,
		"vehicleType": string(created.VehicleType),
	})

	return created, nil
}
