package migration

import (
	"context"
	"errors"

	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/usecase"
)

// CreateDefaultUsers enrols the given users unless their email is already taken
func CreateDefaultUsers(ctx context.Context, users usecase.UserUseCase, defaults []usecase.CreateUserRequest) error {
	for _, req := range defaults {
		_, err := users.GetUserByEmail(ctx, req.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrUserNotFound) {
			return err
		}

		if _, err := users.CreateUser(ctx, req); err != nil && !errors.Is(err, errs.ErrDuplicateUser) {
			return err
		}
	}
	return nil
}
