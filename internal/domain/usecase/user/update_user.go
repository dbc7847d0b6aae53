package user

import (
	"context"
	"io"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/media"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/usecase"
)

// UpdateUser applies a partial profile change
func (u *UserUseCase) UpdateUser(ctx context.Context, userID uint64, req usecase.UpdateUserRequest) (*entity.User, error) {
	update := entity.UserUpdate{Name: req.Name}
	if req.VehicleType != nil {
		vt, err := entity.ParseVehicleType(*req.VehicleType)
		if err != nil {
			return nil, err
		}
		update.VehicleType = &vt
	}

	if update.IsEmpty() {
		return nil, errs.ErrInvalidRequest
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}

	if _, err := u.loadOwnedUser(ctx, userID); err != nil {
		return nil, err
	}

	updated, err := u.userRepo.UpdateUser(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	u.logger.Info("User profile updated", map[string]any{
		"userId": userID,
	})
	return updated, nil
}

// AttachRegistrationDocument stores the vehicle registration certificate image
func (u *UserUseCase) AttachRegistrationDocument(ctx context.Context, userID uint64, image io.Reader) (*entity.User, error) {
	if image == nil {
		return nil, errs.ErrMissingImage
	}

	if _, err := u.loadOwnedUser(ctx, userID); err != nil {
		return nil, err
	}

	img, err := u.processor.Process(ctx, image)
	if err != nil {
		return nil, errs.NewUploadError(userID, "", "validate", err)
	}

	imageID, err := u.images.Save(ctx, media.FolderRegistration, userID, img)
	if err != nil {
		u.logger.Error("Failed to store registration document", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, errs.NewUploadError(userID, "", "store", err)
	}

	updated, err := u.userRepo.UpdateUser(ctx, userID, entity.UserUpdate{RCImageID: &imageID})
	if err != nil {
		if delErr := u.images.Delete(context.WithoutCancel(ctx), imageID); delErr != nil {
			u.logger.Warn("Failed to discard unreferenced image", map[string]any{
				"userId":  userID,
				"imageId": imageID,
				"error":   delErr.Error(),
			})
		}
		return nil, err
	}

	u.logger.Info("Registration document attached", map[string]any{
		"userId":  userID,
		"imageId": imageID,
	})
	return updated, nil
}
