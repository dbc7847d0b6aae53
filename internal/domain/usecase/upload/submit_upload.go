package upload

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/identity"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/media"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/usecase"
)

// Pipeline stages reported in UploadError
const (
	stageValidate = "validate"
	stageOdometer = "odometer"
	stageStore    = "store"
	stagePersist  = "persist"
)

// SubmitUpload runs the reward pipeline for one odometer photo:
// 1. Validates the request and resolves the owning user
// 2. Returns the earlier result if the idempotency key was seen before
// 3. Normalises the image and estimates the distance driven
// 4. Computes the reward and stores the image
// 5. Persists the upload and credits the wallet in one atomic step
func (s *Service) SubmitUpload(ctx context.Context, req usecase.SubmitUploadRequest) (*usecase.SubmitUploadResult, error) {
	req, key, err := s.validator.ValidateSubmission(req)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if err := identity.CheckOwner(ctx, user.Email); err != nil {
		return nil, err
	}

	// A replay returns before any image work is done
	if existing, found, err := s.idempotency.CheckIdempotency(ctx, user.ID, key); err != nil {
		return nil, err
	} else if found {
		s.logger.Info("Replayed upload returned", map[string]any{
			"userId":   user.ID,
			"uploadId": existing.ID,
		})
		return &usecase.SubmitUploadResult{Upload: existing, User: user, Replayed: true}, nil
	}

	img, err := s.processor.Process(ctx, req.Body)
	if err != nil {
		return nil, errs.NewUploadError(user.ID, req.Filename, stageValidate, err)
	}

	km, err := s.odometer.ReadDistance(ctx, req.Filename, img)
	if err != nil {
		return nil, s.fail(errs.NewUploadError(user.ID, req.Filename, stageOdometer, err))
	}

	reward := entity.ComputeReward(km, user.VehicleType)

	imageID, err := s.images.Save(ctx, media.FolderOdometer, user.ID, img)
	if err != nil {
		return nil, s.fail(errs.NewUploadError(user.ID, req.Filename, stageStore, err))
	}

	var keyValue string
	if key != nil {
		keyValue = *key
	}
	upload, err := entity.NewUpload(user.ID, imageID, reward, keyValue, s.timeProvider)
	if err != nil {
		s.discardImage(ctx, user.ID, imageID)
		return nil, err
	}

	stored, updated, err := s.uploadRepo.CreateUpload(ctx, upload)
	if err != nil {
		// nothing references the image once the row is not written
		s.discardImage(ctx, user.ID, imageID)

		// A concurrent submission with the same key won the race
		if errors.Is(err, errs.ErrDuplicateUpload) {
			if existing, found, lookupErr := s.idempotency.CheckIdempotency(ctx, user.ID, key); lookupErr == nil && found {
				return &usecase.SubmitUploadResult{Upload: existing, User: user, Replayed: true}, nil
			}
		}
		if errs.IsUserNotFoundError(err) {
			return nil, err
		}
		return nil, s.fail(errs.NewUploadError(user.ID, req.Filename, stagePersist, err))
	}

	s.invalidateStats(ctx, user.ID)

	s.logger.Info("Upload rewarded", map[string]any{
		"userId":        user.ID,
		"uploadId":      stored.ID,
		"estimatedKm":   stored.EstimatedKm,
		"rewardAmount":  entity.FormatAmount(stored.RewardAmount),
		"carbonCredits": entity.FormatCredits(stored.CarbonCredits),
		"balance":       updated.GetBalance(),
	})

	return &usecase.SubmitUploadResult{Upload: stored, User: updated}, nil
}

// fail logs a pipeline failure with its structured fields
func (s *Service) fail(err error) error {
	var upErr *errs.UploadError
	if errors.As(err, &upErr) {
		s.logger.Error("Upload processing failed", upErr.LogFields())
	}
	return err
}

// discardImage removes an image no upload row points at. Failures leave an
// orphaned object behind and are only logged.
func (s *Service) discardImage(ctx context.Context, userID uint64, imageID string) {
	if err := s.images.Delete(context.WithoutCancel(ctx), imageID); err != nil {
		s.logger.Warn("Failed to discard unreferenced image", map[string]any{
			"userId":  userID,
			"imageId": imageID,
			"error":   err.Error(),
		})
	}
}

// invalidateStats drops cached statistics; cache failures never fail the request
func (s *Service) invalidateStats(ctx context.Context, userID uint64) {
	if err := s.statsCache.Invalidate(ctx, userID); err != nil {
		s.logger.Warn("Failed to invalidate stats cache", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
	}
}
