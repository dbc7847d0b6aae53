package upload

import (
	"context"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/identity"
)

// GetUpload returns a single upload
func (s *Service) GetUpload(ctx context.Context, uploadID uint64) (*entity.Upload, error) {
	if uploadID == 0 {
		return nil, errs.ErrInvalidRequest
	}

	upload, err := s.uploadRepo.GetUploadByID(ctx, uploadID)
	if err != nil {
		return nil, err
	}

	if err := s.checkOwner(ctx, upload.UserID); err != nil {
		return nil, err
	}
	return upload, nil
}

// ListUploads returns the user's uploads newest first
func (s *Service) ListUploads(ctx context.Context, userID uint64) ([]*entity.Upload, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if err := s.checkOwner(ctx, userID); err != nil {
		return nil, err
	}

	uploads, err := s.uploadRepo.GetUploadsByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list uploads", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}
	if uploads == nil {
		uploads = []*entity.Upload{}
	}
	return uploads, nil
}

// GetStats returns the user's aggregate statistics, served from cache when possible
func (s *Service) GetStats(ctx context.Context, userID uint64) (entity.UserStats, error) {
	if userID == 0 {
		return entity.EmptyStats(), errs.ErrInvalidUserID
	}
	if err := s.checkOwner(ctx, userID); err != nil {
		return entity.EmptyStats(), err
	}

	lookup, err := s.statsCache.Get(ctx, userID)
	cacheUsable := err == nil
	if err != nil {
		s.logger.Warn("Stats cache read failed", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
	} else if lookup.Found {
		return lookup.Stats, nil
	}

	stats, err := s.uploadRepo.GetUserStats(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to compute stats", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return entity.EmptyStats(), err
	}

	// the generation from the read keeps an upload committed meanwhile
	// from being hidden behind this snapshot
	if cacheUsable {
		if err := s.statsCache.Set(ctx, userID, lookup.Generation, stats); err != nil {
			s.logger.Warn("Stats cache write failed", map[string]any{
				"userId": userID,
				"error":  err.Error(),
			})
		}
	}
	return stats, nil
}

// checkOwner enforces ownership when a verified identity is attached.
// Unknown users are let through so reads return empty results.
func (s *Service) checkOwner(ctx context.Context, userID uint64) error {
	if _, ok := identity.FromContext(ctx); !ok {
		return nil
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return nil
		}
		return err
	}
	return identity.CheckOwner(ctx, user.Email)
}
