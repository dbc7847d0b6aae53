package upload

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/persistence"
)

// IdempotencyHandler resolves replayed upload submissions
type IdempotencyHandler struct {
	uploadRepo persistence.UploadRepository
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(uploadRepo persistence.UploadRepository) *IdempotencyHandler {
	return &IdempotencyHandler{
		uploadRepo: uploadRepo,
	}
}

// CheckIdempotency returns the upload previously stored under the user's key,
// and whether one was found
func (h *IdempotencyHandler) CheckIdempotency(
	ctx context.Context,
	userID uint64,
	key *string,
) (*entity.Upload, bool, error) {
	if key == nil {
		return nil, false, nil
	}

	existing, err := h.uploadRepo.GetUploadByIdempotencyKey(ctx, userID, *key)
	if err != nil {
		if errors.Is(err, errs.ErrUploadNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to check idempotency key: %w", err)
	}

	return existing, true, nil
}
