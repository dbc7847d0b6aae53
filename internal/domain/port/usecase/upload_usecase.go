package usecase

import (
	"context"
	"io"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
)

// SubmitUploadRequest carries one odometer photo submission
type SubmitUploadRequest struct {
	UserID         uint64
	Filename       string
	Body           io.Reader
	IdempotencyKey string
}

// SubmitUploadResult is the stored upload and the wallet it credited.
// Replayed is set when the idempotency key matched an earlier upload.
type SubmitUploadResult struct {
	Upload   *entity.Upload
	User     *entity.User
	Replayed bool
}

// UploadUseCase defines the reward pipeline
type UploadUseCase interface {
	// SubmitUpload validates the photo, estimates distance, computes the reward
	// and credits the user atomically (POST /api/upload)
	SubmitUpload(ctx context.Context, req SubmitUploadRequest) (*SubmitUploadResult, error)

	// GetUpload returns one upload (GET /api/upload/:uploadId)
	GetUpload(ctx context.Context, uploadID uint64) (*entity.Upload, error)

	// ListUploads returns a user's uploads newest first (GET /api/uploads/:userId)
	ListUploads(ctx context.Context, userID uint64) ([]*entity.Upload, error)

	// GetStats returns a user's aggregate statistics (GET /api/stats/:userId)
	GetStats(ctx context.Context, userID uint64) (entity.UserStats, error)
}
