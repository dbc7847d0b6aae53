package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	tport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// MaxIdempotencyKeyLength bounds client supplied idempotency keys
const MaxIdempotencyKeyLength = 128

// Upload is one accepted odometer photo and the reward it earned.
// Uploads are immutable once stored.
type Upload struct {
	ID             uint64
	UserID         uint64
	ImageID        string
	EstimatedKm    int64
	CarbonSavedKg  decimal.Decimal // Scale 3
	CarbonCredits  decimal.Decimal // Scale 6
	RewardAmount   decimal.Decimal // INR, scale 2
	IdempotencyKey *string
	CreatedAt      time.Time
}

// NewUpload builds an upload record from a computed reward
func NewUpload(
	userID uint64,
	imageID string,
	reward Reward,
	idempotencyKey string,
	timeProvider tport.TimeProvider,
) (*Upload, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if strings.TrimSpace(imageID) == "" {
		return nil, errs.ErrMissingImage
	}

	key, err := NormalizeIdempotencyKey(idempotencyKey)
	if err != nil {
		return nil, err
	}

	return &Upload{
		UserID:         userID,
		ImageID:        imageID,
		EstimatedKm:    reward.DistanceKm,
		CarbonSavedKg:  reward.CarbonSavedKg,
		CarbonCredits:  reward.CarbonCredits,
		RewardAmount:   reward.RewardAmount,
		IdempotencyKey: key,
		CreatedAt:      timeProvider.Now(),
	}, nil
}

// Reward reconstructs the reward figures stored on the upload
func (u *Upload) Reward() Reward {
	return Reward{
		DistanceKm:    u.EstimatedKm,
		CarbonSavedKg: u.CarbonSavedKg,
		CarbonCredits: u.CarbonCredits,
		RewardAmount:  u.RewardAmount,
	}
}

// NormalizeIdempotencyKey trims the key and returns nil when none was given
func NormalizeIdempotencyKey(key string) (*string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, nil
	}
	if len(key) > MaxIdempotencyKeyLength {
		return nil, fmt.Errorf("%w: idempotency key longer than %d characters", errs.ErrInvalidRequest, MaxIdempotencyKeyLength)
	}
	return &key, nil
}
