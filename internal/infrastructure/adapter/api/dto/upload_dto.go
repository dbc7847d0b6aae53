package dto

import (
	"encoding/json"
	"time"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
)

// UploadResponse is one stored odometer upload
type UploadResponse struct {
	ID             uint64    `json:"id"`
	UserID         uint64    `json:"userId"`
	ImageID        string    `json:"imageId"`
	EstimatedKm    int64     `json:"estimatedKm"`
	CarbonSavedKg  string    `json:"carbonSavedKg"`
	CarbonCredits  string    `json:"carbonCredits"`
	RewardINR      string    `json:"rewardINR"`
	IdempotencyKey *string   `json:"idempotencyKey,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewUploadResponse(u *entity.Upload) UploadResponse {
	return UploadResponse{
		ID:             u.ID,
		UserID:         u.UserID,
		ImageID:        u.ImageID,
		EstimatedKm:    u.EstimatedKm,
		CarbonSavedKg:  entity.FormatCarbon(u.CarbonSavedKg),
		CarbonCredits:  entity.FormatCredits(u.CarbonCredits),
		RewardINR:      entity.FormatAmount(u.RewardAmount),
		IdempotencyKey: u.IdempotencyKey,
		CreatedAt:      u.CreatedAt,
	}
}

// NewUploadListResponse never returns nil so the body is always an array
func NewUploadListResponse(uploads []*entity.Upload) []UploadResponse {
	out := make([]UploadResponse, 0, len(uploads))
	for _, u := range uploads {
		out = append(out, NewUploadResponse(u))
	}
	return out
}

// StatsResponse keeps the aggregate sums as JSON numbers
type StatsResponse struct {
	TotalUploads     int64       `json:"totalUploads"`
	TotalKm          int64       `json:"totalKm"`
	TotalEarned      json.Number `json:"totalEarned"`
	TotalCarbonSaved json.Number `json:"totalCarbonSaved"`
}

func NewStatsResponse(s entity.UserStats) StatsResponse {
	return StatsResponse{
		TotalUploads:     s.TotalUploads,
		TotalKm:          s.TotalKm,
		TotalEarned:      json.Number(entity.FormatAmount(s.TotalEarned)),
		TotalCarbonSaved: json.Number(entity.FormatCarbon(s.TotalCarbonSaved)),
	}
}
