package repository

import (
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
)

// userModelToEntity converts a user row to an entity, restoring column scales
func userModelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:            m.ID,
		Email:         m.Email,
		Name:          m.Name,
		VehicleType:   entity.VehicleType(m.VehicleType),
		RCImageID:     m.RCImageID,
		CarbonCredits: m.CarbonCredits.Round(entity.CarbonCreditsScale),
		Balance:       m.Balance.Round(entity.MoneyScale),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// userEntityToModel converts a new user to a row with an empty wallet
func userEntityToModel(u *entity.User) model.User {
	return model.User{
		ID:            u.ID,
		Email:         entity.NormalizeEmail(u.Email),
		Name:          u.Name,
		VehicleType:   string(u.VehicleType),
		RCImageID:     u.RCImageID,
		CarbonCredits: decimal.Zero,
		Balance:       decimal.Zero,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func uploadModelToEntity(m *model.Upload) *entity.Upload {
	return &entity.Upload{
		ID:             m.ID,
		UserID:         m.UserID,
		ImageID:        m.ImageID,
		EstimatedKm:    m.EstimatedKm,
		CarbonSavedKg:  m.CarbonSavedKg.Round(entity.CarbonSavedScale),
		CarbonCredits:  m.CarbonCredits.Round(entity.CarbonCreditsScale),
		RewardAmount:   m.RewardAmount.Round(entity.MoneyScale),
		IdempotencyKey: m.IdempotencyKey,
		CreatedAt:      m.CreatedAt,
	}
}

func uploadEntityToModel(u *entity.Upload) model.Upload {
	return model.Upload{
		UserID:         u.UserID,
		ImageID:        u.ImageID,
		EstimatedKm:    u.EstimatedKm,
		CarbonSavedKg:  u.CarbonSavedKg,
		CarbonCredits:  u.CarbonCredits,
		RewardAmount:   u.RewardAmount,
		IdempotencyKey: u.IdempotencyKey,
		CreatedAt:      u.CreatedAt,
	}
}

// totalsToStats turns the aggregate row into stats; NULL sums become zero
func totalsToStats(t model.UploadTotals) entity.UserStats {
	stats := entity.EmptyStats()
	stats.TotalUploads = t.TotalUploads
	stats.TotalKm = t.TotalKm
	if t.TotalEarned.Valid {
		stats.TotalEarned = t.TotalEarned.Decimal
	}
	if t.TotalCarbonSaved.Valid {
		stats.TotalCarbonSaved = t.TotalCarbonSaved.Decimal
	}
	return stats.Normalize()
}
