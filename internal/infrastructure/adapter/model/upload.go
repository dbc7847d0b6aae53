package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Upload represents the database model for rewarded odometer photos.
// Rows are never updated after insert.
type Upload struct {
	ID             uint64          `gorm:"primaryKey;autoIncrement"`
	UserID         uint64          `gorm:"not null;index:idx_uploads_user_created,priority:1;uniqueIndex:idx_uploads_user_idempotency,priority:1"`
	ImageID        string          `gorm:"not null;size:512"`
	EstimatedKm    int64           `gorm:"not null"`
	CarbonSavedKg  decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	CarbonCredits  decimal.Decimal `gorm:"type:decimal(12,6);not null"`
	RewardAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IdempotencyKey *string         `gorm:"size:128;uniqueIndex:idx_uploads_user_idempotency,priority:2"`
	CreatedAt      time.Time       `gorm:"not null;index:idx_uploads_user_created,priority:2"`
}

// TableName specifies the table name for Upload
func (Upload) TableName() string {
	return "uploads"
}

// UploadTotals is the aggregate row scanned by the stats query
type UploadTotals struct {
	TotalUploads     int64
	TotalKm          int64
	TotalEarned      decimal.NullDecimal
	TotalCarbonSaved decimal.NullDecimal
}
