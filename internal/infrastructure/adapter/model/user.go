package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents the database model for enrolled drivers
type User struct {
	ID            uint64          `gorm:"primaryKey;autoIncrement"`
	Email         string          `gorm:"uniqueIndex:idx_users_email;not null;size:255"`
	Name          string          `gorm:"not null;size:100"`
	VehicleType   string          `gorm:"not null;size:32"`
	RCImageID     *string         `gorm:"column:rc_image_id;size:512"`
	CarbonCredits decimal.Decimal `gorm:"type:decimal(12,6);not null;default:0"`
	Balance       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
