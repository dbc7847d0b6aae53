package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AddRCImageToUsers adds the registration certificate reference to users
// created by the 1.0.0 schema
type AddRCImageToUsers struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAddRCImageToUsers creates a new migration instance
func NewAddRCImageToUsers(db *gorm.DB, logger coreport.Logger) *AddRCImageToUsers {
	return &AddRCImageToUsers{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration; it is a no-op when the column exists
func (m *AddRCImageToUsers) Run(ctx context.Context) error {
	migrator := m.db.WithContext(ctx).Migrator()
	if migrator.HasColumn(&model.User{}, "RCImageID") {
		return nil
	}

	m.logger.Info("Adding rc_image_id column to users table", nil)
	if err := migrator.AddColumn(&model.User{}, "RCImageID"); err != nil {
		m.logger.Error("Failed to add rc_image_id column", map[string]any{"error": err.Error()})
		return err
	}
	return nil
}
