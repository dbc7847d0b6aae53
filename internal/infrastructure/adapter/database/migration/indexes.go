package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// IndexManager creates indexes that cannot be expressed with model tags
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

type indexDef struct {
	name string
	sql  string
}

// upload listing is ordered by created_at then id, both descending
var uploadIndexes = []indexDef{
	{
		name: "idx_uploads_user_listing",
		sql:  "CREATE INDEX idx_uploads_user_listing ON uploads (user_id, created_at DESC, id DESC)",
	},
}

// CreateIndexes creates the missing indexes. Existence is checked through the
// migrator so the statements stay portable across drivers.
func (m *IndexManager) CreateIndexes(ctx context.Context) error {
	db := m.db.WithContext(ctx)
	for _, idx := range uploadIndexes {
		if db.Migrator().HasIndex(&model.Upload{}, idx.name) {
			continue
		}
		if err := db.Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}
	return nil
}

// ApplyPerformanceTweaks applies PostgreSQL specific tuning. Failures are logged only.
func (m *IndexManager) ApplyPerformanceTweaks(ctx context.Context) {
	if m.db.Dialector.Name() != "postgres" {
		return
	}

	tweaks := []indexDef{
		{
			name: "idx_uploads_created_at_brin",
			sql:  "CREATE INDEX IF NOT EXISTS idx_uploads_created_at_brin ON uploads USING BRIN (created_at) WITH (pages_per_range = 32)",
		},
		{
			name: "uploads_user_id_statistics",
			sql:  "ALTER TABLE uploads ALTER COLUMN user_id SET STATISTICS 1000",
		},
	}

	for _, tweak := range tweaks {
		if err := m.db.WithContext(ctx).Exec(tweak.sql).Error; err != nil {
			m.logger.Warn("Failed to apply PostgreSQL tweak", map[string]any{
				"tweak": tweak.name,
				"error": err.Error(),
			})
		}
	}
}
