package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const statsQuery = "COUNT(*) AS total_uploads, " +
	"COALESCE(SUM(estimated_km), 0) AS total_km, " +
	"SUM(reward_amount) AS total_earned, " +
	"SUM(carbon_saved_kg) AS total_carbon_saved"

// UploadRepository implements the UploadRepository port using GORM
type UploadRepository struct {
	manager      *database.Manager
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *database.ErrorMapper
}

// NewUploadRepository creates a new UploadRepository instance
func NewUploadRepository(manager *database.Manager, timeProvider coreport.TimeProvider, logger coreport.Logger) *UploadRepository {
	return &UploadRepository{
		manager:      manager,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  manager.ErrorMapper(),
	}
}

func (r *UploadRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	mapped := r.errorMapper.MapError(err, database.EntityTypeUpload)
	if errs.IsClientError(mapped) {
		return mapped
	}
	r.logger.Error("Database error on uploads", map[string]any{
		"operation": operation,
		"user_id":   userID,
		"error":     err.Error(),
	})
	return mapped
}

// CreateUpload inserts the upload and credits the owner inside one
// transaction. The owner's row is locked first so concurrent uploads for
// the same user apply their increments one after another.
func (r *UploadRepository) CreateUpload(ctx context.Context, upload *entity.Upload) (*entity.Upload, *entity.User, error) {
	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	var stored *entity.Upload
	var credited *entity.User

	_, err := r.manager.Metrics().Measure("create_upload", func() error {
		return r.manager.Transactor().InTransaction(ctx, "create_upload", func(tx *gorm.DB) error {
			var userModel model.User
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&userModel, upload.UserID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errs.ErrUserNotFound
				}
				return err
			}

			if upload.IdempotencyKey != nil {
				var existing model.Upload
				err := tx.Where("user_id = ? AND idempotency_key = ?", upload.UserID, *upload.IdempotencyKey).
					Take(&existing).Error
				if err == nil {
					return errs.NewDuplicateUploadError(*upload.IdempotencyKey, upload.UserID, existing.ID)
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
			}

			row := uploadEntityToModel(upload)
			if row.CreatedAt.IsZero() {
				row.CreatedAt = r.timeProvider.Now()
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}

			user := userModelToEntity(&userModel)
			user.ApplyReward(upload.Reward(), r.timeProvider.Now())

			if err := tx.Model(&model.User{}).Where("id = ?", user.ID).Updates(map[string]any{
				"balance":        user.Balance,
				"carbon_credits": user.CarbonCredits,
				"updated_at":     user.UpdatedAt,
			}).Error; err != nil {
				return err
			}

			stored = uploadModelToEntity(&row)
			credited = user
			return nil
		})
	})
	if err != nil {
		mapped := r.handleDatabaseError("create_upload", err, upload.UserID)
		if errors.Is(mapped, errs.ErrDuplicateUpload) && !errs.IsDuplicateUploadError(err) && upload.IdempotencyKey != nil {
			// lost the race on the unique index
			return nil, nil, errs.NewDuplicateUploadError(*upload.IdempotencyKey, upload.UserID, 0)
		}
		return nil, nil, mapped
	}

	return stored, credited, nil
}

// GetUploadByID retrieves a single upload
func (r *UploadRepository) GetUploadByID(ctx context.Context, id uint64) (*entity.Upload, error) {
	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	var row model.Upload
	if err := r.manager.DB().WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, r.handleDatabaseError("get_upload_by_id", err, 0)
	}
	return uploadModelToEntity(&row), nil
}

// GetUploadByIdempotencyKey finds the upload a user submitted under key
func (r *UploadRepository) GetUploadByIdempotencyKey(ctx context.Context, userID uint64, key string) (*entity.Upload, error) {
	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	var row model.Upload
	err := r.manager.DB().WithContext(ctx).
		Where("user_id = ? AND idempotency_key = ?", userID, key).
		Take(&row).Error
	if err != nil {
		return nil, r.handleDatabaseError("get_upload_by_idempotency_key", err, userID)
	}
	return uploadModelToEntity(&row), nil
}

// GetUploadsByUserID lists the user's uploads newest first
func (r *UploadRepository) GetUploadsByUserID(ctx context.Context, userID uint64) ([]*entity.Upload, error) {
	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	var rows []model.Upload
	err := r.manager.DB().WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("get_uploads_by_user_id", err, userID)
	}

	uploads := make([]*entity.Upload, 0, len(rows))
	for i := range rows {
		uploads = append(uploads, uploadModelToEntity(&rows[i]))
	}
	return uploads, nil
}

// GetUserStats aggregates the user's uploads in a single statement
func (r *UploadRepository) GetUserStats(ctx context.Context, userID uint64) (entity.UserStats, error) {
	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	var totals model.UploadTotals
	_, err := r.manager.Metrics().Measure("get_user_stats", func() error {
		return r.manager.DB().WithContext(ctx).
			Model(&model.Upload{}).
			Select(statsQuery).
			Where("user_id = ?", userID).
			Scan(&totals).Error
	})
	if err != nil {
		return entity.UserStats{}, r.handleDatabaseError("get_user_stats", err, userID)
	}
	return totalsToStats(totals), nil
}
