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

// UserRepository implements the UserRepository port using GORM
type UserRepository struct {
	manager      *database.Manager
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *database.ErrorMapper
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(manager *database.Manager, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		manager:      manager,
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  manager.ErrorMapper(),
	}
}

// handleDatabaseError logs unexpected failures and maps them to domain errors
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorMapper.MapError(err, database.EntityTypeUser)
	if errs.IsClientError(mapped) {
		return mapped
	}

	logFields := map[string]any{"operation": operation, "error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}
	r.logger.Error("Database error on users", logFields)
	return mapped
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id uint64) (*entity.User, error) {
	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	var userModel model.User
	if err := r.manager.DB().WithContext(ctx).First(&userModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("get_user_by_id", err, map[string]any{"user_id": id})
	}
	return userModelToEntity(&userModel), nil
}

// GetUserByEmail retrieves a user by normalised email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	var userModel model.User
	err := r.manager.DB().WithContext(ctx).
		Where("email = ?", entity.NormalizeEmail(email)).
		Take(&userModel).Error
	if err != nil {
		return nil, r.handleDatabaseError("get_user_by_email", err, map[string]any{"email": email})
	}
	return userModelToEntity(&userModel), nil
}

// CreateUser inserts the user with an empty wallet. The unique email index
// decides concurrent enrolments.
func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	userModel := userEntityToModel(user)
	userModel.ID = 0
	if userModel.CreatedAt.IsZero() {
		userModel.CreatedAt = r.timeProvider.Now()
	}
	userModel.UpdatedAt = userModel.CreatedAt

	if err := r.manager.DB().WithContext(ctx).Create(&userModel).Error; err != nil {
		mapped := r.handleDatabaseError("create_user", err, map[string]any{"email": userModel.Email})
		if errors.Is(mapped, errs.ErrDuplicateUser) {
			return nil, errs.NewDuplicateUserError(userModel.Email)
		}
		return nil, mapped
	}

	r.logger.Debug("User row inserted", map[string]any{
		"user_id": userModel.ID,
	})
	return userModelToEntity(&userModel), nil
}

// UpdateUser merges the update into the locked user row
func (r *UserRepository) UpdateUser(ctx context.Context, id uint64, update entity.UserUpdate) (*entity.User, error) {
	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	var updated *entity.User

	err := r.manager.Transactor().InTransaction(ctx, "update_user", func(tx *gorm.DB) error {
		var userModel model.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&userModel, id).Error; err != nil {
			return err
		}

		user := userModelToEntity(&userModel)
		update.Apply(user, r.timeProvider.Now())

		if err := tx.Model(&model.User{}).Where("id = ?", id).Updates(map[string]any{
			"name":         user.Name,
			"vehicle_type": string(user.VehicleType),
			"rc_image_id":  user.RCImageID,
			"updated_at":   user.UpdatedAt,
		}).Error; err != nil {
			return err
		}

		updated = user
		return nil
	})
	if err != nil {
		return nil, r.handleDatabaseError("update_user", err, map[string]any{"user_id": id})
	}

	return updated, nil
}
