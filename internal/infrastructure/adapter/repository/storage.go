package repository

import (
	"context"

	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/database"
)

// GormStorage is the database backed Storage
type GormStorage struct {
	*UserRepository
	*UploadRepository
	manager *database.Manager
}

var _ persistence.Storage = (*GormStorage)(nil)

// NewGormStorage builds the storage on a connected manager
func NewGormStorage(manager *database.Manager, timeProvider coreport.TimeProvider, logger coreport.Logger) *GormStorage {
	return &GormStorage{
		UserRepository:   NewUserRepository(manager, timeProvider, logger),
		UploadRepository: NewUploadRepository(manager, timeProvider, logger),
		manager:          manager,
	}
}

// Ping checks that the database answers
func (s *GormStorage) Ping(ctx context.Context) error {
	return s.manager.Ping(ctx)
}

// Close releases the database connection
func (s *GormStorage) Close() error {
	return s.manager.Close()
}
