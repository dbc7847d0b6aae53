package upload

import (
	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/media"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/usecase"
)

// Service implements the odometer upload and reward pipeline
type Service struct {
	userRepo     persistence.UserRepository
	uploadRepo   persistence.UploadRepository
	statsCache   persistence.StatsCache
	processor    media.ImageProcessor
	images       media.ImageStore
	odometer     media.OdometerReader
	validator    *UploadValidator
	idempotency  *IdempotencyHandler
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// Dependencies groups the collaborators of the upload pipeline
type Dependencies struct {
	UserRepo     persistence.UserRepository
	UploadRepo   persistence.UploadRepository
	StatsCache   persistence.StatsCache
	Processor    media.ImageProcessor
	Images       media.ImageStore
	Odometer     media.OdometerReader
	TimeProvider coreport.TimeProvider
	Logger       coreport.Logger
}

// NewUploadService creates the upload use case
func NewUploadService(deps Dependencies) usecase.UploadUseCase {
	return &Service{
		userRepo:     deps.UserRepo,
		uploadRepo:   deps.UploadRepo,
		statsCache:   deps.StatsCache,
		processor:    deps.Processor,
		images:       deps.Images,
		odometer:     deps.Odometer,
		validator:    NewUploadValidator(),
		idempotency:  NewIdempotencyHandler(deps.UploadRepo),
		timeProvider: deps.TimeProvider,
		logger:       deps.Logger,
	}
}
