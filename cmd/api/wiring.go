package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/identity"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/media"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/database"
	identityadapter "github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/identity"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/imagestore"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/odometer"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/config"
)

// newLogger builds the zap logger described by the logger section
func newLogger(cfg *config.Config) coreport.Logger {
	return logger.NewZapLogger(logger.Options{
		Production: cfg.Logger.Format == "json",
		Level:      cfg.Logger.Level,
		Output:     cfg.Logger.Output,
		File: logger.FileOptions{
			Path:       cfg.Logger.FilePath,
			MaxSizeMB:  cfg.Logger.MaxSizeMB,
			MaxBackups: cfg.Logger.MaxBackups,
			MaxAgeDays: cfg.Logger.MaxAgeDays,
			Compress:   cfg.Logger.Compress,
		},
	})
}

// storageBundle is the selected persistence backend. manager is nil for
// the memory backend.
type storageBundle struct {
	storage persistence.Storage
	manager *database.Manager
}

func (b storageBundle) poolMetrics() func() database.ConnectionPoolMetrics {
	if b.manager == nil {
		return nil
	}
	return b.manager.PoolMetrics
}

func newStorage(ctx context.Context, cfg *config.Config, log coreport.Logger, tp coreport.TimeProvider) (storageBundle, error) {
	if cfg.Storage.Backend == "memory" {
		log.Warn("Using in-memory storage; data is lost on restart", nil)
		return storageBundle{storage: repository.NewMemoryStorage(tp)}, nil
	}

	dbConfig := database.FromAppConfig(cfg)
	manager := database.NewManager(dbConfig, log, tp)
	if _, err := manager.Connect(ctx); err != nil {
		return storageBundle{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := manager.Migrate(ctx); err != nil {
			_ = manager.Close()
			return storageBundle{}, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return storageBundle{
		storage: repository.NewGormStorage(manager, tp, log),
		manager: manager,
	}, nil
}

func newImageStore(ctx context.Context, cfg *config.Config, log coreport.Logger) (media.ImageStore, error) {
	switch cfg.Images.Driver {
	case "s3":
		return imagestore.NewS3Store(ctx, imagestore.S3Options{
			Bucket:          cfg.Images.S3.Bucket,
			Region:          cfg.Images.S3.Region,
			Endpoint:        cfg.Images.S3.Endpoint,
			AccessKeyID:     cfg.Images.S3.AccessKeyID,
			SecretAccessKey: cfg.Images.S3.SecretAccessKey,
			UsePathStyle:    cfg.Images.S3.UsePathStyle,
		}, log)
	case "memory":
		return imagestore.NewMemoryStore(), nil
	default:
		return imagestore.NewLocalStore(cfg.Images.LocalDir, log)
	}
}

// newStatsCache returns the cache and a close func for its connection
func newStatsCache(ctx context.Context, cfg *config.Config, log coreport.Logger) (persistence.StatsCache, func() error, error) {
	if cfg.Cache.Backend != "redis" {
		return cache.NoopStatsCache{}, func() error { return nil }, nil
	}

	client, err := cache.Dial(ctx, cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
	if err != nil {
		return nil, nil, err
	}
	return cache.NewRedisStatsCache(client, cfg.Cache.TTL, log), client.Close, nil
}

// newVerifier returns nil when authentication is disabled
func newVerifier(ctx context.Context, cfg *config.Config, log coreport.Logger, tp coreport.TimeProvider) (identity.Verifier, error) {
	switch cfg.Auth.Provider {
	case "firebase":
		return identityadapter.NewFirebaseVerifier(ctx, cfg.Auth.FirebaseProjectID, cfg.Auth.FirebaseCredentialsFile, log)
	case "jwt":
		return identityadapter.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, tp), nil
	default:
		return nil, nil
	}
}

func newOdometerReader(cfg *config.Config, log coreport.Logger) media.OdometerReader {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return odometer.NewFilenameReader(cfg.Upload.OdometerMinKm, cfg.Upload.OdometerMaxKm, rng, log)
}
