package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/usecase"
	uploadUseCase "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/usecase/upload"
	userUseCase "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/usecase/user"
	walletUseCase "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/usecase/wallet"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/imageproc"
	timeProvider "github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	gin.SetMode(cfg.Server.Mode)

	appLogger := newLogger(cfg)
	defer appLogger.Flush()

	tp := timeProvider.NewRealTimeProvider()
	ctx := context.Background()

	// Storage backend
	bundle, err := newStorage(ctx, cfg, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to initialise storage", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer bundle.storage.Close()

	images, err := newImageStore(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialise image store", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	statsCache, closeCache, err := newStatsCache(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialise stats cache", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer closeCache()

	verifier, err := newVerifier(ctx, cfg, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to initialise identity verifier", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	processor := imageproc.NewProcessor(imageproc.Options{
		MaxBytes:     cfg.Upload.MaxImageBytes,
		MaxPixels:    cfg.Upload.MaxPixels,
		MaxDimension: cfg.Upload.MaxDimension,
		JPEGQuality:  cfg.Upload.JPEGQuality,
	})

	// Initialize use cases
	users := userUseCase.NewUserUseCase(bundle.storage, images, processor, tp, appLogger)
	uploads := uploadUseCase.NewUploadService(uploadUseCase.Dependencies{
		UserRepo:     bundle.storage,
		UploadRepo:   bundle.storage,
		StatsCache:   statsCache,
		Processor:    processor,
		Images:       images,
		Odometer:     newOdometerReader(cfg, appLogger),
		TimeProvider: tp,
		Logger:       appLogger,
	})
	wallet := walletUseCase.NewWalletUseCase(bundle.storage, uploads, tp, appLogger)

	if cfg.Seed.Enabled {
		err := migration.CreateDefaultUsers(ctx, users, []usecase.CreateUserRequest{{
			Email:       cfg.Seed.Email,
			Name:        cfg.Seed.Name,
			VehicleType: cfg.Seed.VehicleType,
		}})
		if err != nil {
			appLogger.Error("Failed to create default users", map[string]any{"error": err.Error()})
		}
	}

	// Initialize Gin router
	if err := middleware.RegisterValidations(); err != nil {
		appLogger.Error("Failed to register validators", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	router := gin.New()
	router.MaxMultipartMemory = cfg.Upload.MaxImageBytes
	routes.SetupMiddlewares(router, cfg.CORS, appLogger, tp)
	routes.SetupRoutes(router, routes.Handlers{
		User:   handler.NewUserHandler(users, cfg.Upload.MaxImageBytes, appLogger),
		Upload: handler.NewUploadHandler(uploads, cfg.Upload.MaxImageBytes, appLogger),
		Wallet: handler.NewWalletHandler(wallet, appLogger),
		Health: handler.NewHealthHandler(bundle.storage, cfg.Storage.Backend, bundle.poolMetrics(), appLogger),
	}, routes.Options{
		Verifier:     verifier,
		RateLimit:    cfg.RateLimit,
		TimeProvider: tp,
		Logger:       appLogger,
	})

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"address": server.Addr,
			"env":     cfg.Environment,
			"storage": cfg.Storage.Backend,
			"images":  cfg.Images.Driver,
			"auth":    cfg.Auth.Provider,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		appLogger.Error("Server failed", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := tp.WithTimeout(ctx, coreport.Duration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited gracefully", nil)
}
