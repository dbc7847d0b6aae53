package main

import (
	"context"
	"flag"
	"log"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/config"
)

// migrate applies the schema to the configured database without starting
// the HTTP server.
func main() {
	versionOnly := flag.Bool("version", false, "print the applied schema version and exit")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Storage.Backend != "database" {
		log.Fatalf("Storage backend %q has no schema to migrate", cfg.Storage.Backend)
	}

	appLogger := logger.NewZapLogger(logger.Options{Level: cfg.Logger.Level})
	defer appLogger.Flush()

	tp := timeProvider.NewRealTimeProvider()
	ctx := context.Background()

	manager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp)
	db, err := manager.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer manager.Close()

	migrations := migration.NewMigrationManager(db, appLogger, tp)
	if !*versionOnly {
		if err := migrations.MigrateAll(ctx); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
	}

	version, err := migrations.GetCurrentVersion(ctx)
	if err != nil {
		log.Fatalf("Failed to read schema version: %v", err)
	}
	appLogger.Info("Schema is up to date", map[string]any{"version": version})
}
