package app

import (
	"context"
	"fmt"

	"reel/internal/config"
	"reel/internal/database"
	"reel/internal/logging"
	"reel/internal/metrics"
	"reel/internal/repository"
	"reel/internal/service"
	"reel/internal/storage"
)

// App connects the database and object storage and wires repositories into services.
func App(ctx context.Context, cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, error) {
	// connection DB
	db, err := database.ConnectDB(ctx, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := metrics.RegisterDBStats(db.DB.DB, cfg.DB.DbNAME); err != nil {
		logging.Warn().Err(err).Msg("database pool metrics disabled")
	}

	// connection MinIO
	mediaStorage, err := storage.NewStorage(ctx, cfg.MinIO)
	if err != nil {
		db.CloseDB()
		return nil, nil, nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}
	if !cfg.MinIO.Enabled {
		logging.Info().Msg("object storage disabled, media uploads will be rejected")
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg, mediaStorage, db)

	return db, repo, services, nil
}
