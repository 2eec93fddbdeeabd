package service

import (
	"context"
	"database/sql"
	"errors"
	"runtime"
	"time"

	"reel/internal/logging"
	"reel/internal/models"
	"reel/internal/repository"
	"reel/internal/storage"
)

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"

	storageDisabled    = "disabled"
	storageUnavailable = "unavailable"
)

// DBPinger is satisfied by *sql.DB and everything embedding it.
type DBPinger interface {
	Stats() sql.DBStats
	PingContext(ctx context.Context) error
}

type SystemService interface {
	Metrics(ctx context.Context) (*models.SystemMetrics, error)
	Health(ctx context.Context) error
}

type systemService struct {
	db         DBPinger
	driver     string
	tablesRepo repository.TablesRepository
	storage    storage.Storage
	startedAt  time.Time
}

func NewSystemService(db DBPinger, driver string, tablesRepo repository.TablesRepository, storage storage.Storage) SystemService {
	return &systemService{
		db:         db,
		driver:     driver,
		tablesRepo: tablesRepo,
		storage:    storage,
		startedAt:  time.Now(),
	}
}

func (s *systemService) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Metrics never fails on a sick dependency; it reports status degraded instead.
func (s *systemService) Metrics(ctx context.Context) (*models.SystemMetrics, error) {
	stats := s.db.Stats()

	result := &models.SystemMetrics{
		Status:        StatusOK,
		UptimeSeconds: int64(time.Since(s.startedAt).Seconds()),
		Goroutines:    runtime.NumGoroutine(),
		Database: models.DatabaseMetrics{
			Driver:          s.driver,
			OpenConnections: stats.OpenConnections,
			InUse:           stats.InUse,
			Idle:            stats.Idle,
			WaitCount:       stats.WaitCount,
		},
		Tables:  map[string]int64{},
		Storage: s.storageStatus(ctx),
	}

	start := time.Now()
	if err := s.db.PingContext(ctx); err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("database ping failed")
		result.Status = StatusDegraded
		result.Database.Error = err.Error()
		return result, nil
	}
	result.Database.PingMillis = time.Since(start).Milliseconds()

	counts, err := s.tablesRepo.CountRows(ctx)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("failed to count table rows")
		result.Status = StatusDegraded
		result.Database.Error = err.Error()
	} else {
		result.Tables = counts
	}

	return result, nil
}

func (s *systemService) storageStatus(ctx context.Context) string {
	err := s.storage.Ping(ctx)
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, storage.ErrStorageDisabled):
		return storageDisabled
	default:
		logging.Ctx(ctx).Warn().Err(err).Msg("object storage ping failed")
		return storageUnavailable
	}
}
