package repository

import (
	"context"

	"reel/internal/models"

	"github.com/jmoiron/sqlx"
)

const kpiColumns = `kpi_id, kpi_name, formula, status, created_at, updated_at`

type kpiRepository struct {
	db *sqlx.DB
}

func NewKPIRepository(db *sqlx.DB) KPIRepository {
	return &kpiRepository{db: db}
}

func (r *kpiRepository) Create(ctx context.Context, req models.CreateKPIRequest) (*models.KPI, error) {
	query := `
		INSERT INTO kpis (kpi_name, formula)
		VALUES (:kpi_name, :formula)
		RETURNING ` + kpiColumns

	var kpi models.KPI
	if err := namedGet(ctx, r.db, &kpi, query, req); err != nil {
		return nil, wrapError("failed to create kpi", err)
	}

	return &kpi, nil
}

func (r *kpiRepository) GetByID(ctx context.Context, kpiID int64) (*models.KPI, error) {
	query := `SELECT ` + kpiColumns + ` FROM kpis WHERE kpi_id = ?`

	var kpi models.KPI
	if err := getRebound(ctx, r.db, &kpi, query, kpiID); err != nil {
		return nil, wrapError("failed to get kpi", err)
	}

	return &kpi, nil
}

func (r *kpiRepository) List(ctx context.Context, filter models.StatusFilter) ([]models.KPI, error) {
	var where whereClause
	where.in("status", filter.Statuses)

	query := `SELECT ` + kpiColumns + ` FROM kpis` + where.String() + ` ORDER BY kpi_name`

	kpis := []models.KPI{}
	if err := selectWhere(ctx, r.db, &kpis, query, where.args); err != nil {
		return nil, wrapError("failed to list kpis", err)
	}

	return kpis, nil
}

func (r *kpiRepository) Update(ctx context.Context, kpiID int64, req models.UpdateKPIRequest) (*models.KPI, error) {
	query := `
		UPDATE kpis SET
			kpi_name = COALESCE(?, kpi_name),
			formula = COALESCE(?, formula),
			status = COALESCE(?, status),
			updated_at = CURRENT_TIMESTAMP
		WHERE kpi_id = ?
		RETURNING ` + kpiColumns

	var kpi models.KPI
	if err := getRebound(ctx, r.db, &kpi, query, req.KPIName, req.Formula, req.Status, kpiID); err != nil {
		return nil, wrapError("failed to update kpi", err)
	}

	return &kpi, nil
}

func (r *kpiRepository) Archive(ctx context.Context, kpiID int64) error {
	query := `UPDATE kpis SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE kpi_id = ?`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), models.StatusArchived, kpiID)
	if err != nil {
		return wrapError("failed to archive kpi", err)
	}

	return checkAffected("failed to archive kpi", result)
}
