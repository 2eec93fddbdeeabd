package repository

import (
	"context"

	"reel/internal/models"

	"github.com/jmoiron/sqlx"
)

const insightColumns = `insight_id, creator_id, title, summary, metric_name, metric_value, created_at, updated_at`

type insightRepository struct {
	db *sqlx.DB
}

func NewInsightRepository(db *sqlx.DB) InsightRepository {
	return &insightRepository{db: db}
}

func (r *insightRepository) Create(ctx context.Context, req models.CreateInsightRequest) (*models.InsightReport, error) {
	query := `
		INSERT INTO insight_reports (creator_id, title, summary, metric_name, metric_value)
		VALUES (:creator_id, :title, :summary, :metric_name, :metric_value)
		RETURNING ` + insightColumns

	var insight models.InsightReport
	if err := namedGet(ctx, r.db, &insight, query, req); err != nil {
		return nil, wrapError("failed to create insight", err)
	}

	return &insight, nil
}

func (r *insightRepository) GetByID(ctx context.Context, insightID int64) (*models.InsightReport, error) {
	query := `SELECT ` + insightColumns + ` FROM insight_reports WHERE insight_id = ?`

	var insight models.InsightReport
	if err := getRebound(ctx, r.db, &insight, query, insightID); err != nil {
		return nil, wrapError("failed to get insight", err)
	}

	return &insight, nil
}

func (r *insightRepository) List(ctx context.Context, filter models.InsightFilter) ([]models.InsightReport, error) {
	var where whereClause
	where.eqID("creator_id", filter.CreatorID)

	query := `SELECT ` + insightColumns + ` FROM insight_reports` + where.String() + ` ORDER BY created_at DESC, insight_id DESC`

	insights := []models.InsightReport{}
	if err := selectWhere(ctx, r.db, &insights, query, where.args); err != nil {
		return nil, wrapError("failed to list insights", err)
	}

	return insights, nil
}

func (r *insightRepository) Update(ctx context.Context, insightID int64, req models.UpdateInsightRequest) (*models.InsightReport, error) {
	query := `
		UPDATE insight_reports SET
			title = COALESCE(?, title),
			summary = COALESCE(?, summary),
			metric_name = COALESCE(?, metric_name),
			metric_value = COALESCE(?, metric_value),
			updated_at = CURRENT_TIMESTAMP
		WHERE insight_id = ?
		RETURNING ` + insightColumns

	var insight models.InsightReport
	err := getRebound(ctx, r.db, &insight, query, req.Title, req.Summary, req.MetricName, req.MetricValue, insightID)
	if err != nil {
		return nil, wrapError("failed to update insight", err)
	}

	return &insight, nil
}

func (r *insightRepository) Delete(ctx context.Context, insightID int64) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM insight_reports WHERE insight_id = ?`), insightID)
	if err != nil {
		return wrapError("failed to delete insight", err)
	}

	return checkAffected("failed to delete insight", result)
}
