package repository

import (
	"context"

	"reel/internal/models"

	"github.com/jmoiron/sqlx"
)

const alertColumns = `alert_id, alert_type, severity, message, status, related_type, related_id, admin_notes, created_at, resolved_at`

type alertRepository struct {
	db *sqlx.DB
}

func NewAlertRepository(db *sqlx.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Create(ctx context.Context, req models.CreateAlertRequest) (*models.Alert, error) {
	if req.Severity == "" {
		req.Severity = models.SeverityInfo
	}

	query := `
		INSERT INTO alerts (alert_type, severity, message, related_type, related_id)
		VALUES (:alert_type, :severity, :message, :related_type, :related_id)
		RETURNING ` + alertColumns

	var alert models.Alert
	if err := namedGet(ctx, r.db, &alert, query, req); err != nil {
		return nil, wrapError("failed to create alert", err)
	}

	return &alert, nil
}

func (r *alertRepository) GetByID(ctx context.Context, alertID int64) (*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE alert_id = ?`

	var alert models.Alert
	if err := getRebound(ctx, r.db, &alert, query, alertID); err != nil {
		return nil, wrapError("failed to get alert", err)
	}

	return &alert, nil
}

func (r *alertRepository) List(ctx context.Context, filter models.AlertFilter) ([]models.Alert, error) {
	var where whereClause
	where.in("status", filter.Statuses)
	where.eq("alert_type", filter.AlertType)
	if filter.ExcludeResolved {
		where.add("status <> ?", models.AlertResolved)
	}

	query := `SELECT ` + alertColumns + ` FROM alerts` + where.String() + ` ORDER BY created_at DESC, alert_id DESC`

	alerts := []models.Alert{}
	if err := selectWhere(ctx, r.db, &alerts, query, where.args); err != nil {
		return nil, wrapError("failed to list alerts", err)
	}

	return alerts, nil
}

func (r *alertRepository) Update(ctx context.Context, alertID int64, req models.UpdateAlertRequest) (*models.Alert, error) {
	query := `
		UPDATE alerts SET
			status = COALESCE(?, status),
			severity = COALESCE(?, severity),
			admin_notes = COALESCE(?, admin_notes),
			resolved_at = CASE
				WHEN ? = 'resolved' AND status <> 'resolved' THEN CURRENT_TIMESTAMP
				WHEN ? IN ('open', 'acknowledged') THEN NULL
				ELSE resolved_at
			END
		WHERE alert_id = ?
		RETURNING ` + alertColumns

	var alert models.Alert
	err := getRebound(ctx, r.db, &alert, query,
		req.Status, req.Severity, req.AdminNotes, req.Status, req.Status, alertID)
	if err != nil {
		return nil, wrapError("failed to update alert", err)
	}

	return &alert, nil
}

func (r *alertRepository) Delete(ctx context.Context, alertID int64) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM alerts WHERE alert_id = ?`), alertID)
	if err != nil {
		return wrapError("failed to delete alert", err)
	}

	return checkAffected("failed to delete alert", result)
}
