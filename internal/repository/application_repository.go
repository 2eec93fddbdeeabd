package repository

import (
	"context"

	"reel/internal/models"

	"github.com/jmoiron/sqlx"
)

const applicationColumns = `application_id, user_id, applicant_name, email, portfolio_url, status, admin_notes, submitted_at, last_updated_at`

type applicationRepository struct {
	db *sqlx.DB
}

func NewApplicationRepository(db *sqlx.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, req models.CreateApplicationRequest) (*models.Application, error) {
	if req.Status == "" {
		req.Status = models.ApplicationPending
	}

	query := `
		INSERT INTO applications (user_id, applicant_name, email, portfolio_url, status, admin_notes)
		VALUES (:user_id, :applicant_name, :email, :portfolio_url, :status, :admin_notes)
		RETURNING ` + applicationColumns

	var application models.Application
	if err := namedGet(ctx, r.db, &application, query, req); err != nil {
		return nil, wrapError("failed to create application", err)
	}

	return &application, nil
}

func (r *applicationRepository) GetByID(ctx context.Context, applicationID int64) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE application_id = ?`

	var application models.Application
	if err := getRebound(ctx, r.db, &application, query, applicationID); err != nil {
		return nil, wrapError("failed to get application", err)
	}

	return &application, nil
}

func (r *applicationRepository) List(ctx context.Context, filter models.ApplicationFilter) ([]models.Application, error) {
	var where whereClause
	where.in("status", filter.Statuses)

	query := `SELECT ` + applicationColumns + ` FROM applications` + where.String() +
		` ORDER BY submitted_at DESC, application_id DESC`

	applications := []models.Application{}
	if err := selectWhere(ctx, r.db, &applications, query, where.args); err != nil {
		return nil, wrapError("failed to list applications", err)
	}

	return applications, nil
}

func (r *applicationRepository) Update(ctx context.Context, applicationID int64, req models.UpdateApplicationRequest) (*models.Application, error) {
	query := `
		UPDATE applications SET
			status = COALESCE(?, status),
			admin_notes = COALESCE(?, admin_notes),
			last_updated_at = CURRENT_TIMESTAMP
		WHERE application_id = ?
		RETURNING ` + applicationColumns

	var application models.Application
	err := getRebound(ctx, r.db, &application, query, req.Status, req.AdminNotes, applicationID)
	if err != nil {
		return nil, wrapError("failed to update application", err)
	}

	return &application, nil
}

func (r *applicationRepository) Delete(ctx context.Context, applicationID int64) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM applications WHERE application_id = ?`), applicationID)
	if err != nil {
		return wrapError("failed to delete application", err)
	}

	return checkAffected("failed to delete application", result)
}
