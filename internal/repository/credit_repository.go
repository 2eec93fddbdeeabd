package repository

import (
	"context"

	"reel/internal/models"

	"github.com/jmoiron/sqlx"
)

const creditColumns = `credit_id, project_id, user_id, role, verified, created_at`

type creditRepository struct {
	db *sqlx.DB
}

func NewCreditRepository(db *sqlx.DB) CreditRepository {
	return &creditRepository{db: db}
}

func (r *creditRepository) Create(ctx context.Context, req models.CreateCreditRequest) (*models.ProjectCredit, error) {
	query := `
		INSERT INTO project_credits (project_id, user_id, role, verified)
		VALUES (:project_id, :user_id, :role, :verified)
		RETURNING ` + creditColumns

	var credit models.ProjectCredit
	if err := namedGet(ctx, r.db, &credit, query, req); err != nil {
		return nil, wrapError("failed to create credit", err)
	}

	return &credit, nil
}

func (r *creditRepository) List(ctx context.Context, filter models.CreditFilter) ([]models.ProjectCredit, error) {
	var where whereClause
	where.eqID("project_id", filter.ProjectID)
	where.eqID("user_id", filter.UserID)

	query := `SELECT ` + creditColumns + ` FROM project_credits` + where.String() + ` ORDER BY created_at DESC, credit_id DESC`

	credits := []models.ProjectCredit{}
	if err := selectWhere(ctx, r.db, &credits, query, where.args); err != nil {
		return nil, wrapError("failed to list credits", err)
	}

	return credits, nil
}

func (r *creditRepository) Update(ctx context.Context, creditID int64, req models.UpdateCreditRequest) (*models.ProjectCredit, error) {
	query := `
		UPDATE project_credits SET
			role = COALESCE(?, role),
			verified = COALESCE(?, verified)
		WHERE credit_id = ?
		RETURNING ` + creditColumns

	var credit models.ProjectCredit
	if err := getRebound(ctx, r.db, &credit, query, req.Role, req.Verified, creditID); err != nil {
		return nil, wrapError("failed to update credit", err)
	}

	return &credit, nil
}

func (r *creditRepository) Delete(ctx context.Context, creditID int64) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM project_credits WHERE credit_id = ?`), creditID)
	if err != nil {
		return wrapError("failed to delete credit", err)
	}

	return checkAffected("failed to delete credit", result)
}
