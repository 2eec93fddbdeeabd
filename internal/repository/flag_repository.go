package repository

import (
	"context"

	"reel/internal/models"

	"github.com/jmoiron/sqlx"
)

const flagColumns = `flag_id, related_type, related_id, reason, status, resolution_notes, created_at, resolved_at`

type flagRepository struct {
	db *sqlx.DB
}

func NewFlagRepository(db *sqlx.DB) FlagRepository {
	return &flagRepository{db: db}
}

func (r *flagRepository) Create(ctx context.Context, req models.CreateFlagRequest) (*models.FlaggedActivity, error) {
	if req.Status == "" {
		req.Status = models.FlagOpen
	}

	query := `
		INSERT INTO flagged_activities (related_type, related_id, reason, status)
		VALUES (:related_type, :related_id, :reason, :status)
		RETURNING ` + flagColumns

	var flag models.FlaggedActivity
	if err := namedGet(ctx, r.db, &flag, query, req); err != nil {
		return nil, wrapError("failed to create flag", err)
	}

	return &flag, nil
}

func (r *flagRepository) GetByID(ctx context.Context, flagID int64) (*models.FlaggedActivity, error) {
	query := `SELECT ` + flagColumns + ` FROM flagged_activities WHERE flag_id = ?`

	var flag models.FlaggedActivity
	if err := getRebound(ctx, r.db, &flag, query, flagID); err != nil {
		return nil, wrapError("failed to get flag", err)
	}

	return &flag, nil
}

func (r *flagRepository) List(ctx context.Context, filter models.FlagFilter) ([]models.FlaggedActivity, error) {
	var where whereClause
	where.in("status", filter.Statuses)
	where.eq("related_type", filter.RelatedType)

	query := `SELECT ` + flagColumns + ` FROM flagged_activities` + where.String() +
		` ORDER BY created_at DESC, flag_id DESC`

	flags := []models.FlaggedActivity{}
	if err := selectWhere(ctx, r.db, &flags, query, where.args); err != nil {
		return nil, wrapError("failed to list flags", err)
	}

	return flags, nil
}

// Update stamps resolved_at on the transition into resolved and clears it when a flag is reopened.
func (r *flagRepository) Update(ctx context.Context, flagID int64, req models.UpdateFlagRequest) (*models.FlaggedActivity, error) {
	query := `
		UPDATE flagged_activities SET
			status = COALESCE(?, status),
			reason = COALESCE(?, reason),
			resolution_notes = COALESCE(?, resolution_notes),
			resolved_at = CASE
				WHEN ? = 'resolved' AND status <> 'resolved' THEN CURRENT_TIMESTAMP
				WHEN ? IN ('open', 'in-review') THEN NULL
				ELSE resolved_at
			END
		WHERE flag_id = ?
		RETURNING ` + flagColumns

	var flag models.FlaggedActivity
	err := getRebound(ctx, r.db, &flag, query,
		req.Status, req.Reason, req.ResolutionNotes, req.Status, req.Status, flagID)
	if err != nil {
		return nil, wrapError("failed to update flag", err)
	}

	return &flag, nil
}

func (r *flagRepository) Delete(ctx context.Context, flagID int64) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM flagged_activities WHERE flag_id = ?`), flagID)
	if err != nil {
		return wrapError("failed to delete flag", err)
	}

	return checkAffected("failed to delete flag", result)
}
