package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"reel/internal/models"

	"github.com/jmoiron/sqlx"
)

const interactionColumns = `interaction_id, post_id, user_id, interaction_type, comment_text, created_at`

type interactionRepository struct {
	db *sqlx.DB
}

func NewInteractionRepository(db *sqlx.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

// Create refuses posts that are missing or soft deleted; nothing is inserted for them.
func (r *interactionRepository) Create(ctx context.Context, req models.CreateInteractionRequest) (*models.PostInteraction, error) {
	query := `
		INSERT INTO post_interactions (post_id, user_id, interaction_type, comment_text)
		SELECT CAST(:post_id AS INTEGER), CAST(:user_id AS INTEGER),
			CAST(:interaction_type AS VARCHAR(16)), CAST(:comment_text AS TEXT)
		WHERE EXISTS (SELECT 1 FROM posts WHERE post_id = :post_id AND NOT is_deleted)
		RETURNING ` + interactionColumns

	var interaction models.PostInteraction
	if err := namedGet(ctx, r.db, &interaction, query, req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to create interaction: %w", ErrInvalidReference)
		}
		return nil, wrapError("failed to create interaction", err)
	}

	return &interaction, nil
}

func (r *interactionRepository) List(ctx context.Context, filter models.InteractionFilter) ([]models.PostInteraction, error) {
	var where whereClause
	where.eqID("post_id", filter.PostID)
	where.eqID("user_id", filter.UserID)

	query := `SELECT ` + interactionColumns + ` FROM post_interactions` + where.String() +
		` ORDER BY created_at DESC, interaction_id DESC`

	interactions := []models.PostInteraction{}
	if err := selectWhere(ctx, r.db, &interactions, query, where.args); err != nil {
		return nil, wrapError("failed to list interactions", err)
	}

	return interactions, nil
}

func (r *interactionRepository) Delete(ctx context.Context, interactionID int64) error {
	query := `DELETE FROM post_interactions WHERE interaction_id = ?`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), interactionID)
	if err != nil {
		return wrapError("failed to delete interaction", err)
	}

	return checkAffected("failed to delete interaction", result)
}
