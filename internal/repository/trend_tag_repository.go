package repository

import (
	"context"

	"reel/internal/models"

	"github.com/jmoiron/sqlx"
)

const trendTagColumns = `tag_id, tag_name, description, usage_count, status, created_at, updated_at`

type trendTagRepository struct {
	db *sqlx.DB
}

func NewTrendTagRepository(db *sqlx.DB) TrendTagRepository {
	return &trendTagRepository{db: db}
}

func (r *trendTagRepository) Create(ctx context.Context, req models.CreateTrendTagRequest) (*models.TrendTag, error) {
	query := `
		INSERT INTO trend_tags (tag_name, description)
		VALUES (:tag_name, :description)
		RETURNING ` + trendTagColumns

	var tag models.TrendTag
	if err := namedGet(ctx, r.db, &tag, query, req); err != nil {
		return nil, wrapError("failed to create trend tag", err)
	}

	return &tag, nil
}

func (r *trendTagRepository) GetByID(ctx context.Context, tagID int64) (*models.TrendTag, error) {
	query := `SELECT ` + trendTagColumns + ` FROM trend_tags WHERE tag_id = ?`

	var tag models.TrendTag
	if err := getRebound(ctx, r.db, &tag, query, tagID); err != nil {
		return nil, wrapError("failed to get trend tag", err)
	}

	return &tag, nil
}

func (r *trendTagRepository) List(ctx context.Context, filter models.StatusFilter) ([]models.TrendTag, error) {
	var where whereClause
	where.in("status", filter.Statuses)

	query := `SELECT ` + trendTagColumns + ` FROM trend_tags` + where.String() + ` ORDER BY tag_name`

	tags := []models.TrendTag{}
	if err := selectWhere(ctx, r.db, &tags, query, where.args); err != nil {
		return nil, wrapError("failed to list trend tags", err)
	}

	return tags, nil
}

func (r *trendTagRepository) Trending(ctx context.Context, limit int) ([]models.TrendTag, error) {
	query := `
		SELECT ` + trendTagColumns + ` FROM trend_tags
		WHERE status = ?
		ORDER BY usage_count DESC, tag_name
		LIMIT ?`

	tags := []models.TrendTag{}
	if err := r.db.SelectContext(ctx, &tags, r.db.Rebind(query), models.StatusActive, limit); err != nil {
		return nil, wrapError("failed to list trending tags", err)
	}

	return tags, nil
}

func (r *trendTagRepository) Update(ctx context.Context, tagID int64, req models.UpdateTrendTagRequest) (*models.TrendTag, error) {
	query := `
		UPDATE trend_tags SET
			tag_name = COALESCE(?, tag_name),
			description = COALESCE(?, description),
			status = COALESCE(?, status),
			updated_at = CURRENT_TIMESTAMP
		WHERE tag_id = ?
		RETURNING ` + trendTagColumns

	var tag models.TrendTag
	if err := getRebound(ctx, r.db, &tag, query, req.TagName, req.Description, req.Status, tagID); err != nil {
		return nil, wrapError("failed to update trend tag", err)
	}

	return &tag, nil
}

func (r *trendTagRepository) Archive(ctx context.Context, tagID int64) error {
	query := `UPDATE trend_tags SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE tag_id = ?`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), models.StatusArchived, tagID)
	if err != nil {
		return wrapError("failed to archive trend tag", err)
	}

	return checkAffected("failed to archive trend tag", result)
}
