package repository

import (
	"context"

	"reel/internal/models"

	"github.com/jmoiron/sqlx"
)

const mediaColumns = `media_id, project_id, media_url, media_type, caption, object_key, created_at`

type mediaRepository struct {
	db *sqlx.DB
}

func NewMediaRepository(db *sqlx.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, req models.CreateMediaRequest) (*models.ProjectMedia, error) {
	if req.MediaType == "" {
		req.MediaType = models.MediaImage
	}

	query := `
		INSERT INTO project_media (project_id, media_url, media_type, caption, object_key)
		VALUES (:project_id, :media_url, :media_type, :caption, :object_key)
		RETURNING ` + mediaColumns

	var media models.ProjectMedia
	if err := namedGet(ctx, r.db, &media, query, req); err != nil {
		return nil, wrapError("failed to create media", err)
	}

	return &media, nil
}

func (r *mediaRepository) GetByID(ctx context.Context, mediaID int64) (*models.ProjectMedia, error) {
	query := `SELECT ` + mediaColumns + ` FROM project_media WHERE media_id = ?`

	var media models.ProjectMedia
	if err := getRebound(ctx, r.db, &media, query, mediaID); err != nil {
		return nil, wrapError("failed to get media", err)
	}

	return &media, nil
}

func (r *mediaRepository) ListByProject(ctx context.Context, projectID int64) ([]models.ProjectMedia, error) {
	query := `SELECT ` + mediaColumns + ` FROM project_media WHERE project_id = ? ORDER BY created_at, media_id`

	media := []models.ProjectMedia{}
	if err := r.db.SelectContext(ctx, &media, r.db.Rebind(query), projectID); err != nil {
		return nil, wrapError("failed to list media", err)
	}

	return media, nil
}

func (r *mediaRepository) Delete(ctx context.Context, mediaID int64) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM project_media WHERE media_id = ?`), mediaID)
	if err != nil {
		return wrapError("failed to delete media", err)
	}

	return checkAffected("failed to delete media", result)
}
