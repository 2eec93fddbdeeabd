package repository

import (
	"context"
	"fmt"

	"reel/internal/models"

	"github.com/jmoiron/sqlx"
)

const postColumns = `post_id, user_id, caption, media_url, tags, visibility, is_deleted, created_at, updated_at`

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, req models.CreatePostRequest, tagNames []string) (*models.Post, error) {
	if req.Visibility == "" {
		req.Visibility = models.VisibilityPublic
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin post transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO posts (user_id, caption, media_url, tags, visibility)
		VALUES (:user_id, :caption, :media_url, :tags, :visibility)
		RETURNING ` + postColumns

	var post models.Post
	if err := namedGet(ctx, tx, &post, query, req); err != nil {
		return nil, wrapError("failed to create post", err)
	}

	if len(tagNames) > 0 {
		bump, args, err := sqlx.In(`
			UPDATE trend_tags SET
				usage_count = usage_count + 1,
				updated_at = CURRENT_TIMESTAMP
			WHERE status = ? AND LOWER(tag_name) IN (?)`,
			models.StatusActive, tagNames)
		if err != nil {
			return nil, fmt.Errorf("failed to build tag usage update: %w", err)
		}

		if _, err := tx.ExecContext(ctx, tx.Rebind(bump), args...); err != nil {
			return nil, wrapError("failed to update tag usage", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit post: %w", err)
	}

	return &post, nil
}

func (r *postRepository) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE post_id = ? AND is_deleted = ?`

	var post models.Post
	if err := getRebound(ctx, r.db, &post, query, postID, false); err != nil {
		return nil, wrapError("failed to get post", err)
	}

	return &post, nil
}

func (r *postRepository) List(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	var where whereClause
	where.add("is_deleted = ?", false)
	where.eqID("user_id", filter.UserID)
	where.eq("visibility", filter.Visibility)

	query := `SELECT ` + postColumns + ` FROM posts` + where.String() + ` ORDER BY created_at DESC, post_id DESC`

	posts := []models.Post{}
	if err := selectWhere(ctx, r.db, &posts, query, where.args); err != nil {
		return nil, wrapError("failed to list posts", err)
	}

	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, postID int64, req models.UpdatePostRequest) (*models.Post, error) {
	query := `
		UPDATE posts SET
			caption = COALESCE(?, caption),
			media_url = COALESCE(?, media_url),
			tags = COALESCE(?, tags),
			visibility = COALESCE(?, visibility),
			updated_at = CURRENT_TIMESTAMP
		WHERE post_id = ? AND is_deleted = ?
		RETURNING ` + postColumns

	var post models.Post
	err := getRebound(ctx, r.db, &post, query, req.Caption, req.MediaURL, req.Tags, req.Visibility, postID, false)
	if err != nil {
		return nil, wrapError("failed to update post", err)
	}

	return &post, nil
}

func (r *postRepository) SoftDelete(ctx context.Context, postID int64) error {
	query := `UPDATE posts SET is_deleted = ?, updated_at = CURRENT_TIMESTAMP WHERE post_id = ? AND is_deleted = ?`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), true, postID, false)
	if err != nil {
		return wrapError("failed to delete post", err)
	}

	return checkAffected("failed to delete post", result)
}
