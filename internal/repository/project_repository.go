package repository

import (
	"context"

	"reel/internal/models"

	"github.com/jmoiron/sqlx"
)

const projectColumns = `project_id, portfolio_id, title, description, tags, visibility, is_archived, created_at, updated_at`

type projectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error) {
	if req.Visibility == "" {
		req.Visibility = models.VisibilityPublic
	}

	query := `
		INSERT INTO projects (portfolio_id, title, description, tags, visibility)
		VALUES (:portfolio_id, :title, :description, :tags, :visibility)
		RETURNING ` + projectColumns

	var project models.Project
	if err := namedGet(ctx, r.db, &project, query, req); err != nil {
		return nil, wrapError("failed to create project", err)
	}

	return &project, nil
}

func (r *projectRepository) GetByID(ctx context.Context, projectID int64) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = ?`

	var project models.Project
	if err := getRebound(ctx, r.db, &project, query, projectID); err != nil {
		return nil, wrapError("failed to get project", err)
	}

	return &project, nil
}

func (r *projectRepository) List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	var where whereClause
	where.eqID("portfolio_id", filter.PortfolioID)
	where.eq("visibility", filter.Visibility)
	if !filter.IncludeArchived {
		where.add("is_archived = ?", false)
	}

	query := `SELECT ` + projectColumns + ` FROM projects` + where.String() + ` ORDER BY created_at DESC, project_id DESC`

	projects := []models.Project{}
	if err := selectWhere(ctx, r.db, &projects, query, where.args); err != nil {
		return nil, wrapError("failed to list projects", err)
	}

	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, projectID int64, req models.UpdateProjectRequest) (*models.Project, error) {
	query := `
		UPDATE projects SET
			title = COALESCE(?, title),
			description = COALESCE(?, description),
			tags = COALESCE(?, tags),
			visibility = COALESCE(?, visibility),
			updated_at = CURRENT_TIMESTAMP
		WHERE project_id = ?
		RETURNING ` + projectColumns

	var project models.Project
	err := getRebound(ctx, r.db, &project, query, req.Title, req.Description, req.Tags, req.Visibility, projectID)
	if err != nil {
		return nil, wrapError("failed to update project", err)
	}

	return &project, nil
}

func (r *projectRepository) Archive(ctx context.Context, projectID int64) error {
	query := `UPDATE projects SET is_archived = ?, updated_at = CURRENT_TIMESTAMP WHERE project_id = ?`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), true, projectID)
	if err != nil {
		return wrapError("failed to archive project", err)
	}

	return checkAffected("failed to archive project", result)
}
