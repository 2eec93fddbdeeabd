package repository

import (
	"context"

	"reel/internal/models"

	"github.com/jmoiron/sqlx"
)

const portfolioColumns = `portfolio_id, user_id, headline, bio, featured_projects, is_archived, created_at, updated_at`

type portfolioRepository struct {
	db *sqlx.DB
}

func NewPortfolioRepository(db *sqlx.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) Create(ctx context.Context, req models.CreatePortfolioRequest) (*models.Portfolio, error) {
	query := `
		INSERT INTO portfolios (user_id, headline, bio, featured_projects)
		VALUES (:user_id, :headline, :bio, :featured_projects)
		RETURNING ` + portfolioColumns

	var portfolio models.Portfolio
	if err := namedGet(ctx, r.db, &portfolio, query, req); err != nil {
		return nil, wrapError("failed to create portfolio", err)
	}

	return &portfolio, nil
}

func (r *portfolioRepository) GetByID(ctx context.Context, portfolioID int64) (*models.Portfolio, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolios WHERE portfolio_id = ?`

	var portfolio models.Portfolio
	if err := getRebound(ctx, r.db, &portfolio, query, portfolioID); err != nil {
		return nil, wrapError("failed to get portfolio", err)
	}

	return &portfolio, nil
}

func (r *portfolioRepository) List(ctx context.Context, filter models.PortfolioFilter) ([]models.Portfolio, error) {
	var where whereClause
	where.eqID("user_id", filter.UserID)
	if !filter.IncludeArchived {
		where.add("is_archived = ?", false)
	}

	query := `SELECT ` + portfolioColumns + ` FROM portfolios` + where.String() + ` ORDER BY updated_at DESC, portfolio_id DESC`

	portfolios := []models.Portfolio{}
	if err := selectWhere(ctx, r.db, &portfolios, query, where.args); err != nil {
		return nil, wrapError("failed to list portfolios", err)
	}

	return portfolios, nil
}

func (r *portfolioRepository) Update(ctx context.Context, portfolioID int64, req models.UpdatePortfolioRequest) (*models.Portfolio, error) {
	query := `
		UPDATE portfolios SET
			headline = COALESCE(?, headline),
			bio = COALESCE(?, bio),
			featured_projects = COALESCE(?, featured_projects),
			updated_at = CURRENT_TIMESTAMP
		WHERE portfolio_id = ?
		RETURNING ` + portfolioColumns

	var portfolio models.Portfolio
	err := getRebound(ctx, r.db, &portfolio, query, req.Headline, req.Bio, req.FeaturedProjects, portfolioID)
	if err != nil {
		return nil, wrapError("failed to update portfolio", err)
	}

	return &portfolio, nil
}

func (r *portfolioRepository) Archive(ctx context.Context, portfolioID int64) error {
	query := `UPDATE portfolios SET is_archived = ?, updated_at = CURRENT_TIMESTAMP WHERE portfolio_id = ?`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), true, portfolioID)
	if err != nil {
		return wrapError("failed to archive portfolio", err)
	}

	return checkAffected("failed to archive portfolio", result)
}
