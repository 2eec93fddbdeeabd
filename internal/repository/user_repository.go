package repository

import (
	"context"
	"strings"

	"reel/internal/models"

	"github.com/jmoiron/sqlx"
)

const userColumns = `user_id, name, email, role, location, market, primary_styles, tools,
	credit_momentum, is_active, (role = 'creator') AS is_creator, created_at`

// first active portfolio headline, matched on the outer users row
const creatorHeadline = `(SELECT p.headline FROM portfolios p
	WHERE p.user_id = users.user_id AND NOT p.is_archived
	ORDER BY p.portfolio_id LIMIT 1) AS headline`

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	if req.Role == "" {
		req.Role = models.RoleCreator
	}
	if req.CreditMomentum == nil {
		zero := 0.0
		req.CreditMomentum = &zero
	}

	query := `
		INSERT INTO users (name, email, role, location, market, primary_styles, tools, credit_momentum)
		VALUES (:name, :email, :role, :location, :market, :primary_styles, :tools, :credit_momentum)
		RETURNING ` + userColumns

	var user models.User
	if err := namedGet(ctx, r.db, &user, query, req); err != nil {
		return nil, wrapError("failed to create user", err)
	}

	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = ?`

	var user models.User
	if err := getRebound(ctx, r.db, &user, query, userID); err != nil {
		return nil, wrapError("failed to get user", err)
	}

	return &user, nil
}

func (r *userRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	var where whereClause
	if !filter.IncludeInactive {
		where.add("is_active = ?", true)
	}
	where.eq("role", filter.Role)

	query := `SELECT ` + userColumns + ` FROM users` + where.String() + ` ORDER BY user_id`

	users := []models.User{}
	if err := selectWhere(ctx, r.db, &users, query, where.args); err != nil {
		return nil, wrapError("failed to list users", err)
	}

	return users, nil
}

// ListCreators backs creator discovery. Style matches any substring of primary_styles.
func (r *userRepository) ListCreators(ctx context.Context, filter models.CreatorFilter) ([]models.Creator, error) {
	var where whereClause
	where.add("is_active = ?", true)
	where.add("role = ?", models.RoleCreator)
	where.eq("market", filter.Market)
	if filter.Style != "" {
		where.add("LOWER(primary_styles) LIKE ?", "%"+strings.ToLower(filter.Style)+"%")
	}

	orderBy := ` ORDER BY credit_momentum DESC, user_id`
	switch filter.Sort {
	case models.CreatorSortMomentumAsc:
		orderBy = ` ORDER BY credit_momentum ASC, user_id`
	case models.CreatorSortName:
		orderBy = ` ORDER BY name ASC, user_id`
	}

	query := `SELECT ` + userColumns + `, ` + creatorHeadline + ` FROM users` + where.String() + orderBy

	creators := []models.Creator{}
	if err := selectWhere(ctx, r.db, &creators, query, where.args); err != nil {
		return nil, wrapError("failed to list creators", err)
	}

	return creators, nil
}

func (r *userRepository) Update(ctx context.Context, userID int64, req models.UpdateUserRequest) (*models.User, error) {
	query := `
		UPDATE users SET
			name = COALESCE(?, name),
			email = COALESCE(?, email),
			role = COALESCE(?, role),
			location = COALESCE(?, location),
			market = COALESCE(?, market),
			primary_styles = COALESCE(?, primary_styles),
			tools = COALESCE(?, tools),
			credit_momentum = COALESCE(?, credit_momentum)
		WHERE user_id = ?
		RETURNING ` + userColumns

	var user models.User
	err := getRebound(ctx, r.db, &user, query,
		req.Name, req.Email, req.Role, req.Location, req.Market, req.PrimaryStyles, req.Tools, req.CreditMomentum, userID)
	if err != nil {
		return nil, wrapError("failed to update user", err)
	}

	return &user, nil
}

func (r *userRepository) Deactivate(ctx context.Context, userID int64) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(`UPDATE users SET is_active = ? WHERE user_id = ?`), false, userID)
	if err != nil {
		return wrapError("failed to deactivate user", err)
	}

	return checkAffected("failed to deactivate user", result)
}
