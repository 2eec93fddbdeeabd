package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"reel/internal/database"
	"reel/internal/models"

	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrConflict         = errors.New("record already exists")
	ErrInvalidReference = errors.New("referenced record does not exist")
	ErrInvalidInput     = errors.New("value violates a table constraint")
)

type UserRepository interface {
	Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	ListCreators(ctx context.Context, filter models.CreatorFilter) ([]models.Creator, error)
	Update(ctx context.Context, userID int64, req models.UpdateUserRequest) (*models.User, error)
	Deactivate(ctx context.Context, userID int64) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, req models.CreateApplicationRequest) (*models.Application, error)
	GetByID(ctx context.Context, applicationID int64) (*models.Application, error)
	List(ctx context.Context, filter models.ApplicationFilter) ([]models.Application, error)
	Update(ctx context.Context, applicationID int64, req models.UpdateApplicationRequest) (*models.Application, error)
	Delete(ctx context.Context, applicationID int64) error
}

type FlagRepository interface {
	Create(ctx context.Context, req models.CreateFlagRequest) (*models.FlaggedActivity, error)
	GetByID(ctx context.Context, flagID int64) (*models.FlaggedActivity, error)
	List(ctx context.Context, filter models.FlagFilter) ([]models.FlaggedActivity, error)
	Update(ctx context.Context, flagID int64, req models.UpdateFlagRequest) (*models.FlaggedActivity, error)
	Delete(ctx context.Context, flagID int64) error
}

type AlertRepository interface {
	Create(ctx context.Context, req models.CreateAlertRequest) (*models.Alert, error)
	GetByID(ctx context.Context, alertID int64) (*models.Alert, error)
	List(ctx context.Context, filter models.AlertFilter) ([]models.Alert, error)
	Update(ctx context.Context, alertID int64, req models.UpdateAlertRequest) (*models.Alert, error)
	Delete(ctx context.Context, alertID int64) error
}

type PortfolioRepository interface {
	Create(ctx context.Context, req models.CreatePortfolioRequest) (*models.Portfolio, error)
	GetByID(ctx context.Context, portfolioID int64) (*models.Portfolio, error)
	List(ctx context.Context, filter models.PortfolioFilter) ([]models.Portfolio, error)
	Update(ctx context.Context, portfolioID int64, req models.UpdatePortfolioRequest) (*models.Portfolio, error)
	Archive(ctx context.Context, portfolioID int64) error
}

type ProjectRepository interface {
	Create(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error)
	GetByID(ctx context.Context, projectID int64) (*models.Project, error)
	List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	Update(ctx context.Context, projectID int64, req models.UpdateProjectRequest) (*models.Project, error)
	Archive(ctx context.Context, projectID int64) error
}

type CreditRepository interface {
	Create(ctx context.Context, req models.CreateCreditRequest) (*models.ProjectCredit, error)
	List(ctx context.Context, filter models.CreditFilter) ([]models.ProjectCredit, error)
	Update(ctx context.Context, creditID int64, req models.UpdateCreditRequest) (*models.ProjectCredit, error)
	Delete(ctx context.Context, creditID int64) error
}

type MediaRepository interface {
	Create(ctx context.Context, req models.CreateMediaRequest) (*models.ProjectMedia, error)
	GetByID(ctx context.Context, mediaID int64) (*models.ProjectMedia, error)
	ListByProject(ctx context.Context, projectID int64) ([]models.ProjectMedia, error)
	Delete(ctx context.Context, mediaID int64) error
}

type PostRepository interface {
	// Create stores the post and bumps usage_count of the named active trend tags in one transaction.
	Create(ctx context.Context, req models.CreatePostRequest, tagNames []string) (*models.Post, error)
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	List(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	Update(ctx context.Context, postID int64, req models.UpdatePostRequest) (*models.Post, error)
	SoftDelete(ctx context.Context, postID int64) error
}

type InteractionRepository interface {
	Create(ctx context.Context, req models.CreateInteractionRequest) (*models.PostInteraction, error)
	List(ctx context.Context, filter models.InteractionFilter) ([]models.PostInteraction, error)
	Delete(ctx context.Context, interactionID int64) error
}

type MessageRepository interface {
	Create(ctx context.Context, req models.CreateMessageRequest) (*models.Message, error)
	GetByID(ctx context.Context, messageID int64) (*models.Message, error)
	ListForUser(ctx context.Context, userID int64) ([]models.Message, error)
	Update(ctx context.Context, messageID int64, req models.UpdateMessageRequest) (*models.Message, error)
	DeleteForUser(ctx context.Context, messageID, userID int64) error
}

type TrendTagRepository interface {
	Create(ctx context.Context, req models.CreateTrendTagRequest) (*models.TrendTag, error)
	GetByID(ctx context.Context, tagID int64) (*models.TrendTag, error)
	List(ctx context.Context, filter models.StatusFilter) ([]models.TrendTag, error)
	Trending(ctx context.Context, limit int) ([]models.TrendTag, error)
	Update(ctx context.Context, tagID int64, req models.UpdateTrendTagRequest) (*models.TrendTag, error)
	Archive(ctx context.Context, tagID int64) error
}

type KPIRepository interface {
	Create(ctx context.Context, req models.CreateKPIRequest) (*models.KPI, error)
	GetByID(ctx context.Context, kpiID int64) (*models.KPI, error)
	List(ctx context.Context, filter models.StatusFilter) ([]models.KPI, error)
	Update(ctx context.Context, kpiID int64, req models.UpdateKPIRequest) (*models.KPI, error)
	Archive(ctx context.Context, kpiID int64) error
}

type InsightRepository interface {
	Create(ctx context.Context, req models.CreateInsightRequest) (*models.InsightReport, error)
	GetByID(ctx context.Context, insightID int64) (*models.InsightReport, error)
	List(ctx context.Context, filter models.InsightFilter) ([]models.InsightReport, error)
	Update(ctx context.Context, insightID int64, req models.UpdateInsightRequest) (*models.InsightReport, error)
	Delete(ctx context.Context, insightID int64) error
}

type TablesRepository interface {
	CountRows(ctx context.Context) (map[string]int64, error)
}

type Repository struct {
	User        UserRepository
	Application ApplicationRepository
	Flag        FlagRepository
	Alert       AlertRepository
	Portfolio   PortfolioRepository
	Project     ProjectRepository
	Credit      CreditRepository
	Media       MediaRepository
	Post        PostRepository
	Interaction InteractionRepository
	Message     MessageRepository
	TrendTag    TrendTagRepository
	KPI         KPIRepository
	Insight     InsightRepository
	Tables      TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:        NewUserRepository(db),
		Application: NewApplicationRepository(db),
		Flag:        NewFlagRepository(db),
		Alert:       NewAlertRepository(db),
		Portfolio:   NewPortfolioRepository(db),
		Project:     NewProjectRepository(db),
		Credit:      NewCreditRepository(db),
		Media:       NewMediaRepository(db),
		Post:        NewPostRepository(db),
		Interaction: NewInteractionRepository(db),
		Message:     NewMessageRepository(db),
		TrendTag:    NewTrendTagRepository(db),
		KPI:         NewKPIRepository(db),
		Insight:     NewInsightRepository(db),
		Tables:      NewTablesRepository(db),
	}
}

// wrapError attaches op to err and translates driver failures into the package sentinels.
func wrapError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	switch database.ClassifyConstraint(err) {
	case database.ConstraintUnique:
		return fmt.Errorf("%s: %w", op, ErrConflict)
	case database.ConstraintForeignKey:
		return fmt.Errorf("%s: %w", op, ErrInvalidReference)
	case database.ConstraintNotNull, database.ConstraintCheck:
		return fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	return fmt.Errorf("%s: %w", op, err)
}

func checkAffected(op string, result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to read affected rows: %w", op, err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return nil
}

// namedGet runs a named statement that returns one row.
func namedGet(ctx context.Context, q sqlx.ExtContext, dest interface{}, query string, arg interface{}) error {
	bound, args, err := sqlx.Named(query, arg)
	if err != nil {
		return err
	}
	return sqlx.GetContext(ctx, q, dest, q.Rebind(bound), args...)
}

func getRebound(ctx context.Context, q sqlx.ExtContext, dest interface{}, query string, args ...interface{}) error {
	return sqlx.GetContext(ctx, q, dest, q.Rebind(query), args...)
}

// whereClause collects AND-ed conditions written with '?' placeholders.
type whereClause struct {
	conds []string
	args  []interface{}
}

func (w *whereClause) add(cond string, args ...interface{}) {
	w.conds = append(w.conds, cond)
	w.args = append(w.args, args...)
}

func (w *whereClause) eq(column string, value string) {
	if value != "" {
		w.add(column+" = ?", value)
	}
}

func (w *whereClause) eqID(column string, value *int64) {
	if value != nil {
		w.add(column+" = ?", *value)
	}
}

// in expands through sqlx.In when the query is built.
func (w *whereClause) in(column string, values []string) {
	if len(values) > 0 {
		w.add(column+" IN (?)", values)
	}
}

func (w *whereClause) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func selectWhere(ctx context.Context, db *sqlx.DB, dest interface{}, query string, args []interface{}) error {
	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return err
	}
	return db.SelectContext(ctx, dest, db.Rebind(query), args...)
}
