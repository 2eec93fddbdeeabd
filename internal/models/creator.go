package models

import "time"

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

type Portfolio struct {
	PortfolioID      int64     `json:"portfolio_id" db:"portfolio_id"`
	UserID           int64     `json:"user_id" db:"user_id"`
	Headline         string    `json:"headline" db:"headline"`
	Bio              string    `json:"bio" db:"bio"`
	FeaturedProjects *string   `json:"featured_projects" db:"featured_projects"`
	IsArchived       bool      `json:"is_archived" db:"is_archived"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

type CreatePortfolioRequest struct {
	UserID           int64   `json:"user_id" db:"user_id" validate:"required"`
	Headline         string  `json:"headline" db:"headline" validate:"required"`
	Bio              string  `json:"bio" db:"bio" validate:"required"`
	FeaturedProjects *string `json:"featured_projects" db:"featured_projects"`
}

type UpdatePortfolioRequest struct {
	Headline         *string `json:"headline"`
	Bio              *string `json:"bio"`
	FeaturedProjects *string `json:"featured_projects"`
}

func (r UpdatePortfolioRequest) IsEmpty() bool {
	return r.Headline == nil && r.Bio == nil && r.FeaturedProjects == nil
}

type PortfolioFilter struct {
	UserID          *int64
	IncludeArchived bool
}

type Project struct {
	ProjectID   int64     `json:"project_id" db:"project_id"`
	PortfolioID int64     `json:"portfolio_id" db:"portfolio_id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	Tags        *string   `json:"tags" db:"tags"`
	Visibility  string    `json:"visibility" db:"visibility"`
	IsArchived  bool      `json:"is_archived" db:"is_archived"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CreateProjectRequest struct {
	PortfolioID int64   `json:"portfolio_id" db:"portfolio_id" validate:"required"`
	Title       string  `json:"title" db:"title" validate:"required"`
	Description *string `json:"description" db:"description"`
	Tags        *string `json:"tags" db:"tags"`
	Visibility  string  `json:"visibility" db:"visibility" validate:"omitempty,oneof=public private"`
}

type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Tags        *string `json:"tags"`
	Visibility  *string `json:"visibility" validate:"omitempty,oneof=public private"`
}

func (r UpdateProjectRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Tags == nil && r.Visibility == nil
}

type ProjectFilter struct {
	PortfolioID     *int64
	Visibility      string
	IncludeArchived bool
}

type ProjectCredit struct {
	CreditID  int64     `json:"credit_id" db:"credit_id"`
	ProjectID int64     `json:"project_id" db:"project_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Role      string    `json:"role" db:"role"`
	Verified  bool      `json:"verified" db:"verified"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateCreditRequest struct {
	ProjectID int64  `json:"project_id" db:"project_id" validate:"required"`
	UserID    int64  `json:"user_id" db:"user_id" validate:"required"`
	Role      string `json:"role" db:"role" validate:"required"`
	Verified  bool   `json:"verified" db:"verified"`
}

type UpdateCreditRequest struct {
	Role     *string `json:"role"`
	Verified *bool   `json:"verified"`
}

func (r UpdateCreditRequest) IsEmpty() bool {
	return r.Role == nil && r.Verified == nil
}

type CreditFilter struct {
	ProjectID *int64
	UserID    *int64
}

const (
	MediaImage    = "image"
	MediaVideo    = "video"
	MediaAudio    = "audio"
	MediaDocument = "document"
)

type ProjectMedia struct {
	MediaID   int64     `json:"media_id" db:"media_id"`
	ProjectID int64     `json:"project_id" db:"project_id"`
	MediaURL  string    `json:"media_url" db:"media_url"`
	MediaType string    `json:"media_type" db:"media_type"`
	Caption   *string   `json:"caption" db:"caption"`
	ObjectKey *string   `json:"-" db:"object_key"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateMediaRequest struct {
	ProjectID int64   `json:"-" db:"project_id"`
	MediaURL  string  `json:"media_url" db:"media_url" validate:"required"`
	MediaType string  `json:"media_type" db:"media_type" validate:"omitempty,oneof=image video audio document"`
	Caption   *string `json:"caption" db:"caption"`
	ObjectKey *string `json:"-" db:"object_key"`
}
