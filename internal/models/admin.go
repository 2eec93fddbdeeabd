package models

import "time"

const (
	ApplicationPending   = "pending"
	ApplicationApproved  = "approved"
	ApplicationRejected  = "rejected"
	ApplicationNeedsInfo = "needs-info"
)

type Application struct {
	ApplicationID int64     `json:"application_id" db:"application_id"`
	UserID        *int64    `json:"user_id" db:"user_id"`
	ApplicantName string    `json:"applicant_name" db:"applicant_name"`
	Email         string    `json:"email" db:"email"`
	PortfolioURL  *string   `json:"portfolio_url" db:"portfolio_url"`
	Status        string    `json:"status" db:"status"`
	AdminNotes    *string   `json:"admin_notes" db:"admin_notes"`
	SubmittedAt   time.Time `json:"submitted_at" db:"submitted_at"`
	LastUpdatedAt time.Time `json:"last_updated_at" db:"last_updated_at"`
}

type CreateApplicationRequest struct {
	UserID        *int64  `json:"user_id" db:"user_id"`
	ApplicantName string  `json:"applicant_name" db:"applicant_name" validate:"required"`
	Email         string  `json:"email" db:"email" validate:"required"`
	PortfolioURL  *string `json:"portfolio_url" db:"portfolio_url"`
	Status        string  `json:"status" db:"status" validate:"omitempty,oneof=pending approved rejected needs-info"`
	AdminNotes    *string `json:"admin_notes" db:"admin_notes"`
}

type UpdateApplicationRequest struct {
	Status     *string `json:"status" validate:"omitempty,oneof=pending approved rejected needs-info"`
	AdminNotes *string `json:"admin_notes"`
}

func (r UpdateApplicationRequest) IsEmpty() bool {
	return r.Status == nil && r.AdminNotes == nil
}

type ApplicationFilter struct {
	Statuses []string
}

const (
	FlagOpen     = "open"
	FlagInReview = "in-review"
	FlagResolved = "resolved"
)

type FlaggedActivity struct {
	FlagID          int64      `json:"flag_id" db:"flag_id"`
	RelatedType     string     `json:"related_type" db:"related_type"`
	RelatedID       int64      `json:"related_id" db:"related_id"`
	Reason          string     `json:"reason" db:"reason"`
	Status          string     `json:"status" db:"status"`
	ResolutionNotes *string    `json:"resolution_notes" db:"resolution_notes"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	ResolvedAt      *time.Time `json:"resolved_at" db:"resolved_at"`
}

type CreateFlagRequest struct {
	RelatedType string `json:"related_type" db:"related_type" validate:"required,oneof=post portfolio project message user"`
	RelatedID   int64  `json:"related_id" db:"related_id" validate:"required"`
	Reason      string `json:"reason" db:"reason" validate:"required"`
	Status      string `json:"status" db:"status" validate:"omitempty,oneof=open in-review"`
}

type UpdateFlagRequest struct {
	Status          *string `json:"status" validate:"omitempty,oneof=open in-review resolved"`
	Reason          *string `json:"reason"`
	ResolutionNotes *string `json:"resolution_notes"`
}

func (r UpdateFlagRequest) IsEmpty() bool {
	return r.Status == nil && r.Reason == nil && r.ResolutionNotes == nil
}

type FlagFilter struct {
	Statuses    []string
	RelatedType string
}

const (
	AlertOpen         = "open"
	AlertAcknowledged = "acknowledged"
	AlertResolved     = "resolved"

	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

type Alert struct {
	AlertID     int64      `json:"alert_id" db:"alert_id"`
	AlertType   string     `json:"alert_type" db:"alert_type"`
	Severity    string     `json:"severity" db:"severity"`
	Message     string     `json:"message" db:"message"`
	Status      string     `json:"status" db:"status"`
	RelatedType *string    `json:"related_type" db:"related_type"`
	RelatedID   *int64     `json:"related_id" db:"related_id"`
	AdminNotes  *string    `json:"admin_notes" db:"admin_notes"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at" db:"resolved_at"`
}

type CreateAlertRequest struct {
	AlertType   string  `json:"alert_type" db:"alert_type" validate:"required"`
	Severity    string  `json:"severity" db:"severity" validate:"omitempty,oneof=info warning critical"`
	Message     string  `json:"message" db:"message" validate:"required"`
	RelatedType *string `json:"related_type" db:"related_type"`
	RelatedID   *int64  `json:"related_id" db:"related_id"`
}

type UpdateAlertRequest struct {
	Status     *string `json:"status" validate:"omitempty,oneof=open acknowledged resolved"`
	Severity   *string `json:"severity" validate:"omitempty,oneof=info warning critical"`
	AdminNotes *string `json:"admin_notes"`
}

func (r UpdateAlertRequest) IsEmpty() bool {
	return r.Status == nil && r.Severity == nil && r.AdminNotes == nil
}

type AlertFilter struct {
	Statuses        []string
	AlertType       string
	ExcludeResolved bool
}
