package models

import "time"

const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

type TrendTag struct {
	TagID       int64     `json:"tag_id" db:"tag_id"`
	TagName     string    `json:"tag_name" db:"tag_name"`
	Description *string   `json:"description" db:"description"`
	UsageCount  int64     `json:"usage_count" db:"usage_count"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CreateTrendTagRequest struct {
	TagName     string  `json:"tag_name" db:"tag_name" validate:"required"`
	Description *string `json:"description" db:"description"`
}

type UpdateTrendTagRequest struct {
	TagName     *string `json:"tag_name"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=active archived"`
}

func (r UpdateTrendTagRequest) IsEmpty() bool {
	return r.TagName == nil && r.Description == nil && r.Status == nil
}

type KPI struct {
	KPIID     int64     `json:"kpi_id" db:"kpi_id"`
	KPIName   string    `json:"kpi_name" db:"kpi_name"`
	Formula   string    `json:"formula" db:"formula"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type CreateKPIRequest struct {
	KPIName string `json:"kpi_name" db:"kpi_name" validate:"required"`
	Formula string `json:"formula" db:"formula" validate:"required"`
}

type UpdateKPIRequest struct {
	KPIName *string `json:"kpi_name"`
	Formula *string `json:"formula"`
	Status  *string `json:"status" validate:"omitempty,oneof=active archived"`
}

func (r UpdateKPIRequest) IsEmpty() bool {
	return r.KPIName == nil && r.Formula == nil && r.Status == nil
}

type InsightReport struct {
	InsightID   int64     `json:"insight_id" db:"insight_id"`
	CreatorID   *int64    `json:"creator_id" db:"creator_id"`
	Title       string    `json:"title" db:"title"`
	Summary     string    `json:"summary" db:"summary"`
	MetricName  *string   `json:"metric_name" db:"metric_name"`
	MetricValue *float64  `json:"metric_value" db:"metric_value"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type CreateInsightRequest struct {
	CreatorID   *int64   `json:"creator_id" db:"creator_id"`
	Title       string   `json:"title" db:"title" validate:"required"`
	Summary     string   `json:"summary" db:"summary" validate:"required"`
	MetricName  *string  `json:"metric_name" db:"metric_name"`
	MetricValue *float64 `json:"metric_value" db:"metric_value"`
}

type UpdateInsightRequest struct {
	Title       *string  `json:"title"`
	Summary     *string  `json:"summary"`
	MetricName  *string  `json:"metric_name"`
	MetricValue *float64 `json:"metric_value"`
}

func (r UpdateInsightRequest) IsEmpty() bool {
	return r.Title == nil && r.Summary == nil && r.MetricName == nil && r.MetricValue == nil
}

// StatusFilter narrows trend tags and KPIs by lifecycle status.
type StatusFilter struct {
	Statuses []string
}

type InsightFilter struct {
	CreatorID *int64
}

// SystemMetrics is the admin health snapshot.
type SystemMetrics struct {
	Status        string           `json:"status"`
	UptimeSeconds int64            `json:"uptime_seconds"`
	Goroutines    int              `json:"goroutines"`
	Database      DatabaseMetrics  `json:"database"`
	Tables        map[string]int64 `json:"tables"`
	Storage       string           `json:"storage"`
}

type DatabaseMetrics struct {
	Driver          string `json:"driver"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
	PingMillis      int64  `json:"ping_ms"`
	Error           string `json:"error,omitempty"`
}
