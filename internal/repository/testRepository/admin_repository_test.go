package testRepository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"reel/internal/models"
	"reel/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var applicationCols = []string{"application_id", "user_id", "applicant_name", "email", "portfolio_url",
	"status", "admin_notes", "submitted_at", "last_updated_at"}

func TestApplicationRepository_Create(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name        string
		req         models.CreateApplicationRequest
		setupMock   func(mock sqlmock.Sqlmock)
		expectError error
	}{
		{
			name: "defaults status to pending",
			req: models.CreateApplicationRequest{
				ApplicantName: "Maya Lin",
				Email:         "maya@reel.io",
				PortfolioURL:  stringPtr("https://maya.reel.io"),
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO applications`).
					WithArgs(nil, "Maya Lin", "maya@reel.io", "https://maya.reel.io", "pending", nil).
					WillReturnRows(sqlmock.NewRows(applicationCols).
						AddRow(1, nil, "Maya Lin", "maya@reel.io", "https://maya.reel.io", "pending", nil, now, now))
			},
		},
		{
			name: "keeps explicit status",
			req: models.CreateApplicationRequest{
				ApplicantName: "Leo",
				Email:         "leo@reel.io",
				Status:        models.ApplicationNeedsInfo,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO applications`).
					WithArgs(nil, "Leo", "leo@reel.io", nil, "needs-info", nil).
					WillReturnRows(sqlmock.NewRows(applicationCols).
						AddRow(2, nil, "Leo", "leo@reel.io", nil, "needs-info", nil, now, now))
			},
		},
		{
			name: "unknown user reference",
			req: models.CreateApplicationRequest{
				UserID:        int64Ptr(99),
				ApplicantName: "Ghost",
				Email:         "ghost@reel.io",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO applications`).
					WillReturnError(&pq.Error{Code: "23503"})
			},
			expectError: repository.ErrInvalidReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			tt.setupMock(mock)

			repo := repository.NewApplicationRepository(db)
			application, err := repo.Create(context.Background(), tt.req)

			if tt.expectError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectError)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, application.ApplicationID)
			assert.Equal(t, tt.req.ApplicantName, application.ApplicantName)
		})
	}
}

func TestApplicationRepository_ListFiltersByStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM applications WHERE status IN (?, ?) ORDER BY submitted_at DESC`)).
		WithArgs("pending", "needs-info").
		WillReturnRows(sqlmock.NewRows(applicationCols).
			AddRow(3, nil, "A", "a@reel.io", nil, "pending", nil, now, now).
			AddRow(2, nil, "B", "b@reel.io", nil, "needs-info", "send reel", now, now))

	repo := repository.NewApplicationRepository(db)
	applications, err := repo.List(context.Background(), models.ApplicationFilter{Statuses: []string{"pending", "needs-info"}})

	require.NoError(t, err)
	require.Len(t, applications, 2)
	assert.Equal(t, "send reel", *applications[1].AdminNotes)
}

func TestApplicationRepository_ListEmpty(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT application_id`)).
		WillReturnRows(sqlmock.NewRows(applicationCols))

	repo := repository.NewApplicationRepository(db)
	applications, err := repo.List(context.Background(), models.ApplicationFilter{})

	require.NoError(t, err)
	assert.NotNil(t, applications)
	assert.Empty(t, applications)
}

func TestApplicationRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(`FROM applications WHERE application_id = \?`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	repo := repository.NewApplicationRepository(db)
	_, err := repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestApplicationRepository_Update(t *testing.T) {
	db, mock := setupMockDB(t)
	now := time.Now()

	mock.ExpectQuery(`UPDATE applications SET`).
		WithArgs("approved", nil, int64(7)).
		WillReturnRows(sqlmock.NewRows(applicationCols).
			AddRow(7, nil, "Maya", "maya@reel.io", nil, "approved", nil, now, now))

	repo := repository.NewApplicationRepository(db)
	application, err := repo.Update(context.Background(), 7, models.UpdateApplicationRequest{Status: stringPtr("approved")})

	require.NoError(t, err)
	assert.Equal(t, models.ApplicationApproved, application.Status)
}

func TestApplicationRepository_Delete(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(mock sqlmock.Sqlmock)
		expectError error
	}{
		{
			name: "deleted",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM applications WHERE application_id = \?`).
					WithArgs(int64(5)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "missing row",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM applications`).
					WithArgs(int64(5)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectError: repository.ErrNotFound,
		},
		{
			name: "driver failure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM applications`).
					WillReturnError(errors.New("connection reset"))
			},
			expectError: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			tt.setupMock(mock)

			err := repository.NewApplicationRepository(db).Delete(context.Background(), 5)

			switch {
			case tt.expectError == nil:
				assert.NoError(t, err)
			case errors.Is(tt.expectError, repository.ErrNotFound):
				assert.ErrorIs(t, err, repository.ErrNotFound)
			default:
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError.Error())
			}
		})
	}
}

var flagCols = []string{"flag_id", "related_type", "related_id", "reason", "status", "resolution_notes", "created_at", "resolved_at"}

func TestFlagRepository_CreateDefaultsToOpen(t *testing.T) {
	db, mock := setupMockDB(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO flagged_activities`).
		WithArgs("post", int64(12), "spam", "open").
		WillReturnRows(sqlmock.NewRows(flagCols).AddRow(1, "post", 12, "spam", "open", nil, now, nil))

	flag, err := repository.NewFlagRepository(db).Create(context.Background(), models.CreateFlagRequest{
		RelatedType: "post",
		RelatedID:   12,
		Reason:      "spam",
	})

	require.NoError(t, err)
	assert.Equal(t, models.FlagOpen, flag.Status)
	assert.Nil(t, flag.ResolvedAt)
}

func TestFlagRepository_UpdateResolves(t *testing.T) {
	db, mock := setupMockDB(t)
	now := time.Now()

	mock.ExpectQuery(`UPDATE flagged_activities SET`).
		WithArgs("resolved", nil, "removed post", "resolved", "resolved", int64(3)).
		WillReturnRows(sqlmock.NewRows(flagCols).AddRow(3, "post", 12, "spam", "resolved", "removed post", now, now))

	flag, err := repository.NewFlagRepository(db).Update(context.Background(), 3, models.UpdateFlagRequest{
		Status:          stringPtr("resolved"),
		ResolutionNotes: stringPtr("removed post"),
	})

	require.NoError(t, err)
	require.NotNil(t, flag.ResolvedAt)
	assert.Equal(t, "removed post", *flag.ResolutionNotes)
}

func TestFlagRepository_ListByRelatedType(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM flagged_activities WHERE status IN (?) AND related_type = ?`)).
		WithArgs("open", "message").
		WillReturnRows(sqlmock.NewRows(flagCols))

	flags, err := repository.NewFlagRepository(db).List(context.Background(), models.FlagFilter{
		Statuses:    []string{"open"},
		RelatedType: "message",
	})

	require.NoError(t, err)
	assert.Empty(t, flags)
}

var alertCols = []string{"alert_id", "alert_type", "severity", "message", "status", "related_type", "related_id",
	"admin_notes", "created_at", "resolved_at"}

func TestAlertRepository_CreateDefaultsSeverity(t *testing.T) {
	db, mock := setupMockDB(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO alerts`).
		WithArgs("db_latency", "info", "p95 above 500ms", nil, nil).
		WillReturnRows(sqlmock.NewRows(alertCols).
			AddRow(1, "db_latency", "info", "p95 above 500ms", "open", nil, nil, nil, now, nil))

	alert, err := repository.NewAlertRepository(db).Create(context.Background(), models.CreateAlertRequest{
		AlertType: "db_latency",
		Message:   "p95 above 500ms",
	})

	require.NoError(t, err)
	assert.Equal(t, models.SeverityInfo, alert.Severity)
	assert.Equal(t, models.AlertOpen, alert.Status)
}

func TestAlertRepository_ListExcludeResolved(t *testing.T) {
	db, mock := setupMockDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM alerts WHERE alert_type = ? AND status <> ?`)).
		WithArgs("moderation", "resolved").
		WillReturnRows(sqlmock.NewRows(alertCols).
			AddRow(4, "moderation", "warning", "spike in flags", "acknowledged", "post", 9, "looking", now, nil))

	alerts, err := repository.NewAlertRepository(db).List(context.Background(), models.AlertFilter{
		AlertType:       "moderation",
		ExcludeResolved: true,
	})

	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, int64(9), *alerts[0].RelatedID)
}

func TestAlertRepository_UpdateNotFound(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(`UPDATE alerts SET`).
		WithArgs("acknowledged", nil, nil, "acknowledged", "acknowledged", int64(77)).
		WillReturnError(sql.ErrNoRows)

	_, err := repository.NewAlertRepository(db).Update(context.Background(), 77, models.UpdateAlertRequest{
		Status: stringPtr("acknowledged"),
	})

	assert.ErrorIs(t, err, repository.ErrNotFound)
}
