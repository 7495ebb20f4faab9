package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coopportal/coopportal/internal/config"
	"github.com/coopportal/coopportal/internal/domain/application"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/logger"
	"github.com/coopportal/coopportal/internal/postgres"
	"github.com/coopportal/coopportal/internal/types"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// newMockDB wires a sqlmock connection through the sqlx wrapper the
// repositories run against.
func newMockDB(t *testing.T) (*postgres.DB, *logger.Logger, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	log, err := logger.NewLogger(config.GetDefaultConfig())
	require.NoError(t, err)

	return postgres.NewDBFromSqlx(sqlx.NewDb(mockDB, "sqlmock"), log), log, mock
}

var detailColumns = []string{
	"application_id", "user_id", "position_id", "position_title",
	"position_description", "requirements", "company_name", "sent_on", "status",
}

func TestListActiveByStudentRanksPerPosition(t *testing.T) {
	db, log, mock := newMockDB(t)
	repo := NewApplicationRepository(db, log)

	sentOn := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		`ROW_NUMBER() OVER (PARTITION BY a.user_id, a.position_id ORDER BY a.sent_on DESC, a.application_id DESC)`)).
		WithArgs("user_01", types.ApplicationStatusPending).
		WillReturnRows(sqlmock.NewRows(detailColumns).
			AddRow("app_02", "user_01", "pos_01", "Backend Intern", "Build APIs", "Go", "Acme Corp", sentOn, "Pending"))

	details, err := repo.ListActiveByStudent(context.Background(), "user_01")
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.Equal(t, "app_02", details[0].ID)
	require.Equal(t, "Acme Corp", details[0].CompanyName)
	require.Equal(t, types.ApplicationStatusPending, details[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveByStudentFiltersAfterRanking(t *testing.T) {
	db, log, mock := newMockDB(t)
	repo := NewApplicationRepository(db, log)

	// Both the rank and the status filter sit in the outer WHERE so a
	// superseded Pending row never comes back as active.
	mock.ExpectQuery(`WHERE rn = 1 AND status = \$2`).
		WithArgs("user_01", types.ApplicationStatusPending).
		WillReturnRows(sqlmock.NewRows(detailColumns))

	details, err := repo.ListActiveByStudent(context.Background(), "user_01")
	require.NoError(t, err)
	require.Empty(t, details)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListHistoryByStudentSelectsSupersededAndDecided(t *testing.T) {
	db, log, mock := newMockDB(t)
	repo := NewApplicationRepository(db, log)

	sentOn := time.Date(2026, 7, 2, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`WHERE rn > 1 OR status <> \$2`).
		WithArgs("user_01", types.ApplicationStatusPending).
		WillReturnRows(sqlmock.NewRows(detailColumns).
			AddRow("app_01", "user_01", "pos_01", "Backend Intern", "Build APIs", "Go", "Acme Corp", sentOn, "Rejected"))

	details, err := repo.ListHistoryByStudent(context.Background(), "user_01")
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.Equal(t, types.ApplicationStatusRejected, details[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListCurrentByStatusRanksAcrossStudents(t *testing.T) {
	db, log, mock := newMockDB(t)
	repo := NewApplicationRepository(db, log)

	sentOn := time.Date(2026, 8, 25, 14, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`WHERE rn = 1 AND status = \$1`).
		WithArgs(types.ApplicationStatusAccepted).
		WillReturnRows(sqlmock.NewRows([]string{
			"application_id", "user_id", "full_name", "email",
			"position_id", "position_title", "sent_on", "status",
		}).AddRow("app_03", "user_02", "Priya Nair", "priya@example.edu", "pos_01", "Backend Intern", sentOn, "Accepted"))

	reviews, err := repo.ListCurrentByStatus(context.Background(), types.ApplicationStatusAccepted)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.Equal(t, "Priya Nair", reviews[0].StudentName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMapsMissingRowToNotFound(t *testing.T) {
	db, log, mock := newMockDB(t)
	repo := NewApplicationRepository(db, log)

	mock.ExpectQuery(`FROM application`).
		WithArgs("app_missing").
		WillReturnRows(sqlmock.NewRows([]string{"application_id", "user_id", "position_id", "sent_on", "status"}))

	_, err := repo.Get(context.Background(), "app_missing")
	require.Error(t, err)
	require.True(t, ierr.IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusRequiresExistingRow(t *testing.T) {
	db, log, mock := newMockDB(t)
	repo := NewApplicationRepository(db, log)

	mock.ExpectExec(`UPDATE application SET status = \$2`).
		WithArgs("app_missing", types.ApplicationStatusAccepted).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "app_missing", types.ApplicationStatusAccepted)
	require.Error(t, err)
	require.True(t, ierr.IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInsertsAllColumns(t *testing.T) {
	db, log, mock := newMockDB(t)
	repo := NewApplicationRepository(db, log)

	sentOn := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectExec(`INSERT INTO application \(application_id, user_id, position_id, sent_on, status\)`).
		WithArgs("app_01", "user_01", "pos_01", sentOn, types.ApplicationStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &application.Application{
		ID:         "app_01",
		StudentID:  "user_01",
		PositionID: "pos_01",
		SentOn:     sentOn,
		Status:     types.ApplicationStatusPending,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
