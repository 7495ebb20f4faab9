package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/types"
	"github.com/stretchr/testify/require"
)

var positionColumns = []string{
	"position_id", "hr_id", "title", "description", "requirements", "status", "posted_date",
}

func TestPositionDeleteRemovesRow(t *testing.T) {
	db, log, mock := newMockDB(t)
	repo := NewPositionRepository(db, log)

	mock.ExpectExec(`DELETE FROM internship_position WHERE position_id = \$1`).
		WithArgs("pos_01").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "pos_01"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPositionDeleteMissingRow(t *testing.T) {
	db, log, mock := newMockDB(t)
	repo := NewPositionRepository(db, log)

	mock.ExpectExec(`DELETE FROM internship_position`).
		WithArgs("pos_missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "pos_missing")
	require.Error(t, err)
	require.True(t, ierr.IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPositionUpdateStatusDeactivates(t *testing.T) {
	db, log, mock := newMockDB(t)
	repo := NewPositionRepository(db, log)

	mock.ExpectExec(`UPDATE internship_position SET status = \$2`).
		WithArgs("pos_01", types.PositionStatusInactive).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), "pos_01", types.PositionStatusInactive))
	require.NoError(t, mock.ExpectationsWereMet())
}

// The removal flow checks existence, then counts applications, then either
// deactivates or deletes. The statements must run in that order inside one
// transaction.
func TestPositionRemovalStatementOrdering(t *testing.T) {
	db, log, mock := newMockDB(t)
	positions := NewPositionRepository(db, log)
	applications := NewApplicationRepository(db, log)

	posted := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT position_id, hr_id, title, description, requirements, status, posted_date`).
		WithArgs("pos_01").
		WillReturnRows(sqlmock.NewRows(positionColumns).
			AddRow("pos_01", "user_hr_01", "Backend Intern", "Build APIs", "Go", "Active", posted))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM application WHERE position_id = \$1`).
		WithArgs("pos_01").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectExec(`UPDATE internship_position SET status = \$2`).
		WithArgs("pos_01", types.PositionStatusInactive).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := db.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := positions.Get(ctx, "pos_01"); err != nil {
			return err
		}
		count, err := applications.CountByPosition(ctx, "pos_01")
		if err != nil {
			return err
		}
		if count > 0 {
			return positions.UpdateStatus(ctx, "pos_01", types.PositionStatusInactive)
		}
		return positions.Delete(ctx, "pos_01")
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPositionRemovalDeletesWhenNoApplications(t *testing.T) {
	db, log, mock := newMockDB(t)
	positions := NewPositionRepository(db, log)
	applications := NewApplicationRepository(db, log)

	posted := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM internship_position`).
		WithArgs("pos_02").
		WillReturnRows(sqlmock.NewRows(positionColumns).
			AddRow("pos_02", "user_hr_01", "Data Intern", "Pipelines", "SQL", "Active", posted))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM application`).
		WithArgs("pos_02").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`DELETE FROM internship_position`).
		WithArgs("pos_02").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := db.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := positions.Get(ctx, "pos_02"); err != nil {
			return err
		}
		count, err := applications.CountByPosition(ctx, "pos_02")
		if err != nil {
			return err
		}
		if count > 0 {
			return positions.UpdateStatus(ctx, "pos_02", types.PositionStatusInactive)
		}
		return positions.Delete(ctx, "pos_02")
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
