package postgres

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/coopportal/coopportal/internal/domain/application"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/logger"
	"github.com/coopportal/coopportal/internal/postgres"
	"github.com/coopportal/coopportal/internal/types"
)

type applicationRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewApplicationRepository(db *postgres.DB, logger *logger.Logger) application.Repository {
	return &applicationRepository{db: db, logger: logger}
}

// rankedDetails ranks every application of one student per (student, position)
// pair, newest submission first. Listings select from it so that status
// filters always apply after the ranking step; a superseded Pending row can
// never resurface in a filtered view.
const rankedDetails = `
	SELECT a.application_id, a.user_id, a.position_id,
	       ip.title AS position_title, ip.description AS position_description, ip.requirements,
	       h.company_name, a.sent_on, a.status,
	       ROW_NUMBER() OVER (PARTITION BY a.user_id, a.position_id ORDER BY a.sent_on DESC, a.application_id DESC) AS rn
	FROM application a
	JOIN internship_position ip ON a.position_id = ip.position_id
	JOIN hr_manager h ON ip.hr_id = h.user_id
	WHERE a.user_id = $1
`

func (r *applicationRepository) Create(ctx context.Context, a *application.Application) error {
	query := `
	INSERT INTO application (application_id, user_id, position_id, sent_on, status)
	VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		a.ID,
		a.StudentID,
		a.PositionID,
		a.SentOn,
		a.Status,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create application").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *applicationRepository) Get(ctx context.Context, id string) (*application.Application, error) {
	query := `
	SELECT application_id, user_id, position_id, sent_on, status
	FROM application
	WHERE application_id = $1
	`

	var a application.Application
	err := r.db.GetQuerier(ctx).GetContext(ctx, &a, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHint("Application not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to load application").
			Mark(ierr.ErrDatabase)
	}
	return &a, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status types.ApplicationStatus) error {
	res, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`UPDATE application SET status = $2 WHERE application_id = $1`, id, status)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update application status").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(res, "Application not found")
}

func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`DELETE FROM application WHERE application_id = $1`, id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete application").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(res, "Application not found")
}

func (r *applicationRepository) CountByPosition(ctx context.Context, positionID string) (int, error) {
	var count int
	err := r.db.GetQuerier(ctx).GetContext(ctx, &count,
		`SELECT COUNT(*) FROM application WHERE position_id = $1`, positionID)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count applications").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}

func (r *applicationRepository) ListActiveByStudent(ctx context.Context, studentID string) ([]*application.Detail, error) {
	query := `
	SELECT application_id, user_id, position_id, position_title, position_description,
	       requirements, company_name, sent_on, status
	FROM (` + rankedDetails + `) ranked
	WHERE rn = 1 AND status = $2
	ORDER BY sent_on DESC
	`

	var details []*application.Detail
	err := r.db.GetQuerier(ctx).SelectContext(ctx, &details, query, studentID, types.ApplicationStatusPending)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list active applications").
			Mark(ierr.ErrDatabase)
	}
	return details, nil
}

func (r *applicationRepository) ListHistoryByStudent(ctx context.Context, studentID string) ([]*application.Detail, error) {
	query := `
	SELECT application_id, user_id, position_id, position_title, position_description,
	       requirements, company_name, sent_on, status
	FROM (` + rankedDetails + `) ranked
	WHERE rn > 1 OR status <> $2
	ORDER BY sent_on DESC
	`

	var details []*application.Detail
	err := r.db.GetQuerier(ctx).SelectContext(ctx, &details, query, studentID, types.ApplicationStatusPending)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list application history").
			Mark(ierr.ErrDatabase)
	}
	return details, nil
}

func (r *applicationRepository) ListCurrentByStatus(ctx context.Context, status types.ApplicationStatus) ([]*application.Review, error) {
	query := `
	SELECT application_id, user_id, full_name, email, position_id, position_title, sent_on, status
	FROM (
		SELECT a.application_id, a.user_id, s.full_name, s.email, a.position_id,
		       ip.title AS position_title, a.sent_on, a.status,
		       ROW_NUMBER() OVER (PARTITION BY a.user_id, a.position_id ORDER BY a.sent_on DESC, a.application_id DESC) AS rn
		FROM application a
		JOIN student s ON a.user_id = s.user_id
		JOIN internship_position ip ON a.position_id = ip.position_id
	) ranked
	WHERE rn = 1 AND status = $1
	ORDER BY sent_on DESC
	`

	var reviews []*application.Review
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &reviews, query, status); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list applications").
			Mark(ierr.ErrDatabase)
	}
	return reviews, nil
}

func (r *applicationRepository) GetReview(ctx context.Context, id string) (*application.Review, error) {
	query := `
	SELECT a.application_id, a.user_id, s.full_name, s.email, a.position_id,
	       ip.title AS position_title, a.sent_on, a.status
	FROM application a
	JOIN student s ON a.user_id = s.user_id
	JOIN internship_position ip ON a.position_id = ip.position_id
	WHERE a.application_id = $1
	`

	var review application.Review
	err := r.db.GetQuerier(ctx).GetContext(ctx, &review, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHint("Application not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to load application").
			Mark(ierr.ErrDatabase)
	}
	return &review, nil
}
