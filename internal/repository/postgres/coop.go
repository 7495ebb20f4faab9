package postgres

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/coopportal/coopportal/internal/domain/coop"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/logger"
	"github.com/coopportal/coopportal/internal/postgres"
)

type coopRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewCoopRepository(db *postgres.DB, logger *logger.Logger) coop.Repository {
	return &coopRepository{db: db, logger: logger}
}

func (r *coopRepository) Create(ctx context.Context, rec *coop.Record) error {
	query := `
	INSERT INTO co_op_record (co_op_id, student_id, company_name, start_date, end_date, approved)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		rec.ID,
		rec.StudentID,
		rec.CompanyName,
		rec.StartDate,
		rec.EndDate,
		rec.Approved,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create co-op record").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *coopRepository) Get(ctx context.Context, id string) (*coop.Record, error) {
	query := `
	SELECT co_op_id, student_id, company_name, start_date, end_date, approved
	FROM co_op_record
	WHERE co_op_id = $1
	`

	var rec coop.Record
	err := r.db.GetQuerier(ctx).GetContext(ctx, &rec, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHint("Co-op record not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to load co-op record").
			Mark(ierr.ErrDatabase)
	}
	return &rec, nil
}

func (r *coopRepository) ListByStudent(ctx context.Context, studentID string) ([]*coop.Record, error) {
	query := `
	SELECT co_op_id, student_id, company_name, start_date, end_date, approved
	FROM co_op_record
	WHERE student_id = $1
	ORDER BY start_date DESC, co_op_id DESC
	`

	var records []*coop.Record
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &records, query, studentID); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list co-op records").
			Mark(ierr.ErrDatabase)
	}
	return records, nil
}

func (r *coopRepository) ListAll(ctx context.Context) ([]*coop.Record, error) {
	query := `
	SELECT co_op_id, student_id, company_name, start_date, end_date, approved
	FROM co_op_record
	ORDER BY start_date DESC, co_op_id DESC
	`

	var records []*coop.Record
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &records, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list co-op records").
			Mark(ierr.ErrDatabase)
	}
	return records, nil
}

func (r *coopRepository) Approve(ctx context.Context, id string) error {
	res, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`UPDATE co_op_record SET approved = TRUE WHERE co_op_id = $1`, id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to approve co-op record").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(res, "Co-op record not found")
}

func (r *coopRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`DELETE FROM co_op_record WHERE co_op_id = $1`, id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete co-op record").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(res, "Co-op record not found")
}

func (r *coopRepository) CompanyStats(ctx context.Context) ([]*coop.CompanyStats, error) {
	query := `
	SELECT company_name,
	       COUNT(DISTINCT student_id) AS student_count,
	       MIN(start_date) AS earliest_start,
	       MAX(end_date) AS latest_end
	FROM co_op_record
	GROUP BY company_name
	ORDER BY company_name
	`

	var stats []*coop.CompanyStats
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &stats, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to aggregate co-op records").
			Mark(ierr.ErrDatabase)
	}
	return stats, nil
}
