package postgres

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/coopportal/coopportal/internal/domain/position"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/logger"
	"github.com/coopportal/coopportal/internal/postgres"
	"github.com/coopportal/coopportal/internal/types"
)

type positionRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewPositionRepository(db *postgres.DB, logger *logger.Logger) position.Repository {
	return &positionRepository{db: db, logger: logger}
}

func (r *positionRepository) Create(ctx context.Context, p *position.Position) error {
	query := `
	INSERT INTO internship_position (position_id, hr_id, title, description, requirements, status, posted_date)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		p.ID,
		p.HRID,
		p.Title,
		p.Description,
		p.Requirements,
		p.Status,
		p.PostedDate,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create position").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *positionRepository) Get(ctx context.Context, id string) (*position.Position, error) {
	query := `
	SELECT position_id, hr_id, title, description, requirements, status, posted_date
	FROM internship_position
	WHERE position_id = $1
	`

	var p position.Position
	err := r.db.GetQuerier(ctx).GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHint("Position not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to load position").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *positionRepository) Update(ctx context.Context, p *position.Position) error {
	query := `
	UPDATE internship_position
	SET title = $2, description = $3, requirements = $4, status = $5
	WHERE position_id = $1
	`

	res, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		p.ID,
		p.Title,
		p.Description,
		p.Requirements,
		p.Status,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update position").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(res, "Position not found")
}

func (r *positionRepository) UpdateStatus(ctx context.Context, id string, status types.PositionStatus) error {
	res, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`UPDATE internship_position SET status = $2 WHERE position_id = $1`, id, status)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update position status").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(res, "Position not found")
}

func (r *positionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`DELETE FROM internship_position WHERE position_id = $1`, id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete position").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(res, "Position not found")
}

func (r *positionRepository) ListWithCounts(ctx context.Context) ([]*position.WithCount, error) {
	query := `
	SELECT ip.position_id, ip.hr_id, ip.title, ip.description, ip.requirements, ip.status, ip.posted_date,
	       COUNT(a.application_id) AS application_count
	FROM internship_position ip
	LEFT JOIN application a ON ip.position_id = a.position_id
	GROUP BY ip.position_id, ip.hr_id, ip.title, ip.description, ip.requirements, ip.status, ip.posted_date
	ORDER BY ip.posted_date DESC
	`

	var positions []*position.WithCount
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &positions, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list positions").
			Mark(ierr.ErrDatabase)
	}
	return positions, nil
}

func (r *positionRepository) ListActive(ctx context.Context) ([]*position.Listing, error) {
	query := `
	SELECT ip.position_id, ip.title AS position_title, ip.description AS position_description,
	       ip.requirements, h.company_name, ip.status, ip.posted_date
	FROM internship_position ip
	JOIN hr_manager h ON ip.hr_id = h.user_id
	WHERE ip.status = $1
	ORDER BY ip.posted_date DESC
	`

	var listings []*position.Listing
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &listings, query, types.PositionStatusActive); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list active positions").
			Mark(ierr.ErrDatabase)
	}
	return listings, nil
}

func (r *positionRepository) Analytics(ctx context.Context) ([]*position.Analytics, error) {
	query := `
	SELECT ip.position_id, ip.title,
	       COUNT(a.application_id) AS total_applications,
	       COALESCE(SUM(CASE WHEN a.status = 'Accepted' THEN 1 ELSE 0 END), 0) AS accepted,
	       COALESCE(SUM(CASE WHEN a.status = 'Rejected' THEN 1 ELSE 0 END), 0) AS rejected,
	       COALESCE(SUM(CASE WHEN a.status = 'Pending' THEN 1 ELSE 0 END), 0) AS pending
	FROM internship_position ip
	LEFT JOIN application a ON ip.position_id = a.position_id
	GROUP BY ip.position_id, ip.title
	ORDER BY total_applications DESC
	`

	var analytics []*position.Analytics
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &analytics, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to load position analytics").
			Mark(ierr.ErrDatabase)
	}
	return analytics, nil
}
