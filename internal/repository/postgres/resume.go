package postgres

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/coopportal/coopportal/internal/domain/resume"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/logger"
	"github.com/coopportal/coopportal/internal/postgres"
)

type resumeRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewResumeRepository(db *postgres.DB, logger *logger.Logger) resume.Repository {
	return &resumeRepository{db: db, logger: logger}
}

func (r *resumeRepository) Create(ctx context.Context, res *resume.Resume) error {
	query := `
	INSERT INTO resume (resume_id, user_id, doc_name, time_uploaded)
	VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		res.ID,
		res.UserID,
		res.DocName,
		res.TimeUploaded,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create resume").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *resumeRepository) Get(ctx context.Context, id string) (*resume.Resume, error) {
	query := `
	SELECT resume_id, user_id, doc_name, time_uploaded
	FROM resume
	WHERE resume_id = $1
	`

	var res resume.Resume
	err := r.db.GetQuerier(ctx).GetContext(ctx, &res, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHint("Resume not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to load resume").
			Mark(ierr.ErrDatabase)
	}
	return &res, nil
}

func (r *resumeRepository) GetByStudent(ctx context.Context, userID string) (*resume.Resume, error) {
	query := `
	SELECT resume_id, user_id, doc_name, time_uploaded
	FROM resume
	WHERE user_id = $1
	ORDER BY time_uploaded DESC, resume_id DESC
	LIMIT 1
	`

	var res resume.Resume
	err := r.db.GetQuerier(ctx).GetContext(ctx, &res, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHint("Resume not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to load resume").
			Mark(ierr.ErrDatabase)
	}
	return &res, nil
}

func (r *resumeRepository) UpdateDocName(ctx context.Context, id, docName string) error {
	res, err := r.db.GetQuerier(ctx).ExecContext(ctx,
		`UPDATE resume SET doc_name = $2 WHERE resume_id = $1`, id, docName)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update resume").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(res, "Resume not found")
}

func (r *resumeRepository) ListScreenings(ctx context.Context) ([]*resume.Screening, error) {
	// The correlated subquery picks exactly one suggestion per resume even
	// when creation times tie.
	query := `
	SELECT r.resume_id, r.user_id, r.doc_name, r.time_uploaded,
	       s.full_name, s.email,
	       (SELECT sg.suggestion_text
	        FROM suggestion sg
	        WHERE sg.resume_id = r.resume_id
	        ORDER BY sg.time_created DESC, sg.suggestion_id DESC
	        LIMIT 1) AS latest_suggestion
	FROM resume r
	JOIN student s ON r.user_id = s.user_id
	ORDER BY r.time_uploaded DESC, r.resume_id DESC
	`

	var screenings []*resume.Screening
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &screenings, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list resumes").
			Mark(ierr.ErrDatabase)
	}
	return screenings, nil
}

type suggestionRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewSuggestionRepository(db *postgres.DB, logger *logger.Logger) resume.SuggestionRepository {
	return &suggestionRepository{db: db, logger: logger}
}

func (r *suggestionRepository) Create(ctx context.Context, s *resume.Suggestion) error {
	query := `
	INSERT INTO suggestion (suggestion_id, resume_id, suggestion_text, time_created)
	VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		s.ID,
		s.ResumeID,
		s.Text,
		s.TimeCreated,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create suggestion").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *suggestionRepository) ListByResume(ctx context.Context, resumeID string) ([]*resume.Suggestion, error) {
	query := `
	SELECT suggestion_id, resume_id, suggestion_text, time_created
	FROM suggestion
	WHERE resume_id = $1
	ORDER BY time_created DESC, suggestion_id DESC
	`

	var suggestions []*resume.Suggestion
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &suggestions, query, resumeID); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list suggestions").
			Mark(ierr.ErrDatabase)
	}
	return suggestions, nil
}

func (r *suggestionRepository) Latest(ctx context.Context, resumeID string) (*resume.Suggestion, error) {
	query := `
	SELECT suggestion_id, resume_id, suggestion_text, time_created
	FROM suggestion
	WHERE resume_id = $1
	ORDER BY time_created DESC, suggestion_id DESC
	LIMIT 1
	`

	var s resume.Suggestion
	err := r.db.GetQuerier(ctx).GetContext(ctx, &s, query, resumeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHint("No suggestions for resume").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to load suggestion").
			Mark(ierr.ErrDatabase)
	}
	return &s, nil
}
