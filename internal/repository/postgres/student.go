package postgres

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/coopportal/coopportal/internal/domain/student"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/logger"
	"github.com/coopportal/coopportal/internal/postgres"
)

type studentRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewStudentRepository(db *postgres.DB, logger *logger.Logger) student.Repository {
	return &studentRepository{db: db, logger: logger}
}

func (r *studentRepository) Create(ctx context.Context, s *student.Student) error {
	query := `
	INSERT INTO student (user_id, full_name, email)
	VALUES ($1, $2, $3)
	`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query, s.UserID, s.FullName, s.Email)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create student").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *studentRepository) Get(ctx context.Context, userID string) (*student.Student, error) {
	query := `SELECT user_id, full_name, email FROM student WHERE user_id = $1`

	var s student.Student
	err := r.db.GetQuerier(ctx).GetContext(ctx, &s, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHint("Student not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to load student").
			Mark(ierr.ErrDatabase)
	}
	return &s, nil
}

func (r *studentRepository) GetProfile(ctx context.Context, userID string) (*student.Profile, error) {
	query := `
	SELECT s.user_id, s.full_name, s.email, u.dob, u.gender
	FROM student s
	JOIN users u ON s.user_id = u.user_id
	WHERE s.user_id = $1
	`

	var p student.Profile
	err := r.db.GetQuerier(ctx).GetContext(ctx, &p, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHint("Student not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to load student profile").
			Mark(ierr.ErrDatabase)
	}
	return &p, nil
}

func (r *studentRepository) List(ctx context.Context) ([]*student.Profile, error) {
	query := `
	SELECT s.user_id, s.full_name, s.email, u.dob, u.gender
	FROM student s
	JOIN users u ON s.user_id = u.user_id
	ORDER BY s.full_name
	`

	var profiles []*student.Profile
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &profiles, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list students").
			Mark(ierr.ErrDatabase)
	}
	return profiles, nil
}

func (r *studentRepository) Update(ctx context.Context, s *student.Student) error {
	query := `
	UPDATE student SET full_name = $2, email = $3
	WHERE user_id = $1
	`

	res, err := r.db.GetQuerier(ctx).ExecContext(ctx, query, s.UserID, s.FullName, s.Email)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update student").
			Mark(ierr.ErrDatabase)
	}
	return requireRowsAffected(res, "Student not found")
}
