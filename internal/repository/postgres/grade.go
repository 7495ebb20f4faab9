package postgres

import (
	"context"

	"github.com/coopportal/coopportal/internal/domain/grade"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/logger"
	"github.com/coopportal/coopportal/internal/postgres"
)

type gradeRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewGradeRepository(db *postgres.DB, logger *logger.Logger) grade.Repository {
	return &gradeRepository{db: db, logger: logger}
}

func (r *gradeRepository) Create(ctx context.Context, rec *grade.Record) error {
	query := `
	INSERT INTO grade_record (grade_id, student_id, course_name, grade, recorded_by, recorded_date)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		rec.ID,
		rec.StudentID,
		rec.CourseName,
		rec.Grade,
		rec.RecordedBy,
		rec.RecordedDate,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create grade record").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *gradeRepository) ListByStudent(ctx context.Context, studentID string) ([]*grade.Record, error) {
	query := `
	SELECT grade_id, student_id, course_name, grade, recorded_by, recorded_date
	FROM grade_record
	WHERE student_id = $1
	ORDER BY recorded_date DESC, grade_id DESC
	`

	var records []*grade.Record
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &records, query, studentID); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list grade records").
			Mark(ierr.ErrDatabase)
	}
	return records, nil
}

func (r *gradeRepository) ListAll(ctx context.Context) ([]*grade.RecordWithStudent, error) {
	query := `
	SELECT g.grade_id, g.student_id, g.course_name, g.grade, g.recorded_by, g.recorded_date,
	       s.full_name, s.email
	FROM grade_record g
	JOIN student s ON g.student_id = s.user_id
	ORDER BY g.recorded_date DESC, g.grade_id DESC
	`

	var records []*grade.RecordWithStudent
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &records, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list grade records").
			Mark(ierr.ErrDatabase)
	}
	return records, nil
}

func (r *gradeRepository) CourseStats(ctx context.Context) ([]*grade.CourseStats, error) {
	query := `
	SELECT course_name,
	       COUNT(DISTINCT student_id) AS student_count,
	       AVG(grade) AS avg_grade,
	       MIN(grade) AS min_grade,
	       MAX(grade) AS max_grade,
	       COALESCE(SUM(CASE WHEN grade >= 3.0 THEN 1 ELSE 0 END), 0) AS high_performers
	FROM grade_record
	GROUP BY course_name
	ORDER BY course_name
	`

	var stats []*grade.CourseStats
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &stats, query); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to aggregate grades").
			Mark(ierr.ErrDatabase)
	}
	return stats, nil
}
