package grade

import "context"

type Repository interface {
	Create(ctx context.Context, r *Record) error
	ListByStudent(ctx context.Context, studentID string) ([]*Record, error)
	ListAll(ctx context.Context) ([]*RecordWithStudent, error)
	CourseStats(ctx context.Context) ([]*CourseStats, error)
}
