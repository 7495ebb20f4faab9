package coop

import "context"

type Repository interface {
	Create(ctx context.Context, r *Record) error
	Get(ctx context.Context, id string) (*Record, error)
	ListByStudent(ctx context.Context, studentID string) ([]*Record, error)
	ListAll(ctx context.Context) ([]*Record, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	CompanyStats(ctx context.Context) ([]*CompanyStats, error)
}
