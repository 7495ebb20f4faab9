package application

import (
	"context"

	"github.com/coopportal/coopportal/internal/types"
)

// Repository exposes application rows. "Current" listings rank rows per
// (student, position) pair by submission time and keep only the newest;
// status filters apply after the ranking step.
type Repository interface {
	Create(ctx context.Context, a *Application) error
	Get(ctx context.Context, id string) (*Application, error)
	UpdateStatus(ctx context.Context, id string, status types.ApplicationStatus) error
	Delete(ctx context.Context, id string) error

	// CountByPosition counts rows for a position regardless of status or
	// ranking; it drives the position soft-delete policy.
	CountByPosition(ctx context.Context, positionID string) (int, error)

	// ListActiveByStudent returns the student's current Pending rows, one
	// per position.
	ListActiveByStudent(ctx context.Context, studentID string) ([]*Detail, error)
	// ListHistoryByStudent returns everything that is not an active row:
	// superseded submissions and decided ones.
	ListHistoryByStudent(ctx context.Context, studentID string) ([]*Detail, error)
	// ListCurrentByStatus returns current rows across students filtered to
	// one status, joined with student and position for HR review.
	ListCurrentByStatus(ctx context.Context, status types.ApplicationStatus) ([]*Review, error)
	// GetReview returns one application joined with student and position.
	GetReview(ctx context.Context, id string) (*Review, error)
}
