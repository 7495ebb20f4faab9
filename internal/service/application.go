package service

import (
	"context"
	"time"

	"github.com/coopportal/coopportal/internal/api/dto"
	"github.com/coopportal/coopportal/internal/domain/application"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/types"
)

// ApplicationService owns the application lifecycle: submission, student
// withdrawal and the HR decision. Every check runs before any mutating
// statement inside the unit of work.
type ApplicationService interface {
	Submit(ctx context.Context, studentID string, req *dto.SubmitApplicationRequest) (*application.Application, error)
	Withdraw(ctx context.Context, studentID, applicationID string) error
	ListActive(ctx context.Context, studentID string) ([]*application.Detail, error)
	ListHistory(ctx context.Context, studentID string) ([]*application.Detail, error)
	ListForReview(ctx context.Context, status types.ApplicationStatus) ([]*application.Review, error)
	UpdateStatus(ctx context.Context, applicationID string, req *dto.UpdateApplicationStatusRequest) (*application.Review, error)
}

type applicationService struct {
	ServiceParams
}

func NewApplicationService(params ServiceParams) ApplicationService {
	return &applicationService{ServiceParams: params}
}

func (s *applicationService) Submit(ctx context.Context, studentID string, req *dto.SubmitApplicationRequest) (*application.Application, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// A new submission always starts Pending, even when an older row for the
	// same position exists; the newer row supersedes it in ranked views.
	a := &application.Application{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_APPLICATION),
		StudentID:  studentID,
		PositionID: req.PositionID,
		SentOn:     time.Now().UTC(),
		Status:     types.ApplicationStatusPending,
	}

	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.PositionRepo.Get(ctx, req.PositionID); err != nil {
			return err
		}
		return s.ApplicationRepo.Create(ctx, a)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("application submitted",
		"application_id", a.ID,
		"user_id", studentID,
		"position_id", req.PositionID)
	return a, nil
}

func (s *applicationService) Withdraw(ctx context.Context, studentID, applicationID string) error {
	return s.DB.WithTx(ctx, func(ctx context.Context) error {
		a, err := s.ApplicationRepo.Get(ctx, applicationID)
		if err != nil {
			return err
		}

		// A row belonging to another student is indistinguishable from a
		// missing one to the caller.
		if a.StudentID != studentID {
			return ierr.NewError("application not found for student").
				WithHint("Application not found").
				Mark(ierr.ErrNotFound)
		}

		if a.Status != types.ApplicationStatusPending {
			return ierr.NewErrorf("cannot cancel application in status %s", a.Status).
				WithHint("Cannot cancel application in current status").
				Mark(ierr.ErrInvalidOperation)
		}

		return s.ApplicationRepo.Delete(ctx, applicationID)
	})
}

func (s *applicationService) ListActive(ctx context.Context, studentID string) ([]*application.Detail, error) {
	details, err := s.ApplicationRepo.ListActiveByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, ierr.NewError("no active applications").
			WithHint("No active applications found").
			Mark(ierr.ErrNotFound)
	}
	return details, nil
}

func (s *applicationService) ListHistory(ctx context.Context, studentID string) ([]*application.Detail, error) {
	return s.ApplicationRepo.ListHistoryByStudent(ctx, studentID)
}

func (s *applicationService) ListForReview(ctx context.Context, status types.ApplicationStatus) ([]*application.Review, error) {
	if status == "" {
		status = types.ApplicationStatusPending
	}
	if !status.Validate() {
		return nil, ierr.NewErrorf("invalid application status %q", status).
			WithHint("Status must be Pending, Accepted or Rejected").
			Mark(ierr.ErrValidation)
	}
	return s.ApplicationRepo.ListCurrentByStatus(ctx, status)
}

func (s *applicationService) UpdateStatus(ctx context.Context, applicationID string, req *dto.UpdateApplicationStatusRequest) (*application.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if role := types.GetUserRole(ctx); role != "" && role != types.RoleHR {
		return nil, ierr.NewErrorf("role %s may not decide applications", role).
			WithHint("Only HR can update application status").
			Mark(ierr.ErrPermissionDenied)
	}

	var review *application.Review
	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		a, err := s.ApplicationRepo.Get(ctx, applicationID)
		if err != nil {
			return err
		}

		// Same-status updates are idempotent no-ops; anything else out of a
		// terminal state is refused with no mutation.
		if a.Status != req.Status {
			if a.Status.IsTerminal() {
				return ierr.NewErrorf("application already %s", a.Status).
					WithHintf("Cannot change application status from %s", a.Status).
					Mark(ierr.ErrInvalidOperation)
			}
			if err := s.ApplicationRepo.UpdateStatus(ctx, applicationID, req.Status); err != nil {
				return err
			}
		}

		review, err = s.ApplicationRepo.GetReview(ctx, applicationID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("application status updated",
		"application_id", applicationID,
		"status", req.Status)
	return review, nil
}
