package service

import (
	"context"
	"time"

	"github.com/coopportal/coopportal/internal/api/dto"
	"github.com/coopportal/coopportal/internal/domain/position"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/types"
)

// DeleteOutcome reports whether a position delete removed the row or only
// deactivated it.
type DeleteOutcome string

const (
	DeleteOutcomeDeleted     DeleteOutcome = "deleted"
	DeleteOutcomeDeactivated DeleteOutcome = "deactivated"
)

type PositionService interface {
	Create(ctx context.Context, req *dto.CreatePositionRequest) (*position.Position, error)
	Get(ctx context.Context, id string) (*position.Position, error)
	Update(ctx context.Context, id string, req *dto.UpdatePositionRequest) (*position.Position, error)
	Delete(ctx context.Context, id string) (DeleteOutcome, error)
	ListWithCounts(ctx context.Context) ([]*position.WithCount, error)
	ListActive(ctx context.Context) ([]*position.Listing, error)
	Analytics(ctx context.Context) ([]*position.Analytics, error)
}

type positionService struct {
	ServiceParams
}

func NewPositionService(params ServiceParams) PositionService {
	return &positionService{ServiceParams: params}
}

func (s *positionService) Create(ctx context.Context, req *dto.CreatePositionRequest) (*position.Position, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := &position.Position{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_POSITION),
		HRID:         req.HRID,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Status:       req.Status,
		PostedDate:   time.Now().UTC(),
	}

	if err := s.PositionRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.Logger.Infow("position created", "position_id", p.ID, "hr_id", p.HRID)
	return p, nil
}

func (s *positionService) Get(ctx context.Context, id string) (*position.Position, error) {
	return s.PositionRepo.Get(ctx, id)
}

func (s *positionService) Update(ctx context.Context, id string, req *dto.UpdatePositionRequest) (*position.Position, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var p *position.Position
	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		var err error
		p, err = s.PositionRepo.Get(ctx, id)
		if err != nil {
			return err
		}

		p.Title = req.Title
		p.Description = req.Description
		p.Requirements = req.Requirements
		p.Status = req.Status
		return s.PositionRepo.Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Delete applies the position deletion policy: a position with any
// applications on record, whatever their status, is deactivated instead of
// removed so history listings keep resolving. Order is fixed: existence
// check, then count, then the branch.
func (s *positionService) Delete(ctx context.Context, id string) (DeleteOutcome, error) {
	if role := types.GetUserRole(ctx); role != "" && role != types.RoleHR {
		return "", ierr.NewErrorf("role %s may not delete positions", role).
			WithHint("Only HR can delete positions").
			Mark(ierr.ErrPermissionDenied)
	}

	var outcome DeleteOutcome
	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.PositionRepo.Get(ctx, id); err != nil {
			return err
		}

		count, err := s.ApplicationRepo.CountByPosition(ctx, id)
		if err != nil {
			return err
		}

		if count > 0 {
			outcome = DeleteOutcomeDeactivated
			return s.PositionRepo.UpdateStatus(ctx, id, types.PositionStatusInactive)
		}
		outcome = DeleteOutcomeDeleted
		return s.PositionRepo.Delete(ctx, id)
	})
	if err != nil {
		return "", err
	}

	s.Logger.Infow("position delete applied", "position_id", id, "outcome", outcome)
	return outcome, nil
}

func (s *positionService) ListWithCounts(ctx context.Context) ([]*position.WithCount, error) {
	return s.PositionRepo.ListWithCounts(ctx)
}

func (s *positionService) ListActive(ctx context.Context) ([]*position.Listing, error) {
	return s.PositionRepo.ListActive(ctx)
}

func (s *positionService) Analytics(ctx context.Context) ([]*position.Analytics, error) {
	return s.PositionRepo.Analytics(ctx)
}
