package service

import (
	"context"
	"time"

	"github.com/coopportal/coopportal/internal/api/dto"
	"github.com/coopportal/coopportal/internal/domain/resume"
	"github.com/coopportal/coopportal/internal/types"
)

type ResumeService interface {
	GetByStudent(ctx context.Context, studentID string) (*resume.Resume, error)
	UpdateDocName(ctx context.Context, studentID string, req *dto.UpdateResumeRequest) (*resume.Resume, error)
	ListSuggestions(ctx context.Context, studentID string) ([]*resume.Suggestion, error)
	ListScreenings(ctx context.Context) ([]*resume.Screening, error)
	AddSuggestion(ctx context.Context, resumeID string, req *dto.CreateSuggestionRequest) (*resume.Suggestion, error)
}

type resumeService struct {
	ServiceParams
}

func NewResumeService(params ServiceParams) ResumeService {
	return &resumeService{ServiceParams: params}
}

func (s *resumeService) GetByStudent(ctx context.Context, studentID string) (*resume.Resume, error) {
	return s.ResumeRepo.GetByStudent(ctx, studentID)
}

func (s *resumeService) UpdateDocName(ctx context.Context, studentID string, req *dto.UpdateResumeRequest) (*resume.Resume, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var res *resume.Resume
	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		var err error
		res, err = s.ResumeRepo.GetByStudent(ctx, studentID)
		if err != nil {
			return err
		}
		if err := s.ResumeRepo.UpdateDocName(ctx, res.ID, req.DocName); err != nil {
			return err
		}
		res.DocName = req.DocName
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *resumeService) ListSuggestions(ctx context.Context, studentID string) ([]*resume.Suggestion, error) {
	res, err := s.ResumeRepo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.SuggestionRepo.ListByResume(ctx, res.ID)
}

func (s *resumeService) ListScreenings(ctx context.Context) ([]*resume.Screening, error) {
	return s.ResumeRepo.ListScreenings(ctx)
}

func (s *resumeService) AddSuggestion(ctx context.Context, resumeID string, req *dto.CreateSuggestionRequest) (*resume.Suggestion, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sg := &resume.Suggestion{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUGGESTION),
		ResumeID:    resumeID,
		Text:        req.SuggestionText,
		TimeCreated: time.Now().UTC(),
	}

	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.ResumeRepo.Get(ctx, resumeID); err != nil {
			return err
		}
		return s.SuggestionRepo.Create(ctx, sg)
	})
	if err != nil {
		return nil, err
	}
	return sg, nil
}
