package service

import (
	"context"

	"github.com/coopportal/coopportal/internal/domain/coop"
	"github.com/coopportal/coopportal/internal/domain/grade"
	"github.com/coopportal/coopportal/internal/domain/student"
)

// StudentService serves the student's own dashboard reads.
type StudentService interface {
	GetProfile(ctx context.Context, studentID string) (*student.Profile, error)
	ListGrades(ctx context.Context, studentID string) ([]*grade.Record, error)
	ListCoops(ctx context.Context, studentID string) ([]*coop.Record, error)
}

type studentService struct {
	ServiceParams
}

func NewStudentService(params ServiceParams) StudentService {
	return &studentService{ServiceParams: params}
}

func (s *studentService) GetProfile(ctx context.Context, studentID string) (*student.Profile, error) {
	return s.StudentRepo.GetProfile(ctx, studentID)
}

func (s *studentService) ListGrades(ctx context.Context, studentID string) ([]*grade.Record, error) {
	return s.GradeRepo.ListByStudent(ctx, studentID)
}

func (s *studentService) ListCoops(ctx context.Context, studentID string) ([]*coop.Record, error) {
	return s.CoopRepo.ListByStudent(ctx, studentID)
}
