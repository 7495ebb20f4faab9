package service

import (
	"context"
	"time"

	"github.com/coopportal/coopportal/internal/api/dto"
	"github.com/coopportal/coopportal/internal/domain/coop"
	"github.com/coopportal/coopportal/internal/domain/grade"
	"github.com/coopportal/coopportal/internal/domain/student"
	"github.com/coopportal/coopportal/internal/domain/user"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// AdminService covers the school-admin surface: student records, academic
// records, co-op oversight and reporting.
type AdminService interface {
	ListStudents(ctx context.Context) ([]*student.Profile, error)
	AddStudent(ctx context.Context, req *dto.CreateStudentRequest) (string, error)
	GetStudentDetail(ctx context.Context, userID string) (*dto.StudentDetailResponse, error)
	UpdateStudent(ctx context.Context, userID string, req *dto.UpdateStudentRequest) error
	DeleteStudent(ctx context.Context, userID string) error

	ListAcademicRecords(ctx context.Context) ([]*grade.RecordWithStudent, error)
	AddAcademicRecord(ctx context.Context, req *dto.CreateGradeRequest) (*grade.Record, error)

	ListCoops(ctx context.Context) ([]*coop.Record, error)
	AddCoop(ctx context.Context, req *dto.CreateCoopRequest) (*coop.Record, error)
	ApproveCoop(ctx context.Context, coopID string) error
	DeleteCoop(ctx context.Context, coopID string) error

	ComplianceSummary(ctx context.Context) (*dto.ComplianceSummaryResponse, error)
	GenerateReport(ctx context.Context, req *dto.GenerateReportRequest) (*dto.ReportResponse, error)
	CourseAnalytics(ctx context.Context) ([]*grade.CourseStats, error)
}

type adminService struct {
	ServiceParams
}

func NewAdminService(params ServiceParams) AdminService {
	return &adminService{ServiceParams: params}
}

func (s *adminService) ListStudents(ctx context.Context) ([]*student.Profile, error) {
	return s.StudentRepo.List(ctx)
}

// AddStudent creates the base user row and the student row in one unit of
// work and returns the server-assigned user id.
func (s *adminService) AddStudent(ctx context.Context, req *dto.CreateStudentRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	u := &user.User{
		ID:       types.GenerateUUIDWithPrefix(types.UUID_PREFIX_USER),
		FullName: req.FullName,
		Email:    req.Email,
		Role:     types.RoleStudent,
		DOB:      req.DOB,
		Gender:   req.Gender,
	}

	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.UserRepo.Create(ctx, u); err != nil {
			return err
		}
		return s.StudentRepo.Create(ctx, &student.Student{
			UserID:   u.ID,
			FullName: u.FullName,
			Email:    u.Email,
		})
	})
	if err != nil {
		return "", err
	}

	s.Logger.Infow("student added", "user_id", u.ID)
	return u.ID, nil
}

func (s *adminService) GetStudentDetail(ctx context.Context, userID string) (*dto.StudentDetailResponse, error) {
	st, err := s.StudentRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	grades, err := s.GradeRepo.ListByStudent(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.StudentDetailResponse{Student: st, Grades: grades}, nil
}

func (s *adminService) UpdateStudent(ctx context.Context, userID string, req *dto.UpdateStudentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.DB.WithTx(ctx, func(ctx context.Context) error {
		u, err := s.UserRepo.Get(ctx, userID)
		if err != nil {
			return err
		}
		u.FullName = req.FullName
		u.Email = req.Email
		if err := s.UserRepo.Update(ctx, u); err != nil {
			return err
		}
		return s.StudentRepo.Update(ctx, &student.Student{
			UserID:   userID,
			FullName: req.FullName,
			Email:    req.Email,
		})
	})
}

func (s *adminService) DeleteStudent(ctx context.Context, userID string) error {
	return s.DB.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.StudentRepo.Get(ctx, userID); err != nil {
			return err
		}
		// Role-specific rows and dependents cascade off the user row.
		return s.UserRepo.Delete(ctx, userID)
	})
}

func (s *adminService) ListAcademicRecords(ctx context.Context) ([]*grade.RecordWithStudent, error) {
	return s.GradeRepo.ListAll(ctx)
}

func (s *adminService) AddAcademicRecord(ctx context.Context, req *dto.CreateGradeRequest) (*grade.Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rec := &grade.Record{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_GRADE),
		StudentID:    req.StudentID,
		CourseName:   req.CourseName,
		Grade:        req.Grade,
		RecordedBy:   req.RecordedBy,
		RecordedDate: time.Now().UTC(),
	}

	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.StudentRepo.Get(ctx, req.StudentID); err != nil {
			return err
		}
		return s.GradeRepo.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *adminService) ListCoops(ctx context.Context) ([]*coop.Record, error) {
	return s.CoopRepo.ListAll(ctx)
}

func (s *adminService) AddCoop(ctx context.Context, req *dto.CreateCoopRequest) (*coop.Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rec := &coop.Record{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_COOP),
		StudentID:   req.StudentID,
		CompanyName: req.CompanyName,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Approved:    false,
	}

	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.StudentRepo.Get(ctx, req.StudentID); err != nil {
			return err
		}
		return s.CoopRepo.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *adminService) ApproveCoop(ctx context.Context, coopID string) error {
	return s.CoopRepo.Approve(ctx, coopID)
}

func (s *adminService) DeleteCoop(ctx context.Context, coopID string) error {
	return s.CoopRepo.Delete(ctx, coopID)
}

func (s *adminService) ComplianceSummary(ctx context.Context) (*dto.ComplianceSummaryResponse, error) {
	students, err := s.StudentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	coops, err := s.CoopRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	grades, err := s.GradeRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	avg := decimal.Zero
	if len(grades) > 0 {
		sum := lo.Reduce(grades, func(acc decimal.Decimal, g *grade.RecordWithStudent, _ int) decimal.Decimal {
			return acc.Add(g.Grade)
		}, decimal.Zero)
		avg = sum.Div(decimal.NewFromInt(int64(len(grades)))).Round(2)
	}

	return &dto.ComplianceSummaryResponse{
		TotalStudents: len(students),
		TotalCoops:    len(coops),
		AvgGrade:      avg,
	}, nil
}

func (s *adminService) GenerateReport(ctx context.Context, req *dto.GenerateReportRequest) (*dto.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	switch req.ReportType {
	case dto.ReportTypeGradeDistribution:
		stats, err := s.GradeRepo.CourseStats(ctx)
		if err != nil {
			return nil, err
		}
		return &dto.ReportResponse{ReportType: req.ReportType, GradeDistribution: stats}, nil
	case dto.ReportTypeCoopStatus:
		stats, err := s.CoopRepo.CompanyStats(ctx)
		if err != nil {
			return nil, err
		}
		return &dto.ReportResponse{ReportType: req.ReportType, CoopStatus: stats}, nil
	default:
		return nil, ierr.NewErrorf("unknown report type %q", req.ReportType).
			WithHint("Report type must be grade_distribution or coop_status").
			Mark(ierr.ErrValidation)
	}
}

func (s *adminService) CourseAnalytics(ctx context.Context) ([]*grade.CourseStats, error) {
	return s.GradeRepo.CourseStats(ctx)
}
