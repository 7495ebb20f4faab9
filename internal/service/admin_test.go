package service

import (
	"testing"
	"time"

	"github.com/coopportal/coopportal/internal/api/dto"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AdminServiceSuite struct {
	testutil.BaseServiceTestSuite
	service AdminService
}

func TestAdminService(t *testing.T) {
	suite.Run(t, new(AdminServiceSuite))
}

func (s *AdminServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.service = NewAdminService(ServiceParams{
		Logger:      s.GetLogger(),
		Config:      s.GetConfig(),
		DB:          s.GetDB(),
		UserRepo:    stores.UserRepo,
		StudentRepo: stores.StudentRepo,
		GradeRepo:   stores.GradeRepo,
		CoopRepo:    stores.CoopRepo,
	})
}

func (s *AdminServiceSuite) addStudent(name, email string) string {
	userID, err := s.service.AddStudent(s.GetContext(), &dto.CreateStudentRequest{
		FullName: name,
		Email:    email,
	})
	s.NoError(err)
	return userID
}

func (s *AdminServiceSuite) TestAddStudentCreatesBothRows() {
	userID := s.addStudent("Dana Whitfield", "dana@example.edu")
	s.NotEmpty(userID)

	u, err := s.GetStores().UserRepo.Get(s.GetContext(), userID)
	s.NoError(err)
	s.Equal("Dana Whitfield", u.FullName)

	st, err := s.GetStores().StudentRepo.Get(s.GetContext(), userID)
	s.NoError(err)
	s.Equal("dana@example.edu", st.Email)
}

func (s *AdminServiceSuite) TestAddStudentRequiresEmail() {
	_, err := s.service.AddStudent(s.GetContext(), &dto.CreateStudentRequest{
		FullName: "Dana Whitfield",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *AdminServiceSuite) TestDeleteStudentCascades() {
	userID := s.addStudent("Dana Whitfield", "dana@example.edu")

	s.NoError(s.service.DeleteStudent(s.GetContext(), userID))

	_, err := s.GetStores().StudentRepo.Get(s.GetContext(), userID)
	s.True(ierr.IsNotFound(err))
	_, err = s.GetStores().UserRepo.Get(s.GetContext(), userID)
	s.True(ierr.IsNotFound(err))
}

func (s *AdminServiceSuite) TestUpdateStudentSyncsUserRow() {
	userID := s.addStudent("Dana Whitfield", "dana@example.edu")

	s.NoError(s.service.UpdateStudent(s.GetContext(), userID, &dto.UpdateStudentRequest{
		FullName: "Dana W. Whitfield",
		Email:    "dana.w@example.edu",
	}))

	u, err := s.GetStores().UserRepo.Get(s.GetContext(), userID)
	s.NoError(err)
	s.Equal("Dana W. Whitfield", u.FullName)
	s.Equal("dana.w@example.edu", u.Email)
}

func (s *AdminServiceSuite) TestAddAcademicRecordForMissingStudent() {
	_, err := s.service.AddAcademicRecord(s.GetContext(), &dto.CreateGradeRequest{
		StudentID:  "user_missing",
		CourseName: "Databases",
		Grade:      decimal.NewFromFloat(3.7),
		RecordedBy: "user_admin_01",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *AdminServiceSuite) TestComplianceSummary() {
	userID := s.addStudent("Dana Whitfield", "dana@example.edu")

	for _, g := range []float64{3.0, 4.0} {
		_, err := s.service.AddAcademicRecord(s.GetContext(), &dto.CreateGradeRequest{
			StudentID:  userID,
			CourseName: "Databases",
			Grade:      decimal.NewFromFloat(g),
			RecordedBy: "user_admin_01",
		})
		s.NoError(err)
	}
	_, err := s.service.AddCoop(s.GetContext(), &dto.CreateCoopRequest{
		StudentID:   userID,
		CompanyName: "Acme Corp",
		StartDate:   s.GetNow().Add(-90 * 24 * time.Hour),
	})
	s.NoError(err)

	summary, err := s.service.ComplianceSummary(s.GetContext())
	s.NoError(err)
	s.Equal(1, summary.TotalStudents)
	s.Equal(1, summary.TotalCoops)
	s.True(summary.AvgGrade.Equal(decimal.NewFromFloat(3.5)))
}

func (s *AdminServiceSuite) TestGenerateGradeDistributionReport() {
	userID := s.addStudent("Dana Whitfield", "dana@example.edu")
	_, err := s.service.AddAcademicRecord(s.GetContext(), &dto.CreateGradeRequest{
		StudentID:  userID,
		CourseName: "Databases",
		Grade:      decimal.NewFromFloat(3.7),
		RecordedBy: "user_admin_01",
	})
	s.NoError(err)

	report, err := s.service.GenerateReport(s.GetContext(), &dto.GenerateReportRequest{
		ReportType: dto.ReportTypeGradeDistribution,
	})
	s.NoError(err)
	s.Len(report.GradeDistribution, 1)
	s.Equal("Databases", report.GradeDistribution[0].CourseName)
	s.Equal(1, report.GradeDistribution[0].HighPerformers)
	s.Nil(report.CoopStatus)
}

func (s *AdminServiceSuite) TestGenerateReportRejectsUnknownType() {
	_, err := s.service.GenerateReport(s.GetContext(), &dto.GenerateReportRequest{
		ReportType: dto.ReportType("attendance"),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *AdminServiceSuite) TestApproveCoop() {
	userID := s.addStudent("Dana Whitfield", "dana@example.edu")
	rec, err := s.service.AddCoop(s.GetContext(), &dto.CreateCoopRequest{
		StudentID:   userID,
		CompanyName: "Acme Corp",
		StartDate:   s.GetNow(),
	})
	s.NoError(err)
	s.False(rec.Approved)

	s.NoError(s.service.ApproveCoop(s.GetContext(), rec.ID))

	kept, err := s.GetStores().CoopRepo.Get(s.GetContext(), rec.ID)
	s.NoError(err)
	s.True(kept.Approved)
}
