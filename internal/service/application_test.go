package service

import (
	"context"
	"testing"
	"time"

	"github.com/coopportal/coopportal/internal/api/dto"
	"github.com/coopportal/coopportal/internal/domain/application"
	"github.com/coopportal/coopportal/internal/domain/position"
	"github.com/coopportal/coopportal/internal/domain/student"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/testutil"
	"github.com/coopportal/coopportal/internal/types"
	"github.com/stretchr/testify/suite"
)

type ApplicationServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  ApplicationService
	params   ServiceParams
	student  *student.Student
	position *position.Position
}

func TestApplicationService(t *testing.T) {
	suite.Run(t, new(ApplicationServiceSuite))
}

func (s *ApplicationServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.params = ServiceParams{
		Logger:          s.GetLogger(),
		Config:          s.GetConfig(),
		DB:              s.GetDB(),
		UserRepo:        stores.UserRepo,
		StudentRepo:     stores.StudentRepo,
		PositionRepo:    stores.PositionRepo,
		ApplicationRepo: stores.ApplicationRepo,
		ResumeRepo:      stores.ResumeRepo,
		SuggestionRepo:  stores.SuggestionRepo,
		GradeRepo:       stores.GradeRepo,
		CoopRepo:        stores.CoopRepo,
	}
	s.service = NewApplicationService(s.params)

	s.student = &student.Student{
		UserID:   "user_01",
		FullName: "Dana Whitfield",
		Email:    "dana@example.edu",
	}
	s.NoError(stores.StudentRepo.Create(s.GetContext(), s.student))

	s.position = &position.Position{
		ID:           "pos_01",
		HRID:         "user_hr_01",
		Title:        "Backend Intern",
		Description:  "Work on the billing pipeline",
		Requirements: "Go, SQL",
		Status:       types.PositionStatusActive,
		PostedDate:   s.GetNow(),
	}
	s.NoError(stores.PositionRepo.Create(s.GetContext(), s.position))
	stores.PositionRepo.SetCompany(s.position.HRID, "Acme Corp")
}

func (s *ApplicationServiceSuite) submit() *application.Application {
	a, err := s.service.Submit(s.GetContext(), s.student.UserID, &dto.SubmitApplicationRequest{
		PositionID: s.position.ID,
	})
	s.NoError(err)
	return a
}

func (s *ApplicationServiceSuite) TestSubmitStartsPending() {
	a := s.submit()
	s.Equal(types.ApplicationStatusPending, a.Status)
	s.Equal(s.student.UserID, a.StudentID)
	s.NotEmpty(a.ID)
}

func (s *ApplicationServiceSuite) TestSubmitUnknownPosition() {
	_, err := s.service.Submit(s.GetContext(), s.student.UserID, &dto.SubmitApplicationRequest{
		PositionID: "pos_missing",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ApplicationServiceSuite) TestSubmitMissingPositionID() {
	_, err := s.service.Submit(s.GetContext(), s.student.UserID, &dto.SubmitApplicationRequest{})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ApplicationServiceSuite) TestWithdrawPending() {
	a := s.submit()

	err := s.service.Withdraw(s.GetContext(), s.student.UserID, a.ID)
	s.NoError(err)

	_, err = s.GetStores().ApplicationRepo.Get(s.GetContext(), a.ID)
	s.True(ierr.IsNotFound(err))
}

func (s *ApplicationServiceSuite) TestWithdrawDecidedApplicationRefused() {
	a := s.submit()
	s.NoError(s.GetStores().ApplicationRepo.UpdateStatus(s.GetContext(), a.ID, types.ApplicationStatusAccepted))

	err := s.service.Withdraw(s.GetContext(), s.student.UserID, a.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	// Row untouched.
	kept, getErr := s.GetStores().ApplicationRepo.Get(s.GetContext(), a.ID)
	s.NoError(getErr)
	s.Equal(types.ApplicationStatusAccepted, kept.Status)
}

func (s *ApplicationServiceSuite) TestWithdrawAnotherStudentsApplication() {
	a := s.submit()

	err := s.service.Withdraw(s.GetContext(), "user_02", a.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ApplicationServiceSuite) TestWithdrawMissingApplication() {
	err := s.service.Withdraw(s.GetContext(), s.student.UserID, "app_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ApplicationServiceSuite) TestDuplicateSubmissionRanking() {
	stores := s.GetStores()
	older := &application.Application{
		ID:         "app_old",
		StudentID:  s.student.UserID,
		PositionID: s.position.ID,
		SentOn:     s.GetNow().Add(-48 * time.Hour),
		Status:     types.ApplicationStatusPending,
	}
	s.NoError(stores.ApplicationRepo.Create(s.GetContext(), older))

	newer := s.submit()

	active, err := s.service.ListActive(s.GetContext(), s.student.UserID)
	s.NoError(err)
	s.Len(active, 1)
	s.Equal(newer.ID, active[0].ID)
	s.Equal("Backend Intern", active[0].Title)
	s.Equal("Acme Corp", active[0].CompanyName)

	history, err := s.service.ListHistory(s.GetContext(), s.student.UserID)
	s.NoError(err)
	s.Len(history, 1)
	s.Equal(older.ID, history[0].ID)
}

func (s *ApplicationServiceSuite) TestDecidedApplicationMovesToHistory() {
	a := s.submit()
	s.NoError(s.GetStores().ApplicationRepo.UpdateStatus(s.GetContext(), a.ID, types.ApplicationStatusRejected))

	_, err := s.service.ListActive(s.GetContext(), s.student.UserID)
	s.True(ierr.IsNotFound(err))

	history, err := s.service.ListHistory(s.GetContext(), s.student.UserID)
	s.NoError(err)
	s.Len(history, 1)
	s.Equal(a.ID, history[0].ID)
}

func (s *ApplicationServiceSuite) TestListActiveEmptyIsNotFound() {
	_, err := s.service.ListActive(s.GetContext(), s.student.UserID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ApplicationServiceSuite) TestListHistoryEmptyIsOK() {
	history, err := s.service.ListHistory(s.GetContext(), s.student.UserID)
	s.NoError(err)
	s.Empty(history)
}

func (s *ApplicationServiceSuite) hrContext() context.Context {
	return testutil.ContextWithCaller("user_hr_01", types.RoleHR)
}

func (s *ApplicationServiceSuite) TestAcceptPendingApplication() {
	a := s.submit()

	review, err := s.service.UpdateStatus(s.hrContext(), a.ID, &dto.UpdateApplicationStatusRequest{
		Status: types.ApplicationStatusAccepted,
	})
	s.NoError(err)
	s.Equal(types.ApplicationStatusAccepted, review.Status)
	s.Equal("Dana Whitfield", review.StudentName)
	s.Equal("Backend Intern", review.PositionTitle)
}

func (s *ApplicationServiceSuite) TestTerminalStatusIsImmutable() {
	a := s.submit()
	_, err := s.service.UpdateStatus(s.hrContext(), a.ID, &dto.UpdateApplicationStatusRequest{
		Status: types.ApplicationStatusAccepted,
	})
	s.NoError(err)

	_, err = s.service.UpdateStatus(s.hrContext(), a.ID, &dto.UpdateApplicationStatusRequest{
		Status: types.ApplicationStatusRejected,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	kept, getErr := s.GetStores().ApplicationRepo.Get(s.GetContext(), a.ID)
	s.NoError(getErr)
	s.Equal(types.ApplicationStatusAccepted, kept.Status)
}

func (s *ApplicationServiceSuite) TestSameStatusUpdateIsNoOp() {
	a := s.submit()
	_, err := s.service.UpdateStatus(s.hrContext(), a.ID, &dto.UpdateApplicationStatusRequest{
		Status: types.ApplicationStatusAccepted,
	})
	s.NoError(err)

	review, err := s.service.UpdateStatus(s.hrContext(), a.ID, &dto.UpdateApplicationStatusRequest{
		Status: types.ApplicationStatusAccepted,
	})
	s.NoError(err)
	s.Equal(types.ApplicationStatusAccepted, review.Status)
}

func (s *ApplicationServiceSuite) TestNonHRCannotDecide() {
	a := s.submit()

	ctx := testutil.ContextWithCaller(s.student.UserID, types.RoleStudent)
	_, err := s.service.UpdateStatus(ctx, a.ID, &dto.UpdateApplicationStatusRequest{
		Status: types.ApplicationStatusAccepted,
	})
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *ApplicationServiceSuite) TestListForReviewDefaultsToPending() {
	s.submit()

	reviews, err := s.service.ListForReview(s.GetContext(), "")
	s.NoError(err)
	s.Len(reviews, 1)
	s.Equal(types.ApplicationStatusPending, reviews[0].Status)
}

func (s *ApplicationServiceSuite) TestListForReviewRejectsUnknownStatus() {
	_, err := s.service.ListForReview(s.GetContext(), types.ApplicationStatus("Open"))
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

// Walks the resubmission scenario end to end: reject, resubmit, accept.
func (s *ApplicationServiceSuite) TestRejectionThenResubmission() {
	first := s.submit()
	_, err := s.service.UpdateStatus(s.hrContext(), first.ID, &dto.UpdateApplicationStatusRequest{
		Status: types.ApplicationStatusRejected,
	})
	s.NoError(err)

	second, err := s.service.Submit(s.GetContext(), s.student.UserID, &dto.SubmitApplicationRequest{
		PositionID: s.position.ID,
	})
	s.NoError(err)

	active, err := s.service.ListActive(s.GetContext(), s.student.UserID)
	s.NoError(err)
	s.Len(active, 1)
	s.Equal(second.ID, active[0].ID)

	history, err := s.service.ListHistory(s.GetContext(), s.student.UserID)
	s.NoError(err)
	s.Len(history, 1)
	s.Equal(first.ID, history[0].ID)

	_, err = s.service.UpdateStatus(s.hrContext(), second.ID, &dto.UpdateApplicationStatusRequest{
		Status: types.ApplicationStatusAccepted,
	})
	s.NoError(err)

	_, err = s.service.ListActive(s.GetContext(), s.student.UserID)
	s.True(ierr.IsNotFound(err))
}
