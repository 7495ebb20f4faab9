package service

import (
	"testing"
	"time"

	"github.com/coopportal/coopportal/internal/api/dto"
	"github.com/coopportal/coopportal/internal/domain/application"
	"github.com/coopportal/coopportal/internal/domain/position"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/testutil"
	"github.com/coopportal/coopportal/internal/types"
	"github.com/stretchr/testify/suite"
)

type PositionServiceSuite struct {
	testutil.BaseServiceTestSuite
	service PositionService
}

func TestPositionService(t *testing.T) {
	suite.Run(t, new(PositionServiceSuite))
}

func (s *PositionServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.service = NewPositionService(ServiceParams{
		Logger:          s.GetLogger(),
		Config:          s.GetConfig(),
		DB:              s.GetDB(),
		PositionRepo:    stores.PositionRepo,
		ApplicationRepo: stores.ApplicationRepo,
	})
}

func (s *PositionServiceSuite) seedPosition(id string) *position.Position {
	p := &position.Position{
		ID:           id,
		HRID:         "user_hr_01",
		Title:        "Data Intern",
		Description:  "Reporting pipelines",
		Requirements: "SQL",
		Status:       types.PositionStatusActive,
		PostedDate:   s.GetNow(),
	}
	s.NoError(s.GetStores().PositionRepo.Create(s.GetContext(), p))
	return p
}

func (s *PositionServiceSuite) seedApplication(positionID string) {
	s.NoError(s.GetStores().ApplicationRepo.Create(s.GetContext(), &application.Application{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_APPLICATION),
		StudentID:  "user_01",
		PositionID: positionID,
		SentOn:     s.GetNow().Add(-time.Hour),
		Status:     types.ApplicationStatusPending,
	}))
}

func (s *PositionServiceSuite) TestCreateDefaultsToActive() {
	p, err := s.service.Create(s.GetContext(), &dto.CreatePositionRequest{
		HRID:         "user_hr_01",
		Title:        "QA Intern",
		Description:  "Test the portal",
		Requirements: "Curiosity",
	})
	s.NoError(err)
	s.Equal(types.PositionStatusActive, p.Status)
	s.NotEmpty(p.ID)
	s.False(p.PostedDate.IsZero())
}

func (s *PositionServiceSuite) TestDeleteWithoutApplicationsRemovesRow() {
	p := s.seedPosition("pos_01")

	outcome, err := s.service.Delete(s.GetContext(), p.ID)
	s.NoError(err)
	s.Equal(DeleteOutcomeDeleted, outcome)

	_, err = s.service.Get(s.GetContext(), p.ID)
	s.True(ierr.IsNotFound(err))
}

func (s *PositionServiceSuite) TestDeleteWithApplicationsDeactivates() {
	p := s.seedPosition("pos_01")
	s.seedApplication(p.ID)

	outcome, err := s.service.Delete(s.GetContext(), p.ID)
	s.NoError(err)
	s.Equal(DeleteOutcomeDeactivated, outcome)

	kept, err := s.service.Get(s.GetContext(), p.ID)
	s.NoError(err)
	s.Equal(types.PositionStatusInactive, kept.Status)
}

// A decided application still protects the position from hard deletion.
func (s *PositionServiceSuite) TestDecidedApplicationStillProtects() {
	p := s.seedPosition("pos_01")
	s.seedApplication(p.ID)
	apps := s.GetStores().ApplicationRepo
	reviews, err := apps.ListCurrentByStatus(s.GetContext(), types.ApplicationStatusPending)
	s.NoError(err)
	s.Len(reviews, 1)
	s.NoError(apps.UpdateStatus(s.GetContext(), reviews[0].ID, types.ApplicationStatusRejected))

	outcome, err := s.service.Delete(s.GetContext(), p.ID)
	s.NoError(err)
	s.Equal(DeleteOutcomeDeactivated, outcome)
}

func (s *PositionServiceSuite) TestRepeatedDeleteStaysDeactivated() {
	p := s.seedPosition("pos_01")
	s.seedApplication(p.ID)

	first, err := s.service.Delete(s.GetContext(), p.ID)
	s.NoError(err)
	s.Equal(DeleteOutcomeDeactivated, first)

	second, err := s.service.Delete(s.GetContext(), p.ID)
	s.NoError(err)
	s.Equal(DeleteOutcomeDeactivated, second)

	kept, err := s.service.Get(s.GetContext(), p.ID)
	s.NoError(err)
	s.Equal(types.PositionStatusInactive, kept.Status)
}

func (s *PositionServiceSuite) TestDeleteMissingPosition() {
	_, err := s.service.Delete(s.GetContext(), "pos_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PositionServiceSuite) TestNonHRCannotDelete() {
	p := s.seedPosition("pos_01")

	ctx := testutil.ContextWithCaller("user_01", types.RoleStudent)
	_, err := s.service.Delete(ctx, p.ID)
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *PositionServiceSuite) TestListWithCounts() {
	p := s.seedPosition("pos_01")
	s.seedPosition("pos_02")
	s.seedApplication(p.ID)
	s.seedApplication(p.ID)

	rows, err := s.service.ListWithCounts(s.GetContext())
	s.NoError(err)
	s.Len(rows, 2)

	counts := map[string]int{}
	for _, row := range rows {
		counts[row.ID] = row.ApplicationCount
	}
	s.Equal(2, counts["pos_01"])
	s.Equal(0, counts["pos_02"])
}

func (s *PositionServiceSuite) TestAnalyticsBreakdown() {
	p := s.seedPosition("pos_01")
	apps := s.GetStores().ApplicationRepo
	statuses := []types.ApplicationStatus{
		types.ApplicationStatusPending,
		types.ApplicationStatusAccepted,
		types.ApplicationStatusRejected,
		types.ApplicationStatusRejected,
	}
	for i, status := range statuses {
		s.NoError(apps.Create(s.GetContext(), &application.Application{
			ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_APPLICATION),
			StudentID:  "user_01",
			PositionID: p.ID,
			SentOn:     s.GetNow().Add(time.Duration(i) * time.Minute),
			Status:     status,
		}))
	}

	rows, err := s.service.Analytics(s.GetContext())
	s.NoError(err)
	s.Len(rows, 1)
	s.Equal(4, rows[0].TotalApplications)
	s.Equal(1, rows[0].Accepted)
	s.Equal(2, rows[0].Rejected)
	s.Equal(1, rows[0].Pending)
}
