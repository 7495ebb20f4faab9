package service

import (
	"testing"
	"time"

	"github.com/coopportal/coopportal/internal/api/dto"
	"github.com/coopportal/coopportal/internal/domain/resume"
	"github.com/coopportal/coopportal/internal/domain/student"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type ResumeServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ResumeService
}

func TestResumeService(t *testing.T) {
	suite.Run(t, new(ResumeServiceSuite))
}

func (s *ResumeServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.service = NewResumeService(ServiceParams{
		Logger:         s.GetLogger(),
		Config:         s.GetConfig(),
		DB:             s.GetDB(),
		ResumeRepo:     stores.ResumeRepo,
		SuggestionRepo: stores.SuggestionRepo,
	})

	s.NoError(stores.StudentRepo.Create(s.GetContext(), &student.Student{
		UserID:   "user_01",
		FullName: "Dana Whitfield",
		Email:    "dana@example.edu",
	}))
	s.NoError(stores.ResumeRepo.Create(s.GetContext(), &resume.Resume{
		ID:           "res_01",
		UserID:       "user_01",
		DocName:      "resume_v1.pdf",
		TimeUploaded: s.GetNow().Add(-24 * time.Hour),
	}))
}

func (s *ResumeServiceSuite) TestGetByStudent() {
	res, err := s.service.GetByStudent(s.GetContext(), "user_01")
	s.NoError(err)
	s.Equal("resume_v1.pdf", res.DocName)
}

func (s *ResumeServiceSuite) TestGetByStudentMissing() {
	_, err := s.service.GetByStudent(s.GetContext(), "user_02")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ResumeServiceSuite) TestUpdateDocName() {
	res, err := s.service.UpdateDocName(s.GetContext(), "user_01", &dto.UpdateResumeRequest{
		DocName: "resume_v2.pdf",
	})
	s.NoError(err)
	s.Equal("resume_v2.pdf", res.DocName)

	kept, err := s.service.GetByStudent(s.GetContext(), "user_01")
	s.NoError(err)
	s.Equal("resume_v2.pdf", kept.DocName)
}

func (s *ResumeServiceSuite) TestAddSuggestionToMissingResume() {
	_, err := s.service.AddSuggestion(s.GetContext(), "res_missing", &dto.CreateSuggestionRequest{
		SuggestionText: "Add a projects section",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ResumeServiceSuite) TestLatestSuggestionWinsInScreenings() {
	stores := s.GetStores()
	s.NoError(stores.SuggestionRepo.Create(s.GetContext(), &resume.Suggestion{
		ID:          "sugg_01",
		ResumeID:    "res_01",
		Text:        "Tighten the summary",
		TimeCreated: s.GetNow().Add(-2 * time.Hour),
	}))
	s.NoError(stores.SuggestionRepo.Create(s.GetContext(), &resume.Suggestion{
		ID:          "sugg_02",
		ResumeID:    "res_01",
		Text:        "Add a projects section",
		TimeCreated: s.GetNow().Add(-time.Hour),
	}))

	screenings, err := s.service.ListScreenings(s.GetContext())
	s.NoError(err)
	s.Len(screenings, 1)
	s.NotNil(screenings[0].LatestSuggestion)
	s.Equal("Add a projects section", *screenings[0].LatestSuggestion)
	s.Equal("Dana Whitfield", screenings[0].StudentName)
}

// Equal creation times must still resolve to exactly one row.
func (s *ResumeServiceSuite) TestLatestSuggestionTieBreak() {
	stores := s.GetStores()
	at := s.GetNow().Add(-time.Hour)
	s.NoError(stores.SuggestionRepo.Create(s.GetContext(), &resume.Suggestion{
		ID: "sugg_01", ResumeID: "res_01", Text: "first", TimeCreated: at,
	}))
	s.NoError(stores.SuggestionRepo.Create(s.GetContext(), &resume.Suggestion{
		ID: "sugg_02", ResumeID: "res_01", Text: "second", TimeCreated: at,
	}))

	latest, err := stores.SuggestionRepo.Latest(s.GetContext(), "res_01")
	s.NoError(err)
	s.Equal("sugg_02", latest.ID)
}

func (s *ResumeServiceSuite) TestScreeningWithoutSuggestions() {
	screenings, err := s.service.ListScreenings(s.GetContext())
	s.NoError(err)
	s.Len(screenings, 1)
	s.Nil(screenings[0].LatestSuggestion)
}

func (s *ResumeServiceSuite) TestAddSuggestionThenList() {
	sg, err := s.service.AddSuggestion(s.GetContext(), "res_01", &dto.CreateSuggestionRequest{
		SuggestionText: "Quantify your impact",
	})
	s.NoError(err)
	s.NotEmpty(sg.ID)

	suggestions, err := s.service.ListSuggestions(s.GetContext(), "user_01")
	s.NoError(err)
	s.Len(suggestions, 1)
	s.Equal("Quantify your impact", suggestions[0].Text)
}
