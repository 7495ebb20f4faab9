package dto

import (
	"testing"

	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestSubmitApplicationRequestRequiresPosition(t *testing.T) {
	req := &SubmitApplicationRequest{}
	err := req.Validate()
	assert.Error(t, err)
	assert.True(t, ierr.IsValidation(err))

	req.PositionID = "pos_01"
	assert.NoError(t, req.Validate())
}

func TestUpdateApplicationStatusRequestAllowsKnownStatuses(t *testing.T) {
	for _, status := range []types.ApplicationStatus{
		types.ApplicationStatusPending,
		types.ApplicationStatusAccepted,
		types.ApplicationStatusRejected,
	} {
		req := &UpdateApplicationStatusRequest{Status: status}
		assert.NoError(t, req.Validate(), "status %s", status)
	}
}

func TestUpdateApplicationStatusRequestRejectsUnknownStatus(t *testing.T) {
	req := &UpdateApplicationStatusRequest{Status: types.ApplicationStatus("Withdrawn")}
	err := req.Validate()
	assert.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestCreatePositionRequestDefaultsToActive(t *testing.T) {
	req := &CreatePositionRequest{
		HRID:         "user_hr_01",
		Title:        "Backend Intern",
		Description:  "Build APIs",
		Requirements: "Go",
	}
	assert.NoError(t, req.Validate())
	assert.Equal(t, types.PositionStatusActive, req.Status)
}

func TestCreateStudentRequestValidatesEmail(t *testing.T) {
	req := &CreateStudentRequest{FullName: "Dana Whitfield", Email: "not-an-email"}
	err := req.Validate()
	assert.Error(t, err)
	assert.True(t, ierr.IsValidation(err))

	req.Email = "dana@example.edu"
	assert.NoError(t, req.Validate())
}
