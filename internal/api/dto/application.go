package dto

import (
	"time"

	"github.com/coopportal/coopportal/internal/domain/application"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/types"
	"github.com/coopportal/coopportal/internal/validator"
)

// SubmitApplicationRequest is the payload a student sends to apply to a
// position. Any client-supplied id is ignored; the server assigns one.
type SubmitApplicationRequest struct {
	PositionID string `json:"position_id" binding:"required" validate:"required"`
}

func (r *SubmitApplicationRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// UpdateApplicationStatusRequest is the HR decision payload.
type UpdateApplicationStatusRequest struct {
	Status types.ApplicationStatus `json:"status" binding:"required" validate:"required,oneof=Pending Accepted Rejected"`
}

func (r *UpdateApplicationStatusRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if !r.Status.Validate() {
		return ierr.NewErrorf("invalid application status %q", r.Status).
			WithHint("Status must be Pending, Accepted or Rejected").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ApplicationResponse is a bare application row.
type ApplicationResponse struct {
	ID         string                  `json:"application_id"`
	StudentID  string                  `json:"user_id"`
	PositionID string                  `json:"position_id"`
	SentOn     time.Time               `json:"sent_on"`
	Status     types.ApplicationStatus `json:"status"`
}

func NewApplicationResponse(a *application.Application) *ApplicationResponse {
	return &ApplicationResponse{
		ID:         a.ID,
		StudentID:  a.StudentID,
		PositionID: a.PositionID,
		SentOn:     a.SentOn,
		Status:     a.Status,
	}
}
