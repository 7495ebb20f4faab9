package dto

import (
	"time"

	"github.com/coopportal/coopportal/internal/validator"
)

// CreateCoopRequest records a co-op placement; approval is a separate admin
// action.
type CreateCoopRequest struct {
	StudentID   string     `json:"student_id" binding:"required" validate:"required"`
	CompanyName string     `json:"company_name" binding:"required" validate:"required"`
	StartDate   time.Time  `json:"start_date" binding:"required" validate:"required"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

func (r *CreateCoopRequest) Validate() error {
	return validator.ValidateRequest(r)
}
