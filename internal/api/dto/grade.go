package dto

import (
	"github.com/coopportal/coopportal/internal/validator"
	"github.com/shopspring/decimal"
)

// CreateGradeRequest records one course grade for a student.
type CreateGradeRequest struct {
	StudentID  string          `json:"student_id" binding:"required" validate:"required"`
	CourseName string          `json:"course_name" binding:"required" validate:"required"`
	Grade      decimal.Decimal `json:"grade" binding:"required" validate:"required"`
	RecordedBy string          `json:"recorded_by" binding:"required" validate:"required"`
}

func (r *CreateGradeRequest) Validate() error {
	return validator.ValidateRequest(r)
}
