package dto

import (
	"time"

	"github.com/coopportal/coopportal/internal/domain/grade"
	"github.com/coopportal/coopportal/internal/domain/student"
	"github.com/coopportal/coopportal/internal/validator"
)

// CreateStudentRequest creates the user row and the student row in one unit
// of work; the response carries the server-assigned user_id.
type CreateStudentRequest struct {
	FullName string     `json:"full_name" binding:"required" validate:"required"`
	Email    string     `json:"email" binding:"required,email" validate:"required,email"`
	DOB      *time.Time `json:"dob,omitempty"`
	Gender   *string    `json:"gender,omitempty"`
}

func (r *CreateStudentRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// UpdateStudentRequest updates the student's own fields.
type UpdateStudentRequest struct {
	FullName string `json:"full_name" binding:"required" validate:"required"`
	Email    string `json:"email" binding:"required,email" validate:"required,email"`
}

func (r *UpdateStudentRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type CreateStudentResponse struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// StudentDetailResponse is the admin view of one student with grade rows.
type StudentDetailResponse struct {
	Student *student.Student `json:"student"`
	Grades  []*grade.Record  `json:"grades"`
}
