package dto

import "github.com/coopportal/coopportal/internal/validator"

// UpdateResumeRequest renames the student's resume document.
type UpdateResumeRequest struct {
	DocName string `json:"doc_name" binding:"required" validate:"required"`
}

func (r *UpdateResumeRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// CreateSuggestionRequest attaches HR feedback to a resume.
type CreateSuggestionRequest struct {
	SuggestionText string `json:"suggestion_text" binding:"required" validate:"required"`
}

func (r *CreateSuggestionRequest) Validate() error {
	return validator.ValidateRequest(r)
}
