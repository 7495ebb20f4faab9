package dto

import (
	"github.com/coopportal/coopportal/internal/types"
	"github.com/coopportal/coopportal/internal/validator"
)

// CreatePositionRequest is the HR payload for posting an internship.
// PostedDate is server-assigned.
type CreatePositionRequest struct {
	HRID         string               `json:"hr_id" binding:"required" validate:"required"`
	Title        string               `json:"title" binding:"required" validate:"required"`
	Description  string               `json:"description" binding:"required" validate:"required"`
	Requirements string               `json:"requirements" binding:"required" validate:"required"`
	Status       types.PositionStatus `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (r *CreatePositionRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Status == "" {
		r.Status = types.PositionStatusActive
	}
	return nil
}

// UpdatePositionRequest updates a posting in place.
type UpdatePositionRequest struct {
	Title        string               `json:"title" binding:"required" validate:"required"`
	Description  string               `json:"description" binding:"required" validate:"required"`
	Requirements string               `json:"requirements" binding:"required" validate:"required"`
	Status       types.PositionStatus `json:"status" binding:"required" validate:"required,oneof=Active Inactive"`
}

func (r *UpdatePositionRequest) Validate() error {
	return validator.ValidateRequest(r)
}
