package dto

import (
	"time"

	"github.com/coopportal/coopportal/internal/validator"
)

// UpdateDatabaseRequest updates one monitored database entry.
type UpdateDatabaseRequest struct {
	Name    string `json:"name" binding:"required" validate:"required"`
	Version string `json:"version" binding:"required" validate:"required"`
	Type    string `json:"type" binding:"required" validate:"required"`
}

func (r *UpdateDatabaseRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// CreateAlertRequest records an alert-history row.
type CreateAlertRequest struct {
	DatabaseID string `json:"database_id" binding:"required" validate:"required"`
	Metrics    string `json:"metrics" binding:"required" validate:"required"`
	Alerts     string `json:"alerts" binding:"required" validate:"required"`
	Severity   string `json:"severity" binding:"required" validate:"required"`
}

func (r *CreateAlertRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// UpdateAlertRequest rewrites an alert-history row.
type UpdateAlertRequest struct {
	DatabaseID string `json:"database_id" binding:"required" validate:"required"`
	Metrics    string `json:"metrics" binding:"required" validate:"required"`
	Alerts     string `json:"alerts" binding:"required" validate:"required"`
	Severity   string `json:"severity" binding:"required" validate:"required"`
}

func (r *UpdateAlertRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// CreateBackupRequest records a backup run. The short reference code is
// server-assigned.
type CreateBackupRequest struct {
	Type       string     `json:"type" binding:"required" validate:"required"`
	BackupDate *time.Time `json:"backup_date,omitempty"`
	BackupType string     `json:"backup_type" binding:"required" validate:"required"`
	Details    string     `json:"details"`
	DatabaseID string     `json:"database_id" binding:"required" validate:"required"`
}

func (r *CreateBackupRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// UpdateBackupRequest rewrites a backup-history row; the reference is
// immutable.
type UpdateBackupRequest struct {
	Type       string     `json:"type" binding:"required" validate:"required"`
	BackupDate *time.Time `json:"backup_date,omitempty"`
	BackupType string     `json:"backup_type" binding:"required" validate:"required"`
	Details    string     `json:"details"`
	DatabaseID string     `json:"database_id" binding:"required" validate:"required"`
}

func (r *UpdateBackupRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// CreateAlterationRequest records a data alteration.
type CreateAlterationRequest struct {
	AlterationType string     `json:"alteration_type" binding:"required" validate:"required"`
	AlterationDate *time.Time `json:"alteration_date,omitempty"`
	DatabaseID     string     `json:"database_id" binding:"required" validate:"required"`
}

func (r *CreateAlterationRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// UpdateAlterationRequest rewrites a data-alteration row.
type UpdateAlterationRequest struct {
	AlterationType string     `json:"alteration_type" binding:"required" validate:"required"`
	AlterationDate *time.Time `json:"alteration_date,omitempty"`
	DatabaseID     string     `json:"database_id" binding:"required" validate:"required"`
}

func (r *UpdateAlterationRequest) Validate() error {
	return validator.ValidateRequest(r)
}
