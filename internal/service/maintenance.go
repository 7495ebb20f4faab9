package service

import (
	"context"
	"time"

	"github.com/coopportal/coopportal/internal/api/dto"
	"github.com/coopportal/coopportal/internal/domain/maintenance"
	"github.com/coopportal/coopportal/internal/types"
)

// MaintenanceService backs the maintenance-staff console: database inventory,
// performance alerts, backup history and data alterations.
type MaintenanceService interface {
	ListDatabases(ctx context.Context) ([]*maintenance.DatabaseInfo, error)
	UpdateDatabase(ctx context.Context, databaseID string, req *dto.UpdateDatabaseRequest) error
	DeleteDatabase(ctx context.Context, databaseID string) error

	PerformanceAlerts(ctx context.Context) ([]*maintenance.AlertWithDatabase, error)

	ListAlerts(ctx context.Context) ([]*maintenance.AlertWithDatabase, error)
	CreateAlert(ctx context.Context, req *dto.CreateAlertRequest) (*maintenance.Alert, error)
	UpdateAlert(ctx context.Context, alertID string, req *dto.UpdateAlertRequest) error
	DeleteAlert(ctx context.Context, alertID string) error

	ListBackups(ctx context.Context) ([]*maintenance.Backup, error)
	CreateBackup(ctx context.Context, req *dto.CreateBackupRequest) (*maintenance.Backup, error)
	UpdateBackup(ctx context.Context, backupID string, req *dto.UpdateBackupRequest) error
	DeleteBackup(ctx context.Context, backupID string) error

	ListAlterations(ctx context.Context) ([]*maintenance.Alteration, error)
	CreateAlteration(ctx context.Context, req *dto.CreateAlterationRequest) (*maintenance.Alteration, error)
	UpdateAlteration(ctx context.Context, alterationID string, req *dto.UpdateAlterationRequest) error
	DeleteAlteration(ctx context.Context, alterationID string) error
}

type maintenanceService struct {
	ServiceParams
}

func NewMaintenanceService(params ServiceParams) MaintenanceService {
	return &maintenanceService{ServiceParams: params}
}

func (s *maintenanceService) ListDatabases(ctx context.Context) ([]*maintenance.DatabaseInfo, error) {
	return s.DatabaseRepo.List(ctx)
}

func (s *maintenanceService) UpdateDatabase(ctx context.Context, databaseID string, req *dto.UpdateDatabaseRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.DatabaseRepo.Update(ctx, &maintenance.DatabaseInfo{
		ID:         databaseID,
		Name:       req.Name,
		Version:    req.Version,
		Type:       req.Type,
		LastUpdate: time.Now().UTC(),
	})
}

func (s *maintenanceService) DeleteDatabase(ctx context.Context, databaseID string) error {
	return s.DatabaseRepo.Delete(ctx, databaseID)
}

func (s *maintenanceService) PerformanceAlerts(ctx context.Context) ([]*maintenance.AlertWithDatabase, error) {
	return s.AlertRepo.ListByRecency(ctx)
}

func (s *maintenanceService) ListAlerts(ctx context.Context) ([]*maintenance.AlertWithDatabase, error) {
	return s.AlertRepo.List(ctx)
}

func (s *maintenanceService) CreateAlert(ctx context.Context, req *dto.CreateAlertRequest) (*maintenance.Alert, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	a := &maintenance.Alert{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ALERT),
		DatabaseID: req.DatabaseID,
		Metrics:    req.Metrics,
		Alerts:     req.Alerts,
		Severity:   req.Severity,
	}
	if err := s.AlertRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *maintenanceService) UpdateAlert(ctx context.Context, alertID string, req *dto.UpdateAlertRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.AlertRepo.Update(ctx, &maintenance.Alert{
		ID:         alertID,
		DatabaseID: req.DatabaseID,
		Metrics:    req.Metrics,
		Alerts:     req.Alerts,
		Severity:   req.Severity,
	})
}

func (s *maintenanceService) DeleteAlert(ctx context.Context, alertID string) error {
	return s.AlertRepo.Delete(ctx, alertID)
}

func (s *maintenanceService) ListBackups(ctx context.Context) ([]*maintenance.Backup, error) {
	return s.BackupRepo.List(ctx)
}

// CreateBackup assigns the short human-readable reference; clients never
// choose it.
func (s *maintenanceService) CreateBackup(ctx context.Context, req *dto.CreateBackupRequest) (*maintenance.Backup, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	backupDate := time.Now().UTC()
	if req.BackupDate != nil {
		backupDate = *req.BackupDate
	}

	b := &maintenance.Backup{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BACKUP),
		Reference:  types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_BACKUP),
		Type:       req.Type,
		BackupDate: backupDate,
		BackupType: req.BackupType,
		Details:    req.Details,
		DatabaseID: req.DatabaseID,
	}
	if err := s.BackupRepo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.Logger.Infow("backup recorded", "backup_id", b.ID, "reference", b.Reference)
	return b, nil
}

func (s *maintenanceService) UpdateBackup(ctx context.Context, backupID string, req *dto.UpdateBackupRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	backupDate := time.Now().UTC()
	if req.BackupDate != nil {
		backupDate = *req.BackupDate
	}

	return s.BackupRepo.Update(ctx, &maintenance.Backup{
		ID:         backupID,
		Type:       req.Type,
		BackupDate: backupDate,
		BackupType: req.BackupType,
		Details:    req.Details,
		DatabaseID: req.DatabaseID,
	})
}

func (s *maintenanceService) DeleteBackup(ctx context.Context, backupID string) error {
	return s.BackupRepo.Delete(ctx, backupID)
}

func (s *maintenanceService) ListAlterations(ctx context.Context) ([]*maintenance.Alteration, error) {
	return s.AlterationRepo.List(ctx)
}

func (s *maintenanceService) CreateAlteration(ctx context.Context, req *dto.CreateAlterationRequest) (*maintenance.Alteration, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	alterationDate := time.Now().UTC()
	if req.AlterationDate != nil {
		alterationDate = *req.AlterationDate
	}

	a := &maintenance.Alteration{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ALTERATION),
		AlterationType: req.AlterationType,
		AlterationDate: alterationDate,
		DatabaseID:     req.DatabaseID,
	}
	if err := s.AlterationRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *maintenanceService) UpdateAlteration(ctx context.Context, alterationID string, req *dto.UpdateAlterationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	alterationDate := time.Now().UTC()
	if req.AlterationDate != nil {
		alterationDate = *req.AlterationDate
	}

	return s.AlterationRepo.Update(ctx, &maintenance.Alteration{
		ID:             alterationID,
		AlterationType: req.AlterationType,
		AlterationDate: alterationDate,
		DatabaseID:     req.DatabaseID,
	})
}

func (s *maintenanceService) DeleteAlteration(ctx context.Context, alterationID string) error {
	return s.AlterationRepo.Delete(ctx, alterationID)
}
