package service

import (
	"strings"
	"testing"
	"time"

	"github.com/coopportal/coopportal/internal/api/dto"
	"github.com/coopportal/coopportal/internal/domain/maintenance"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type MaintenanceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service MaintenanceService
}

func TestMaintenanceService(t *testing.T) {
	suite.Run(t, new(MaintenanceServiceSuite))
}

func (s *MaintenanceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	stores := s.GetStores()
	s.service = NewMaintenanceService(ServiceParams{
		Logger:         s.GetLogger(),
		Config:         s.GetConfig(),
		DB:             s.GetDB(),
		DatabaseRepo:   stores.DatabaseRepo,
		AlertRepo:      stores.AlertRepo,
		BackupRepo:     stores.BackupRepo,
		AlterationRepo: stores.AlterationRepo,
	})

	stores.DatabaseRepo.Seed(&maintenance.DatabaseInfo{
		ID:         "db_01",
		Name:       "portal",
		Version:    "15.4",
		Type:       "PostgreSQL",
		LastUpdate: s.GetNow(),
	})
}

func (s *MaintenanceServiceSuite) TestCreateBackupAssignsReference() {
	b, err := s.service.CreateBackup(s.GetContext(), &dto.CreateBackupRequest{
		Type:       "scheduled",
		BackupType: "full",
		Details:    "nightly run",
		DatabaseID: "db_01",
	})
	s.NoError(err)
	s.True(strings.HasPrefix(b.Reference, "BK-"))
	s.False(b.BackupDate.IsZero())
}

func (s *MaintenanceServiceSuite) TestUpdateBackupKeepsReference() {
	b, err := s.service.CreateBackup(s.GetContext(), &dto.CreateBackupRequest{
		Type:       "scheduled",
		BackupType: "full",
		DatabaseID: "db_01",
	})
	s.NoError(err)

	s.NoError(s.service.UpdateBackup(s.GetContext(), b.ID, &dto.UpdateBackupRequest{
		Type:       "manual",
		BackupType: "incremental",
		DatabaseID: "db_01",
	}))

	backups, err := s.service.ListBackups(s.GetContext())
	s.NoError(err)
	s.Len(backups, 1)
	s.Equal(b.Reference, backups[0].Reference)
	s.Equal("manual", backups[0].Type)
}

func (s *MaintenanceServiceSuite) TestPerformanceAlertsJoinDatabaseName() {
	_, err := s.service.CreateAlert(s.GetContext(), &dto.CreateAlertRequest{
		DatabaseID: "db_01",
		Metrics:    "cpu=91%",
		Alerts:     "high load",
		Severity:   "warning",
	})
	s.NoError(err)

	alerts, err := s.service.PerformanceAlerts(s.GetContext())
	s.NoError(err)
	s.Len(alerts, 1)
	s.Equal("portal", alerts[0].DatabaseName)
}

func (s *MaintenanceServiceSuite) TestUpdateMissingAlert() {
	err := s.service.UpdateAlert(s.GetContext(), "alert_missing", &dto.UpdateAlertRequest{
		DatabaseID: "db_01",
		Metrics:    "cpu=91%",
		Alerts:     "high load",
		Severity:   "warning",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *MaintenanceServiceSuite) TestAlterationDateDefaultsWhenOmitted() {
	a, err := s.service.CreateAlteration(s.GetContext(), &dto.CreateAlterationRequest{
		AlterationType: "schema change",
		DatabaseID:     "db_01",
	})
	s.NoError(err)
	s.False(a.AlterationDate.IsZero())

	when := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	b, err := s.service.CreateAlteration(s.GetContext(), &dto.CreateAlterationRequest{
		AlterationType: "reindex",
		AlterationDate: &when,
		DatabaseID:     "db_01",
	})
	s.NoError(err)
	s.Equal(when, b.AlterationDate)
}

func (s *MaintenanceServiceSuite) TestDeleteDatabase() {
	s.NoError(s.service.DeleteDatabase(s.GetContext(), "db_01"))

	dbs, err := s.service.ListDatabases(s.GetContext())
	s.NoError(err)
	s.Empty(dbs)

	err = s.service.DeleteDatabase(s.GetContext(), "db_01")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
