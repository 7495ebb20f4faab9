package testutil

import (
	"context"
	"time"

	"github.com/coopportal/coopportal/internal/config"
	"github.com/coopportal/coopportal/internal/logger"
	"github.com/coopportal/coopportal/internal/postgres"
	"github.com/coopportal/coopportal/internal/types"
	"github.com/coopportal/coopportal/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds every repository interface backed by an in-memory store.
type Stores struct {
	UserRepo        *InMemoryUserStore
	StudentRepo     *InMemoryStudentStore
	PositionRepo    *InMemoryPositionStore
	ApplicationRepo *InMemoryApplicationStore
	ResumeRepo      *InMemoryResumeStore
	SuggestionRepo  *InMemorySuggestionStore
	GradeRepo       *InMemoryGradeStore
	CoopRepo        *InMemoryCoopStore
	DatabaseRepo    *InMemoryDatabaseStore
	AlertRepo       *InMemoryAlertStore
	BackupRepo      *InMemoryBackupStore
	AlterationRepo  *InMemoryAlterationStore
}

// BaseServiceTestSuite provides common functionality for service test suites.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	db     postgres.IClient
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := config.GetDefaultConfig()
	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
	s.db = NewMockPostgresClient(s.logger)
}

func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		UserRepo:        NewInMemoryUserStore(),
		StudentRepo:     NewInMemoryStudentStore(),
		PositionRepo:    NewInMemoryPositionStore(),
		ApplicationRepo: NewInMemoryApplicationStore(),
		ResumeRepo:      NewInMemoryResumeStore(),
		SuggestionRepo:  NewInMemorySuggestionStore(),
		GradeRepo:       NewInMemoryGradeStore(),
		CoopRepo:        NewInMemoryCoopStore(),
		DatabaseRepo:    NewInMemoryDatabaseStore(),
		AlertRepo:       NewInMemoryAlertStore(),
		BackupRepo:      NewInMemoryBackupStore(),
		AlterationRepo:  NewInMemoryAlterationStore(),
	}

	// Wire the lookups the SQL joins provide.
	s.stores.UserRepo.Attach(s.stores.StudentRepo)
	s.stores.ApplicationRepo.Attach(s.stores.PositionRepo, s.stores.StudentRepo)
	s.stores.PositionRepo.Attach(s.stores.ApplicationRepo)
	s.stores.ResumeRepo.Attach(s.stores.StudentRepo, s.stores.SuggestionRepo)
	s.stores.GradeRepo.Attach(s.stores.StudentRepo)
	s.stores.AlertRepo.Attach(s.stores.DatabaseRepo)
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.UserRepo.Clear()
	s.stores.StudentRepo.Clear()
	s.stores.PositionRepo.Clear()
	s.stores.ApplicationRepo.Clear()
	s.stores.ResumeRepo.Clear()
	s.stores.SuggestionRepo.Clear()
	s.stores.GradeRepo.Clear()
	s.stores.CoopRepo.Clear()
	s.stores.DatabaseRepo.Clear()
	s.stores.AlertRepo.Clear()
	s.stores.BackupRepo.Clear()
	s.stores.AlterationRepo.Clear()
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

func (s *BaseServiceTestSuite) GetDB() postgres.IClient {
	return s.db
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}

// GetUUID returns a fresh identifier for test fixtures.
func (s *BaseServiceTestSuite) GetUUID() string {
	return types.GenerateUUID()
}
