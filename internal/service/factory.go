package service

import (
	"github.com/coopportal/coopportal/internal/config"
	"github.com/coopportal/coopportal/internal/domain/application"
	"github.com/coopportal/coopportal/internal/domain/coop"
	"github.com/coopportal/coopportal/internal/domain/grade"
	"github.com/coopportal/coopportal/internal/domain/maintenance"
	"github.com/coopportal/coopportal/internal/domain/position"
	"github.com/coopportal/coopportal/internal/domain/resume"
	"github.com/coopportal/coopportal/internal/domain/student"
	"github.com/coopportal/coopportal/internal/domain/user"
	"github.com/coopportal/coopportal/internal/logger"
	"github.com/coopportal/coopportal/internal/postgres"
)

// ServiceParams holds the common dependencies services are built from.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient

	// Repositories
	UserRepo        user.Repository
	StudentRepo     student.Repository
	PositionRepo    position.Repository
	ApplicationRepo application.Repository
	ResumeRepo      resume.Repository
	SuggestionRepo  resume.SuggestionRepository
	GradeRepo       grade.Repository
	CoopRepo        coop.Repository
	DatabaseRepo    maintenance.DatabaseRepository
	AlertRepo       maintenance.AlertRepository
	BackupRepo      maintenance.BackupRepository
	AlterationRepo  maintenance.AlterationRepository
}

func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	userRepo user.Repository,
	studentRepo student.Repository,
	positionRepo position.Repository,
	applicationRepo application.Repository,
	resumeRepo resume.Repository,
	suggestionRepo resume.SuggestionRepository,
	gradeRepo grade.Repository,
	coopRepo coop.Repository,
	databaseRepo maintenance.DatabaseRepository,
	alertRepo maintenance.AlertRepository,
	backupRepo maintenance.BackupRepository,
	alterationRepo maintenance.AlterationRepository,
) ServiceParams {
	return ServiceParams{
		Logger:          logger,
		Config:          config,
		DB:              db,
		UserRepo:        userRepo,
		StudentRepo:     studentRepo,
		PositionRepo:    positionRepo,
		ApplicationRepo: applicationRepo,
		ResumeRepo:      resumeRepo,
		SuggestionRepo:  suggestionRepo,
		GradeRepo:       gradeRepo,
		CoopRepo:        coopRepo,
		DatabaseRepo:    databaseRepo,
		AlertRepo:       alertRepo,
		BackupRepo:      backupRepo,
		AlterationRepo:  alterationRepo,
	}
}
