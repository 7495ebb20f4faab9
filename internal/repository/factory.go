package repository

import (
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
	postgresRepo "github.com/coopportal/coopportal/internal/repository/postgres"
)

func NewUserRepository(db *postgres.DB, logger *logger.Logger) user.Repository {
	return postgresRepo.NewUserRepository(db, logger)
}

func NewStudentRepository(db *postgres.DB, logger *logger.Logger) student.Repository {
	return postgresRepo.NewStudentRepository(db, logger)
}

func NewPositionRepository(db *postgres.DB, logger *logger.Logger) position.Repository {
	return postgresRepo.NewPositionRepository(db, logger)
}

func NewApplicationRepository(db *postgres.DB, logger *logger.Logger) application.Repository {
	return postgresRepo.NewApplicationRepository(db, logger)
}

func NewResumeRepository(db *postgres.DB, logger *logger.Logger) resume.Repository {
	return postgresRepo.NewResumeRepository(db, logger)
}

func NewSuggestionRepository(db *postgres.DB, logger *logger.Logger) resume.SuggestionRepository {
	return postgresRepo.NewSuggestionRepository(db, logger)
}

func NewGradeRepository(db *postgres.DB, logger *logger.Logger) grade.Repository {
	return postgresRepo.NewGradeRepository(db, logger)
}

func NewCoopRepository(db *postgres.DB, logger *logger.Logger) coop.Repository {
	return postgresRepo.NewCoopRepository(db, logger)
}

func NewDatabaseRepository(db *postgres.DB, logger *logger.Logger) maintenance.DatabaseRepository {
	return postgresRepo.NewDatabaseRepository(db, logger)
}

func NewAlertRepository(db *postgres.DB, logger *logger.Logger) maintenance.AlertRepository {
	return postgresRepo.NewAlertRepository(db, logger)
}

func NewBackupRepository(db *postgres.DB, logger *logger.Logger) maintenance.BackupRepository {
	return postgresRepo.NewBackupRepository(db, logger)
}

func NewAlterationRepository(db *postgres.DB, logger *logger.Logger) maintenance.AlterationRepository {
	return postgresRepo.NewAlterationRepository(db, logger)
}
