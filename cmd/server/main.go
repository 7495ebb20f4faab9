package main

import (
	"context"
	"time"

	"github.com/coopportal/coopportal/internal/api"
	v1 "github.com/coopportal/coopportal/internal/api/v1"
	"github.com/coopportal/coopportal/internal/config"
	"github.com/coopportal/coopportal/internal/logger"
	"github.com/coopportal/coopportal/internal/postgres"
	"github.com/coopportal/coopportal/internal/repository"
	"github.com/coopportal/coopportal/internal/service"
	"github.com/coopportal/coopportal/internal/types"
	"github.com/coopportal/coopportal/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Postgres
			postgres.NewDB,
			postgres.NewClient,

			// Repositories
			repository.NewUserRepository,
			repository.NewStudentRepository,
			repository.NewPositionRepository,
			repository.NewApplicationRepository,
			repository.NewResumeRepository,
			repository.NewSuggestionRepository,
			repository.NewGradeRepository,
			repository.NewCoopRepository,
			repository.NewDatabaseRepository,
			repository.NewAlertRepository,
			repository.NewBackupRepository,
			repository.NewAlterationRepository,

			// Services
			service.NewServiceParams,
			service.NewStudentService,
			service.NewResumeService,
			service.NewApplicationService,
			service.NewPositionService,
			service.NewAdminService,
			service.NewMaintenanceService,

			// Handlers
			v1.NewHealthHandler,
			v1.NewStudentHandler,
			v1.NewHRHandler,
			v1.NewAdminHandler,
			v1.NewMaintenanceHandler,
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startAPIServer),
	)

	app.Run()
}

func provideHandlers(
	health *v1.HealthHandler,
	student *v1.StudentHandler,
	hr *v1.HRHandler,
	admin *v1.AdminHandler,
	maintenance *v1.MaintenanceHandler,
) api.Handlers {
	return api.Handlers{
		Health:      health,
		Student:     student,
		HR:          hr,
		Admin:       admin,
		Maintenance: maintenance,
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	if cfg.Deployment.Mode == types.ModeProd {
		gin.SetMode(gin.ReleaseMode)
	}
	return api.NewRouter(handlers, log)
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	db *postgres.DB,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting API server...")
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			db.Close()
			return nil
		},
	})
}
