package api

import (
	v1 "github.com/coopportal/coopportal/internal/api/v1"
	"github.com/coopportal/coopportal/internal/logger"
	"github.com/coopportal/coopportal/internal/rest/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health      *v1.HealthHandler
	Student     *v1.StudentHandler
	HR          *v1.HRHandler
	Admin       *v1.AdminHandler
	Maintenance *v1.MaintenanceHandler
}

func NewRouter(handlers Handlers, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.CallerIdentity,
		middleware.RequestLogger(log),
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)

	student := router.Group("/student")
	{
		student.GET("/:studentId/info", handlers.Student.GetInfo)
		student.GET("/:studentId/grades", handlers.Student.ListGrades)
		student.GET("/:studentId/coops", handlers.Student.ListCoops)
		student.GET("/:studentId/resume", handlers.Student.GetResume)
		student.PUT("/:studentId/resume", handlers.Student.UpdateResume)
		student.GET("/:studentId/resume/suggestions", handlers.Student.ListSuggestions)
		student.GET("/:studentId/applications/positions", handlers.Student.ListOpenPositions)
		student.GET("/:studentId/applications/active", handlers.Student.ListActiveApplications)
		student.GET("/:studentId/applications/history", handlers.Student.ListApplicationHistory)
		student.POST("/:studentId/applications", handlers.Student.SubmitApplication)
		student.DELETE("/:studentId/applications/:applicationId", handlers.Student.WithdrawApplication)
	}

	hr := router.Group("/hr")
	{
		hr.GET("/internships", handlers.HR.ListInternships)
		hr.POST("/internships", handlers.HR.CreateInternship)
		hr.GET("/internships/:positionId", handlers.HR.GetInternship)
		hr.PUT("/internships/:positionId", handlers.HR.UpdateInternship)
		hr.DELETE("/internships/:positionId", handlers.HR.DeleteInternship)
		hr.GET("/applications", handlers.HR.ListApplications)
		hr.PUT("/applications/:applicationId", handlers.HR.UpdateApplicationStatus)
		hr.GET("/resumes", handlers.HR.ListResumes)
		hr.POST("/resumes/:resumeId/suggestions", handlers.HR.AddSuggestion)
		hr.GET("/analytics/positions", handlers.HR.PositionAnalytics)
	}

	admin := router.Group("/admin")
	{
		admin.GET("/students", handlers.Admin.ListStudents)
		admin.POST("/students", handlers.Admin.AddStudent)
		admin.GET("/students/:userId", handlers.Admin.GetStudent)
		admin.PUT("/students/:userId", handlers.Admin.UpdateStudent)
		admin.DELETE("/students/:userId", handlers.Admin.DeleteStudent)
		admin.GET("/academic-records", handlers.Admin.ListAcademicRecords)
		admin.POST("/academic-records", handlers.Admin.AddAcademicRecord)
		admin.GET("/coops", handlers.Admin.ListCoops)
		admin.POST("/coops", handlers.Admin.AddCoop)
		admin.PUT("/coops/:coopId/approve", handlers.Admin.ApproveCoop)
		admin.DELETE("/coops/:coopId", handlers.Admin.DeleteCoop)
		admin.GET("/reports", handlers.Admin.GetComplianceSummary)
		admin.POST("/reports", handlers.Admin.GenerateReport)
		admin.GET("/analytics", handlers.Admin.GetAnalytics)
	}

	maintenance := router.Group("/api/maintenance")
	{
		maintenance.GET("/databases", handlers.Maintenance.ListDatabases)
		maintenance.PUT("/databases/:databaseId", handlers.Maintenance.UpdateDatabase)
		maintenance.DELETE("/databases/:databaseId", handlers.Maintenance.DeleteDatabase)
		maintenance.GET("/performance", handlers.Maintenance.GetPerformance)
		maintenance.GET("/backups", handlers.Maintenance.ListBackups)
		maintenance.POST("/backups", handlers.Maintenance.CreateBackup)
		maintenance.PUT("/backups/:backupId", handlers.Maintenance.UpdateBackup)
		maintenance.DELETE("/backups/:backupId", handlers.Maintenance.DeleteBackup)
		maintenance.GET("/alerts", handlers.Maintenance.ListAlerts)
		maintenance.POST("/alerts", handlers.Maintenance.CreateAlert)
		maintenance.PUT("/alerts/:alertId", handlers.Maintenance.UpdateAlert)
		maintenance.DELETE("/alerts/:alertId", handlers.Maintenance.DeleteAlert)
		maintenance.GET("/alterations", handlers.Maintenance.ListAlterations)
		maintenance.POST("/alterations", handlers.Maintenance.CreateAlteration)
		maintenance.PUT("/alterations/:alterationId", handlers.Maintenance.UpdateAlteration)
		maintenance.DELETE("/alterations/:alterationId", handlers.Maintenance.DeleteAlteration)
	}

	return router
}
