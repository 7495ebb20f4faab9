package v1

import (
	"net/http"

	"github.com/coopportal/coopportal/internal/api/dto"
	"github.com/coopportal/coopportal/internal/domain/application"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/logger"
	"github.com/coopportal/coopportal/internal/service"
	"github.com/gin-gonic/gin"
)

// StudentHandler serves the student dashboard: profile, grades, co-ops,
// resume and the application lifecycle endpoints.
type StudentHandler struct {
	studentService     service.StudentService
	resumeService      service.ResumeService
	applicationService service.ApplicationService
	positionService    service.PositionService
	log                *logger.Logger
}

func NewStudentHandler(
	studentService service.StudentService,
	resumeService service.ResumeService,
	applicationService service.ApplicationService,
	positionService service.PositionService,
	log *logger.Logger,
) *StudentHandler {
	return &StudentHandler{
		studentService:     studentService,
		resumeService:      resumeService,
		applicationService: applicationService,
		positionService:    positionService,
		log:                log,
	}
}

func (h *StudentHandler) GetInfo(c *gin.Context) {
	ctx := c.Request.Context()
	profile, err := h.studentService.GetProfile(ctx, c.Param("studentId"))
	if err != nil {
		h.log.Error("Failed to get student profile", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *StudentHandler) ListGrades(c *gin.Context) {
	ctx := c.Request.Context()
	grades, err := h.studentService.ListGrades(ctx, c.Param("studentId"))
	if err != nil {
		h.log.Error("Failed to list grades", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, grades)
}

func (h *StudentHandler) ListCoops(c *gin.Context) {
	ctx := c.Request.Context()
	coops, err := h.studentService.ListCoops(ctx, c.Param("studentId"))
	if err != nil {
		h.log.Error("Failed to list co-ops", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, coops)
}

func (h *StudentHandler) GetResume(c *gin.Context) {
	ctx := c.Request.Context()
	res, err := h.resumeService.GetByStudent(ctx, c.Param("studentId"))
	if err != nil {
		h.log.Error("Failed to get resume", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *StudentHandler) UpdateResume(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UpdateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	res, err := h.resumeService.UpdateDocName(ctx, c.Param("studentId"), &req)
	if err != nil {
		h.log.Error("Failed to update resume", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *StudentHandler) ListSuggestions(c *gin.Context) {
	ctx := c.Request.Context()
	suggestions, err := h.resumeService.ListSuggestions(ctx, c.Param("studentId"))
	if err != nil {
		h.log.Error("Failed to list suggestions", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, suggestions)
}

func (h *StudentHandler) ListOpenPositions(c *gin.Context) {
	ctx := c.Request.Context()
	positions, err := h.positionService.ListActive(ctx)
	if err != nil {
		h.log.Error("Failed to list open positions", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, positions)
}

func (h *StudentHandler) ListActiveApplications(c *gin.Context) {
	ctx := c.Request.Context()
	details, err := h.applicationService.ListActive(ctx, c.Param("studentId"))
	if err != nil {
		h.log.Error("Failed to list active applications", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *StudentHandler) ListApplicationHistory(c *gin.Context) {
	ctx := c.Request.Context()
	details, err := h.applicationService.ListHistory(ctx, c.Param("studentId"))
	if err != nil {
		h.log.Error("Failed to list application history", "error", err)
		c.Error(err)
		return
	}
	if details == nil {
		details = []*application.Detail{}
	}
	c.JSON(http.StatusOK, details)
}

func (h *StudentHandler) SubmitApplication(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	a, err := h.applicationService.Submit(ctx, c.Param("studentId"), &req)
	if err != nil {
		h.log.Error("Failed to submit application", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewApplicationResponse(a))
}

func (h *StudentHandler) WithdrawApplication(c *gin.Context) {
	ctx := c.Request.Context()
	err := h.applicationService.Withdraw(ctx, c.Param("studentId"), c.Param("applicationId"))
	if err != nil {
		h.log.Error("Failed to withdraw application", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application cancelled successfully"})
}
