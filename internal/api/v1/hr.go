package v1

import (
	"net/http"

	"github.com/coopportal/coopportal/internal/api/dto"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/logger"
	"github.com/coopportal/coopportal/internal/service"
	"github.com/coopportal/coopportal/internal/types"
	"github.com/gin-gonic/gin"
)

// HRHandler serves the HR console: internship postings, application review
// and resume screening.
type HRHandler struct {
	positionService    service.PositionService
	applicationService service.ApplicationService
	resumeService      service.ResumeService
	log                *logger.Logger
}

func NewHRHandler(
	positionService service.PositionService,
	applicationService service.ApplicationService,
	resumeService service.ResumeService,
	log *logger.Logger,
) *HRHandler {
	return &HRHandler{
		positionService:    positionService,
		applicationService: applicationService,
		resumeService:      resumeService,
		log:                log,
	}
}

func (h *HRHandler) ListInternships(c *gin.Context) {
	ctx := c.Request.Context()
	positions, err := h.positionService.ListWithCounts(ctx)
	if err != nil {
		h.log.Error("Failed to list internships", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, positions)
}

func (h *HRHandler) CreateInternship(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	p, err := h.positionService.Create(ctx, &req)
	if err != nil {
		h.log.Error("Failed to create internship", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *HRHandler) GetInternship(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := h.positionService.Get(ctx, c.Param("positionId"))
	if err != nil {
		h.log.Error("Failed to get internship", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *HRHandler) UpdateInternship(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UpdatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	p, err := h.positionService.Update(ctx, c.Param("positionId"), &req)
	if err != nil {
		h.log.Error("Failed to update internship", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *HRHandler) DeleteInternship(c *gin.Context) {
	ctx := c.Request.Context()
	outcome, err := h.positionService.Delete(ctx, c.Param("positionId"))
	if err != nil {
		h.log.Error("Failed to delete internship", "error", err)
		c.Error(err)
		return
	}

	msg := "Position deleted successfully"
	if outcome == service.DeleteOutcomeDeactivated {
		msg = "Position deactivated successfully"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *HRHandler) ListApplications(c *gin.Context) {
	ctx := c.Request.Context()
	status := types.ApplicationStatus(c.Query("status"))
	reviews, err := h.applicationService.ListForReview(ctx, status)
	if err != nil {
		h.log.Error("Failed to list applications", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *HRHandler) UpdateApplicationStatus(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	review, err := h.applicationService.UpdateStatus(ctx, c.Param("applicationId"), &req)
	if err != nil {
		h.log.Error("Failed to update application status", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *HRHandler) ListResumes(c *gin.Context) {
	ctx := c.Request.Context()
	screenings, err := h.resumeService.ListScreenings(ctx)
	if err != nil {
		h.log.Error("Failed to list resumes", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, screenings)
}

func (h *HRHandler) AddSuggestion(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	sg, err := h.resumeService.AddSuggestion(ctx, c.Param("resumeId"), &req)
	if err != nil {
		h.log.Error("Failed to add suggestion", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, sg)
}

func (h *HRHandler) PositionAnalytics(c *gin.Context) {
	ctx := c.Request.Context()
	analytics, err := h.positionService.Analytics(ctx)
	if err != nil {
		h.log.Error("Failed to get position analytics", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}
