package v1

import (
	"net/http"

	"github.com/coopportal/coopportal/internal/api/dto"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/logger"
	"github.com/coopportal/coopportal/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler serves the school-admin surface.
type AdminHandler struct {
	adminService service.AdminService
	log          *logger.Logger
}

func NewAdminHandler(adminService service.AdminService, log *logger.Logger) *AdminHandler {
	return &AdminHandler{adminService: adminService, log: log}
}

func (h *AdminHandler) ListStudents(c *gin.Context) {
	ctx := c.Request.Context()
	students, err := h.adminService.ListStudents(ctx)
	if err != nil {
		h.log.Error("Failed to list students", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, students)
}

func (h *AdminHandler) AddStudent(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	userID, err := h.adminService.AddStudent(ctx, &req)
	if err != nil {
		h.log.Error("Failed to add student", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateStudentResponse{
		UserID:  userID,
		Message: "Student added successfully",
	})
}

func (h *AdminHandler) GetStudent(c *gin.Context) {
	ctx := c.Request.Context()
	detail, err := h.adminService.GetStudentDetail(ctx, c.Param("userId"))
	if err != nil {
		h.log.Error("Failed to get student", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *AdminHandler) UpdateStudent(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.adminService.UpdateStudent(ctx, c.Param("userId"), &req); err != nil {
		h.log.Error("Failed to update student", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student updated successfully"})
}

func (h *AdminHandler) DeleteStudent(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.adminService.DeleteStudent(ctx, c.Param("userId")); err != nil {
		h.log.Error("Failed to delete student", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted successfully"})
}

func (h *AdminHandler) ListAcademicRecords(c *gin.Context) {
	ctx := c.Request.Context()
	records, err := h.adminService.ListAcademicRecords(ctx)
	if err != nil {
		h.log.Error("Failed to list academic records", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *AdminHandler) AddAcademicRecord(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	rec, err := h.adminService.AddAcademicRecord(ctx, &req)
	if err != nil {
		h.log.Error("Failed to add academic record", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *AdminHandler) ListCoops(c *gin.Context) {
	ctx := c.Request.Context()
	coops, err := h.adminService.ListCoops(ctx)
	if err != nil {
		h.log.Error("Failed to list co-ops", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, coops)
}

func (h *AdminHandler) AddCoop(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateCoopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	rec, err := h.adminService.AddCoop(ctx, &req)
	if err != nil {
		h.log.Error("Failed to add co-op", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *AdminHandler) ApproveCoop(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.adminService.ApproveCoop(ctx, c.Param("coopId")); err != nil {
		h.log.Error("Failed to approve co-op", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Co-op record approved successfully"})
}

func (h *AdminHandler) DeleteCoop(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.adminService.DeleteCoop(ctx, c.Param("coopId")); err != nil {
		h.log.Error("Failed to delete co-op", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Co-op record deleted successfully"})
}

func (h *AdminHandler) GetComplianceSummary(c *gin.Context) {
	ctx := c.Request.Context()
	summary, err := h.adminService.ComplianceSummary(ctx)
	if err != nil {
		h.log.Error("Failed to build compliance summary", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *AdminHandler) GenerateReport(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	report, err := h.adminService.GenerateReport(ctx, &req)
	if err != nil {
		h.log.Error("Failed to generate report", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *AdminHandler) GetAnalytics(c *gin.Context) {
	ctx := c.Request.Context()
	stats, err := h.adminService.CourseAnalytics(ctx)
	if err != nil {
		h.log.Error("Failed to get analytics", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
