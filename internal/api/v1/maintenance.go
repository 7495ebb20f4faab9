package v1

import (
	"net/http"

	"github.com/coopportal/coopportal/internal/api/dto"
	ierr "github.com/coopportal/coopportal/internal/errors"
	"github.com/coopportal/coopportal/internal/logger"
	"github.com/coopportal/coopportal/internal/service"
	"github.com/gin-gonic/gin"
)

// MaintenanceHandler serves the maintenance-staff console.
type MaintenanceHandler struct {
	maintenanceService service.MaintenanceService
	log                *logger.Logger
}

func NewMaintenanceHandler(maintenanceService service.MaintenanceService, log *logger.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService, log: log}
}

func (h *MaintenanceHandler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return false
	}
	return true
}

func (h *MaintenanceHandler) ListDatabases(c *gin.Context) {
	ctx := c.Request.Context()
	databases, err := h.maintenanceService.ListDatabases(ctx)
	if err != nil {
		h.log.Error("Failed to list databases", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, databases)
}

func (h *MaintenanceHandler) UpdateDatabase(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UpdateDatabaseRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.maintenanceService.UpdateDatabase(ctx, c.Param("databaseId"), &req); err != nil {
		h.log.Error("Failed to update database", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database updated successfully"})
}

func (h *MaintenanceHandler) DeleteDatabase(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.maintenanceService.DeleteDatabase(ctx, c.Param("databaseId")); err != nil {
		h.log.Error("Failed to delete database", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database deleted successfully"})
}

func (h *MaintenanceHandler) GetPerformance(c *gin.Context) {
	ctx := c.Request.Context()
	alerts, err := h.maintenanceService.PerformanceAlerts(ctx)
	if err != nil {
		h.log.Error("Failed to get performance alerts", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (h *MaintenanceHandler) ListBackups(c *gin.Context) {
	ctx := c.Request.Context()
	backups, err := h.maintenanceService.ListBackups(ctx)
	if err != nil {
		h.log.Error("Failed to list backups", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, backups)
}

func (h *MaintenanceHandler) CreateBackup(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateBackupRequest
	if !h.bindJSON(c, &req) {
		return
	}
	b, err := h.maintenanceService.CreateBackup(ctx, &req)
	if err != nil {
		h.log.Error("Failed to create backup record", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *MaintenanceHandler) UpdateBackup(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UpdateBackupRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.maintenanceService.UpdateBackup(ctx, c.Param("backupId"), &req); err != nil {
		h.log.Error("Failed to update backup record", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Backup record updated successfully"})
}

func (h *MaintenanceHandler) DeleteBackup(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.maintenanceService.DeleteBackup(ctx, c.Param("backupId")); err != nil {
		h.log.Error("Failed to delete backup record", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Backup record deleted successfully"})
}

func (h *MaintenanceHandler) ListAlerts(c *gin.Context) {
	ctx := c.Request.Context()
	alerts, err := h.maintenanceService.ListAlerts(ctx)
	if err != nil {
		h.log.Error("Failed to list alerts", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (h *MaintenanceHandler) CreateAlert(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateAlertRequest
	if !h.bindJSON(c, &req) {
		return
	}
	a, err := h.maintenanceService.CreateAlert(ctx, &req)
	if err != nil {
		h.log.Error("Failed to create alert", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *MaintenanceHandler) UpdateAlert(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UpdateAlertRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.maintenanceService.UpdateAlert(ctx, c.Param("alertId"), &req); err != nil {
		h.log.Error("Failed to update alert", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alert updated successfully"})
}

func (h *MaintenanceHandler) DeleteAlert(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.maintenanceService.DeleteAlert(ctx, c.Param("alertId")); err != nil {
		h.log.Error("Failed to delete alert", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alert deleted successfully"})
}

func (h *MaintenanceHandler) ListAlterations(c *gin.Context) {
	ctx := c.Request.Context()
	alterations, err := h.maintenanceService.ListAlterations(ctx)
	if err != nil {
		h.log.Error("Failed to list alterations", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, alterations)
}

func (h *MaintenanceHandler) CreateAlteration(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateAlterationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	a, err := h.maintenanceService.CreateAlteration(ctx, &req)
	if err != nil {
		h.log.Error("Failed to create alteration record", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *MaintenanceHandler) UpdateAlteration(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UpdateAlterationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.maintenanceService.UpdateAlteration(ctx, c.Param("alterationId"), &req); err != nil {
		h.log.Error("Failed to update alteration record", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alteration record updated successfully"})
}

func (h *MaintenanceHandler) DeleteAlteration(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.maintenanceService.DeleteAlteration(ctx, c.Param("alterationId")); err != nil {
		h.log.Error("Failed to delete alteration record", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alteration record deleted successfully"})
}
