package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kabitalok/kabitalok-payments/internal/apperrors"
	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	portssvc "github.com/kabitalok/kabitalok-payments/internal/core/ports/services"
	"github.com/kabitalok/kabitalok-payments/internal/middleware"
)

type backupHandler struct {
	backupService portssvc.BackupSvcFacade
}

func newBackupHandler(bs portssvc.BackupSvcFacade) *backupHandler {
	return &backupHandler{backupService: bs}
}

// registerBackupRoutes registers the backup export and restore routes.
func registerBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvcFacade) {
	h := newBackupHandler(backupService)

	backup := rg.Group("/backup")
	{
		backup.GET("", h.exportBackup)
		backup.POST("/restore", h.restoreBackup)
	}
}

func (h *backupHandler) exportBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	doc, err := h.backupService.ExportBackup(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export backup", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export backup"})
		return
	}
	fileName := "backup-" + domain.FormatDMY(doc.Timestamp) + ".json"
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.JSON(http.StatusOK, doc)
}

func (h *backupHandler) restoreBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	if err := h.backupService.RestoreBackup(c.Request.Context(), raw); err != nil {
		if errors.Is(err, apperrors.ErrMalformedBackup) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to restore backup", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore backup"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Backup restored"})
}
