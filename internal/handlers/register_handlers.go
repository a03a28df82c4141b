package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kabitalok/kabitalok-payments/internal/apperrors"
	portssvc "github.com/kabitalok/kabitalok-payments/internal/core/ports/services"
	"github.com/kabitalok/kabitalok-payments/internal/dto"
	"github.com/kabitalok/kabitalok-payments/internal/middleware"
	"github.com/kabitalok/kabitalok-payments/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Public authentication routes, rate limited
	registerAuthRoutes(r, cfg, services.Admin)

	// Everything else requires a session
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerStudentRoutes(v1, services.Student, services.Payment)
	registerExpenditureRoutes(v1, services.Expenditure, services.Receipt)
	registerDonationRoutes(v1, services.Donation, services.Receipt)
	registerAssistanceRoutes(v1, services.Assistance, services.Receipt)
	registerPaymentRoutes(v1, services.Payment, services.Receipt)
	registerAdminRoutes(v1, services.Admin)
	registerReportRoutes(v1, services.Report)
	registerBackupRoutes(v1, services.Backup)
}

// parseIDParam reads the :id path segment as an int64, writing the 400
// response itself on failure.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// respondDocument sends a generated PDF as a download, mapping the service
// error to a status first. notFoundMsg covers the underlying record.
func respondDocument(c *gin.Context, doc *dto.ExportedDocument, err error, notFoundMsg string) {
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		} else if errors.Is(err, apperrors.ErrAssetNotReady) {
			logger.Warn("Export asset missing", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Required asset is not available"})
		} else {
			logger.Error("Failed to generate document", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate document"})
		}
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	c.Data(http.StatusOK, "application/pdf", doc.Data)
}
