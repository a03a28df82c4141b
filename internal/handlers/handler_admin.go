package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kabitalok/kabitalok-payments/internal/apperrors"
	portssvc "github.com/kabitalok/kabitalok-payments/internal/core/ports/services"
	"github.com/kabitalok/kabitalok-payments/internal/dto"
	"github.com/kabitalok/kabitalok-payments/internal/middleware"
)

type adminHandler struct {
	adminService portssvc.AdminSvcFacade
}

func newAdminHandler(as portssvc.AdminSvcFacade) *adminHandler {
	return &adminHandler{adminService: as}
}

// registerAdminRoutes registers routes for managing admin accounts.
func registerAdminRoutes(rg *gin.RouterGroup, adminService portssvc.AdminSvcFacade) {
	h := newAdminHandler(adminService)

	admins := rg.Group("/admins")
	{
		admins.POST("", h.createAdmin)
		admins.GET("", h.listAdmins)
		admins.GET("/:id", h.getAdmin)
		admins.PUT("/:id", h.updateAdmin)
		admins.DELETE("/:id", h.deleteAdmin)
	}
}

func (h *adminHandler) createAdmin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromContext(c)
	admin, err := h.adminService.CreateAdmin(c.Request.Context(), req, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		} else {
			logger.Error("Failed to create admin", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create admin"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToAdminResponse(admin))
}

func (h *adminHandler) getAdmin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	admin, err := h.adminService.GetAdminByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
		} else {
			logger.Error("Failed to get admin", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve admin"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToAdminResponse(admin))
}

func (h *adminHandler) listAdmins(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	admins, err := h.adminService.ListAdmins(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list admins", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list admins"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAdminResponses(admins))
}

func (h *adminHandler) updateAdmin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromContext(c)
	admin, err := h.adminService.UpdateAdmin(c.Request.Context(), id, req, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		} else {
			logger.Error("Failed to update admin", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update admin"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToAdminResponse(admin))
}

func (h *adminHandler) deleteAdmin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.adminService.DeleteAdmin(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
		} else if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to delete admin", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete admin"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
