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
	"github.com/kabitalok/kabitalok-payments/internal/platform/config"
	"github.com/kabitalok/kabitalok-payments/internal/utils"
)

type authHandler struct {
	cfg          *config.Config
	adminService portssvc.AdminSvcFacade
}

func newAuthHandler(cfg *config.Config, adminService portssvc.AdminSvcFacade) *authHandler {
	return &authHandler{cfg: cfg, adminService: adminService}
}

// registerAuthRoutes registers the public login route. Login attempts are
// rate limited per client IP to slow credential guessing.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, adminService portssvc.AdminSvcFacade) {
	h := newAuthHandler(cfg, adminService)

	auth := r.Group("/api/v1/auth", middleware.RateLimit("5-M"))
	{
		auth.POST("/login", h.login)
	}
}

func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	admin, err := h.adminService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Login rejected", slog.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		} else {
			logger.Error("Login failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		}
		return
	}

	token, expiresAt, err := utils.GenerateJWT(admin.Username, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	logger.Info("Admin logged in", slog.String("username", admin.Username))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:       token,
		Username:    admin.Username,
		DisplayName: admin.DisplayName,
		ExpiresAt:   expiresAt.Unix(),
	})
}
