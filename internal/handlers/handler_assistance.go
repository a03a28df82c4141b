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

type assistanceHandler struct {
	assistanceService portssvc.AssistanceSvcFacade
	receiptService    portssvc.ReceiptSvcFacade
}

func newAssistanceHandler(as portssvc.AssistanceSvcFacade, rs portssvc.ReceiptSvcFacade) *assistanceHandler {
	return &assistanceHandler{assistanceService: as, receiptService: rs}
}

// registerAssistanceRoutes registers routes related to financial assistance.
func registerAssistanceRoutes(rg *gin.RouterGroup, assistanceService portssvc.AssistanceSvcFacade, receiptService portssvc.ReceiptSvcFacade) {
	h := newAssistanceHandler(assistanceService, receiptService)

	assistance := rg.Group("/assistance")
	{
		assistance.POST("", h.createAssistance)
		assistance.GET("", h.listAssistance)
		assistance.GET("/:id", h.getAssistance)
		assistance.PUT("/:id", h.updateAssistance)
		assistance.DELETE("/:id", h.deleteAssistance)
		assistance.GET("/:id/receipt", h.assistanceReceipt)
	}
}

func (h *assistanceHandler) createAssistance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAssistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromContext(c)
	assistance, err := h.assistanceService.CreateAssistance(c.Request.Context(), req, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create assistance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create assistance record"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToAssistanceResponse(assistance))
}

func (h *assistanceHandler) listAssistance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entries, err := h.assistanceService.ListAssistance(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list assistance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assistance records"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAssistanceResponses(entries))
}

func (h *assistanceHandler) getAssistance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	assistance, err := h.assistanceService.GetAssistanceByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assistance record not found"})
		} else {
			logger.Error("Failed to get assistance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve assistance record"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToAssistanceResponse(assistance))
}

func (h *assistanceHandler) updateAssistance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateAssistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	assistance, err := h.assistanceService.UpdateAssistance(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assistance record not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update assistance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update assistance record"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToAssistanceResponse(assistance))
}

func (h *assistanceHandler) deleteAssistance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.assistanceService.DeleteAssistance(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assistance record not found"})
		} else {
			logger.Error("Failed to delete assistance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete assistance record"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *assistanceHandler) assistanceReceipt(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	doc, err := h.receiptService.AssistanceReceipt(c.Request.Context(), id)
	respondDocument(c, doc, err, "Assistance record not found")
}
