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

type expenditureHandler struct {
	expenditureService portssvc.ExpenditureSvcFacade
	receiptService     portssvc.ReceiptSvcFacade
}

func newExpenditureHandler(es portssvc.ExpenditureSvcFacade, rs portssvc.ReceiptSvcFacade) *expenditureHandler {
	return &expenditureHandler{expenditureService: es, receiptService: rs}
}

// registerExpenditureRoutes registers routes related to expenditures.
func registerExpenditureRoutes(rg *gin.RouterGroup, expenditureService portssvc.ExpenditureSvcFacade, receiptService portssvc.ReceiptSvcFacade) {
	h := newExpenditureHandler(expenditureService, receiptService)

	expenditures := rg.Group("/expenditures")
	{
		expenditures.POST("", h.createExpenditure)
		expenditures.GET("", h.listExpenditures)
		expenditures.GET("/:id", h.getExpenditure)
		expenditures.PUT("/:id", h.updateExpenditure)
		expenditures.DELETE("/:id", h.deleteExpenditure)
		expenditures.GET("/:id/receipt", h.expenditureReceipt)
	}
}

func (h *expenditureHandler) createExpenditure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenditureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromContext(c)
	expenditure, err := h.expenditureService.CreateExpenditure(c.Request.Context(), req, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create expenditure", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expenditure"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenditureResponse(expenditure))
}

func (h *expenditureHandler) listExpenditures(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenditures, err := h.expenditureService.ListExpenditures(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list expenditures", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expenditures"})
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenditureResponses(expenditures))
}

func (h *expenditureHandler) getExpenditure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	expenditure, err := h.expenditureService.GetExpenditureByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expenditure not found"})
		} else {
			logger.Error("Failed to get expenditure", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve expenditure"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenditureResponse(expenditure))
}

func (h *expenditureHandler) updateExpenditure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateExpenditureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	expenditure, err := h.expenditureService.UpdateExpenditure(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expenditure not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update expenditure", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expenditure"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenditureResponse(expenditure))
}

func (h *expenditureHandler) deleteExpenditure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.expenditureService.DeleteExpenditure(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expenditure not found"})
		} else {
			logger.Error("Failed to delete expenditure", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expenditure"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *expenditureHandler) expenditureReceipt(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	doc, err := h.receiptService.ExpenditureReceipt(c.Request.Context(), id)
	respondDocument(c, doc, err, "Expenditure not found")
}
