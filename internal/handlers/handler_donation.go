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

type donationHandler struct {
	donationService portssvc.DonationSvcFacade
	receiptService  portssvc.ReceiptSvcFacade
}

func newDonationHandler(ds portssvc.DonationSvcFacade, rs portssvc.ReceiptSvcFacade) *donationHandler {
	return &donationHandler{donationService: ds, receiptService: rs}
}

// registerDonationRoutes registers routes related to donations.
func registerDonationRoutes(rg *gin.RouterGroup, donationService portssvc.DonationSvcFacade, receiptService portssvc.ReceiptSvcFacade) {
	h := newDonationHandler(donationService, receiptService)

	donations := rg.Group("/donations")
	{
		donations.POST("", h.createDonation)
		donations.GET("", h.listDonations)
		donations.GET("/:id", h.getDonation)
		donations.PUT("/:id", h.updateDonation)
		donations.DELETE("/:id", h.deleteDonation)
		donations.GET("/:id/receipt", h.donationReceipt)
	}
}

func (h *donationHandler) createDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor := middleware.GetActorFromContext(c)
	donation, err := h.donationService.CreateDonation(c.Request.Context(), req, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create donation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create donation"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToDonationResponse(donation))
}

func (h *donationHandler) listDonations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	donations, err := h.donationService.ListDonations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list donations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list donations"})
		return
	}
	c.JSON(http.StatusOK, dto.ToDonationResponses(donations))
}

func (h *donationHandler) getDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	donation, err := h.donationService.GetDonationByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		} else {
			logger.Error("Failed to get donation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve donation"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToDonationResponse(donation))
}

func (h *donationHandler) updateDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.UpdateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	donation, err := h.donationService.UpdateDonation(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update donation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update donation"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToDonationResponse(donation))
}

func (h *donationHandler) deleteDonation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.donationService.DeleteDonation(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Donation not found"})
		} else {
			logger.Error("Failed to delete donation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete donation"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *donationHandler) donationReceipt(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	doc, err := h.receiptService.DonationReceipt(c.Request.Context(), id)
	respondDocument(c, doc, err, "Donation not found")
}
