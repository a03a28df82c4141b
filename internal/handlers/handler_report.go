package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
	portssvc "github.com/kabitalok/kabitalok-payments/internal/core/ports/services"
	"github.com/kabitalok/kabitalok-payments/internal/dto"
	"github.com/kabitalok/kabitalok-payments/internal/middleware"
)

type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{reportService: rs}
}

// registerReportRoutes registers the report view and export routes.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	reports := rg.Group("/reports")
	{
		reports.GET("", h.getReport)
		reports.GET("/export", h.exportReport)
	}
}

// bindPeriod parses the period query parameters, writing the 400 response
// itself on failure.
func bindPeriod(c *gin.Context) (domain.Period, bool) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return domain.Period{}, false
	}
	kind, ok := domain.ParsePeriodKind(params.Period)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown period: " + params.Period})
		return domain.Period{}, false
	}
	return domain.Period{Kind: kind, Month: params.Month, Year: params.Year}, true
}

func (h *reportHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	period, ok := bindPeriod(c)
	if !ok {
		return
	}

	report, err := h.reportService.BuildReport(c.Request.Context(), period)
	if err != nil {
		logger.Error("Failed to build report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}

func (h *reportHandler) exportReport(c *gin.Context) {
	period, ok := bindPeriod(c)
	if !ok {
		return
	}
	doc, err := h.reportService.ExportReportPDF(c.Request.Context(), period)
	respondDocument(c, doc, err, "Report not found")
}
