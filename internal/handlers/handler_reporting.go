package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/SscSPs/books_ledger/internal/middleware"
)

// reportingHandler handles HTTP requests for financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(reportingService portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: reportingService}
}

// registerReportingRoutes registers reporting routes under a company group.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
	}
}

// getTrialBalance godoc
// @Summary Get trial balance
// @Description Get trial balance for a company as of a specific date
// @Tags reports
// @Produce json
// @Param companyID path string true "Company ID"
// @Param asOf query string false "As of date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid date format"
// @Security BearerAuth
// @Router /companies/{companyID}/reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.TrialBalanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	asOf := time.Now().UTC().Truncate(24 * time.Hour)
	if params.AsOf != nil {
		asOf = *params.AsOf
	}

	tb, err := h.reportingService.TrialBalance(c.Request.Context(), c.Param("companyID"), asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to generate trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb, asOf))
}
