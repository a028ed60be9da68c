package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/SscSPs/books_ledger/internal/middleware"
)

// journalHandler handles HTTP requests for the journal stream and its repair.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: journalService}
}

// registerJournalRoutes registers journal routes under a company group.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journal := rg.Group("/journal")
	{
		journal.GET("", h.listJournalLines)
		journal.GET("/verify", h.verifyJournal)
		journal.POST("/resync", h.resyncJournal)
	}
}

// listJournalLines godoc
// @Summary Stream journal lines
// @Description Lines are ordered by date, transaction and line number. Pass nextToken to continue a limited listing.
// @Tags journal
// @Produce json
// @Param companyID path string true "Company ID"
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Param limit query int false "Page size (1-1000)"
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListJournalLinesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 422 {object} map[string]string "Invalid date range or token"
// @Security BearerAuth
// @Router /companies/{companyID}/journal [get]
func (h *journalHandler) listJournalLines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListJournalLinesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	page, err := h.journalService.ListJournalLines(c.Request.Context(), c.Param("companyID"), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list journal lines")
		return
	}
	c.JSON(http.StatusOK, dto.ToListJournalLinesResponse(page))
}

// verifyJournal godoc
// @Summary Compare stored journal lines against their transactions
// @Tags journal
// @Produce json
// @Param companyID path string true "Company ID"
// @Success 200 {object} domain.VerifyReport
// @Security BearerAuth
// @Router /companies/{companyID}/journal/verify [get]
func (h *journalHandler) verifyJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.journalService.VerifyJournal(c.Request.Context(), c.Param("companyID"))
	if err != nil {
		respondError(c, logger, err, "Failed to verify journal")
		return
	}
	c.JSON(http.StatusOK, report)
}

// resyncJournal godoc
// @Summary Rebuild the company journal
// @Description Deletes every journal line of the company and re-derives them from confirmed transactions in one atomic unit.
// @Tags journal
// @Produce json
// @Param companyID path string true "Company ID"
// @Success 200 {object} domain.ResyncResult
// @Failure 409 {object} map[string]string "No confirmed transactions"
// @Security BearerAuth
// @Router /companies/{companyID}/journal/resync [post]
func (h *journalHandler) resyncJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, _ := middleware.GetUserIDFromContext(c)
	logger.Info("Journal resync requested", slog.String("company_id", c.Param("companyID")), slog.String("requested_by", userID))

	result, err := h.journalService.ResyncJournal(c.Request.Context(), c.Param("companyID"))
	if err != nil {
		respondError(c, logger, err, "Failed to resync journal")
		return
	}
	c.JSON(http.StatusOK, result)
}
