package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/SscSPs/books_ledger/internal/middleware"
)

// stagingHandler handles HTTP requests for the staging store.
type stagingHandler struct {
	stagingService portssvc.StagingSvcFacade
}

// newStagingHandler creates a new stagingHandler.
func newStagingHandler(stagingService portssvc.StagingSvcFacade) *stagingHandler {
	return &stagingHandler{stagingService: stagingService}
}

// registerStagingRoutes registers staging routes under a company group.
func registerStagingRoutes(rg *gin.RouterGroup, stagingService portssvc.StagingSvcFacade) {
	h := newStagingHandler(stagingService)

	staging := rg.Group("/staging")
	{
		staging.GET("", h.listStaging)
		staging.POST("", h.importStaging)
		staging.POST("/delete", h.deleteStagingMany)
		staging.GET("/:importedID", h.getStaging)
		staging.DELETE("/:importedID", h.deleteStaging)
	}
}

// listStaging godoc
// @Summary List staging transactions
// @Tags staging
// @Produce json
// @Param companyID path string true "Company ID"
// @Success 200 {object} dto.ListStagingResponse
// @Security BearerAuth
// @Router /companies/{companyID}/staging [get]
func (h *stagingHandler) listStaging(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	rows, err := h.stagingService.ListStaging(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, logger, err, "Failed to list staging transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListStagingResponse(rows))
}

// importStaging godoc
// @Summary Import bank-feed rows into staging
// @Tags staging
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param rows body dto.ImportStagingRequest true "Rows to stage"
// @Success 201 {object} dto.ListStagingResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 422 {object} map[string]string "Invalid amounts"
// @Security BearerAuth
// @Router /companies/{companyID}/staging [post]
func (h *stagingHandler) importStaging(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("companyID")

	var req dto.ImportStagingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	rows, err := h.stagingService.ImportStaging(c.Request.Context(), companyID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to import staging transactions")
		return
	}
	logger.Info("Staging rows imported", slog.String("company_id", companyID), slog.Int("count", len(rows)))
	c.JSON(http.StatusCreated, dto.ToListStagingResponse(rows))
}

// getStaging godoc
// @Summary Get a staging transaction
// @Tags staging
// @Produce json
// @Param companyID path string true "Company ID"
// @Param importedID path string true "Imported transaction ID"
// @Success 200 {object} dto.ImportedTransactionResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /companies/{companyID}/staging/{importedID} [get]
func (h *stagingHandler) getStaging(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	row, err := h.stagingService.GetStaging(c.Request.Context(), c.Param("companyID"), c.Param("importedID"))
	if err != nil {
		respondError(c, logger, err, "Failed to get staging transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToImportedTransactionResponse(row))
}

// deleteStaging godoc
// @Summary Discard a staging transaction
// @Description Discarding a row that is already gone succeeds.
// @Tags staging
// @Param companyID path string true "Company ID"
// @Param importedID path string true "Imported transaction ID"
// @Success 204
// @Security BearerAuth
// @Router /companies/{companyID}/staging/{importedID} [delete]
func (h *stagingHandler) deleteStaging(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.stagingService.DeleteStaging(c.Request.Context(), c.Param("companyID"), c.Param("importedID")); err != nil {
		respondError(c, logger, err, "Failed to delete staging transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteStagingMany godoc
// @Summary Discard several staging transactions
// @Tags staging
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param ids body dto.DeleteStagingRequest true "Rows to discard"
// @Success 200 {object} dto.DeleteStagingResponse
// @Security BearerAuth
// @Router /companies/{companyID}/staging/delete [post]
func (h *stagingHandler) deleteStagingMany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DeleteStagingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	deleted, err := h.stagingService.DeleteStagingMany(c.Request.Context(), c.Param("companyID"), req.ImportedIDs)
	if err != nil {
		respondError(c, logger, err, "Failed to delete staging transactions")
		return
	}
	c.JSON(http.StatusOK, dto.DeleteStagingResponse{Deleted: deleted})
}
