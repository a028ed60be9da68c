package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/SscSPs/books_ledger/internal/middleware"
)

// transactionHandler handles the confirmation mover and the confirmed-transaction edits.
type transactionHandler struct {
	confirmationService portssvc.ConfirmationSvcFacade
	transactionService  portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(confirmationService portssvc.ConfirmationSvcFacade, transactionService portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		confirmationService: confirmationService,
		transactionService:  transactionService,
	}
}

// registerTransactionRoutes registers transaction routes under a company group.
func registerTransactionRoutes(rg *gin.RouterGroup, confirmationService portssvc.ConfirmationSvcFacade, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(confirmationService, transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("/move", h.moveOne)
		transactions.POST("/move-many", h.moveMany)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.PUT("/:transactionID/categorization", h.editCategorization)
		transactions.POST("/:transactionID/undo", h.undoTransaction)
		transactions.DELETE("/:transactionID", h.deleteTransaction)
	}
}

// moveOne godoc
// @Summary Confirm a staging transaction
// @Description Categorizes one staging row, records it as confirmed and writes its journal lines atomically.
// @Tags transactions
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param move body dto.MoveRequest true "Categorization"
// @Success 201 {object} dto.ConfirmedTransactionResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Staging row not found or already moved"
// @Failure 422 {object} map[string]string "Invalid categorization or reference"
// @Security BearerAuth
// @Router /companies/{companyID}/transactions/move [post]
func (h *transactionHandler) moveOne(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	tx, err := h.confirmationService.MoveOne(c.Request.Context(), c.Param("companyID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to confirm transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToConfirmedTransactionResponse(tx))
}

// moveMany godoc
// @Summary Confirm a batch of staging transactions
// @Description All moves succeed or none do. Rows that are no longer staged are listed in missingIDs.
// @Tags transactions
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param moves body dto.MoveManyRequest true "Batch of categorizations"
// @Success 201 {object} dto.ListTransactionsResponse
// @Failure 409 {object} map[string]any "Some staging rows are missing"
// @Failure 422 {object} map[string]string "Invalid categorization or reference"
// @Security BearerAuth
// @Router /companies/{companyID}/transactions/move-many [post]
func (h *transactionHandler) moveMany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.MoveManyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	txs, err := h.confirmationService.MoveMany(c.Request.Context(), c.Param("companyID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to confirm transactions")
		return
	}
	logger.Info("Batch confirmed", slog.Int("count", len(txs)))
	c.JSON(http.StatusCreated, dto.ToListTransactionsResponse(txs))
}

// listTransactions godoc
// @Summary List confirmed transactions
// @Tags transactions
// @Produce json
// @Param companyID path string true "Company ID"
// @Success 200 {object} dto.ListTransactionsResponse
// @Security BearerAuth
// @Router /companies/{companyID}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txs, err := h.transactionService.ListTransactions(c.Request.Context(), c.Param("companyID"))
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txs))
}

// getTransaction godoc
// @Summary Get a confirmed transaction
// @Tags transactions
// @Produce json
// @Param companyID path string true "Company ID"
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.ConfirmedTransactionResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /companies/{companyID}/transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tx, err := h.transactionService.GetTransaction(c.Request.Context(), c.Param("companyID"), c.Param("transactionID"))
	if err != nil {
		respondError(c, logger, err, "Failed to get transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToConfirmedTransactionResponse(tx))
}

// editCategorization godoc
// @Summary Recategorize a confirmed transaction
// @Description Replaces the categorization and rewrites the journal lines. Amounts never change.
// @Tags transactions
// @Accept json
// @Produce json
// @Param companyID path string true "Company ID"
// @Param transactionID path string true "Transaction ID"
// @Param edit body dto.EditCategorizationRequest true "New categorization"
// @Success 200 {object} dto.ConfirmedTransactionResponse
// @Failure 404 {object} map[string]string "Not found"
// @Failure 422 {object} map[string]string "Invalid categorization or reference"
// @Security BearerAuth
// @Router /companies/{companyID}/transactions/{transactionID}/categorization [put]
func (h *transactionHandler) editCategorization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.EditCategorizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	tx, err := h.transactionService.EditCategorization(c.Request.Context(), c.Param("companyID"), c.Param("transactionID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to edit transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToConfirmedTransactionResponse(tx))
}

// undoTransaction godoc
// @Summary Send a confirmed transaction back to staging
// @Tags transactions
// @Produce json
// @Param companyID path string true "Company ID"
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.ImportedTransactionResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /companies/{companyID}/transactions/{transactionID}/undo [post]
func (h *transactionHandler) undoTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	staged, err := h.transactionService.UndoTransaction(c.Request.Context(), c.Param("companyID"), c.Param("transactionID"))
	if err != nil {
		respondError(c, logger, err, "Failed to undo transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToImportedTransactionResponse(staged))
}

// deleteTransaction godoc
// @Summary Delete a confirmed transaction
// @Tags transactions
// @Param companyID path string true "Company ID"
// @Param transactionID path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /companies/{companyID}/transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), c.Param("companyID"), c.Param("transactionID")); err != nil {
		respondError(c, logger, err, "Failed to delete transaction")
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)
	logger.Info("Transaction deleted", slog.String("transaction_id", c.Param("transactionID")), slog.String("deleted_by", userID))
	c.Status(http.StatusNoContent)
}
