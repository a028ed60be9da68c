package dto

import (
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// SplitAllocationRequest is one entry of a split categorization.
type SplitAllocationRequest struct {
	CategoryID  string        `json:"categoryID" binding:"required"`
	Spent       domain.Amount `json:"spent" binding:"amount"`
	Received    domain.Amount `json:"received" binding:"amount"`
	Description string        `json:"description"`
}

// ToSplitAllocations converts request entries to domain allocations. An empty input yields nil.
func ToSplitAllocations(reqs []SplitAllocationRequest) []domain.SplitAllocation {
	if len(reqs) == 0 {
		return nil
	}
	out := make([]domain.SplitAllocation, len(reqs))
	for i, r := range reqs {
		out[i] = domain.SplitAllocation{
			CategoryID:  r.CategoryID,
			Spent:       r.Spent,
			Received:    r.Received,
			Description: r.Description,
		}
	}
	return out
}

// ImportStagingRowRequest is one bank-feed or manually entered row.
type ImportStagingRowRequest struct {
	Date            time.Time                `json:"date" binding:"required"`
	Description     string                   `json:"description" binding:"required"`
	Spent           domain.Amount            `json:"spent" binding:"amount"`
	Received        domain.Amount            `json:"received" binding:"amount"`
	SourceAccountID string                   `json:"sourceAccountID" binding:"required"`
	SplitAllocation []SplitAllocationRequest `json:"splitAllocation" binding:"omitempty,dive"`
}

// ImportStagingRequest carries rows to add to the staging store.
type ImportStagingRequest struct {
	Rows []ImportStagingRowRequest `json:"rows" binding:"required,min=1,dive"`
}

// DeleteStagingRequest lists staging rows to discard.
type DeleteStagingRequest struct {
	ImportedIDs []string `json:"importedIDs" binding:"required,min=1,dive,required"`
}

// DeleteStagingResponse reports how many of the requested rows still existed.
type DeleteStagingResponse struct {
	Deleted int64 `json:"deleted"`
}

// ImportedTransactionResponse defines the data returned for a staging row.
type ImportedTransactionResponse struct {
	ImportedID      string                   `json:"importedID"`
	Date            time.Time                `json:"date"`
	Description     string                   `json:"description"`
	Spent           domain.Amount            `json:"spent"`
	Received        domain.Amount            `json:"received"`
	SourceAccountID string                   `json:"sourceAccountID"`
	SplitAllocation []domain.SplitAllocation `json:"splitAllocation,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
}

// ListStagingResponse wraps a staging listing.
type ListStagingResponse struct {
	Transactions []ImportedTransactionResponse `json:"transactions"`
}

// ToImportedTransactionResponse converts a domain.ImportedTransaction to its DTO.
func ToImportedTransactionResponse(t *domain.ImportedTransaction) ImportedTransactionResponse {
	return ImportedTransactionResponse{
		ImportedID:      t.ImportedID,
		Date:            t.Date,
		Description:     t.Description,
		Spent:           t.Spent,
		Received:        t.Received,
		SourceAccountID: t.SourceAccountID,
		SplitAllocation: t.SplitAllocation,
		CreatedAt:       t.CreatedAt,
	}
}

// ToListStagingResponse converts a slice of staging rows.
func ToListStagingResponse(rows []domain.ImportedTransaction) ListStagingResponse {
	out := make([]ImportedTransactionResponse, len(rows))
	for i := range rows {
		out[i] = ToImportedTransactionResponse(&rows[i])
	}
	return ListStagingResponse{Transactions: out}
}
