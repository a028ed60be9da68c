package dto

import (
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// MoveRequest categorizes one staging row and confirms it into the ledger.
// Either SelectedCategoryID or SplitAllocation is given. A split here overrides one carried
// on the staging row.
type MoveRequest struct {
	ImportedID              string                   `json:"importedID"`
	SelectedCategoryID      string                   `json:"selectedCategoryID"`
	CorrespondingCategoryID string                   `json:"correspondingCategoryID" binding:"required"`
	PayeeID                 string                   `json:"payeeID"`
	SplitAllocation         []SplitAllocationRequest `json:"splitAllocation" binding:"omitempty,dive"`
}

// MoveManyRequest confirms a batch of staging rows all-or-nothing.
type MoveManyRequest struct {
	Moves []MoveRequest `json:"moves" binding:"required,min=1,dive"`
}

// EditCategorizationRequest recategorizes a confirmed transaction. Nil pointers keep the
// stored value.
type EditCategorizationRequest struct {
	SelectedCategoryID      string                   `json:"selectedCategoryID"`
	CorrespondingCategoryID *string                  `json:"correspondingCategoryID"`
	PayeeID                 *string                  `json:"payeeID"`
	SplitAllocation         []SplitAllocationRequest `json:"splitAllocation" binding:"omitempty,dive"`
}

// ConfirmedTransactionResponse defines the data returned for a confirmed transaction.
type ConfirmedTransactionResponse struct {
	TransactionID           string                   `json:"transactionID"`
	ImportedID              string                   `json:"importedID,omitempty"`
	Date                    time.Time                `json:"date"`
	Description             string                   `json:"description"`
	Spent                   domain.Amount            `json:"spent"`
	Received                domain.Amount            `json:"received"`
	SelectedCategoryID      string                   `json:"selectedCategoryID,omitempty"`
	CorrespondingCategoryID string                   `json:"correspondingCategoryID"`
	SplitAllocation         []domain.SplitAllocation `json:"splitAllocation,omitempty"`
	PayeeID                 string                   `json:"payeeID,omitempty"`
	SourceAccountID         string                   `json:"sourceAccountID"`
	CreatedAt               time.Time                `json:"createdAt"`
	LastUpdatedAt           time.Time                `json:"lastUpdatedAt"`
}

// ListTransactionsResponse wraps a confirmed transaction listing.
type ListTransactionsResponse struct {
	Transactions []ConfirmedTransactionResponse `json:"transactions"`
}

// ToConfirmedTransactionResponse converts a domain.ConfirmedTransaction to its DTO.
func ToConfirmedTransactionResponse(t *domain.ConfirmedTransaction) ConfirmedTransactionResponse {
	return ConfirmedTransactionResponse{
		TransactionID:           t.TransactionID,
		ImportedID:              t.ImportedID,
		Date:                    t.Date,
		Description:             t.Description,
		Spent:                   t.Spent,
		Received:                t.Received,
		SelectedCategoryID:      t.SelectedCategoryID(),
		CorrespondingCategoryID: t.CorrespondingCategoryID,
		SplitAllocation:         t.Split(),
		PayeeID:                 t.PayeeID,
		SourceAccountID:         t.SourceAccountID,
		CreatedAt:               t.CreatedAt,
		LastUpdatedAt:           t.LastUpdatedAt,
	}
}

// ToListTransactionsResponse converts a slice of confirmed transactions.
func ToListTransactionsResponse(txs []domain.ConfirmedTransaction) ListTransactionsResponse {
	out := make([]ConfirmedTransactionResponse, len(txs))
	for i := range txs {
		out[i] = ToConfirmedTransactionResponse(&txs[i])
	}
	return ListTransactionsResponse{Transactions: out}
}
