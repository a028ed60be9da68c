package services

import (
	"context"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/dto"
)

// ConfirmationSvcFacade is the only path by which a staging row becomes ledger-eligible.
type ConfirmationSvcFacade interface {
	// MoveOne confirms one staging row. Returns apperrors.ErrNotFound if the row is absent or
	// was already moved, apperrors.ErrInvalidReference for unknown categories or payees.
	MoveOne(ctx context.Context, companyID string, req dto.MoveRequest) (*domain.ConfirmedTransaction, error)

	// MoveMany confirms a batch all-or-nothing. Missing staging rows reject the whole batch
	// with an *apperrors.ConflictError.
	MoveMany(ctx context.Context, companyID string, req dto.MoveManyRequest) ([]domain.ConfirmedTransaction, error)
}

// TransactionReaderSvc defines read operations for confirmed transactions
type TransactionReaderSvc interface {
	GetTransaction(ctx context.Context, companyID, transactionID string) (*domain.ConfirmedTransaction, error)
	ListTransactions(ctx context.Context, companyID string) ([]domain.ConfirmedTransaction, error)
}

// TransactionWriterSvc defines the edit operations on confirmed transactions. Each one rewrites
// the transaction's journal lines in the same atomic unit.
type TransactionWriterSvc interface {
	// EditCategorization replaces the categorization and re-derives the journal lines.
	// Stored amounts never change.
	EditCategorization(ctx context.Context, companyID, transactionID string, req dto.EditCategorizationRequest) (*domain.ConfirmedTransaction, error)

	// UndoTransaction sends a confirmed transaction back to staging and removes its lines.
	UndoTransaction(ctx context.Context, companyID, transactionID string) (*domain.ImportedTransaction, error)

	// DeleteTransaction removes a confirmed transaction together with its lines.
	DeleteTransaction(ctx context.Context, companyID, transactionID string) error
}

// TransactionSvcFacade combines all confirmed-transaction service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

// JournalReaderSvc defines read operations for the journal
type JournalReaderSvc interface {
	// ListJournalLines streams the company's journal, the sole input to financial reports.
	// A page carries a cursor when more lines follow.
	ListJournalLines(ctx context.Context, companyID string, params dto.ListJournalLinesParams) (*domain.JournalPage, error)

	// VerifyJournal re-derives every transaction and reports those whose stored lines differ.
	VerifyJournal(ctx context.Context, companyID string) (*domain.VerifyReport, error)
}

// JournalRepairSvc defines the full rebuild of a company's journal
type JournalRepairSvc interface {
	// ResyncJournal deletes and rebuilds every journal line of the company atomically.
	// Returns apperrors.ErrNoTransactions when there is nothing to rebuild from.
	ResyncJournal(ctx context.Context, companyID string) (*domain.ResyncResult, error)
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalRepairSvc
}
