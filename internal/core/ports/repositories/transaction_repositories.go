package repositories

import (
	"context"

	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// TransactionReader defines read operations for confirmed transactions
type TransactionReader interface {
	// FindTransactionByID returns apperrors.ErrNotFound when the transaction is absent.
	FindTransactionByID(ctx context.Context, companyID, transactionID string) (*domain.ConfirmedTransaction, error)

	// ListTransactions returns every confirmed transaction of a company ordered by date, then id.
	ListTransactions(ctx context.Context, companyID string) ([]domain.ConfirmedTransaction, error)
}

// TransactionWriter defines write operations for confirmed transactions
type TransactionWriter interface {
	// SaveTransactions inserts new confirmed transactions.
	SaveTransactions(ctx context.Context, txs []domain.ConfirmedTransaction) error

	// UpdateTransaction replaces the categorization and mutable fields of an existing transaction.
	UpdateTransaction(ctx context.Context, tx domain.ConfirmedTransaction) error

	// DeleteTransaction removes a transaction. Returns apperrors.ErrNotFound when absent.
	DeleteTransaction(ctx context.Context, companyID, transactionID string) error
}

// TransactionRepositoryFacade combines all confirmed-transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
