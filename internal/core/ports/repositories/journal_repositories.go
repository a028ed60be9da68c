package repositories

import (
	"context"

	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// JournalReader defines read operations for journal lines
type JournalReader interface {
	// ListLines streams a company's journal ordered by date, transaction id and line number.
	ListLines(ctx context.Context, companyID string, filter domain.JournalFilter) ([]domain.JournalLine, error)

	// ListLinesByTransaction returns one transaction's lines in line-number order.
	ListLinesByTransaction(ctx context.Context, companyID, transactionID string) ([]domain.JournalLine, error)
}

// JournalWriter defines write operations for journal lines
type JournalWriter interface {
	// SaveLines inserts journal lines.
	SaveLines(ctx context.Context, lines []domain.JournalLine) error

	// DeleteLinesByTransaction removes one transaction's lines and returns how many were removed.
	DeleteLinesByTransaction(ctx context.Context, companyID, transactionID string) (int64, error)

	// DeleteLinesByCompany removes the company's whole journal. Only resync calls it.
	DeleteLinesByCompany(ctx context.Context, companyID string) (int64, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
// This is a facade for clients that need access to all operations
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
