package repositories

import (
	"context"

	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// StagingReader defines read operations for imported (staging) transactions
type StagingReader interface {
	// ListImported returns the company's staging rows ordered by date, then id.
	ListImported(ctx context.Context, companyID string) ([]domain.ImportedTransaction, error)

	// FindImportedByID returns apperrors.ErrNotFound when the row is absent.
	FindImportedByID(ctx context.Context, companyID, importedID string) (*domain.ImportedTransaction, error)

	// FindImportedByIDs fetches many rows in one pass. Missing ids are simply absent from the map.
	FindImportedByIDs(ctx context.Context, companyID string, importedIDs []string) (map[string]domain.ImportedTransaction, error)
}

// StagingWriter defines write operations for imported transactions
type StagingWriter interface {
	// SaveImportedMany inserts new staging rows.
	SaveImportedMany(ctx context.Context, rows []domain.ImportedTransaction) error

	// DeleteImported removes a row. Deleting an absent row is not an error.
	DeleteImported(ctx context.Context, companyID, importedID string) error

	// DeleteImportedMany removes rows and reports how many existed.
	DeleteImportedMany(ctx context.Context, companyID string, importedIDs []string) (int64, error)

	// TakeImported deletes a row and returns what was deleted in one atomic step.
	// Returns apperrors.ErrNotFound when there was nothing to take, so of two concurrent
	// callers exactly one wins.
	TakeImported(ctx context.Context, companyID, importedID string) (*domain.ImportedTransaction, error)

	// TakeImportedMany is TakeImported for a batch. Ids that were already gone are absent
	// from the returned map.
	TakeImportedMany(ctx context.Context, companyID string, importedIDs []string) (map[string]domain.ImportedTransaction, error)
}

// StagingRepositoryFacade combines all staging repository interfaces
type StagingRepositoryFacade interface {
	StagingReader
	StagingWriter
}
