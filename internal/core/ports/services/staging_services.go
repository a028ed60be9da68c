package services

import (
	"context"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/dto"
)

// StagingReaderSvc defines read operations for staging rows
type StagingReaderSvc interface {
	ListStaging(ctx context.Context, companyID string) ([]domain.ImportedTransaction, error)
	GetStaging(ctx context.Context, companyID, importedID string) (*domain.ImportedTransaction, error)
}

// StagingWriterSvc defines write operations for staging rows
type StagingWriterSvc interface {
	// ImportStaging validates and inserts new rows. Nothing is inserted if any row is invalid.
	ImportStaging(ctx context.Context, companyID string, req dto.ImportStagingRequest) ([]domain.ImportedTransaction, error)

	// DeleteStaging discards a row. Discarding an absent row succeeds.
	DeleteStaging(ctx context.Context, companyID, importedID string) error

	// DeleteStagingMany discards rows and reports how many existed.
	DeleteStagingMany(ctx context.Context, companyID string, importedIDs []string) (int64, error)
}

// StagingSvcFacade combines all staging service interfaces
type StagingSvcFacade interface {
	StagingReaderSvc
	StagingWriterSvc
}
