package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/dto"
)

// stagingService is a thin layer over the staging store. Moving rows out of staging is
// the confirmation service's job.
type stagingService struct {
	BaseService
	uow         portsrepo.UnitOfWork
	stagingRepo portsrepo.StagingRepositoryFacade
}

// NewStagingService creates the staging service.
func NewStagingService(uow portsrepo.UnitOfWork, stagingRepo portsrepo.StagingRepositoryFacade, options ...ServiceOption) portssvc.StagingSvcFacade {
	return &stagingService{
		BaseService: newBaseService(options),
		uow:         uow,
		stagingRepo: stagingRepo,
	}
}

var _ portssvc.StagingSvcFacade = (*stagingService)(nil)

// ListStaging implements portssvc.StagingReaderSvc
func (s *stagingService) ListStaging(ctx context.Context, companyID string) ([]domain.ImportedTransaction, error) {
	rows, err := s.stagingRepo.ListImported(ctx, companyID)
	if err != nil {
		return nil, s.fail(ctx, err, "Failed to list staging transactions", slog.String("company_id", companyID))
	}
	s.LogDebug(ctx, "Listed staging transactions", slog.String("company_id", companyID), slog.Int("count", len(rows)))
	return rows, nil
}

// GetStaging implements portssvc.StagingReaderSvc
func (s *stagingService) GetStaging(ctx context.Context, companyID, importedID string) (*domain.ImportedTransaction, error) {
	row, err := s.stagingRepo.FindImportedByID(ctx, companyID, importedID)
	if err != nil {
		return nil, s.fail(ctx, err, "Failed to get staging transaction",
			slog.String("company_id", companyID), slog.String("imported_id", importedID))
	}
	return row, nil
}

// ImportStaging implements portssvc.StagingWriterSvc
func (s *stagingService) ImportStaging(ctx context.Context, companyID string, req dto.ImportStagingRequest) ([]domain.ImportedTransaction, error) {
	logAttrs := []any{slog.String("company_id", companyID), slog.Int("rows", len(req.Rows))}
	if len(req.Rows) == 0 {
		return nil, s.fail(ctx, fmt.Errorf("%w: at least one row is required", apperrors.ErrValidation), "Import rejected", logAttrs...)
	}

	now := s.now()
	var merr *multierror.Error
	rows := make([]domain.ImportedTransaction, len(req.Rows))
	for i, r := range req.Rows {
		rows[i] = domain.ImportedTransaction{
			ImportedID:      s.newID(),
			CompanyID:       companyID,
			Date:            calendarDate(r.Date),
			Description:     r.Description,
			Spent:           r.Spent,
			Received:        r.Received,
			SourceAccountID: r.SourceAccountID,
			SplitAllocation: dto.ToSplitAllocations(r.SplitAllocation),
			CreatedAt:       now,
		}
		if err := rows[i].Validate(); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%w: row %d: %w", apperrors.ErrValidation, i, err))
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, s.fail(ctx, err, "Import rejected", logAttrs...)
	}

	err := s.uow.Do(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		return repos.Staging.SaveImportedMany(ctx, rows)
	})
	if err != nil {
		return nil, s.fail(ctx, err, "Import failed", logAttrs...)
	}

	s.LogInfo(ctx, "Staging transactions imported", logAttrs...)
	return rows, nil
}

// DeleteStaging implements portssvc.StagingWriterSvc
func (s *stagingService) DeleteStaging(ctx context.Context, companyID, importedID string) error {
	if err := s.stagingRepo.DeleteImported(ctx, companyID, importedID); err != nil {
		return s.fail(ctx, err, "Failed to delete staging transaction",
			slog.String("company_id", companyID), slog.String("imported_id", importedID))
	}
	s.LogInfo(ctx, "Staging transaction discarded", slog.String("company_id", companyID), slog.String("imported_id", importedID))
	return nil
}

// DeleteStagingMany implements portssvc.StagingWriterSvc
func (s *stagingService) DeleteStagingMany(ctx context.Context, companyID string, importedIDs []string) (int64, error) {
	deleted, err := s.stagingRepo.DeleteImportedMany(ctx, companyID, importedIDs)
	if err != nil {
		return 0, s.fail(ctx, err, "Failed to delete staging transactions", slog.String("company_id", companyID))
	}
	s.LogInfo(ctx, "Staging transactions discarded",
		slog.String("company_id", companyID), slog.Int("requested", len(importedIDs)), slog.Int64("deleted", deleted))
	return deleted, nil
}

// calendarDate keeps the day as written by the caller, in whatever zone it was sent, and
// stores it as midnight UTC.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
