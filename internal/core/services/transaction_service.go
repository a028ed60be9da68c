package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/SscSPs/books_ledger/internal/utils/accounting"
)

// transactionService reads confirmed transactions and applies edit, undo and delete.
// Every write replaces the transaction's journal lines in the same unit of work.
type transactionService struct {
	BaseService
	uow    portsrepo.UnitOfWork
	txRepo portsrepo.TransactionReader
	refs   referenceChecker
}

// NewTransactionService creates the confirmed-transaction service.
func NewTransactionService(uow portsrepo.UnitOfWork, txRepo portsrepo.TransactionReader, directory portsrepo.DirectoryReader, options ...ServiceOption) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService: newBaseService(options),
		uow:         uow,
		txRepo:      txRepo,
		refs:        referenceChecker{directory: directory},
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// GetTransaction implements portssvc.TransactionReaderSvc
func (s *transactionService) GetTransaction(ctx context.Context, companyID, transactionID string) (*domain.ConfirmedTransaction, error) {
	tx, err := s.txRepo.FindTransactionByID(ctx, companyID, transactionID)
	if err != nil {
		return nil, s.fail(ctx, err, "Failed to get transaction",
			slog.String("company_id", companyID), slog.String("transaction_id", transactionID))
	}
	return tx, nil
}

// ListTransactions implements portssvc.TransactionReaderSvc
func (s *transactionService) ListTransactions(ctx context.Context, companyID string) ([]domain.ConfirmedTransaction, error) {
	txs, err := s.txRepo.ListTransactions(ctx, companyID)
	if err != nil {
		return nil, s.fail(ctx, err, "Failed to list transactions", slog.String("company_id", companyID))
	}
	s.LogDebug(ctx, "Listed transactions", slog.String("company_id", companyID), slog.Int("count", len(txs)))
	return txs, nil
}

// EditCategorization implements portssvc.TransactionWriterSvc
func (s *transactionService) EditCategorization(ctx context.Context, companyID, transactionID string, req dto.EditCategorizationRequest) (*domain.ConfirmedTransaction, error) {
	logAttrs := []any{slog.String("company_id", companyID), slog.String("transaction_id", transactionID)}

	existing, err := s.txRepo.FindTransactionByID(ctx, companyID, transactionID)
	if err != nil {
		return nil, s.fail(ctx, err, "Edit rejected", logAttrs...)
	}

	categorization, err := buildCategorization(req.SelectedCategoryID, dto.ToSplitAllocations(req.SplitAllocation))
	if err != nil {
		return nil, s.fail(ctx, err, "Edit rejected", logAttrs...)
	}

	// Amounts, date and source account stay as stored; only categorization and linkage change.
	updated := *existing
	updated.Categorization = categorization
	if req.CorrespondingCategoryID != nil {
		if *req.CorrespondingCategoryID == "" {
			return nil, s.fail(ctx, fmt.Errorf("%w: corresponding category cannot be cleared", apperrors.ErrValidation), "Edit rejected", logAttrs...)
		}
		updated.CorrespondingCategoryID = *req.CorrespondingCategoryID
	}
	if req.PayeeID != nil {
		updated.PayeeID = *req.PayeeID
	}
	updated.LastUpdatedAt = s.now()

	refErrs, err := s.refs.check(ctx, companyID, []domain.ConfirmedTransaction{updated})
	if err != nil {
		return nil, s.fail(ctx, err, "Reference check failed", logAttrs...)
	}
	if refErrs[0] != nil {
		return nil, s.fail(ctx, refErrs[0], "Edit rejected", logAttrs...)
	}

	lines, err := accounting.DeriveJournalLines(updated, s.newID)
	if err != nil {
		return nil, s.fail(ctx, err, "Edit rejected", logAttrs...)
	}

	err = s.uow.Do(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if err := repos.Locker.LockCompanyShared(ctx, companyID); err != nil {
			return err
		}
		// Updating the row first serializes concurrent edits of the same transaction.
		if err := repos.Transactions.UpdateTransaction(ctx, updated); err != nil {
			return err
		}
		if _, err := repos.Journal.DeleteLinesByTransaction(ctx, companyID, transactionID); err != nil {
			return err
		}
		return repos.Journal.SaveLines(ctx, lines)
	})
	if err != nil {
		return nil, s.fail(ctx, err, "Edit failed", logAttrs...)
	}

	s.LogInfo(ctx, "Transaction recategorized", append(logAttrs, slog.Int("lines", len(lines)))...)
	return &updated, nil
}

// UndoTransaction implements portssvc.TransactionWriterSvc
func (s *transactionService) UndoTransaction(ctx context.Context, companyID, transactionID string) (*domain.ImportedTransaction, error) {
	logAttrs := []any{slog.String("company_id", companyID), slog.String("transaction_id", transactionID)}

	existing, err := s.txRepo.FindTransactionByID(ctx, companyID, transactionID)
	if err != nil {
		return nil, s.fail(ctx, err, "Undo rejected", logAttrs...)
	}

	staging := domain.ImportedTransaction{
		ImportedID:      s.newID(),
		CompanyID:       existing.CompanyID,
		Date:            existing.Date,
		Description:     existing.Description,
		Spent:           existing.Spent,
		Received:        existing.Received,
		SourceAccountID: existing.SourceAccountID,
		SplitAllocation: existing.Split(),
		CreatedAt:       s.now(),
	}

	err = s.uow.Do(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if err := repos.Locker.LockCompanyShared(ctx, companyID); err != nil {
			return err
		}
		if err := repos.Transactions.DeleteTransaction(ctx, companyID, transactionID); err != nil {
			return err
		}
		if _, err := repos.Journal.DeleteLinesByTransaction(ctx, companyID, transactionID); err != nil {
			return err
		}
		return repos.Staging.SaveImportedMany(ctx, []domain.ImportedTransaction{staging})
	})
	if err != nil {
		return nil, s.fail(ctx, err, "Undo failed", logAttrs...)
	}

	s.LogInfo(ctx, "Transaction returned to staging", append(logAttrs, slog.String("imported_id", staging.ImportedID))...)
	return &staging, nil
}

// DeleteTransaction implements portssvc.TransactionWriterSvc
func (s *transactionService) DeleteTransaction(ctx context.Context, companyID, transactionID string) error {
	logAttrs := []any{slog.String("company_id", companyID), slog.String("transaction_id", transactionID)}

	err := s.uow.Do(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if err := repos.Locker.LockCompanyShared(ctx, companyID); err != nil {
			return err
		}
		if err := repos.Transactions.DeleteTransaction(ctx, companyID, transactionID); err != nil {
			return err
		}
		_, err := repos.Journal.DeleteLinesByTransaction(ctx, companyID, transactionID)
		return err
	})
	if err != nil {
		return s.fail(ctx, err, "Delete failed", logAttrs...)
	}

	s.LogInfo(ctx, "Transaction deleted", logAttrs...)
	return nil
}
