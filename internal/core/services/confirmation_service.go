package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/hashicorp/go-multierror"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/SscSPs/books_ledger/internal/utils/accounting"
)

// confirmationService moves staging rows into the ledger.
type confirmationService struct {
	BaseService
	uow     portsrepo.UnitOfWork
	staging portsrepo.StagingReader
	refs    referenceChecker
}

// NewConfirmationService creates the confirmation mover.
func NewConfirmationService(uow portsrepo.UnitOfWork, staging portsrepo.StagingReader, directory portsrepo.DirectoryReader, options ...ServiceOption) portssvc.ConfirmationSvcFacade {
	return &confirmationService{
		BaseService: newBaseService(options),
		uow:         uow,
		staging:     staging,
		refs:        referenceChecker{directory: directory},
	}
}

var _ portssvc.ConfirmationSvcFacade = (*confirmationService)(nil)

// plannedMove is a fully validated move waiting to be written.
type plannedMove struct {
	tx    domain.ConfirmedTransaction
	lines []domain.JournalLine
}

// confirmedFromStaging builds the confirmed record. Date, description and amounts are copied
// from the staging row verbatim.
func (s *confirmationService) confirmedFromStaging(imported domain.ImportedTransaction, req dto.MoveRequest) (domain.ConfirmedTransaction, error) {
	if req.CorrespondingCategoryID == "" {
		return domain.ConfirmedTransaction{}, fmt.Errorf("%w: corresponding category is required", apperrors.ErrValidation)
	}

	split := dto.ToSplitAllocations(req.SplitAllocation)
	if split == nil && req.SelectedCategoryID == "" {
		split = imported.SplitAllocation
	}
	categorization, err := buildCategorization(req.SelectedCategoryID, split)
	if err != nil {
		return domain.ConfirmedTransaction{}, err
	}

	now := s.now()
	return domain.ConfirmedTransaction{
		TransactionID:           s.newID(),
		CompanyID:               imported.CompanyID,
		ImportedID:              imported.ImportedID,
		Date:                    imported.Date,
		Description:             imported.Description,
		Spent:                   imported.Spent,
		Received:                imported.Received,
		CorrespondingCategoryID: req.CorrespondingCategoryID,
		Categorization:          categorization,
		PayeeID:                 req.PayeeID,
		SourceAccountID:         imported.SourceAccountID,
		AuditFields:             domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}, nil
}

// MoveOne implements portssvc.ConfirmationSvcFacade
func (s *confirmationService) MoveOne(ctx context.Context, companyID string, req dto.MoveRequest) (*domain.ConfirmedTransaction, error) {
	logAttrs := []any{slog.String("company_id", companyID), slog.String("imported_id", req.ImportedID)}
	if req.ImportedID == "" {
		return nil, s.fail(ctx, fmt.Errorf("%w: imported id is required", apperrors.ErrValidation), "Move rejected", logAttrs...)
	}

	imported, err := s.staging.FindImportedByID(ctx, companyID, req.ImportedID)
	if err != nil {
		return nil, s.fail(ctx, err, "Staging lookup failed", logAttrs...)
	}

	tx, err := s.confirmedFromStaging(*imported, req)
	if err != nil {
		return nil, s.fail(ctx, err, "Move rejected", logAttrs...)
	}

	refErrs, err := s.refs.check(ctx, companyID, []domain.ConfirmedTransaction{tx})
	if err != nil {
		return nil, s.fail(ctx, err, "Reference check failed", logAttrs...)
	}
	if refErrs[0] != nil {
		return nil, s.fail(ctx, refErrs[0], "Move rejected", logAttrs...)
	}

	lines, err := accounting.DeriveJournalLines(tx, s.newID)
	if err != nil {
		return nil, s.fail(ctx, err, "Move rejected", logAttrs...)
	}

	err = s.uow.Do(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if err := repos.Locker.LockCompanyShared(ctx, companyID); err != nil {
			return err
		}
		// Taking the row is the existence check: a concurrent mover that got here first
		// leaves nothing to take.
		if _, err := repos.Staging.TakeImported(ctx, companyID, req.ImportedID); err != nil {
			return err
		}
		if err := repos.Transactions.SaveTransactions(ctx, []domain.ConfirmedTransaction{tx}); err != nil {
			return err
		}
		return repos.Journal.SaveLines(ctx, lines)
	})
	if err != nil {
		return nil, s.fail(ctx, err, "Move failed, staging row left untouched", logAttrs...)
	}

	s.LogInfo(ctx, "Staging transaction confirmed",
		append(logAttrs, slog.String("transaction_id", tx.TransactionID), slog.Int("lines", len(lines)))...)
	return &tx, nil
}

// MoveMany implements portssvc.ConfirmationSvcFacade
func (s *confirmationService) MoveMany(ctx context.Context, companyID string, req dto.MoveManyRequest) ([]domain.ConfirmedTransaction, error) {
	logAttrs := []any{slog.String("company_id", companyID), slog.Int("batch_size", len(req.Moves))}
	if len(req.Moves) == 0 {
		return nil, s.fail(ctx, fmt.Errorf("%w: at least one move is required", apperrors.ErrValidation), "Batch move rejected", logAttrs...)
	}

	ids := make([]string, 0, len(req.Moves))
	for i, m := range req.Moves {
		if m.ImportedID == "" {
			return nil, s.fail(ctx, fmt.Errorf("%w: move %d has no imported id", apperrors.ErrValidation, i), "Batch move rejected", logAttrs...)
		}
		if slices.Contains(ids, m.ImportedID) {
			return nil, s.fail(ctx, fmt.Errorf("%w: imported id %s appears more than once", apperrors.ErrValidation, m.ImportedID), "Batch move rejected", logAttrs...)
		}
		ids = append(ids, m.ImportedID)
	}

	staged, err := s.staging.FindImportedByIDs(ctx, companyID, ids)
	if err != nil {
		return nil, s.fail(ctx, err, "Staging lookup failed", logAttrs...)
	}
	if missing := missingIDs(ids, staged); len(missing) > 0 {
		return nil, s.fail(ctx, &apperrors.ConflictError{MissingIDs: missing}, "Batch move rejected", logAttrs...)
	}

	// Validation runs over the whole batch so the caller sees every problem at once.
	var merr *multierror.Error
	txs := make([]domain.ConfirmedTransaction, len(req.Moves))
	buildOK := make([]bool, len(req.Moves))
	for i, m := range req.Moves {
		tx, err := s.confirmedFromStaging(staged[m.ImportedID], m)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("move %s: %w", m.ImportedID, err))
			continue
		}
		txs[i], buildOK[i] = tx, true
	}

	refErrs, err := s.refs.check(ctx, companyID, txs)
	if err != nil {
		return nil, s.fail(ctx, err, "Reference check failed", logAttrs...)
	}

	planned := make([]plannedMove, 0, len(txs))
	for i, tx := range txs {
		if !buildOK[i] {
			continue
		}
		if refErrs[i] != nil {
			merr = multierror.Append(merr, fmt.Errorf("move %s: %w", req.Moves[i].ImportedID, refErrs[i]))
			continue
		}
		lines, err := accounting.DeriveJournalLines(tx, s.newID)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("move %s: %w", req.Moves[i].ImportedID, err))
			continue
		}
		planned = append(planned, plannedMove{tx: tx, lines: lines})
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, s.fail(ctx, err, "Batch move rejected", logAttrs...)
	}

	confirmed := make([]domain.ConfirmedTransaction, len(planned))
	var allLines []domain.JournalLine
	for i, p := range planned {
		confirmed[i] = p.tx
		allLines = append(allLines, p.lines...)
	}

	err = s.uow.Do(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if err := repos.Locker.LockCompanyShared(ctx, companyID); err != nil {
			return err
		}
		taken, err := repos.Staging.TakeImportedMany(ctx, companyID, ids)
		if err != nil {
			return err
		}
		if missing := missingIDs(ids, taken); len(missing) > 0 {
			return &apperrors.ConflictError{MissingIDs: missing}
		}
		if err := repos.Transactions.SaveTransactions(ctx, confirmed); err != nil {
			return err
		}
		return repos.Journal.SaveLines(ctx, allLines)
	})
	if err != nil {
		return nil, s.fail(ctx, err, "Batch move failed, staging rows left untouched", logAttrs...)
	}

	s.LogInfo(ctx, "Staging batch confirmed", append(logAttrs, slog.Int("lines", len(allLines)))...)
	return confirmed, nil
}

func missingIDs(ids []string, found map[string]domain.ImportedTransaction) []string {
	var missing []string
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
