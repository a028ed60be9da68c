package services

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/dto"
	"github.com/SscSPs/books_ledger/internal/utils/accounting"
)

// journalService exposes the journal stream and the resync/repair engine.
type journalService struct {
	BaseService
	uow         portsrepo.UnitOfWork
	txRepo      portsrepo.TransactionReader
	journalRepo portsrepo.JournalReader
}

// NewJournalService creates a new JournalService.
func NewJournalService(uow portsrepo.UnitOfWork, txRepo portsrepo.TransactionReader, journalRepo portsrepo.JournalReader, options ...ServiceOption) portssvc.JournalSvcFacade {
	return &journalService{
		BaseService: newBaseService(options),
		uow:         uow,
		txRepo:      txRepo,
		journalRepo: journalRepo,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// ListJournalLines implements portssvc.JournalReaderSvc
func (s *journalService) ListJournalLines(ctx context.Context, companyID string, params dto.ListJournalLinesParams) (*domain.JournalPage, error) {
	logAttrs := []any{slog.String("company_id", companyID)}
	if params.From != nil && params.To != nil && params.From.After(*params.To) {
		return nil, s.fail(ctx, fmt.Errorf("%w: from date must not be after to date", apperrors.ErrValidation),
			"Journal listing rejected", logAttrs...)
	}
	filter, err := params.ToFilter()
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("%w: %w", apperrors.ErrValidation, err), "Journal listing rejected", logAttrs...)
	}
	if filter.Limit > 0 {
		// one extra line tells us whether another page exists
		filter.Limit++
	}

	lines, err := s.journalRepo.ListLines(ctx, companyID, filter)
	if err != nil {
		return nil, s.fail(ctx, err, "Failed to list journal lines", logAttrs...)
	}

	page := &domain.JournalPage{Lines: lines}
	if params.Limit > 0 && len(lines) > params.Limit {
		page.Lines = lines[:params.Limit]
		next := domain.CursorOf(page.Lines[len(page.Lines)-1])
		page.Next = &next
	}
	s.LogDebug(ctx, "Listed journal lines", append(logAttrs, slog.Int("count", len(page.Lines)))...)
	return page, nil
}

// ResyncJournal implements portssvc.JournalRepairSvc. The whole rebuild happens inside one
// unit of work under the company's exclusive lock, so a failure anywhere leaves the previous
// journal in place and no move can slip in between the delete and the rebuild.
func (s *journalService) ResyncJournal(ctx context.Context, companyID string) (*domain.ResyncResult, error) {
	logAttrs := []any{slog.String("company_id", companyID)}
	result := &domain.ResyncResult{CompanyID: companyID}

	err := s.uow.Do(ctx, func(ctx context.Context, repos portsrepo.TxRepositories) error {
		if err := repos.Locker.LockCompanyExclusive(ctx, companyID); err != nil {
			return err
		}

		txs, err := repos.Transactions.ListTransactions(ctx, companyID)
		if err != nil {
			return err
		}
		if len(txs) == 0 {
			return fmt.Errorf("%w: company %s", apperrors.ErrNoTransactions, companyID)
		}

		var lines []domain.JournalLine
		for _, tx := range txs {
			derived, err := accounting.DeriveJournalLines(tx, s.newID)
			if err != nil {
				return fmt.Errorf("rebuild transaction %s: %w", tx.TransactionID, err)
			}
			lines = append(lines, derived...)
		}

		deleted, err := repos.Journal.DeleteLinesByCompany(ctx, companyID)
		if err != nil {
			return err
		}
		if err := repos.Journal.SaveLines(ctx, lines); err != nil {
			return err
		}

		result.Transactions = len(txs)
		result.LinesDeleted = deleted
		result.LinesInserted = len(lines)
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, err, "Journal resync failed, previous journal kept", logAttrs...)
	}

	s.LogInfo(ctx, "Journal resynced", append(logAttrs,
		slog.Int("transactions", result.Transactions),
		slog.Int64("lines_deleted", result.LinesDeleted),
		slog.Int("lines_inserted", result.LinesInserted))...)
	return result, nil
}

// VerifyJournal implements portssvc.JournalReaderSvc. It re-derives every confirmed
// transaction and compares against what is stored, which is how drift is detected
// before it is repaired with a resync.
func (s *journalService) VerifyJournal(ctx context.Context, companyID string) (*domain.VerifyReport, error) {
	logAttrs := []any{slog.String("company_id", companyID)}

	txs, err := s.txRepo.ListTransactions(ctx, companyID)
	if err != nil {
		return nil, s.fail(ctx, err, "Failed to load transactions for verification", logAttrs...)
	}
	lines, err := s.journalRepo.ListLines(ctx, companyID, domain.JournalFilter{})
	if err != nil {
		return nil, s.fail(ctx, err, "Failed to load journal for verification", logAttrs...)
	}

	stored := make(map[string][]domain.JournalLine)
	for _, l := range lines {
		stored[l.TransactionID] = append(stored[l.TransactionID], l)
	}

	report := &domain.VerifyReport{
		CompanyID:           companyID,
		TransactionsScanned: len(txs),
		LinesScanned:        len(lines),
		Drift:               []domain.JournalDrift{},
	}
	noID := func() string { return "" }
	for _, tx := range txs {
		have := stored[tx.TransactionID]
		delete(stored, tx.TransactionID)

		if err := accounting.ValidateLinesBalance(tx.TransactionID, have); err != nil {
			report.Drift = append(report.Drift, domain.JournalDrift{TransactionID: tx.TransactionID, Reason: err.Error()})
			continue
		}
		want, err := accounting.DeriveJournalLines(tx, noID)
		if err != nil {
			report.Drift = append(report.Drift, domain.JournalDrift{TransactionID: tx.TransactionID, Reason: err.Error()})
			continue
		}
		if ok, reason := accounting.CompareLineSets(want, have); !ok {
			report.Drift = append(report.Drift, domain.JournalDrift{TransactionID: tx.TransactionID, Reason: reason})
		}
	}
	for _, txID := range slices.Sorted(maps.Keys(stored)) {
		report.Drift = append(report.Drift, domain.JournalDrift{
			TransactionID: txID,
			Reason:        fmt.Sprintf("%d journal lines belong to no confirmed transaction", len(stored[txID])),
		})
	}

	if len(report.Drift) > 0 {
		s.GetLogger(ctx).Warn("Journal drift detected", append(logAttrs, slog.Int("drifted", len(report.Drift)))...)
	} else {
		s.LogDebug(ctx, "Journal verified", logAttrs...)
	}
	return report, nil
}
