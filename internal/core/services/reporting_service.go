package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/books_ledger/internal/core/ports/services"
	"github.com/SscSPs/books_ledger/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, options ...ServiceOption) portssvc.ReportingService {
	return &reportingService{
		BaseService:   newBaseService(options),
		reportingRepo: repo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance generates a trial balance report as of a specific date
func (s *reportingService) TrialBalance(ctx context.Context, companyID string, asOf time.Time) (*domain.TrialBalance, error) {
	logAttrs := []any{slog.String("company_id", companyID), slog.String("as_of", asOf.Format(time.DateOnly))}

	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, companyID, asOf)
	if err != nil {
		return nil, s.fail(ctx, err, "Failed to retrieve trial balance data", logAttrs...)
	}

	report := &domain.TrialBalance{Rows: rows}
	for i := range report.Rows {
		row := &report.Rows[i]
		balance, err := accounting.CalculateSignedAmount(
			domain.JournalLine{AccountID: row.AccountID, Debit: row.Debit, Credit: row.Credit}, row.AccountType)
		if err != nil {
			// lines still point at an account that left the directory
			s.GetLogger(ctx).Warn("Trial balance row has no known account type",
				append(logAttrs, slog.String("account_id", row.AccountID))...)
			balance = row.Debit.Sub(row.Credit)
		}
		row.Balance = balance
		report.TotalDebit = report.TotalDebit.Add(row.Debit)
		report.TotalCredit = report.TotalCredit.Add(row.Credit)
	}

	if !report.TotalDebit.Equal(report.TotalCredit) {
		// The builder never persists unbalanced lines, so this means the store drifted.
		s.GetLogger(ctx).Error("Trial balance does not balance; run a journal verify",
			append(logAttrs, slog.String("debit", report.TotalDebit.String()), slog.String("credit", report.TotalCredit.String()))...)
	}

	s.LogInfo(ctx, "Trial balance report generated successfully", append(logAttrs, slog.Int("row_count", len(rows)))...)
	return report, nil
}
