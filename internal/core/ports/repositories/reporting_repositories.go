package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// ReportingRepository defines operations for retrieving financial report data
type ReportingRepository interface {
	// GetTrialBalanceData returns per-account debit and credit totals for lines dated on or
	// before asOf. Balance is left for the caller to sign.
	GetTrialBalanceData(ctx context.Context, companyID string, asOf time.Time) ([]domain.TrialBalanceRow, error)
}
