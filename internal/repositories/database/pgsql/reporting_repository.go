package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetTrialBalanceData retrieves trial balance data as of a specific date
func (r *reportingRepository) GetTrialBalanceData(ctx context.Context, companyID string, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			l.account_id,
			COALESCE(a.name, '') AS account_name,
			COALESCE(a.account_type, '') AS account_type,
			SUM(l.debit) AS total_debit,
			SUM(l.credit) AS total_credit
		FROM journal_lines l
		LEFT JOIN accounts a ON a.account_id = l.account_id AND a.company_id = l.company_id
		WHERE l.company_id = $1
			AND l.txn_date <= $2
		GROUP BY l.account_id, a.name, a.account_type
		ORDER BY CASE a.account_type
			WHEN 'ASSET' THEN 1 WHEN 'LIABILITY' THEN 2 WHEN 'EQUITY' THEN 3
			WHEN 'REVENUE' THEN 4 WHEN 'COGS' THEN 5 WHEN 'EXPENSE' THEN 6 ELSE 7 END,
			l.account_id
	`

	rows, err := r.Pool.Query(ctx, query, companyID, asOf)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance data: %w", err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType string

		if err := rows.Scan(
			&row.AccountID,
			&row.AccountName,
			&accountType,
			&row.Debit,
			&row.Credit,
		); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}

		row.AccountType = domain.AccountType(accountType)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}

	return result, nil
}
