package boltstore

import (
	"context"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/books_ledger/internal/models"
	"github.com/SscSPs/books_ledger/internal/utils/mapping"
)

type reportingRepository struct {
	run runner
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetTrialBalanceData implements portsrepo.ReportingRepository. Both buckets are read in one
// snapshot so the totals and the account names agree.
func (r *reportingRepository) GetTrialBalanceData(ctx context.Context, companyID string, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	totals := make(map[string]*domain.TrialBalanceRow)
	err := r.run.view(func(tx *bolt.Tx) error {
		journal, err := companyBucket(tx, BucketJournal, companyID)
		if err != nil {
			return err
		}
		err = forEachJSON(journal, func(_ []byte, m models.JournalLine) error {
			if m.TxnDate.After(asOf) {
				return nil
			}
			line := mapping.ToDomainJournalLine(m)
			row, ok := totals[line.AccountID]
			if !ok {
				row = &domain.TrialBalanceRow{AccountID: line.AccountID}
				totals[line.AccountID] = row
			}
			row.Debit = row.Debit.Add(line.Debit)
			row.Credit = row.Credit.Add(line.Credit)
			return nil
		})
		if err != nil {
			return err
		}

		accounts, err := companyBucket(tx, BucketAccounts, companyID)
		if err != nil {
			return err
		}
		for id, row := range totals {
			var m models.Account
			err := getJSON(accounts, id, &m)
			if isNotFound(err) {
				continue
			}
			if err != nil {
				return err
			}
			row.AccountName = m.Name
			row.AccountType = domain.AccountType(m.AccountType)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rows := make([]domain.TrialBalanceRow, 0, len(totals))
	for _, row := range totals {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AccountType != rows[j].AccountType {
			return accountTypeOrder(rows[i].AccountType) < accountTypeOrder(rows[j].AccountType)
		}
		return rows[i].AccountID < rows[j].AccountID
	})
	return rows, nil
}

// accountTypeOrder matches the ORDER BY used by the Postgres trial balance query.
func accountTypeOrder(t domain.AccountType) int {
	switch t {
	case domain.Asset:
		return 1
	case domain.Liability:
		return 2
	case domain.Equity:
		return 3
	case domain.Revenue:
		return 4
	case domain.COGS:
		return 5
	case domain.Expense:
		return 6
	}
	return 7
}
