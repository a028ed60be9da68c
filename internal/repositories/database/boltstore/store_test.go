package boltstore_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/books_ledger/internal/repositories/database/boltstore"
)

const company = "co-1"

func openStore(t *testing.T) *boltstore.Store {
	t.Helper()
	store, err := boltstore.Open(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func stagingRow(id string, d int) domain.ImportedTransaction {
	return domain.ImportedTransaction{
		ImportedID:      id,
		CompanyID:       company,
		Date:            day(d),
		Description:     "row " + id,
		Spent:           domain.MustParseAmount("10.00"),
		SourceAccountID: "checking",
	}
}

func TestStaging_TakeIsCompareAndDelete(t *testing.T) {
	ctx := context.Background()
	repos := openStore(t).NewRepositoryProvider()

	require.NoError(t, repos.StagingRepo.SaveImportedMany(ctx, []domain.ImportedTransaction{stagingRow("a", 2), stagingRow("b", 1)}))

	rows, err := repos.StagingRepo.ListImported(ctx, company)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "b", rows[0].ImportedID, "ordered by date")

	taken, err := repos.StagingRepo.TakeImported(ctx, company, "a")
	require.NoError(t, err)
	assert.Equal(t, "row a", taken.Description)
	assert.True(t, taken.Spent.Equal(domain.MustParseAmount("10")))

	_, err = repos.StagingRepo.TakeImported(ctx, company, "a")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	many, err := repos.StagingRepo.TakeImportedMany(ctx, company, []string{"a", "b"})
	require.NoError(t, err)
	assert.Len(t, many, 1)
	assert.Contains(t, many, "b")
}

func TestStaging_DeleteIsIdempotentAndCompanyScoped(t *testing.T) {
	ctx := context.Background()
	repos := openStore(t).NewRepositoryProvider()
	require.NoError(t, repos.StagingRepo.SaveImportedMany(ctx, []domain.ImportedTransaction{stagingRow("a", 1)}))

	_, err := repos.StagingRepo.FindImportedByID(ctx, "co-2", "a")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	n, err := repos.StagingRepo.DeleteImportedMany(ctx, "co-2", []string{"a"})
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, repos.StagingRepo.DeleteImported(ctx, company, "a"))
	require.NoError(t, repos.StagingRepo.DeleteImported(ctx, company, "a"))

	rows, err := repos.StagingRepo.ListImported(ctx, company)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func confirmed(id string, d int) domain.ConfirmedTransaction {
	return domain.ConfirmedTransaction{
		TransactionID:           id,
		CompanyID:               company,
		Date:                    day(d),
		Spent:                   domain.MustParseAmount("10.00"),
		CorrespondingCategoryID: "checking",
		Categorization:          domain.SimpleCategorization{SelectedCategoryID: "office"},
		SourceAccountID:         "checking",
	}
}

func linesFor(tx domain.ConfirmedTransaction) []domain.JournalLine {
	ten := domain.MustParseAmount("10.00")
	return []domain.JournalLine{
		{LineID: tx.TransactionID + "-1", TransactionID: tx.TransactionID, CompanyID: company, LineNo: 1, Date: tx.Date, AccountID: "office", Debit: ten},
		{LineID: tx.TransactionID + "-2", TransactionID: tx.TransactionID, CompanyID: company, LineNo: 2, Date: tx.Date, AccountID: "checking", Credit: ten},
	}
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	repos := store.NewRepositoryProvider()
	require.NoError(t, repos.StagingRepo.SaveImportedMany(ctx, []domain.ImportedTransaction{stagingRow("a", 1)}))

	boom := errors.New("boom")
	tx := confirmed("t1", 1)
	err := store.Do(ctx, func(ctx context.Context, u portsrepo.TxRepositories) error {
		if _, err := u.Staging.TakeImported(ctx, company, "a"); err != nil {
			return err
		}
		if err := u.Transactions.SaveTransactions(ctx, []domain.ConfirmedTransaction{tx}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = repos.StagingRepo.FindImportedByID(ctx, company, "a")
	assert.NoError(t, err, "staging row is restored")
	_, err = repos.TransactionRepo.FindTransactionByID(ctx, company, "t1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTransactions_UpdateAndDeleteRequireExisting(t *testing.T) {
	ctx := context.Background()
	repos := openStore(t).NewRepositoryProvider()

	assert.ErrorIs(t, repos.TransactionRepo.UpdateTransaction(ctx, confirmed("t1", 1)), apperrors.ErrNotFound)
	assert.ErrorIs(t, repos.TransactionRepo.DeleteTransaction(ctx, company, "t1"), apperrors.ErrNotFound)

	split := confirmed("t2", 1)
	split.Categorization = domain.SplitCategorization{Allocations: []domain.SplitAllocation{
		{CategoryID: "office", Spent: domain.MustParseAmount("4")},
		{CategoryID: "software", Spent: domain.MustParseAmount("6")},
	}}
	require.NoError(t, repos.TransactionRepo.SaveTransactions(ctx, []domain.ConfirmedTransaction{confirmed("t1", 2), split}))

	txs, err := repos.TransactionRepo.ListTransactions(ctx, company)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "t2", txs[0].TransactionID)
	assert.Len(t, txs[0].Split(), 2)

	edited := txs[1]
	edited.Categorization = domain.SimpleCategorization{SelectedCategoryID: "software"}
	require.NoError(t, repos.TransactionRepo.UpdateTransaction(ctx, edited))
	got, err := repos.TransactionRepo.FindTransactionByID(ctx, company, "t1")
	require.NoError(t, err)
	assert.Equal(t, "software", got.SelectedCategoryID())

	require.NoError(t, repos.TransactionRepo.DeleteTransaction(ctx, company, "t1"))
	assert.ErrorIs(t, repos.TransactionRepo.DeleteTransaction(ctx, company, "t1"), apperrors.ErrNotFound)
}

func TestJournal_PrefixDeleteAndOrdering(t *testing.T) {
	ctx := context.Background()
	repos := openStore(t).NewRepositoryProvider()

	t1, t10 := confirmed("t1", 2), confirmed("t10", 1)
	require.NoError(t, repos.JournalRepo.SaveLines(ctx, append(linesFor(t1), linesFor(t10)...)))
	assert.Error(t, repos.JournalRepo.SaveLines(ctx, linesFor(t1)), "duplicate line numbers are rejected")

	lines, err := repos.JournalRepo.ListLines(ctx, company, domain.JournalFilter{})
	require.NoError(t, err)
	require.Len(t, lines, 4)
	assert.Equal(t, "t10", lines[0].TransactionID)
	assert.Equal(t, 1, lines[0].LineNo)

	from := day(2)
	lines, err = repos.JournalRepo.ListLines(ctx, company, domain.JournalFilter{From: &from})
	require.NoError(t, err)
	assert.Len(t, lines, 2)

	// "t1/" must not match the lines of "t10"
	n, err := repos.JournalRepo.DeleteLinesByTransaction(ctx, company, "t1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	rest, err := repos.JournalRepo.ListLinesByTransaction(ctx, company, "t10")
	require.NoError(t, err)
	assert.Len(t, rest, 2)

	n, err = repos.JournalRepo.DeleteLinesByCompany(ctx, company)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	n, err = repos.JournalRepo.DeleteLinesByCompany(ctx, company)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDirectoryAndTrialBalance(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)
	dir := store.Directory()
	repos := store.NewRepositoryProvider()

	require.NoError(t, dir.SaveAccount(ctx, domain.Account{AccountID: "checking", CompanyID: company, Name: "Checking", AccountType: domain.Asset}))
	require.NoError(t, dir.SaveAccount(ctx, domain.Account{AccountID: "office", CompanyID: company, Name: "Office", AccountType: domain.Expense}))
	require.NoError(t, dir.SavePayee(ctx, domain.Payee{PayeeID: "acme", CompanyID: company, Name: "Acme"}))
	assert.ErrorIs(t, dir.SaveAccount(ctx, domain.Account{AccountID: "x", CompanyID: company, AccountType: "WEIRD"}), apperrors.ErrValidation)

	accounts, err := dir.FindAccountsByIDs(ctx, company, []string{"checking", "missing"})
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
	empty, err := dir.FindAccountsByIDs(ctx, company, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
	_, err = dir.FindPayee(ctx, "co-2", "acme")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, repos.JournalRepo.SaveLines(ctx, append(linesFor(confirmed("t1", 1)), linesFor(confirmed("t2", 5))...)))

	rows, err := repos.ReportingRepo.GetTrialBalanceData(ctx, company, day(3))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "checking", rows[0].AccountID)
	assert.Equal(t, domain.Asset, rows[0].AccountType)
	assert.Equal(t, "10.00", rows[0].Credit.String())
	assert.Equal(t, "Office", rows[1].AccountName)
	assert.Equal(t, "10.00", rows[1].Debit.String())
}

func TestDirectory_ParentAccountRules(t *testing.T) {
	ctx := context.Background()
	dir := openStore(t).Directory()

	require.NoError(t, dir.SaveAccount(ctx, domain.Account{AccountID: "opex", CompanyID: company, Name: "Operating", AccountType: domain.Expense}))
	require.NoError(t, dir.SaveAccount(ctx, domain.Account{AccountID: "bank", CompanyID: "co-2", Name: "Bank", AccountType: domain.Asset}))

	tests := []struct {
		name    string
		account domain.Account
		wantErr error
	}{
		{
			name:    "same type child",
			account: domain.Account{AccountID: "office", CompanyID: company, AccountType: domain.Expense, ParentAccountID: "opex"},
		},
		{
			name:    "different type child",
			account: domain.Account{AccountID: "cash", CompanyID: company, AccountType: domain.Asset, ParentAccountID: "opex"},
			wantErr: domain.ErrParentMismatch,
		},
		{
			name:    "missing parent",
			account: domain.Account{AccountID: "travel", CompanyID: company, AccountType: domain.Expense, ParentAccountID: "nowhere"},
			wantErr: domain.ErrParentMissing,
		},
		{
			name:    "parent in another company",
			account: domain.Account{AccountID: "petty", CompanyID: company, AccountType: domain.Asset, ParentAccountID: "bank"},
			wantErr: domain.ErrParentMissing,
		},
		{
			name:    "own parent",
			account: domain.Account{AccountID: "opex", CompanyID: company, AccountType: domain.Expense, ParentAccountID: "opex"},
			wantErr: domain.ErrParentSelf,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dir.SaveAccount(ctx, tt.account)
			if tt.wantErr == nil {
				require.NoError(t, err)
				got, err := dir.FindAccount(ctx, company, tt.account.AccountID)
				require.NoError(t, err)
				assert.Equal(t, tt.account.ParentAccountID, got.ParentAccountID)
				return
			}
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.ErrorIs(t, err, tt.wantErr)
			_, err = dir.FindAccount(ctx, company, tt.account.AccountID)
			if tt.account.AccountID != "opex" {
				assert.ErrorIs(t, err, apperrors.ErrNotFound, "rejected account must not be stored")
			}
		})
	}
}

func TestDirectory_IDsAreScopedPerCompany(t *testing.T) {
	ctx := context.Background()
	dir := openStore(t).Directory()

	require.NoError(t, dir.SaveAccount(ctx, domain.Account{AccountID: "checking", CompanyID: "co-1", Name: "Checking", AccountType: domain.Asset}))
	require.NoError(t, dir.SaveAccount(ctx, domain.Account{AccountID: "checking", CompanyID: "co-2", Name: "Loan", AccountType: domain.Liability}))

	one, err := dir.FindAccount(ctx, "co-1", "checking")
	require.NoError(t, err)
	assert.Equal(t, domain.Asset, one.AccountType)
	two, err := dir.FindAccount(ctx, "co-2", "checking")
	require.NoError(t, err)
	assert.Equal(t, domain.Liability, two.AccountType)
}
