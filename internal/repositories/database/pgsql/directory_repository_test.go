package pgsql

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/pkg/database"
)

func TestUpsertQueriesConflictOnCompanyScopedKeys(t *testing.T) {
	assert.Contains(t, upsertAccountQuery, "ON CONFLICT (company_id, account_id)")
	assert.Contains(t, upsertPayeeQuery, "ON CONFLICT (company_id, payee_id)")
}

// openTestPool connects to PGSQL_TEST_URL and applies the migrations. Tests using it are
// skipped when the variable is unset.
func openTestPool(t *testing.T) *PgxDirectoryRepository {
	t.Helper()
	url := os.Getenv("PGSQL_TEST_URL")
	if url == "" {
		t.Skip("PGSQL_TEST_URL not set")
	}
	require.NoError(t, database.RunMigrations(url, "file://../../../../migrations", slog.Default()))
	pool, err := database.NewPgxPool(context.Background(), url, true)
	require.NoError(t, err)
	t.Cleanup(func() { database.ClosePgxPool(pool) })
	return NewPgxDirectoryRepository(pool)
}

func TestPgxDirectoryRepository_CompanyScopedIDs(t *testing.T) {
	repo := openTestPool(t)
	ctx := context.Background()
	co1, co2 := "co-"+uuid.NewString(), "co-"+uuid.NewString()

	require.NoError(t, repo.SaveAccount(ctx, domain.Account{AccountID: "checking", CompanyID: co1, Name: "Checking", AccountType: domain.Asset}))
	require.NoError(t, repo.SaveAccount(ctx, domain.Account{AccountID: "checking", CompanyID: co2, Name: "Loan", AccountType: domain.Liability}))
	require.NoError(t, repo.SavePayee(ctx, domain.Payee{PayeeID: "acme", CompanyID: co1, Name: "Acme"}))
	require.NoError(t, repo.SavePayee(ctx, domain.Payee{PayeeID: "acme", CompanyID: co2, Name: "Acme Two"}))

	one, err := repo.FindAccount(ctx, co1, "checking")
	require.NoError(t, err)
	assert.Equal(t, domain.Asset, one.AccountType)
	two, err := repo.FindAccount(ctx, co2, "checking")
	require.NoError(t, err)
	assert.Equal(t, domain.Liability, two.AccountType)

	p, err := repo.FindPayee(ctx, co1, "acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme", p.Name)
}

func TestPgxDirectoryRepository_ParentAccountRules(t *testing.T) {
	repo := openTestPool(t)
	ctx := context.Background()
	co1, co2 := "co-"+uuid.NewString(), "co-"+uuid.NewString()

	require.NoError(t, repo.SaveAccount(ctx, domain.Account{AccountID: "opex", CompanyID: co1, Name: "Operating", AccountType: domain.Expense}))
	require.NoError(t, repo.SaveAccount(ctx, domain.Account{AccountID: "bank", CompanyID: co2, Name: "Bank", AccountType: domain.Asset}))

	require.NoError(t, repo.SaveAccount(ctx, domain.Account{AccountID: "office", CompanyID: co1, AccountType: domain.Expense, ParentAccountID: "opex"}))

	err := repo.SaveAccount(ctx, domain.Account{AccountID: "cash", CompanyID: co1, AccountType: domain.Asset, ParentAccountID: "opex"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.ErrorIs(t, err, domain.ErrParentMismatch)

	err = repo.SaveAccount(ctx, domain.Account{AccountID: "petty", CompanyID: co1, AccountType: domain.Asset, ParentAccountID: "bank"})
	assert.ErrorIs(t, err, domain.ErrParentMissing)

	_, err = repo.FindAccount(ctx, co1, "cash")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
