package repositories

import (
	"context"

	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// DirectoryReader is the read-only view of the chart of accounts and payee list.
// Lookups are always company scoped; an id from another company is reported as not found.
type DirectoryReader interface {
	// FindAccount returns apperrors.ErrNotFound when the account is absent.
	FindAccount(ctx context.Context, companyID, accountID string) (*domain.Account, error)

	// FindAccountsByIDs returns the accounts that exist. Missing ids are absent from the map.
	FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error)

	// FindPayee returns apperrors.ErrNotFound when the payee is absent.
	FindPayee(ctx context.Context, companyID, payeeID string) (*domain.Payee, error)

	// FindPayeesByIDs returns the payees that exist. Missing ids are absent from the map.
	FindPayeesByIDs(ctx context.Context, companyID string, payeeIDs []string) (map[string]domain.Payee, error)

	// ListAccounts returns the company's chart of accounts.
	ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error)
}

// DirectoryWriter seeds directory records. The ledger engine itself never calls it.
type DirectoryWriter interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	SavePayee(ctx context.Context, payee domain.Payee) error
}
