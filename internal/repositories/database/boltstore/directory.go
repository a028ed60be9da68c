package boltstore

import (
	"context"
	"fmt"
	"sort"

	bolt "go.etcd.io/bbolt"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/books_ledger/internal/models"
	"github.com/SscSPs/books_ledger/internal/utils/mapping"
)

// DirectoryRepository stores the chart of accounts and payees.
type DirectoryRepository struct {
	run runner
}

var (
	_ portsrepo.DirectoryReader = (*DirectoryRepository)(nil)
	_ portsrepo.DirectoryWriter = (*DirectoryRepository)(nil)
)

// FindAccount implements portsrepo.DirectoryReader
func (r *DirectoryRepository) FindAccount(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	var m models.Account
	err := r.run.view(func(tx *bolt.Tx) error {
		b, err := companyBucket(tx, BucketAccounts, companyID)
		if err != nil {
			return err
		}
		return getJSON(b, accountID, &m)
	})
	if isNotFound(err) {
		return nil, notFound("account", accountID)
	}
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainAccount(m)
	return &d, nil
}

// FindAccountsByIDs implements portsrepo.DirectoryReader
func (r *DirectoryRepository) FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	found := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return found, nil
	}
	err := r.run.view(func(tx *bolt.Tx) error {
		b, err := companyBucket(tx, BucketAccounts, companyID)
		if err != nil {
			return err
		}
		for _, id := range accountIDs {
			var m models.Account
			err := getJSON(b, id, &m)
			if isNotFound(err) {
				continue
			}
			if err != nil {
				return err
			}
			found[id] = mapping.ToDomainAccount(m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// FindPayee implements portsrepo.DirectoryReader
func (r *DirectoryRepository) FindPayee(ctx context.Context, companyID, payeeID string) (*domain.Payee, error) {
	var m models.Payee
	err := r.run.view(func(tx *bolt.Tx) error {
		b, err := companyBucket(tx, BucketPayees, companyID)
		if err != nil {
			return err
		}
		return getJSON(b, payeeID, &m)
	})
	if isNotFound(err) {
		return nil, notFound("payee", payeeID)
	}
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainPayee(m)
	return &d, nil
}

// FindPayeesByIDs implements portsrepo.DirectoryReader
func (r *DirectoryRepository) FindPayeesByIDs(ctx context.Context, companyID string, payeeIDs []string) (map[string]domain.Payee, error) {
	found := make(map[string]domain.Payee, len(payeeIDs))
	if len(payeeIDs) == 0 {
		return found, nil
	}
	err := r.run.view(func(tx *bolt.Tx) error {
		b, err := companyBucket(tx, BucketPayees, companyID)
		if err != nil {
			return err
		}
		for _, id := range payeeIDs {
			var m models.Payee
			err := getJSON(b, id, &m)
			if isNotFound(err) {
				continue
			}
			if err != nil {
				return err
			}
			found[id] = mapping.ToDomainPayee(m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// ListAccounts implements portsrepo.DirectoryReader
func (r *DirectoryRepository) ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	accounts := []domain.Account{}
	err := r.run.view(func(tx *bolt.Tx) error {
		b, err := companyBucket(tx, BucketAccounts, companyID)
		if err != nil {
			return err
		}
		return forEachJSON(b, func(_ []byte, m models.Account) error {
			accounts = append(accounts, mapping.ToDomainAccount(m))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].AccountID < accounts[j].AccountID })
	return accounts, nil
}

// SaveAccount implements portsrepo.DirectoryWriter. The parent is checked inside the same
// write transaction.
func (r *DirectoryRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	if !account.AccountType.IsValid() {
		return fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, account.AccountType)
	}
	return r.run.update(func(tx *bolt.Tx) error {
		b, err := companyBucket(tx, BucketAccounts, account.CompanyID)
		if err != nil {
			return err
		}
		if account.ParentAccountID != "" {
			var parent *domain.Account
			var pm models.Account
			switch err := getJSON(b, account.ParentAccountID, &pm); {
			case err == nil:
				d := mapping.ToDomainAccount(pm)
				parent = &d
			case !isNotFound(err):
				return err
			}
			if err := domain.ValidateParent(account, parent); err != nil {
				return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
			}
		}
		return putJSON(b, account.AccountID, mapping.ToModelAccount(account))
	})
}

// SavePayee implements portsrepo.DirectoryWriter
func (r *DirectoryRepository) SavePayee(ctx context.Context, payee domain.Payee) error {
	return r.run.update(func(tx *bolt.Tx) error {
		b, err := companyBucket(tx, BucketPayees, payee.CompanyID)
		if err != nil {
			return err
		}
		return putJSON(b, payee.PayeeID, mapping.ToModelPayee(payee))
	})
}
