package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/books_ledger/internal/models"
	"github.com/SscSPs/books_ledger/internal/utils/mapping"
)

const (
	accountColumns = `account_id, company_id, name, account_type, parent_account_id`
	payeeColumns   = `payee_id, company_id, name`

	upsertAccountQuery = `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (company_id, account_id) DO UPDATE
		SET name = EXCLUDED.name, account_type = EXCLUDED.account_type, parent_account_id = EXCLUDED.parent_account_id;
	`
	upsertPayeeQuery = `
		INSERT INTO payees (` + payeeColumns + `)
		VALUES ($1, $2, $3)
		ON CONFLICT (company_id, payee_id) DO UPDATE SET name = EXCLUDED.name;
	`
)

// PgxDirectoryRepository reads the chart of accounts and payees and accepts seed writes.
type PgxDirectoryRepository struct {
	BaseRepository
}

// NewPgxDirectoryRepository creates a new directory repository.
func NewPgxDirectoryRepository(pool *pgxpool.Pool) *PgxDirectoryRepository {
	return &PgxDirectoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.DirectoryReader = (*PgxDirectoryRepository)(nil)
	_ portsrepo.DirectoryWriter = (*PgxDirectoryRepository)(nil)
)

// FindAccount implements portsrepo.DirectoryReader
func (r *PgxDirectoryRepository) FindAccount(ctx context.Context, companyID, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1 AND account_id = $2;`
	rows, err := r.Pool.Query(ctx, query, companyID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query account %s: %w", accountID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("account " + accountID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan account %s: %w", accountID, err)
	}
	d := mapping.ToDomainAccount(m)
	return &d, nil
}

// FindAccountsByIDs implements portsrepo.DirectoryReader
func (r *PgxDirectoryRepository) FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	found := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return found, nil
	}
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1 AND account_id = ANY($2);`
	rows, err := r.Pool.Query(ctx, query, companyID, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	modelAccounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}
	for _, m := range modelAccounts {
		found[m.AccountID] = mapping.ToDomainAccount(m)
	}
	return found, nil
}

// FindPayee implements portsrepo.DirectoryReader
func (r *PgxDirectoryRepository) FindPayee(ctx context.Context, companyID, payeeID string) (*domain.Payee, error) {
	query := `SELECT ` + payeeColumns + ` FROM payees WHERE company_id = $1 AND payee_id = $2;`
	rows, err := r.Pool.Query(ctx, query, companyID, payeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payee %s: %w", payeeID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Payee])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("payee " + payeeID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan payee %s: %w", payeeID, err)
	}
	d := mapping.ToDomainPayee(m)
	return &d, nil
}

// FindPayeesByIDs implements portsrepo.DirectoryReader
func (r *PgxDirectoryRepository) FindPayeesByIDs(ctx context.Context, companyID string, payeeIDs []string) (map[string]domain.Payee, error) {
	found := make(map[string]domain.Payee, len(payeeIDs))
	if len(payeeIDs) == 0 {
		return found, nil
	}
	query := `SELECT ` + payeeColumns + ` FROM payees WHERE company_id = $1 AND payee_id = ANY($2);`
	rows, err := r.Pool.Query(ctx, query, companyID, payeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query payees: %w", err)
	}
	modelPayees, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Payee])
	if err != nil {
		return nil, fmt.Errorf("failed to scan payees: %w", err)
	}
	for _, m := range modelPayees {
		found[m.PayeeID] = mapping.ToDomainPayee(m)
	}
	return found, nil
}

// ListAccounts implements portsrepo.DirectoryReader
func (r *PgxDirectoryRepository) ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1 ORDER BY account_id;`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	modelAccounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}
	accounts := make([]domain.Account, len(modelAccounts))
	for i, m := range modelAccounts {
		accounts[i] = mapping.ToDomainAccount(m)
	}
	return accounts, nil
}

// SaveAccount implements portsrepo.DirectoryWriter. A parent must already exist in the same
// company and share the child's account type.
func (r *PgxDirectoryRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	if !account.AccountType.IsValid() {
		return fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, account.AccountType)
	}
	m := mapping.ToModelAccount(account)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if account.ParentAccountID != "" {
		parent, err := r.findParent(ctx, tx, account.CompanyID, account.ParentAccountID)
		if err != nil {
			return err
		}
		if err := domain.ValidateParent(account, parent); err != nil {
			return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
	}

	if _, err := tx.Exec(ctx, upsertAccountQuery, m.AccountID, m.CompanyID, m.Name, m.AccountType, m.ParentAccountID); err != nil {
		return translateError(err, "account "+m.AccountID)
	}
	return r.Commit(ctx, tx)
}

// findParent locks the parent row so its type cannot change before the child is written.
// A missing parent yields nil.
func (r *PgxDirectoryRepository) findParent(ctx context.Context, db DBTX, companyID, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE company_id = $1 AND account_id = $2 FOR SHARE;`
	rows, err := db.Query(ctx, query, companyID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query parent account %s: %w", accountID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan parent account %s: %w", accountID, err)
	}
	d := mapping.ToDomainAccount(m)
	return &d, nil
}

// SavePayee implements portsrepo.DirectoryWriter
func (r *PgxDirectoryRepository) SavePayee(ctx context.Context, payee domain.Payee) error {
	m := mapping.ToModelPayee(payee)
	if _, err := r.Pool.Exec(ctx, upsertPayeeQuery, m.PayeeID, m.CompanyID, m.Name); err != nil {
		return translateError(err, "payee "+m.PayeeID)
	}
	return nil
}
