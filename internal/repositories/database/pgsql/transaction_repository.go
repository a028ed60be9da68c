package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/books_ledger/internal/models"
	"github.com/SscSPs/books_ledger/internal/utils/mapping"
)

const confirmedColumns = `transaction_id, company_id, imported_id, txn_date, description, spent, received,
	selected_category_id, corresponding_category_id, split_allocation, payee_id, source_account_id,
	created_at, last_updated_at`

type PgxTransactionRepository struct {
	db DBTX
}

// newPgxTransactionRepository creates a new repository for confirmed transactions.
func newPgxTransactionRepository(db DBTX) *PgxTransactionRepository {
	return &PgxTransactionRepository{db: db}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// FindTransactionByID implements portsrepo.TransactionReader
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, companyID, transactionID string) (*domain.ConfirmedTransaction, error) {
	query := `SELECT ` + confirmedColumns + `
		FROM confirmed_transactions
		WHERE company_id = $1 AND transaction_id = $2;`
	rows, err := r.db.Query(ctx, query, companyID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction %s: %w", transactionID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ConfirmedTransaction])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("transaction " + transactionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction %s: %w", transactionID, err)
	}
	d, err := mapping.ToDomainConfirmedTransaction(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListTransactions implements portsrepo.TransactionReader
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, companyID string) ([]domain.ConfirmedTransaction, error) {
	query := `SELECT ` + confirmedColumns + `
		FROM confirmed_transactions
		WHERE company_id = $1
		ORDER BY txn_date, transaction_id;`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	modelTxs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ConfirmedTransaction])
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	txs := make([]domain.ConfirmedTransaction, 0, len(modelTxs))
	for _, m := range modelTxs {
		d, err := mapping.ToDomainConfirmedTransaction(m)
		if err != nil {
			return nil, err
		}
		txs = append(txs, d)
	}
	return txs, nil
}

// SaveTransactions implements portsrepo.TransactionWriter
func (r *PgxTransactionRepository) SaveTransactions(ctx context.Context, txs []domain.ConfirmedTransaction) error {
	if len(txs) == 0 {
		return nil
	}
	query := `
		INSERT INTO confirmed_transactions (` + confirmedColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	batch := &pgx.Batch{}
	for _, tx := range txs {
		m := mapping.ToModelConfirmedTransaction(tx)
		split, err := splitParam(m.SplitAllocation)
		if err != nil {
			return err
		}
		batch.Queue(query,
			m.TransactionID, m.CompanyID, m.ImportedID, m.TxnDate, m.Description, m.Spent, m.Received,
			m.SelectedCategoryID, m.CorrespondingCategoryID, split, m.PayeeID, m.SourceAccountID,
			m.CreatedAt, m.LastUpdatedAt,
		)
	}
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return translateError(err, "confirmed transaction")
	}
	return nil
}

// UpdateTransaction implements portsrepo.TransactionWriter. The UPDATE takes the row lock,
// so concurrent edits of one transaction queue behind each other.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, tx domain.ConfirmedTransaction) error {
	m := mapping.ToModelConfirmedTransaction(tx)
	split, err := splitParam(m.SplitAllocation)
	if err != nil {
		return err
	}
	query := `
		UPDATE confirmed_transactions
		SET selected_category_id = $3,
			corresponding_category_id = $4,
			split_allocation = $5,
			payee_id = $6,
			last_updated_at = $7
		WHERE company_id = $1 AND transaction_id = $2;
	`
	tag, err := r.db.Exec(ctx, query, m.CompanyID, m.TransactionID,
		m.SelectedCategoryID, m.CorrespondingCategoryID, split, m.PayeeID, m.LastUpdatedAt)
	if err != nil {
		return translateError(err, "confirmed transaction")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction " + tx.TransactionID)
	}
	return nil
}

// DeleteTransaction implements portsrepo.TransactionWriter
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, companyID, transactionID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM confirmed_transactions WHERE company_id = $1 AND transaction_id = $2;`, companyID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction " + transactionID)
	}
	return nil
}
