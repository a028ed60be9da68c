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

const importedColumns = `imported_id, company_id, txn_date, description, spent, received, source_account_id, split_allocation, created_at`

type PgxStagingRepository struct {
	db DBTX
}

// newPgxStagingRepository creates a new repository for staging rows.
func newPgxStagingRepository(db DBTX) *PgxStagingRepository {
	return &PgxStagingRepository{db: db}
}

// Ensure PgxStagingRepository implements portsrepo.StagingRepositoryFacade
var _ portsrepo.StagingRepositoryFacade = (*PgxStagingRepository)(nil)

func collectImported(rows pgx.Rows) ([]domain.ImportedTransaction, error) {
	modelRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ImportedTransaction])
	if err != nil {
		return nil, fmt.Errorf("failed to scan staging rows: %w", err)
	}
	out := make([]domain.ImportedTransaction, len(modelRows))
	for i, m := range modelRows {
		out[i] = mapping.ToDomainImportedTransaction(m)
	}
	return out, nil
}

func byImportedID(rows []domain.ImportedTransaction) map[string]domain.ImportedTransaction {
	out := make(map[string]domain.ImportedTransaction, len(rows))
	for _, row := range rows {
		out[row.ImportedID] = row
	}
	return out
}

// ListImported implements portsrepo.StagingReader
func (r *PgxStagingRepository) ListImported(ctx context.Context, companyID string) ([]domain.ImportedTransaction, error) {
	query := `SELECT ` + importedColumns + `
		FROM imported_transactions
		WHERE company_id = $1
		ORDER BY txn_date, imported_id;`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query staging rows: %w", err)
	}
	return collectImported(rows)
}

// FindImportedByID implements portsrepo.StagingReader
func (r *PgxStagingRepository) FindImportedByID(ctx context.Context, companyID, importedID string) (*domain.ImportedTransaction, error) {
	query := `SELECT ` + importedColumns + `
		FROM imported_transactions
		WHERE company_id = $1 AND imported_id = $2;`
	rows, err := r.db.Query(ctx, query, companyID, importedID)
	if err != nil {
		return nil, fmt.Errorf("failed to query staging row %s: %w", importedID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ImportedTransaction])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("imported transaction " + importedID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan staging row %s: %w", importedID, err)
	}
	d := mapping.ToDomainImportedTransaction(m)
	return &d, nil
}

// FindImportedByIDs implements portsrepo.StagingReader
func (r *PgxStagingRepository) FindImportedByIDs(ctx context.Context, companyID string, importedIDs []string) (map[string]domain.ImportedTransaction, error) {
	if len(importedIDs) == 0 {
		return map[string]domain.ImportedTransaction{}, nil
	}
	query := `SELECT ` + importedColumns + `
		FROM imported_transactions
		WHERE company_id = $1 AND imported_id = ANY($2);`
	rows, err := r.db.Query(ctx, query, companyID, importedIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query staging rows: %w", err)
	}
	found, err := collectImported(rows)
	if err != nil {
		return nil, err
	}
	return byImportedID(found), nil
}

// SaveImportedMany implements portsrepo.StagingWriter
func (r *PgxStagingRepository) SaveImportedMany(ctx context.Context, rows []domain.ImportedTransaction) error {
	if len(rows) == 0 {
		return nil
	}
	query := `
		INSERT INTO imported_transactions (` + importedColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	batch := &pgx.Batch{}
	for _, row := range rows {
		m := mapping.ToModelImportedTransaction(row)
		split, err := splitParam(m.SplitAllocation)
		if err != nil {
			return err
		}
		batch.Queue(query, m.ImportedID, m.CompanyID, m.TxnDate, m.Description, m.Spent, m.Received,
			m.SourceAccountID, split, m.CreatedAt)
	}
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return translateError(err, "staging row")
	}
	return nil
}

// DeleteImported implements portsrepo.StagingWriter
func (r *PgxStagingRepository) DeleteImported(ctx context.Context, companyID, importedID string) error {
	_, err := r.DeleteImportedMany(ctx, companyID, []string{importedID})
	return err
}

// DeleteImportedMany implements portsrepo.StagingWriter
func (r *PgxStagingRepository) DeleteImportedMany(ctx context.Context, companyID string, importedIDs []string) (int64, error) {
	if len(importedIDs) == 0 {
		return 0, nil
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM imported_transactions WHERE company_id = $1 AND imported_id = ANY($2);`, companyID, importedIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to delete staging rows: %w", err)
	}
	return tag.RowsAffected(), nil
}

// TakeImported implements portsrepo.StagingWriter
func (r *PgxStagingRepository) TakeImported(ctx context.Context, companyID, importedID string) (*domain.ImportedTransaction, error) {
	taken, err := r.TakeImportedMany(ctx, companyID, []string{importedID})
	if err != nil {
		return nil, err
	}
	row, ok := taken[importedID]
	if !ok {
		return nil, apperrors.NewNotFoundError("imported transaction " + importedID)
	}
	return &row, nil
}

// TakeImportedMany implements portsrepo.StagingWriter. DELETE ... RETURNING makes the
// existence check and the removal one statement, so two concurrent takers cannot both win.
func (r *PgxStagingRepository) TakeImportedMany(ctx context.Context, companyID string, importedIDs []string) (map[string]domain.ImportedTransaction, error) {
	if len(importedIDs) == 0 {
		return map[string]domain.ImportedTransaction{}, nil
	}
	query := `DELETE FROM imported_transactions
		WHERE company_id = $1 AND imported_id = ANY($2)
		RETURNING ` + importedColumns + `;`
	rows, err := r.db.Query(ctx, query, companyID, importedIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to take staging rows: %w", err)
	}
	taken, err := collectImported(rows)
	if err != nil {
		return nil, err
	}
	return byImportedID(taken), nil
}
