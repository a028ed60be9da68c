package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/books_ledger/internal/models"
	"github.com/SscSPs/books_ledger/internal/utils/mapping"
)

const journalColumns = `line_id, transaction_id, company_id, line_no, txn_date, description, account_id, debit, credit`

type PgxJournalRepository struct {
	db DBTX
}

// newPgxJournalRepository creates a new repository for journal lines.
func newPgxJournalRepository(db DBTX) *PgxJournalRepository {
	return &PgxJournalRepository{db: db}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func collectLines(rows pgx.Rows) ([]domain.JournalLine, error) {
	modelLines, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JournalLine])
	if err != nil {
		return nil, fmt.Errorf("failed to scan journal lines: %w", err)
	}
	lines := make([]domain.JournalLine, len(modelLines))
	for i, m := range modelLines {
		lines[i] = mapping.ToDomainJournalLine(m)
	}
	return lines, nil
}

// ListLines implements portsrepo.JournalReader
func (r *PgxJournalRepository) ListLines(ctx context.Context, companyID string, filter domain.JournalFilter) ([]domain.JournalLine, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + journalColumns + ` FROM journal_lines WHERE company_id = $1`)
	args := []any{companyID}
	if filter.From != nil {
		args = append(args, *filter.From)
		sb.WriteString(" AND txn_date >= $" + strconv.Itoa(len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		sb.WriteString(" AND txn_date <= $" + strconv.Itoa(len(args)))
	}
	if filter.After != nil {
		args = append(args, filter.After.Date, filter.After.TransactionID, filter.After.LineNo)
		n := len(args)
		fmt.Fprintf(&sb, " AND (txn_date, transaction_id, line_no) > ($%d, $%d, $%d)", n-2, n-1, n)
	}
	sb.WriteString(" ORDER BY txn_date, transaction_id, line_no")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	}
	sb.WriteString(";")

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	return collectLines(rows)
}

// ListLinesByTransaction implements portsrepo.JournalReader
func (r *PgxJournalRepository) ListLinesByTransaction(ctx context.Context, companyID, transactionID string) ([]domain.JournalLine, error) {
	query := `SELECT ` + journalColumns + `
		FROM journal_lines
		WHERE company_id = $1 AND transaction_id = $2
		ORDER BY line_no;`
	rows, err := r.db.Query(ctx, query, companyID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines for transaction %s: %w", transactionID, err)
	}
	return collectLines(rows)
}

// SaveLines implements portsrepo.JournalWriter
func (r *PgxJournalRepository) SaveLines(ctx context.Context, lines []domain.JournalLine) error {
	if len(lines) == 0 {
		return nil
	}
	query := `
		INSERT INTO journal_lines (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		m := mapping.ToModelJournalLine(line)
		batch.Queue(query, m.LineID, m.TransactionID, m.CompanyID, m.LineNo, m.TxnDate, m.Description,
			m.AccountID, m.Debit, m.Credit)
	}
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return translateError(err, "journal line")
	}
	return nil
}

// DeleteLinesByTransaction implements portsrepo.JournalWriter
func (r *PgxJournalRepository) DeleteLinesByTransaction(ctx context.Context, companyID, transactionID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM journal_lines WHERE company_id = $1 AND transaction_id = $2;`, companyID, transactionID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete journal lines for transaction %s: %w", transactionID, err)
	}
	return tag.RowsAffected(), nil
}

// DeleteLinesByCompany implements portsrepo.JournalWriter
func (r *PgxJournalRepository) DeleteLinesByCompany(ctx context.Context, companyID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM journal_lines WHERE company_id = $1;`, companyID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete journal for company %s: %w", companyID, err)
	}
	return tag.RowsAffected(), nil
}
