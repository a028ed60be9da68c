package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
)

// pgxUnitOfWork runs each unit in one database transaction.
type pgxUnitOfWork struct {
	BaseRepository
}

func newPgxUnitOfWork(pool *pgxpool.Pool) *pgxUnitOfWork {
	return &pgxUnitOfWork{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UnitOfWork = (*pgxUnitOfWork)(nil)

// Do implements portsrepo.UnitOfWork
func (u *pgxUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	tx, err := u.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if the transaction is committed successfully; also runs on panic.
	defer u.Rollback(ctx, tx) //nolint:errcheck

	if err := fn(ctx, portsrepo.TxRepositories{
		Staging:      newPgxStagingRepository(tx),
		Transactions: newPgxTransactionRepository(tx),
		Journal:      newPgxJournalRepository(tx),
		Locker:       advisoryLocker{tx: tx},
	}); err != nil {
		return err
	}
	return u.Commit(ctx, tx)
}

// advisoryLocker takes transaction-scoped advisory locks keyed by company. Moves and edits
// share the lock; resync takes it exclusively.
type advisoryLocker struct {
	tx pgx.Tx
}

func (l advisoryLocker) LockCompanyShared(ctx context.Context, companyID string) error {
	if _, err := l.tx.Exec(ctx, `SELECT pg_advisory_xact_lock_shared(hashtext('ledger:' || $1))`, companyID); err != nil {
		return fmt.Errorf("failed to take shared lock for company %s: %w", companyID, err)
	}
	return nil
}

func (l advisoryLocker) LockCompanyExclusive(ctx context.Context, companyID string) error {
	if _, err := l.tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('ledger:' || $1))`, companyID); err != nil {
		return fmt.Errorf("failed to take exclusive lock for company %s: %w", companyID, err)
	}
	return nil
}
