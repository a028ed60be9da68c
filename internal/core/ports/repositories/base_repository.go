package repositories

import (
	"context"
)

// CompanyLocker serializes journal-rewriting work per company. Locks are held until the
// surrounding atomic unit commits or rolls back.
type CompanyLocker interface {
	// LockCompanyShared is taken by operations that add or replace a single transaction's lines.
	// Any number of holders may share it.
	LockCompanyShared(ctx context.Context, companyID string) error

	// LockCompanyExclusive is taken by resync. It waits for shared holders to finish and
	// blocks new ones until the unit ends.
	LockCompanyExclusive(ctx context.Context, companyID string) error
}

// TxRepositories are the repositories bound to one atomic unit. Anything written through them
// becomes visible together on commit or not at all.
type TxRepositories struct {
	Staging      StagingRepositoryFacade
	Transactions TransactionRepositoryFacade
	Journal      JournalRepositoryFacade
	Locker       CompanyLocker
}

// UnitOfWork runs fn inside a single database transaction. A nil return commits; any error
// (or panic) rolls back every write made through the supplied repositories.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}
