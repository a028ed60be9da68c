// Package boltstore implements the repository ports on an embedded bbolt file. Every
// record type lives in its own top-level bucket with one nested bucket per company.
package boltstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/books_ledger/internal/models"
)

// Bucket names.
const (
	BucketAccounts     = "accounts"
	BucketPayees       = "payees"
	BucketStaging      = "staging"
	BucketTransactions = "transactions"
	BucketJournal      = "journal"
)

var topBuckets = []string{BucketAccounts, BucketPayees, BucketStaging, BucketTransactions, BucketJournal}

// Store represents the bbolt database wrapper.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the database file and initializes buckets.
func Open(dbPath string) (*Store, error) {
	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range topBuckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Do implements portsrepo.UnitOfWork. bbolt allows a single writer, so the read-write
// transaction is both the atomic unit and the company lock.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		run := txRunner{tx: tx}
		return fn(ctx, portsrepo.TxRepositories{
			Staging:      &stagingRepository{run: run},
			Transactions: &transactionRepository{run: run},
			Journal:      &journalRepository{run: run},
			Locker:       singleWriterLocker{},
		})
	})
}

var _ portsrepo.UnitOfWork = (*Store)(nil)

// NewRepositoryProvider wires every port to this store.
func (s *Store) NewRepositoryProvider() portsrepo.RepositoryProvider {
	run := dbRunner{db: s.db}
	return portsrepo.RepositoryProvider{
		UnitOfWork:      s,
		StagingRepo:     &stagingRepository{run: run},
		TransactionRepo: &transactionRepository{run: run},
		JournalRepo:     &journalRepository{run: run},
		DirectoryRepo:   s.Directory(),
		ReportingRepo:   &reportingRepository{run: run},
	}
}

// Directory returns the directory repository, which also accepts seed writes.
func (s *Store) Directory() *DirectoryRepository {
	return &DirectoryRepository{run: dbRunner{db: s.db}}
}

// runner executes bolt closures either in their own transaction or inside a unit of work.
type runner interface {
	view(fn func(tx *bolt.Tx) error) error
	update(fn func(tx *bolt.Tx) error) error
}

type dbRunner struct{ db *bolt.DB }

func (r dbRunner) view(fn func(tx *bolt.Tx) error) error   { return r.db.View(fn) }
func (r dbRunner) update(fn func(tx *bolt.Tx) error) error { return r.db.Update(fn) }

type txRunner struct{ tx *bolt.Tx }

func (r txRunner) view(fn func(tx *bolt.Tx) error) error   { return fn(r.tx) }
func (r txRunner) update(fn func(tx *bolt.Tx) error) error { return fn(r.tx) }

// singleWriterLocker is a no-op: bbolt already runs one read-write transaction at a time.
type singleWriterLocker struct{}

func (singleWriterLocker) LockCompanyShared(context.Context, string) error    { return nil }
func (singleWriterLocker) LockCompanyExclusive(context.Context, string) error { return nil }

// companyBucket returns the company's nested bucket under top. For reads a missing bucket is
// reported as nil; for writes it is created.
func companyBucket(tx *bolt.Tx, top, companyID string) (*bolt.Bucket, error) {
	root := tx.Bucket([]byte(top))
	if root == nil {
		return nil, fmt.Errorf("bucket %s not found", top)
	}
	if companyID == "" {
		return nil, fmt.Errorf("%w: company id is required", apperrors.ErrValidation)
	}
	if !tx.Writable() {
		return root.Bucket([]byte(companyID)), nil
	}
	return root.CreateBucketIfNotExists([]byte(companyID))
}

func putJSON(b *bolt.Bucket, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return b.Put([]byte(key), data)
}

// getJSON decodes the value at key. Returns apperrors.ErrNotFound when absent.
func getJSON(b *bolt.Bucket, key string, value any) error {
	if b == nil {
		return apperrors.ErrNotFound
	}
	data := b.Get([]byte(key))
	if data == nil {
		return apperrors.ErrNotFound
	}
	return json.Unmarshal(data, value)
}

// forEachJSON decodes every value in b into a fresh T.
func forEachJSON[T any](b *bolt.Bucket, fn func(key []byte, v T) error) error {
	if b == nil {
		return nil
	}
	return b.ForEach(func(k, data []byte) error {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("failed to unmarshal %s: %w", k, err)
		}
		return fn(k, v)
	})
}

func notFound(kind, id string) error {
	return apperrors.NewNotFoundError(fmt.Sprintf("%s %s", kind, id))
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}

func marshalLine(m models.JournalLine) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal journal line: %w", err)
	}
	return data, nil
}

func unmarshalLine(key, data []byte, m *models.JournalLine) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return nil
}
