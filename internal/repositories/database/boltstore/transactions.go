package boltstore

import (
	"context"
	"sort"

	bolt "go.etcd.io/bbolt"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/books_ledger/internal/models"
	"github.com/SscSPs/books_ledger/internal/utils/mapping"
)

type transactionRepository struct {
	run runner
}

var _ portsrepo.TransactionRepositoryFacade = (*transactionRepository)(nil)

// FindTransactionByID implements portsrepo.TransactionReader
func (r *transactionRepository) FindTransactionByID(ctx context.Context, companyID, transactionID string) (*domain.ConfirmedTransaction, error) {
	var m models.ConfirmedTransaction
	err := r.run.view(func(tx *bolt.Tx) error {
		b, err := companyBucket(tx, BucketTransactions, companyID)
		if err != nil {
			return err
		}
		return getJSON(b, transactionID, &m)
	})
	if isNotFound(err) {
		return nil, notFound("transaction", transactionID)
	}
	if err != nil {
		return nil, err
	}
	d, err := mapping.ToDomainConfirmedTransaction(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListTransactions implements portsrepo.TransactionReader
func (r *transactionRepository) ListTransactions(ctx context.Context, companyID string) ([]domain.ConfirmedTransaction, error) {
	txs := []domain.ConfirmedTransaction{}
	err := r.run.view(func(tx *bolt.Tx) error {
		b, err := companyBucket(tx, BucketTransactions, companyID)
		if err != nil {
			return err
		}
		return forEachJSON(b, func(_ []byte, m models.ConfirmedTransaction) error {
			d, err := mapping.ToDomainConfirmedTransaction(m)
			if err != nil {
				return err
			}
			txs = append(txs, d)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(txs, func(i, j int) bool {
		if !txs[i].Date.Equal(txs[j].Date) {
			return txs[i].Date.Before(txs[j].Date)
		}
		return txs[i].TransactionID < txs[j].TransactionID
	})
	return txs, nil
}

// SaveTransactions implements portsrepo.TransactionWriter
func (r *transactionRepository) SaveTransactions(ctx context.Context, txs []domain.ConfirmedTransaction) error {
	if len(txs) == 0 {
		return nil
	}
	return r.run.update(func(tx *bolt.Tx) error {
		for _, t := range txs {
			b, err := companyBucket(tx, BucketTransactions, t.CompanyID)
			if err != nil {
				return err
			}
			if err := putJSON(b, t.TransactionID, mapping.ToModelConfirmedTransaction(t)); err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateTransaction implements portsrepo.TransactionWriter
func (r *transactionRepository) UpdateTransaction(ctx context.Context, t domain.ConfirmedTransaction) error {
	return r.run.update(func(tx *bolt.Tx) error {
		b, err := companyBucket(tx, BucketTransactions, t.CompanyID)
		if err != nil {
			return err
		}
		if b.Get([]byte(t.TransactionID)) == nil {
			return notFound("transaction", t.TransactionID)
		}
		return putJSON(b, t.TransactionID, mapping.ToModelConfirmedTransaction(t))
	})
}

// DeleteTransaction implements portsrepo.TransactionWriter
func (r *transactionRepository) DeleteTransaction(ctx context.Context, companyID, transactionID string) error {
	return r.run.update(func(tx *bolt.Tx) error {
		b, err := companyBucket(tx, BucketTransactions, companyID)
		if err != nil {
			return err
		}
		if b.Get([]byte(transactionID)) == nil {
			return notFound("transaction", transactionID)
		}
		return b.Delete([]byte(transactionID))
	})
}
