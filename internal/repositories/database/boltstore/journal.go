package boltstore

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	bolt "go.etcd.io/bbolt"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/books_ledger/internal/models"
	"github.com/SscSPs/books_ledger/internal/utils/mapping"
)

// Journal lines are keyed "<transaction id>/<line no>" so one transaction's lines sit next to
// each other and can be found with a prefix seek.
type journalRepository struct {
	run runner
}

var _ portsrepo.JournalRepositoryFacade = (*journalRepository)(nil)

func lineKey(transactionID string, lineNo int) []byte {
	return fmt.Appendf(nil, "%s/%06d", transactionID, lineNo)
}

func linePrefix(transactionID string) []byte {
	return []byte(transactionID + "/")
}

// ListLines implements portsrepo.JournalReader
func (r *journalRepository) ListLines(ctx context.Context, companyID string, filter domain.JournalFilter) ([]domain.JournalLine, error) {
	lines := []domain.JournalLine{}
	err := r.run.view(func(tx *bolt.Tx) error {
		b, err := companyBucket(tx, BucketJournal, companyID)
		if err != nil {
			return err
		}
		return forEachJSON(b, func(_ []byte, m models.JournalLine) error {
			if filter.Matches(m.TxnDate) {
				lines = append(lines, mapping.ToDomainJournalLine(m))
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.TransactionID != b.TransactionID {
			return a.TransactionID < b.TransactionID
		}
		return a.LineNo < b.LineNo
	})
	return pageLines(lines, filter), nil
}

// pageLines applies the cursor and limit of filter to lines that are already in stream order.
func pageLines(lines []domain.JournalLine, filter domain.JournalFilter) []domain.JournalLine {
	if filter.After != nil {
		start := sort.Search(len(lines), func(i int) bool { return filter.After.IsAfter(lines[i]) })
		lines = lines[start:]
	}
	if filter.Limit > 0 && len(lines) > filter.Limit {
		lines = lines[:filter.Limit]
	}
	return lines
}

// ListLinesByTransaction implements portsrepo.JournalReader
func (r *journalRepository) ListLinesByTransaction(ctx context.Context, companyID, transactionID string) ([]domain.JournalLine, error) {
	lines := []domain.JournalLine{}
	err := r.run.view(func(tx *bolt.Tx) error {
		b, err := companyBucket(tx, BucketJournal, companyID)
		if err != nil || b == nil {
			return err
		}
		prefix := linePrefix(transactionID)
		c := b.Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var m models.JournalLine
			if err := unmarshalLine(k, v, &m); err != nil {
				return err
			}
			lines = append(lines, mapping.ToDomainJournalLine(m))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// SaveLines implements portsrepo.JournalWriter
func (r *journalRepository) SaveLines(ctx context.Context, lines []domain.JournalLine) error {
	if len(lines) == 0 {
		return nil
	}
	return r.run.update(func(tx *bolt.Tx) error {
		for _, l := range lines {
			b, err := companyBucket(tx, BucketJournal, l.CompanyID)
			if err != nil {
				return err
			}
			key := lineKey(l.TransactionID, l.LineNo)
			if b.Get(key) != nil {
				return fmt.Errorf("journal line %d of transaction %s already exists", l.LineNo, l.TransactionID)
			}
			data, err := marshalLine(mapping.ToModelJournalLine(l))
			if err != nil {
				return err
			}
			if err := b.Put(key, data); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteLinesByTransaction implements portsrepo.JournalWriter
func (r *journalRepository) DeleteLinesByTransaction(ctx context.Context, companyID, transactionID string) (int64, error) {
	var deleted int64
	err := r.run.update(func(tx *bolt.Tx) error {
		b, err := companyBucket(tx, BucketJournal, companyID)
		if err != nil {
			return err
		}
		prefix := linePrefix(transactionID)
		var keys [][]byte
		c := b.Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			keys = append(keys, bytes.Clone(k))
		}
		for _, k := range keys {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		deleted = int64(len(keys))
		return nil
	})
	return deleted, err
}

// DeleteLinesByCompany implements portsrepo.JournalWriter
func (r *journalRepository) DeleteLinesByCompany(ctx context.Context, companyID string) (int64, error) {
	var deleted int64
	err := r.run.update(func(tx *bolt.Tx) error {
		root := tx.Bucket([]byte(BucketJournal))
		b := root.Bucket([]byte(companyID))
		if b == nil {
			return nil
		}
		if err := b.ForEach(func(_, _ []byte) error {
			deleted++
			return nil
		}); err != nil {
			return err
		}
		return root.DeleteBucket([]byte(companyID))
	})
	return deleted, err
}
