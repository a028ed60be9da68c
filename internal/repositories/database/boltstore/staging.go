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

type stagingRepository struct {
	run runner
}

var _ portsrepo.StagingRepositoryFacade = (*stagingRepository)(nil)

// ListImported implements portsrepo.StagingReader
func (r *stagingRepository) ListImported(ctx context.Context, companyID string) ([]domain.ImportedTransaction, error) {
	rows := []domain.ImportedTransaction{}
	err := r.run.view(func(tx *bolt.Tx) error {
		b, err := companyBucket(tx, BucketStaging, companyID)
		if err != nil {
			return err
		}
		return forEachJSON(b, func(_ []byte, m models.ImportedTransaction) error {
			rows = append(rows, mapping.ToDomainImportedTransaction(m))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.Before(rows[j].Date)
		}
		return rows[i].ImportedID < rows[j].ImportedID
	})
	return rows, nil
}

// FindImportedByID implements portsrepo.StagingReader
func (r *stagingRepository) FindImportedByID(ctx context.Context, companyID, importedID string) (*domain.ImportedTransaction, error) {
	var m models.ImportedTransaction
	err := r.run.view(func(tx *bolt.Tx) error {
		b, err := companyBucket(tx, BucketStaging, companyID)
		if err != nil {
			return err
		}
		return getJSON(b, importedID, &m)
	})
	if isNotFound(err) {
		return nil, notFound("imported transaction", importedID)
	}
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainImportedTransaction(m)
	return &d, nil
}

// FindImportedByIDs implements portsrepo.StagingReader
func (r *stagingRepository) FindImportedByIDs(ctx context.Context, companyID string, importedIDs []string) (map[string]domain.ImportedTransaction, error) {
	found := make(map[string]domain.ImportedTransaction, len(importedIDs))
	err := r.run.view(func(tx *bolt.Tx) error {
		b, err := companyBucket(tx, BucketStaging, companyID)
		if err != nil {
			return err
		}
		return collectImported(b, importedIDs, found)
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// SaveImportedMany implements portsrepo.StagingWriter
func (r *stagingRepository) SaveImportedMany(ctx context.Context, rows []domain.ImportedTransaction) error {
	if len(rows) == 0 {
		return nil
	}
	return r.run.update(func(tx *bolt.Tx) error {
		for _, row := range rows {
			b, err := companyBucket(tx, BucketStaging, row.CompanyID)
			if err != nil {
				return err
			}
			if err := putJSON(b, row.ImportedID, mapping.ToModelImportedTransaction(row)); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteImported implements portsrepo.StagingWriter
func (r *stagingRepository) DeleteImported(ctx context.Context, companyID, importedID string) error {
	_, err := r.DeleteImportedMany(ctx, companyID, []string{importedID})
	return err
}

// DeleteImportedMany implements portsrepo.StagingWriter
func (r *stagingRepository) DeleteImportedMany(ctx context.Context, companyID string, importedIDs []string) (int64, error) {
	var deleted int64
	err := r.run.update(func(tx *bolt.Tx) error {
		b, err := companyBucket(tx, BucketStaging, companyID)
		if err != nil {
			return err
		}
		for _, id := range importedIDs {
			if b.Get([]byte(id)) == nil {
				continue
			}
			if err := b.Delete([]byte(id)); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	return deleted, err
}

// TakeImported implements portsrepo.StagingWriter
func (r *stagingRepository) TakeImported(ctx context.Context, companyID, importedID string) (*domain.ImportedTransaction, error) {
	taken, err := r.TakeImportedMany(ctx, companyID, []string{importedID})
	if err != nil {
		return nil, err
	}
	row, ok := taken[importedID]
	if !ok {
		return nil, notFound("imported transaction", importedID)
	}
	return &row, nil
}

// TakeImportedMany implements portsrepo.StagingWriter
func (r *stagingRepository) TakeImportedMany(ctx context.Context, companyID string, importedIDs []string) (map[string]domain.ImportedTransaction, error) {
	taken := make(map[string]domain.ImportedTransaction, len(importedIDs))
	err := r.run.update(func(tx *bolt.Tx) error {
		b, err := companyBucket(tx, BucketStaging, companyID)
		if err != nil {
			return err
		}
		if err := collectImported(b, importedIDs, taken); err != nil {
			return err
		}
		for id := range taken {
			if err := b.Delete([]byte(id)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return taken, nil
}

func collectImported(b *bolt.Bucket, ids []string, into map[string]domain.ImportedTransaction) error {
	for _, id := range ids {
		var m models.ImportedTransaction
		err := getJSON(b, id, &m)
		if isNotFound(err) {
			continue
		}
		if err != nil {
			return err
		}
		into[id] = mapping.ToDomainImportedTransaction(m)
	}
	return nil
}
