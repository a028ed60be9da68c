package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/books_ledger/internal/core/ports/repositories"
)

// buildCategorization turns the two request shapes into the categorization union.
// Exactly one of selectedID and split must be given.
func buildCategorization(selectedID string, split []domain.SplitAllocation) (domain.Categorization, error) {
	switch {
	case selectedID != "" && len(split) > 0:
		return nil, fmt.Errorf("%w: give either a selected category or a split allocation, not both", apperrors.ErrValidation)
	case len(split) > 0:
		return domain.SplitCategorization{Allocations: slices.Clone(split)}, nil
	case selectedID != "":
		return domain.SimpleCategorization{SelectedCategoryID: selectedID}, nil
	default:
		return nil, fmt.Errorf("%w: a selected category or a split allocation is required", apperrors.ErrValidation)
	}
}

// referenceChecker confirms that every category and payee a transaction names exists in the
// directory under the transaction's company.
type referenceChecker struct {
	directory portsrepo.DirectoryReader
}

// check returns one entry per transaction: nil when its references resolve, an
// ErrInvalidReference otherwise. The second return value is a lookup failure.
func (r referenceChecker) check(ctx context.Context, companyID string, txs []domain.ConfirmedTransaction) ([]error, error) {
	var accountIDs, payeeIDs []string
	for _, tx := range txs {
		for _, id := range tx.CategoryIDs() {
			if id != "" && !slices.Contains(accountIDs, id) {
				accountIDs = append(accountIDs, id)
			}
		}
		if tx.PayeeID != "" && !slices.Contains(payeeIDs, tx.PayeeID) {
			payeeIDs = append(payeeIDs, tx.PayeeID)
		}
	}

	var (
		accounts map[string]domain.Account
		payees   map[string]domain.Payee
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = r.directory.FindAccountsByIDs(gctx, companyID, accountIDs)
		return err
	})
	if len(payeeIDs) > 0 {
		g.Go(func() error {
			var err error
			payees, err = r.directory.FindPayeesByIDs(gctx, companyID, payeeIDs)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("directory lookup: %w", err)
	}

	results := make([]error, len(txs))
	for i, tx := range txs {
		var missing []string
		for _, id := range tx.CategoryIDs() {
			if _, ok := accounts[id]; id != "" && !ok && !slices.Contains(missing, id) {
				missing = append(missing, id)
			}
		}
		var problems []string
		if len(missing) > 0 {
			problems = append(problems, "unknown categories "+strings.Join(missing, ", "))
		}
		if tx.PayeeID != "" {
			if _, ok := payees[tx.PayeeID]; !ok {
				problems = append(problems, "unknown payee "+tx.PayeeID)
			}
		}
		if len(problems) > 0 {
			results[i] = fmt.Errorf("%w: %s", apperrors.ErrInvalidReference, strings.Join(problems, "; "))
		}
	}
	return results, nil
}
