package accounting

import (
	"fmt"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// ExpandIntents turns a categorized transaction into ledger-line intents.
//
// Simple categorizations yield exactly two intents: the selected category and the
// corresponding account on opposite sides. Split categorizations yield one intent per
// allocation plus one intent for the corresponding account carrying the net, on the side
// opposite the net flow. A net-zero split has no corresponding intent.
//
// The function has no side effects; the same transaction always yields the same intents.
func ExpandIntents(tx domain.ConfirmedTransaction) ([]domain.LineIntent, error) {
	if err := tx.Validate(); err != nil {
		return nil, fmt.Errorf("%w: transaction %s: %w", apperrors.ErrValidation, tx.TransactionID, err)
	}

	switch c := tx.Categorization.(type) {
	case domain.SimpleCategorization:
		return expandSimple(tx, c), nil
	case domain.SplitCategorization:
		return expandSplit(tx, c), nil
	default:
		return nil, fmt.Errorf("%w: unsupported categorization %T", apperrors.ErrValidation, tx.Categorization)
	}
}

func expandSimple(tx domain.ConfirmedTransaction, c domain.SimpleCategorization) []domain.LineIntent {
	// Spending debits the selected category and credits the money-out account;
	// receiving credits the selected category and debits the money-in account.
	amount, selectedSide, correspondingSide := tx.Spent, domain.DirectionSpent, domain.DirectionReceived
	if !tx.Received.IsZero() {
		amount, selectedSide, correspondingSide = tx.Received, domain.DirectionReceived, domain.DirectionSpent
	}
	return []domain.LineIntent{
		{AccountID: c.SelectedCategoryID, Amount: amount, Direction: selectedSide, Description: tx.Description},
		{AccountID: tx.CorrespondingCategoryID, Amount: amount, Direction: correspondingSide, Description: tx.Description},
	}
}

func expandSplit(tx domain.ConfirmedTransaction, c domain.SplitCategorization) []domain.LineIntent {
	intents := make([]domain.LineIntent, 0, len(c.Allocations)+1)
	for _, a := range c.Allocations {
		desc := a.Description
		if desc == "" {
			desc = tx.Description
		}
		intent := domain.LineIntent{AccountID: a.CategoryID, Amount: a.Spent, Direction: domain.DirectionSpent, Description: desc}
		if !a.Received.IsZero() {
			intent.Amount, intent.Direction = a.Received, domain.DirectionReceived
		}
		intents = append(intents, intent)
	}

	net := tx.Net()
	switch {
	case net.IsNegative():
		intents = append(intents, domain.LineIntent{
			AccountID: tx.CorrespondingCategoryID, Amount: net.Abs(), Direction: domain.DirectionReceived, Description: tx.Description,
		})
	case net.IsPositive():
		intents = append(intents, domain.LineIntent{
			AccountID: tx.CorrespondingCategoryID, Amount: net, Direction: domain.DirectionSpent, Description: tx.Description,
		})
	}
	return intents
}
