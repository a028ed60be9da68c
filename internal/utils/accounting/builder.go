package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// BalanceError reports a derived line set whose debits and credits differ.
type BalanceError struct {
	TransactionID string
	Debit         domain.Amount
	Credit        domain.Amount
}

func (e *BalanceError) Error() string {
	return fmt.Sprintf("%s for transaction %s: debits %s, credits %s",
		apperrors.ErrBalance.Error(), e.TransactionID, e.Debit, e.Credit)
}

func (e *BalanceError) Unwrap() error {
	return apperrors.ErrBalance
}

// IDFunc generates line ids. Injected so the builder itself stays deterministic.
type IDFunc func() string

// BuildJournalLines converts intents into debit/credit rows. Spent intents become debits and
// received intents become credits. It never returns an unbalanced set.
func BuildJournalLines(transactionID string, date time.Time, intents []domain.LineIntent, companyID string, newID IDFunc) ([]domain.JournalLine, error) {
	if len(intents) < 2 {
		return nil, fmt.Errorf("%w: transaction %s produced %d line intents, need at least two", apperrors.ErrValidation, transactionID, len(intents))
	}

	lines := make([]domain.JournalLine, 0, len(intents))
	for i, intent := range intents {
		if !intent.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: line intent %d for account %s has non-positive amount %s", apperrors.ErrValidation, i, intent.AccountID, intent.Amount)
		}
		line := domain.JournalLine{
			LineID:        newID(),
			TransactionID: transactionID,
			CompanyID:     companyID,
			LineNo:        i + 1,
			Date:          date,
			Description:   intent.Description,
			AccountID:     intent.AccountID,
		}
		switch intent.Direction {
		case domain.DirectionSpent:
			line.Debit = intent.Amount
		case domain.DirectionReceived:
			line.Credit = intent.Amount
		default:
			return nil, fmt.Errorf("%w: unknown direction %q on line intent %d", apperrors.ErrValidation, intent.Direction, i)
		}
		lines = append(lines, line)
	}

	if err := ValidateLinesBalance(transactionID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// ValidateLinesBalance checks Σdebit == Σcredit for one transaction's lines.
func ValidateLinesBalance(transactionID string, lines []domain.JournalLine) error {
	debits, credits := domain.ZeroAmount, domain.ZeroAmount
	for _, l := range lines {
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	if !debits.Equal(credits) {
		return &BalanceError{TransactionID: transactionID, Debit: debits, Credit: credits}
	}
	return nil
}

// DeriveJournalLines runs the expander and the builder for one transaction.
func DeriveJournalLines(tx domain.ConfirmedTransaction, newID IDFunc) ([]domain.JournalLine, error) {
	intents, err := ExpandIntents(tx)
	if err != nil {
		return nil, err
	}
	return BuildJournalLines(tx.TransactionID, tx.Date, intents, tx.CompanyID, newID)
}
