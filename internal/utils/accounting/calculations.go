package accounting

import (
	"fmt"

	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// CalculateSignedAmount returns a line's effect on its account balance.
// This is used by reporting to present balances on each account's normal side.
func CalculateSignedAmount(line domain.JournalLine, accountType domain.AccountType) (domain.Amount, error) {
	// DEBIT to ASSET/EXPENSE/COGS -> Positive (+)
	// CREDIT to ASSET/EXPENSE/COGS -> Negative (-)
	// DEBIT to LIABILITY/EQUITY/REVENUE -> Negative (-)
	// CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+)
	switch accountType {
	case domain.Asset, domain.Expense, domain.COGS:
		return line.Debit.Sub(line.Credit), nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return line.Credit.Sub(line.Debit), nil
	default:
		return domain.ZeroAmount, fmt.Errorf("unknown account type '%s' encountered for account ID %s", accountType, line.AccountID)
	}
}

// CompareLineSets reports whether stored lines carry the same {account, debit, credit}
// tuples as expected, ignoring ids. Returns a reason when they differ.
func CompareLineSets(expected, stored []domain.JournalLine) (bool, string) {
	if len(expected) != len(stored) {
		return false, fmt.Sprintf("expected %d lines, found %d", len(expected), len(stored))
	}
	counts := make(map[string]int, len(expected))
	for _, l := range expected {
		counts[lineKey(l)]++
	}
	for _, l := range stored {
		k := lineKey(l)
		if counts[k] == 0 {
			return false, fmt.Sprintf("unexpected line on account %s (debit %s, credit %s)", l.AccountID, l.Debit, l.Credit)
		}
		counts[k]--
	}
	return true, ""
}

func lineKey(l domain.JournalLine) string {
	return l.AccountID + "|" + l.Debit.StringFixed(domain.StorageScale) + "|" + l.Credit.StringFixed(domain.StorageScale)
}
