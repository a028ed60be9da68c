package accounting_test

import (
	"testing"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSignedAmount(t *testing.T) {
	debitLine := domain.JournalLine{AccountID: "a", Debit: amt("25.00")}
	creditLine := domain.JournalLine{AccountID: "a", Credit: amt("25.00")}

	tests := []struct {
		name        string
		line        domain.JournalLine
		accountType domain.AccountType
		want        string
	}{
		{"debit to asset", debitLine, domain.Asset, "25.00"},
		{"credit to asset", creditLine, domain.Asset, "-25.00"},
		{"debit to expense", debitLine, domain.Expense, "25.00"},
		{"debit to cogs", debitLine, domain.COGS, "25.00"},
		{"debit to liability", debitLine, domain.Liability, "-25.00"},
		{"credit to revenue", creditLine, domain.Revenue, "25.00"},
		{"credit to equity", creditLine, domain.Equity, "25.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accounting.CalculateSignedAmount(tt.line, tt.accountType)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	_, err := accounting.CalculateSignedAmount(debitLine, domain.AccountType("INCOME"))
	assert.Error(t, err)
}

func TestCompareLineSets(t *testing.T) {
	expected, err := accounting.DeriveJournalLines(officeDepot(), seqIDs())
	require.NoError(t, err)

	// Stored rows carry different ids and order but the same postings.
	stored := []domain.JournalLine{expected[1], expected[0]}
	stored[0].LineID, stored[1].LineID = "x", "y"
	ok, reason := accounting.CompareLineSets(expected, stored)
	assert.True(t, ok)
	assert.Empty(t, reason)

	ok, reason = accounting.CompareLineSets(expected, stored[:1])
	assert.False(t, ok)
	assert.Contains(t, reason, "expected 2 lines, found 1")

	drifted := []domain.JournalLine{expected[0], expected[1]}
	drifted[1].AccountID = "savings"
	ok, reason = accounting.CompareLineSets(expected, drifted)
	assert.False(t, ok)
	assert.Contains(t, reason, "savings")
}
