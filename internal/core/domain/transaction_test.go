package domain_test

import (
	"testing"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func amt(s string) domain.Amount {
	return domain.MustParseAmount(s)
}

func TestImportedTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tx      domain.ImportedTransaction
		wantErr error
	}{
		{
			name: "spent only",
			tx:   domain.ImportedTransaction{Spent: amt("50.00")},
		},
		{
			name: "received only",
			tx:   domain.ImportedTransaction{Received: amt("1000.00")},
		},
		{
			name:    "both sides",
			tx:      domain.ImportedTransaction{Spent: amt("1"), Received: amt("1")},
			wantErr: domain.ErrAmountSides,
		},
		{
			name:    "neither side",
			tx:      domain.ImportedTransaction{},
			wantErr: domain.ErrAmountSides,
		},
		{
			name:    "negative",
			tx:      domain.ImportedTransaction{Spent: amt("-5")},
			wantErr: domain.ErrNegativeAmount,
		},
		{
			name: "split matching net",
			tx: domain.ImportedTransaction{
				Spent: amt("50.00"),
				SplitAllocation: []domain.SplitAllocation{
					{CategoryID: "office", Spent: amt("30.00")},
					{CategoryID: "software", Spent: amt("20.00")},
				},
			},
		},
		{
			name: "net zero split",
			tx: domain.ImportedTransaction{
				SplitAllocation: []domain.SplitAllocation{
					{CategoryID: "a", Spent: amt("10.00")},
					{CategoryID: "b", Received: amt("10.00")},
				},
			},
		},
		{
			name: "split not matching net",
			tx: domain.ImportedTransaction{
				Spent: amt("50.00"),
				SplitAllocation: []domain.SplitAllocation{
					{CategoryID: "office", Spent: amt("30.00")},
					{CategoryID: "software", Spent: amt("15.00")},
				},
			},
			wantErr: domain.ErrSplitTotalMismatch,
		},
		{
			name: "split entry with both sides",
			tx: domain.ImportedTransaction{
				Spent: amt("10.00"),
				SplitAllocation: []domain.SplitAllocation{
					{CategoryID: "office", Spent: amt("20.00"), Received: amt("10.00")},
				},
			},
			wantErr: domain.ErrAmountSides,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfirmedTransaction_Validate(t *testing.T) {
	base := domain.ConfirmedTransaction{
		Spent:                   amt("50.00"),
		CorrespondingCategoryID: "checking",
	}

	simple := base
	simple.Categorization = domain.SimpleCategorization{SelectedCategoryID: "office"}
	assert.NoError(t, simple.Validate())
	assert.Equal(t, "office", simple.SelectedCategoryID())
	assert.Nil(t, simple.Split())
	assert.Equal(t, []string{"checking", "office"}, simple.CategoryIDs())

	missingCorresponding := simple
	missingCorresponding.CorrespondingCategoryID = ""
	assert.ErrorIs(t, missingCorresponding.Validate(), domain.ErrMissingCategory)

	missingSelected := base
	missingSelected.Categorization = domain.SimpleCategorization{}
	assert.ErrorIs(t, missingSelected.Validate(), domain.ErrMissingCategory)

	noCategorization := base
	assert.Error(t, noCategorization.Validate())

	split := base
	split.Categorization = domain.SplitCategorization{Allocations: []domain.SplitAllocation{
		{CategoryID: "office", Spent: amt("30.00")},
		{CategoryID: "software", Spent: amt("20.00")},
	}}
	assert.NoError(t, split.Validate())
	assert.Equal(t, "", split.SelectedCategoryID())
	assert.Len(t, split.Split(), 2)
	assert.Equal(t, []string{"checking", "office", "software"}, split.CategoryIDs())

	emptySplit := base
	emptySplit.Categorization = domain.SplitCategorization{}
	assert.ErrorIs(t, emptySplit.Validate(), domain.ErrSplitEmpty)
}

func TestAccountType(t *testing.T) {
	assert.True(t, domain.COGS.IsValid())
	assert.False(t, domain.AccountType("INCOME").IsValid())
	assert.True(t, domain.Asset.IsDebitNormal())
	assert.True(t, domain.COGS.IsDebitNormal())
	assert.False(t, domain.Revenue.IsDebitNormal())
}

func TestValidateParent(t *testing.T) {
	parent := &domain.Account{AccountID: "opex", AccountType: domain.Expense}

	assert.NoError(t, domain.ValidateParent(domain.Account{AccountID: "office", AccountType: domain.Expense, ParentAccountID: "opex"}, parent))
	assert.ErrorIs(t, domain.ValidateParent(domain.Account{AccountID: "cash", AccountType: domain.Asset, ParentAccountID: "opex"}, parent), domain.ErrParentMismatch)
	assert.ErrorIs(t, domain.ValidateParent(domain.Account{AccountID: "office", AccountType: domain.Expense, ParentAccountID: "gone"}, nil), domain.ErrParentMissing)
	assert.ErrorIs(t, domain.ValidateParent(domain.Account{AccountID: "opex", AccountType: domain.Expense, ParentAccountID: "opex"}, parent), domain.ErrParentSelf)
}
