package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/models"
	"github.com/SscSPs/books_ledger/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmedTransactionMapping_FlattensCategorization(t *testing.T) {
	base := domain.ConfirmedTransaction{
		TransactionID:           "tx-1",
		CompanyID:               "co-1",
		Date:                    time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Spent:                   domain.MustParseAmount("50.00"),
		CorrespondingCategoryID: "checking",
	}

	simple := base
	simple.Categorization = domain.SimpleCategorization{SelectedCategoryID: "office"}
	m := mapping.ToModelConfirmedTransaction(simple)
	require.NotNil(t, m.SelectedCategoryID)
	assert.Equal(t, "office", *m.SelectedCategoryID)
	assert.Nil(t, m.SplitAllocation)
	assert.Nil(t, m.ImportedID)

	back, err := mapping.ToDomainConfirmedTransaction(m)
	require.NoError(t, err)
	assert.Equal(t, "office", back.SelectedCategoryID())
	assert.True(t, back.Spent.Equal(base.Spent))

	split := base
	split.Categorization = domain.SplitCategorization{Allocations: []domain.SplitAllocation{
		{CategoryID: "office", Spent: domain.MustParseAmount("30.00")},
		{CategoryID: "software", Spent: domain.MustParseAmount("20.00"), Description: "license"},
	}}
	m = mapping.ToModelConfirmedTransaction(split)
	assert.Nil(t, m.SelectedCategoryID)
	require.Len(t, m.SplitAllocation, 2)

	back, err = mapping.ToDomainConfirmedTransaction(m)
	require.NoError(t, err)
	require.Len(t, back.Split(), 2)
	assert.Equal(t, "license", back.Split()[1].Description)
	assert.Equal(t, "20.00", back.Split()[1].Spent.String())
}

func TestToDomainConfirmedTransaction_RejectsCorruptRows(t *testing.T) {
	selected := "office"

	_, err := mapping.ToDomainConfirmedTransaction(models.ConfirmedTransaction{TransactionID: "neither"})
	assert.ErrorIs(t, err, apperrors.ErrInternal)

	_, err = mapping.ToDomainConfirmedTransaction(models.ConfirmedTransaction{
		TransactionID:      "both",
		SelectedCategoryID: &selected,
		SplitAllocation:    []models.SplitAllocation{{CategoryID: "x"}},
	})
	assert.ErrorIs(t, err, apperrors.ErrInternal)
}
