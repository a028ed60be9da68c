package mapping

import (
	"fmt"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/models"
)

// ToModelSplitAllocations converts domain split entries; nil stays nil so the column is NULL.
func ToModelSplitAllocations(d []domain.SplitAllocation) []models.SplitAllocation {
	if d == nil {
		return nil
	}
	out := make([]models.SplitAllocation, len(d))
	for i, a := range d {
		out[i] = models.SplitAllocation{
			CategoryID:  a.CategoryID,
			Spent:       a.Spent.Decimal(),
			Received:    a.Received.Decimal(),
			Description: a.Description,
		}
	}
	return out
}

// ToDomainSplitAllocations converts stored split entries.
func ToDomainSplitAllocations(m []models.SplitAllocation) []domain.SplitAllocation {
	if m == nil {
		return nil
	}
	out := make([]domain.SplitAllocation, len(m))
	for i, a := range m {
		out[i] = domain.SplitAllocation{
			CategoryID:  a.CategoryID,
			Spent:       domain.AmountFromDecimal(a.Spent),
			Received:    domain.AmountFromDecimal(a.Received),
			Description: a.Description,
		}
	}
	return out
}

// ToModelImportedTransaction converts a domain ImportedTransaction to a model ImportedTransaction
func ToModelImportedTransaction(d domain.ImportedTransaction) models.ImportedTransaction {
	return models.ImportedTransaction{
		ImportedID:      d.ImportedID,
		CompanyID:       d.CompanyID,
		TxnDate:         d.Date,
		Description:     d.Description,
		Spent:           d.Spent.Decimal(),
		Received:        d.Received.Decimal(),
		SourceAccountID: d.SourceAccountID,
		SplitAllocation: ToModelSplitAllocations(d.SplitAllocation),
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainImportedTransaction converts a model ImportedTransaction to a domain ImportedTransaction
func ToDomainImportedTransaction(m models.ImportedTransaction) domain.ImportedTransaction {
	return domain.ImportedTransaction{
		ImportedID:      m.ImportedID,
		CompanyID:       m.CompanyID,
		Date:            m.TxnDate,
		Description:     m.Description,
		Spent:           domain.AmountFromDecimal(m.Spent),
		Received:        domain.AmountFromDecimal(m.Received),
		SourceAccountID: m.SourceAccountID,
		SplitAllocation: ToDomainSplitAllocations(m.SplitAllocation),
		CreatedAt:       m.CreatedAt,
	}
}

// ToModelConfirmedTransaction flattens the categorization union into its two nullable columns.
func ToModelConfirmedTransaction(d domain.ConfirmedTransaction) models.ConfirmedTransaction {
	m := models.ConfirmedTransaction{
		TransactionID:           d.TransactionID,
		CompanyID:               d.CompanyID,
		ImportedID:              optionalString(d.ImportedID),
		TxnDate:                 d.Date,
		Description:             d.Description,
		Spent:                   d.Spent.Decimal(),
		Received:                d.Received.Decimal(),
		CorrespondingCategoryID: d.CorrespondingCategoryID,
		PayeeID:                 optionalString(d.PayeeID),
		SourceAccountID:         d.SourceAccountID,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
	switch c := d.Categorization.(type) {
	case domain.SimpleCategorization:
		m.SelectedCategoryID = optionalString(c.SelectedCategoryID)
	case domain.SplitCategorization:
		m.SplitAllocation = ToModelSplitAllocations(c.Allocations)
		if m.SplitAllocation == nil {
			m.SplitAllocation = []models.SplitAllocation{}
		}
	}
	return m
}

// ToDomainConfirmedTransaction rebuilds the categorization union. A row carrying both or
// neither shape is corrupt.
func ToDomainConfirmedTransaction(m models.ConfirmedTransaction) (domain.ConfirmedTransaction, error) {
	d := domain.ConfirmedTransaction{
		TransactionID:           m.TransactionID,
		CompanyID:               m.CompanyID,
		ImportedID:              derefString(m.ImportedID),
		Date:                    m.TxnDate,
		Description:             m.Description,
		Spent:                   domain.AmountFromDecimal(m.Spent),
		Received:                domain.AmountFromDecimal(m.Received),
		CorrespondingCategoryID: m.CorrespondingCategoryID,
		PayeeID:                 derefString(m.PayeeID),
		SourceAccountID:         m.SourceAccountID,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
	hasSelected := m.SelectedCategoryID != nil && *m.SelectedCategoryID != ""
	hasSplit := m.SplitAllocation != nil
	switch {
	case hasSelected && !hasSplit:
		d.Categorization = domain.SimpleCategorization{SelectedCategoryID: *m.SelectedCategoryID}
	case hasSplit && !hasSelected:
		d.Categorization = domain.SplitCategorization{Allocations: ToDomainSplitAllocations(m.SplitAllocation)}
	default:
		return domain.ConfirmedTransaction{}, fmt.Errorf("%w: transaction %s must carry exactly one of selected category or split allocation",
			apperrors.ErrInternal, m.TransactionID)
	}
	return d, nil
}

// ToModelJournalLine converts a domain JournalLine to a model JournalLine
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:        d.LineID,
		TransactionID: d.TransactionID,
		CompanyID:     d.CompanyID,
		LineNo:        d.LineNo,
		TxnDate:       d.Date,
		Description:   d.Description,
		AccountID:     d.AccountID,
		Debit:         d.Debit.Decimal(),
		Credit:        d.Credit.Decimal(),
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:        m.LineID,
		TransactionID: m.TransactionID,
		CompanyID:     m.CompanyID,
		LineNo:        m.LineNo,
		Date:          m.TxnDate,
		Description:   m.Description,
		AccountID:     m.AccountID,
		Debit:         domain.AmountFromDecimal(m.Debit),
		Credit:        domain.AmountFromDecimal(m.Credit),
	}
}
