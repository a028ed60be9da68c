package mapping

import (
	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:       d.AccountID,
		CompanyID:       d.CompanyID,
		Name:            d.Name,
		AccountType:     models.AccountType(d.AccountType),
		ParentAccountID: optionalString(d.ParentAccountID),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		CompanyID:       m.CompanyID,
		Name:            m.Name,
		AccountType:     domain.AccountType(m.AccountType),
		ParentAccountID: derefString(m.ParentAccountID),
	}
}

// ToModelPayee converts a domain Payee to a model Payee
func ToModelPayee(d domain.Payee) models.Payee {
	return models.Payee{PayeeID: d.PayeeID, CompanyID: d.CompanyID, Name: d.Name}
}

// ToDomainPayee converts a model Payee to a domain Payee
func ToDomainPayee(m models.Payee) domain.Payee {
	return domain.Payee{PayeeID: m.PayeeID, CompanyID: m.CompanyID, Name: m.Name}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
