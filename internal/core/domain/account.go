package domain

import (
	"errors"
	"fmt"
)

var (
	ErrParentMissing  = errors.New("parent account not found")
	ErrParentMismatch = errors.New("parent account has a different account type")
	ErrParentSelf     = errors.New("account cannot be its own parent")
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	COGS      AccountType = "COGS"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, COGS, Expense:
		return true
	}
	return false
}

// IsDebitNormal reports whether increases to the account are recorded as debits.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense || t == COGS
}

// Account is a chart-of-accounts entry (a "category"). It is owned by the directory
// and only ever referenced by id from transactions.
type Account struct {
	AccountID       string      `json:"accountID"`
	CompanyID       string      `json:"companyID"`
	Name            string      `json:"name"`
	AccountType     AccountType `json:"accountType"`
	ParentAccountID string      `json:"parentAccountID,omitempty"`
}

// Payee is a directory entry for the counterparty of a transaction.
type Payee struct {
	PayeeID   string `json:"payeeID"`
	CompanyID string `json:"companyID"`
	Name      string `json:"name"`
}

// ValidateParent checks a child account against its parent as found in the same company.
// parent is nil when no such account exists.
func ValidateParent(child Account, parent *Account) error {
	switch {
	case child.ParentAccountID == child.AccountID:
		return fmt.Errorf("%w: %s", ErrParentSelf, child.AccountID)
	case parent == nil:
		return fmt.Errorf("%w: %s", ErrParentMissing, child.ParentAccountID)
	case parent.AccountType != child.AccountType:
		return fmt.Errorf("%w: %s is %s, %s is %s", ErrParentMismatch,
			child.AccountID, child.AccountType, parent.AccountID, parent.AccountType)
	}
	return nil
}
