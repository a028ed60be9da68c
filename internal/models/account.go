package models

// AccountType defines the fundamental accounting type of an account.
type AccountType string

// Account represents a chart-of-accounts row.
// Note: ParentAccountID uses a pointer for the nullable foreign key.
type Account struct {
	AccountID       string      `db:"account_id" json:"accountID"`
	CompanyID       string      `db:"company_id" json:"companyID"`
	Name            string      `db:"name" json:"name"`
	AccountType     AccountType `db:"account_type" json:"accountType"`
	ParentAccountID *string     `db:"parent_account_id" json:"parentAccountID,omitempty"`
}

// Payee represents a counterparty row.
type Payee struct {
	PayeeID   string `db:"payee_id" json:"payeeID"`
	CompanyID string `db:"company_id" json:"companyID"`
	Name      string `db:"name" json:"name"`
}
