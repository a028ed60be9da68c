package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SplitAllocation is one entry of the split_allocation JSON column.
type SplitAllocation struct {
	CategoryID  string          `json:"categoryID"`
	Spent       decimal.Decimal `json:"spent"`
	Received    decimal.Decimal `json:"received"`
	Description string          `json:"description,omitempty"`
}

// ImportedTransaction is a staging row.
type ImportedTransaction struct {
	ImportedID      string            `db:"imported_id" json:"importedID"`
	CompanyID       string            `db:"company_id" json:"companyID"`
	TxnDate         time.Time         `db:"txn_date" json:"txnDate"`
	Description     string            `db:"description" json:"description"`
	Spent           decimal.Decimal   `db:"spent" json:"spent"`
	Received        decimal.Decimal   `db:"received" json:"received"`
	SourceAccountID string            `db:"source_account_id" json:"sourceAccountID"`
	SplitAllocation []SplitAllocation `db:"split_allocation" json:"splitAllocation,omitempty"` // Nullable JSONB
	CreatedAt       time.Time         `db:"created_at" json:"createdAt"`
}

// ConfirmedTransaction is a categorized transaction row. Exactly one of SelectedCategoryID
// and SplitAllocation is set; the table enforces it with a CHECK constraint.
type ConfirmedTransaction struct {
	TransactionID           string            `db:"transaction_id" json:"transactionID"`
	CompanyID               string            `db:"company_id" json:"companyID"`
	ImportedID              *string           `db:"imported_id" json:"importedID,omitempty"`
	TxnDate                 time.Time         `db:"txn_date" json:"txnDate"`
	Description             string            `db:"description" json:"description"`
	Spent                   decimal.Decimal   `db:"spent" json:"spent"`
	Received                decimal.Decimal   `db:"received" json:"received"`
	SelectedCategoryID      *string           `db:"selected_category_id" json:"selectedCategoryID,omitempty"`
	CorrespondingCategoryID string            `db:"corresponding_category_id" json:"correspondingCategoryID"`
	SplitAllocation         []SplitAllocation `db:"split_allocation" json:"splitAllocation,omitempty"`
	PayeeID                 *string           `db:"payee_id" json:"payeeID,omitempty"`
	SourceAccountID         string            `db:"source_account_id" json:"sourceAccountID"`
	AuditFields
}

// JournalLine is one debit or credit row.
type JournalLine struct {
	LineID        string          `db:"line_id" json:"lineID"`
	TransactionID string          `db:"transaction_id" json:"transactionID"`
	CompanyID     string          `db:"company_id" json:"companyID"`
	LineNo        int             `db:"line_no" json:"lineNo"`
	TxnDate       time.Time       `db:"txn_date" json:"txnDate"`
	Description   string          `db:"description" json:"description"`
	AccountID     string          `db:"account_id" json:"accountID"`
	Debit         decimal.Decimal `db:"debit" json:"debit"`
	Credit        decimal.Decimal `db:"credit" json:"credit"`
}
