package domain

// TrialBalanceRow represents a single row in a trial balance report
type TrialBalanceRow struct {
	AccountID   string      `json:"accountID"`
	AccountName string      `json:"accountName"`
	AccountType AccountType `json:"accountType"`
	Debit       Amount      `json:"debit"`
	Credit      Amount      `json:"credit"`
	Balance     Amount      `json:"balance"` // signed by the account type's normal side
}

// TrialBalance is the full report with column totals.
type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  Amount            `json:"totalDebit"`
	TotalCredit Amount            `json:"totalCredit"`
}

// JournalDrift describes a confirmed transaction whose stored lines disagree with a fresh derivation.
type JournalDrift struct {
	TransactionID string `json:"transactionID"`
	Reason        string `json:"reason"`
}

// VerifyReport summarizes a journal consistency check.
type VerifyReport struct {
	CompanyID           string         `json:"companyID"`
	TransactionsScanned int            `json:"transactionsScanned"`
	LinesScanned        int            `json:"linesScanned"`
	Drift               []JournalDrift `json:"drift"`
}

// ResyncResult summarizes a full journal rebuild.
type ResyncResult struct {
	CompanyID     string `json:"companyID"`
	Transactions  int    `json:"transactions"`
	LinesDeleted  int64  `json:"linesDeleted"`
	LinesInserted int    `json:"linesInserted"`
}
