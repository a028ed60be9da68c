package dto

import (
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// TrialBalanceParams defines the query parameters for the trial balance.
type TrialBalanceParams struct {
	AsOf *time.Time `form:"asOf" time_format:"2006-01-02"`
}

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID   string        `json:"accountID"`
	AccountName string        `json:"accountName"`
	AccountType string        `json:"accountType"`
	Debit       domain.Amount `json:"debit"`
	Credit      domain.Amount `json:"credit"`
	Balance     domain.Amount `json:"balance"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  domain.Amount `json:"debit"`
		Credit domain.Amount `json:"credit"`
	} `json:"totals"`
}

// ToTrialBalanceResponse converts a domain trial balance.
func ToTrialBalanceResponse(tb *domain.TrialBalance, asOf time.Time) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		AsOf: asOf.Format("2006-01-02"),
		Rows: make([]TrialBalanceRowResponse, len(tb.Rows)),
	}
	for i, r := range tb.Rows {
		resp.Rows[i] = TrialBalanceRowResponse{
			AccountID:   r.AccountID,
			AccountName: r.AccountName,
			AccountType: string(r.AccountType),
			Debit:       r.Debit,
			Credit:      r.Credit,
			Balance:     r.Balance,
		}
	}
	resp.Totals.Debit = tb.TotalDebit
	resp.Totals.Credit = tb.TotalCredit
	return resp
}
