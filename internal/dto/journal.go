package dto

import (
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/utils/pagination"
)

// ListJournalLinesParams defines the query parameters for the journal stream.
// Without a limit the whole (date-filtered) stream is returned.
type ListJournalLinesParams struct {
	From      *time.Time `form:"from" time_format:"2006-01-02"`
	To        *time.Time `form:"to" time_format:"2006-01-02"`
	Limit     int        `form:"limit" binding:"omitempty,min=1,max=1000"`
	NextToken string     `form:"nextToken"`
}

// ToFilter converts the query parameters to a domain filter. It fails only on a malformed token.
func (p ListJournalLinesParams) ToFilter() (domain.JournalFilter, error) {
	filter := domain.JournalFilter{From: p.From, To: p.To, Limit: p.Limit}
	if p.NextToken != "" {
		cursor, err := pagination.DecodeJournalCursor(p.NextToken)
		if err != nil {
			return domain.JournalFilter{}, err
		}
		filter.After = &cursor
	}
	return filter, nil
}

// JournalLineResponse defines the data returned for one journal line.
type JournalLineResponse struct {
	LineID        string        `json:"lineID"`
	TransactionID string        `json:"transactionID"`
	LineNo        int           `json:"lineNo"`
	Date          time.Time     `json:"date"`
	Description   string        `json:"description"`
	AccountID     string        `json:"accountID"`
	Debit         domain.Amount `json:"debit"`
	Credit        domain.Amount `json:"credit"`
}

// ListJournalLinesResponse wraps a journal listing with column totals.
type ListJournalLinesResponse struct {
	Lines       []JournalLineResponse `json:"lines"`
	TotalDebit  domain.Amount         `json:"totalDebit"`
	TotalCredit domain.Amount         `json:"totalCredit"`
	NextToken   string                `json:"nextToken,omitempty"`
}

// ToListJournalLinesResponse converts a journal page and totals its lines.
func ToListJournalLinesResponse(page *domain.JournalPage) ListJournalLinesResponse {
	lines := page.Lines
	resp := ListJournalLinesResponse{Lines: make([]JournalLineResponse, len(lines))}
	if page.Next != nil {
		resp.NextToken = pagination.EncodeJournalCursor(*page.Next)
	}
	for i, l := range lines {
		resp.Lines[i] = JournalLineResponse{
			LineID:        l.LineID,
			TransactionID: l.TransactionID,
			LineNo:        l.LineNo,
			Date:          l.Date,
			Description:   l.Description,
			AccountID:     l.AccountID,
			Debit:         l.Debit,
			Credit:        l.Credit,
		}
		resp.TotalDebit = resp.TotalDebit.Add(l.Debit)
		resp.TotalCredit = resp.TotalCredit.Add(l.Credit)
	}
	return resp
}
