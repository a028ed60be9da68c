package domain

import "time"

// Direction says which side of the ledger a line intent lands on.
// Spent intents debit their account, received intents credit it.
type Direction string

const (
	DirectionSpent    Direction = "SPENT"
	DirectionReceived Direction = "RECEIVED"
)

// LineIntent is the output of the split expander: one future journal line, not yet balanced
// against its siblings or assigned an id.
type LineIntent struct {
	AccountID   string    `json:"accountID"`
	Amount      Amount    `json:"amount"`
	Direction   Direction `json:"direction"`
	Description string    `json:"description"`
}

// JournalLine is one debit or credit row of the general ledger.
type JournalLine struct {
	LineID        string    `json:"lineID"`
	TransactionID string    `json:"transactionID"`
	CompanyID     string    `json:"companyID"`
	LineNo        int       `json:"lineNo"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description"`
	AccountID     string    `json:"accountID"`
	Debit         Amount    `json:"debit"`
	Credit        Amount    `json:"credit"`
}

// JournalFilter narrows a journal line listing. Nil bounds are open and a zero Limit
// returns every matching line.
type JournalFilter struct {
	From  *time.Time
	To    *time.Time
	After *JournalCursor
	Limit int
}

// Matches reports whether a line date falls inside the filter (inclusive bounds).
func (f JournalFilter) Matches(date time.Time) bool {
	if f.From != nil && date.Before(*f.From) {
		return false
	}
	if f.To != nil && date.After(*f.To) {
		return false
	}
	return true
}

// JournalCursor marks the last line a caller has seen in the (date, transaction, line number)
// ordering of the journal stream.
type JournalCursor struct {
	Date          time.Time
	TransactionID string
	LineNo        int
}

// IsAfter reports whether l sorts strictly after the cursor position.
func (c JournalCursor) IsAfter(l JournalLine) bool {
	if !l.Date.Equal(c.Date) {
		return l.Date.After(c.Date)
	}
	if l.TransactionID != c.TransactionID {
		return l.TransactionID > c.TransactionID
	}
	return l.LineNo > c.LineNo
}

// CursorOf returns the cursor positioned on l.
func CursorOf(l JournalLine) JournalCursor {
	return JournalCursor{Date: l.Date, TransactionID: l.TransactionID, LineNo: l.LineNo}
}

// JournalPage is one page of the journal stream. Next is nil on the last page.
type JournalPage struct {
	Lines []JournalLine
	Next  *JournalCursor
}
