package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNegativeAmount     = errors.New("amounts must not be negative")
	ErrAmountSides        = errors.New("exactly one of spent or received must be nonzero")
	ErrSplitTotalMismatch = errors.New("split allocation total does not equal transaction net amount")
	ErrSplitEmpty         = errors.New("split allocation must contain at least one entry")
	ErrMissingCategory    = errors.New("category is required")
)

// AuditFields holds standard timestamps for persisted records.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// SplitAllocation assigns part of a transaction's amount to one category.
type SplitAllocation struct {
	CategoryID  string `json:"categoryID"`
	Spent       Amount `json:"spent"`
	Received    Amount `json:"received"`
	Description string `json:"description,omitempty"`
}

// Net is received minus spent.
func (s SplitAllocation) Net() Amount {
	return s.Received.Sub(s.Spent)
}

// Validate checks the single-entry invariant: one positive side, the other zero.
func (s SplitAllocation) Validate() error {
	if s.CategoryID == "" {
		return ErrMissingCategory
	}
	return validateSides(s.Spent, s.Received)
}

// ValidateSplit checks every entry and that the entries net to want.
func ValidateSplit(allocations []SplitAllocation, want Amount) error {
	if len(allocations) == 0 {
		return ErrSplitEmpty
	}
	total := ZeroAmount
	for i, a := range allocations {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("split entry %d: %w", i, err)
		}
		total = total.Add(a.Net())
	}
	if !total.Equal(want) {
		return fmt.Errorf("%w: entries net %s, transaction net %s", ErrSplitTotalMismatch, total, want)
	}
	return nil
}

func validateSides(spent, received Amount) error {
	if spent.IsNegative() || received.IsNegative() {
		return ErrNegativeAmount
	}
	if spent.IsZero() == received.IsZero() {
		return ErrAmountSides
	}
	return nil
}

// validateTopLevel checks a transaction's own amounts. With a split, the top level is a net
// figure and may be zero on both sides, but never nonzero on both.
func validateTopLevel(spent, received Amount, split []SplitAllocation) error {
	if len(split) == 0 {
		return validateSides(spent, received)
	}
	if spent.IsNegative() || received.IsNegative() {
		return ErrNegativeAmount
	}
	if !spent.IsZero() && !received.IsZero() {
		return ErrAmountSides
	}
	return ValidateSplit(split, received.Sub(spent))
}

// ImportedTransaction is a staging row awaiting categorization. It is not ledger-eligible.
type ImportedTransaction struct {
	ImportedID      string            `json:"importedID"`
	CompanyID       string            `json:"companyID"`
	Date            time.Time         `json:"date"`
	Description     string            `json:"description"`
	Spent           Amount            `json:"spent"`
	Received        Amount            `json:"received"`
	SourceAccountID string            `json:"sourceAccountID"`
	SplitAllocation []SplitAllocation `json:"splitAllocation,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// Net is received minus spent.
func (t ImportedTransaction) Net() Amount {
	return t.Received.Sub(t.Spent)
}

// Validate enforces the staging invariants.
func (t ImportedTransaction) Validate() error {
	return validateTopLevel(t.Spent, t.Received, t.SplitAllocation)
}

// Categorization is either a SimpleCategorization or a SplitCategorization.
type Categorization interface {
	isCategorization()
}

// SimpleCategorization posts the whole amount against one category.
type SimpleCategorization struct {
	SelectedCategoryID string
}

// SplitCategorization spreads the amount over several categories.
type SplitCategorization struct {
	Allocations []SplitAllocation
}

func (SimpleCategorization) isCategorization() {}
func (SplitCategorization) isCategorization()  {}

// ConfirmedTransaction is a categorized, ledger-eligible transaction. It exclusively owns
// its journal lines.
type ConfirmedTransaction struct {
	TransactionID           string         `json:"transactionID"`
	CompanyID               string         `json:"companyID"`
	ImportedID              string         `json:"importedID,omitempty"`
	Date                    time.Time      `json:"date"`
	Description             string         `json:"description"`
	Spent                   Amount         `json:"spent"`
	Received                Amount         `json:"received"`
	CorrespondingCategoryID string         `json:"correspondingCategoryID"`
	Categorization          Categorization `json:"-"`
	PayeeID                 string         `json:"payeeID,omitempty"`
	SourceAccountID         string         `json:"sourceAccountID"`
	AuditFields
}

// Net is received minus spent.
func (t ConfirmedTransaction) Net() Amount {
	return t.Received.Sub(t.Spent)
}

// SelectedCategoryID returns the single category for simple categorizations, or "" for splits.
func (t ConfirmedTransaction) SelectedCategoryID() string {
	if c, ok := t.Categorization.(SimpleCategorization); ok {
		return c.SelectedCategoryID
	}
	return ""
}

// Split returns the allocations of a split categorization, or nil.
func (t ConfirmedTransaction) Split() []SplitAllocation {
	if c, ok := t.Categorization.(SplitCategorization); ok {
		return c.Allocations
	}
	return nil
}

// CategoryIDs lists every account the transaction references, corresponding account first.
func (t ConfirmedTransaction) CategoryIDs() []string {
	ids := []string{t.CorrespondingCategoryID}
	switch c := t.Categorization.(type) {
	case SimpleCategorization:
		ids = append(ids, c.SelectedCategoryID)
	case SplitCategorization:
		for _, a := range c.Allocations {
			ids = append(ids, a.CategoryID)
		}
	}
	return ids
}

// Validate enforces amount and categorization invariants.
func (t ConfirmedTransaction) Validate() error {
	if t.CorrespondingCategoryID == "" {
		return fmt.Errorf("corresponding %w", ErrMissingCategory)
	}
	switch c := t.Categorization.(type) {
	case SimpleCategorization:
		if c.SelectedCategoryID == "" {
			return fmt.Errorf("selected %w", ErrMissingCategory)
		}
		return validateTopLevel(t.Spent, t.Received, nil)
	case SplitCategorization:
		if len(c.Allocations) == 0 {
			return ErrSplitEmpty
		}
		return validateTopLevel(t.Spent, t.Received, c.Allocations)
	default:
		return errors.New("transaction has no categorization")
	}
}
