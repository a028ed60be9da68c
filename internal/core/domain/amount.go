package domain

import (
	"bytes"
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// StorageScale is the number of fractional digits persisted for every money value.
	StorageScale = 4
	// DisplayScale is the number of fractional digits used when rendering money.
	DisplayScale = 2
)

// Amount is an exact decimal money value. All arithmetic and comparison on money goes through it.
// The zero value is a valid zero amount.
type Amount struct {
	d decimal.Decimal
}

// ZeroAmount is the additive identity.
var ZeroAmount = Amount{}

// ParseAmount parses a decimal string such as "50.00" or "-12.5".
// Values with more than StorageScale fractional digits are rejected rather than rounded.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return NewAmount(d)
}

// MustParseAmount is ParseAmount for literals known to be valid. It panics otherwise.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// NewAmount wraps a decimal, enforcing the storage scale.
func NewAmount(d decimal.Decimal) (Amount, error) {
	if !d.Equal(d.Truncate(StorageScale)) {
		return Amount{}, fmt.Errorf("amount %s has more than %d decimal places", d.String(), StorageScale)
	}
	return Amount{d: d}, nil
}

// AmountFromDecimal wraps a value read back from storage, rounding to the storage scale.
func AmountFromDecimal(d decimal.Decimal) Amount {
	return Amount{d: d.Round(StorageScale)}
}

// AmountFromCents builds an amount from an integer count of minor units.
func AmountFromCents(cents int64) Amount {
	return Amount{d: decimal.New(cents, -DisplayScale)}
}

func (a Amount) Add(b Amount) Amount { return Amount{d: a.d.Add(b.d)} }

func (a Amount) Sub(b Amount) Amount { return Amount{d: a.d.Sub(b.d)} }

func (a Amount) Neg() Amount { return Amount{d: a.d.Neg()} }

func (a Amount) Abs() Amount { return Amount{d: a.d.Abs()} }

func (a Amount) IsZero() bool { return a.d.IsZero() }

func (a Amount) IsPositive() bool { return a.d.IsPositive() }

func (a Amount) IsNegative() bool { return a.d.IsNegative() }

// Cmp returns -1, 0 or +1.
func (a Amount) Cmp(b Amount) int { return a.d.Cmp(b.d) }

// Equal compares numerically, so 50 equals 50.00.
func (a Amount) Equal(b Amount) bool { return a.d.Equal(b.d) }

// StringFixed renders the amount with exactly places fractional digits.
func (a Amount) StringFixed(places int32) string { return a.d.StringFixed(places) }

func (a Amount) String() string { return a.d.StringFixed(DisplayScale) }

// Decimal exposes the underlying value for adapters that need it.
func (a Amount) Decimal() decimal.Decimal { return a.d }

// MarshalJSON always emits a quoted string at storage scale.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.d.StringFixed(StorageScale) + `"`), nil
}

// UnmarshalJSON accepts both quoted strings and bare JSON numbers. Numbers are parsed from
// their literal text, never through float64.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*a = Amount{}
		return nil
	}
	raw := string(bytes.Trim(data, `"`))
	if raw == "" {
		*a = Amount{}
		return nil
	}
	parsed, err := ParseAmount(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Scan implements sql.Scanner for NUMERIC columns.
func (a *Amount) Scan(value any) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return err
	}
	a.d = d
	return nil
}

// Value implements driver.Valuer.
func (a Amount) Value() (driver.Value, error) {
	return a.d.StringFixed(StorageScale), nil
}

// SumAmounts adds a list of amounts.
func SumAmounts(amounts ...Amount) Amount {
	total := ZeroAmount
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
