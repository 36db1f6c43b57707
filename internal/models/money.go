package models

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount with exactly two fractional digits.
// It rounds on construction and on scan, so every value that passes
// through the system is already at cent precision, and it marshals to
// JSON as a plain number with two decimals (10 -> 10.00).
type Money struct {
	d decimal.Decimal
}

// NewMoney builds a Money from a decimal, rounding to two digits.
func NewMoney(d decimal.Decimal) Money {
	return Money{d: d.Round(2)}
}

// MoneyFromFloat builds a Money from a float64, rounding to two digits.
func MoneyFromFloat(f float64) Money {
	return NewMoney(decimal.NewFromFloat(f))
}

// ParseMoney parses a decimal string such as "10", "10.5" or "10.00".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return NewMoney(d), nil
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal { return m.d }

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m.d.IsNegative() }

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool { return m.d.IsPositive() }

// Equal reports whether two amounts are numerically equal.
func (m Money) Equal(o Money) bool { return m.d.Equal(o.d) }

// String returns the amount with exactly two fractional digits.
func (m Money) String() string { return m.d.StringFixed(2) }

// MarshalJSON encodes the amount as an unquoted JSON number with two
// fractional digits, matching the shape of the report payloads.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.d.StringFixed(2)), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", string(data), err)
	}
	m.d = d.Round(2)
	return nil
}

// Value implements driver.Valuer; amounts are stored as fixed-2 strings
// in NUMERIC columns.
func (m Money) Value() (driver.Value, error) {
	return m.d.StringFixed(2), nil
}

// Scan implements sql.Scanner. Aggregates come back from SQLite as
// integers or floats, stored values as text.
func (m *Money) Scan(src any) error {
	if src == nil {
		m.d = decimal.Zero
		return nil
	}
	var d decimal.Decimal
	if err := d.Scan(src); err != nil {
		return err
	}
	m.d = d.Round(2)
	return nil
}
