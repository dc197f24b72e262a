package decimal

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with financial precision. It exists for
// display-side arithmetic and formatting; the projection engine works on raw
// decimals.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a Money from a float64.
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a Money from a decimal.Decimal.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds the amount to cents using banker's rounding.
func (m Money) Round() Money {
	return Money{m.Decimal.RoundBank(2)}
}

// Annual converts a monthly amount to annual.
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts an annual amount to monthly.
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// Add adds another Money amount.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount.
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Zero returns a zero Money amount.
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount with two decimal places.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format returns the amount with a currency symbol.
func (m Money) Format() string {
	return "$" + m.String()
}
