// README: Common money value object used across modules.
package types

import "github.com/shopspring/decimal"

// Money is an exact decimal amount with a pass-through currency label.
// Toll rates carry cents, so float arithmetic is not acceptable here.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// NewMoney builds a Money from a float input such as a parsed API amount.
func NewMoney(amount float64, currency string) Money {
	return Money{Amount: decimal.NewFromFloat(amount), Currency: currency}
}

// Add returns the sum of m and other. Currencies are labels only; the
// receiver's label wins.
func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}
}

// String formats the amount to two decimal places, e.g. "34.95".
func (m Money) String() string {
	return m.Amount.StringFixed(2)
}
