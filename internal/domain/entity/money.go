package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// Money is a non-negative amount with at most two decimal places.
// The zero value is a valid amount of 0.00.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney is an amount of 0.00
var ZeroMoney = Money{}

// NewMoney validates amount and wraps it as Money.
// Negative amounts and amounts with more than two decimal places are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.ErrNegativeAmount
	}
	if !amount.Equal(amount.Truncate(MaxDecimalPlaces)) {
		return Money{}, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	return Money{amount: amount}, nil
}

// ParseMoney validates and converts a string amount such as "10", "10.5" or "10.50".
// Signs other than a leading minus, exponents, separators and currency symbols are rejected.
func ParseMoney(amount string) (Money, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return Money{}, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return Money{}, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return Money{}, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}
	if !isDigits(parts[0]) && !(parts[0] == "" && len(parts) == 2) {
		return Money{}, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	normalized := parts[0]
	if normalized == "" {
		normalized = "0"
	}
	if len(parts) == 2 {
		switch {
		case len(parts[1]) > MaxDecimalPlaces:
			return Money{}, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
		case parts[1] != "" && !isDigits(parts[1]):
			return Money{}, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
		case parts[1] != "":
			normalized += "." + parts[1]
		case parts[0] == "":
			// a lone "." has no digits at all
			return Money{}, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
		}
	}

	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	return NewMoney(value)
}

// MoneyFromCents builds Money from an integer number of cents
func MoneyFromCents(cents int64) (Money, error) {
	return NewMoney(decimal.New(cents, -MaxDecimalPlaces))
}

// Decimal returns the underlying decimal value
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with exactly two decimal places, e.g. "10.50"
func (m Money) String() string {
	return m.amount.StringFixed(MaxDecimalPlaces)
}

// Add returns m + other
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other, refusing to go below zero
func (m Money) Sub(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, errs.ErrNegativeBalance
	}
	return Money{amount: result}, nil
}

// MulTruncate multiplies by factor and truncates the product to whole cents.
// Truncation never rounds a payout above its exact value.
func (m Money) MulTruncate(factor decimal.Decimal) (Money, error) {
	if factor.IsNegative() {
		return Money{}, fmt.Errorf("%w: negative multiplier %s", errs.ErrInvalidAmount, factor.String())
	}
	return Money{amount: m.amount.Mul(factor).Truncate(MaxDecimalPlaces)}, nil
}

// MulCeil multiplies by factor and rounds the product up to whole cents
func (m Money) MulCeil(factor decimal.Decimal) (Money, error) {
	if factor.IsNegative() {
		return Money{}, fmt.Errorf("%w: negative multiplier %s", errs.ErrInvalidAmount, factor.String())
	}
	return Money{amount: m.amount.Mul(factor).RoundCeil(MaxDecimalPlaces)}, nil
}

// Cmp compares m and other: -1 if m < other, 0 if equal, +1 if m > other
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// Equal reports whether both amounts are numerically equal
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// LessThan reports whether m < other
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// GreaterThan reports whether m > other
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsZero reports whether the amount is 0.00
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is greater than zero
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
