package core

import "github.com/shopspring/decimal"

// RandomSource produces uniformly distributed decimals from a cryptographically
// secure generator. Implementations panic if the entropy source fails.
type RandomSource interface {
	// Unit returns a value drawn uniformly from [0, 1).
	Unit() decimal.Decimal
	// Uniform returns a value drawn uniformly from the closed interval [min, max].
	Uniform(min, max decimal.Decimal) decimal.Decimal
}
