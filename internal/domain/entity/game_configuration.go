package entity

import (
	"fmt"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/shopspring/decimal"
)

// GameConfiguration holds the bet limits, outcome probabilities and payout multipliers.
// It must pass Validate before any engine uses it.
type GameConfiguration struct {
	MinimumBet decimal.Decimal
	MaximumBet decimal.Decimal

	LossProbability     decimal.Decimal
	SmallWinProbability decimal.Decimal
	BigWinProbability   decimal.Decimal

	// Small wins pay between x1 and SmallWinMaxMultiplier
	SmallWinMaxMultiplier decimal.Decimal
	// Big wins pay between BigWinMinMultiplier and BigWinMaxMultiplier
	BigWinMinMultiplier decimal.Decimal
	BigWinMaxMultiplier decimal.Decimal
}

// DefaultGameConfiguration returns the house rules: bets of 1 to 10,
// 50% loss, 40% win up to x2, 10% win between x2 and x10
func DefaultGameConfiguration() GameConfiguration {
	return GameConfiguration{
		MinimumBet:            decimal.NewFromInt(1),
		MaximumBet:            decimal.NewFromInt(10),
		LossProbability:       decimal.RequireFromString("0.5"),
		SmallWinProbability:   decimal.RequireFromString("0.4"),
		BigWinProbability:     decimal.RequireFromString("0.1"),
		SmallWinMaxMultiplier: decimal.NewFromInt(2),
		BigWinMinMultiplier:   decimal.NewFromInt(2),
		BigWinMaxMultiplier:   decimal.NewFromInt(10),
	}
}

// IsValid reports whether every range constraint holds and the
// probabilities sum to exactly one
func (c GameConfiguration) IsValid() bool {
	return c.Validate() == nil
}

// Validate returns an ErrInvalidConfiguration error naming the first violated constraint
func (c GameConfiguration) Validate() error {
	one := decimal.NewFromInt(1)

	if !c.MinimumBet.IsPositive() {
		return fmt.Errorf("%w: minimum bet must be positive", errs.ErrInvalidConfiguration)
	}
	if c.MaximumBet.LessThan(c.MinimumBet) {
		return fmt.Errorf("%w: maximum bet %s is below minimum bet %s",
			errs.ErrInvalidConfiguration, c.MaximumBet, c.MinimumBet)
	}

	probabilities := []struct {
		name  string
		value decimal.Decimal
	}{
		{"loss", c.LossProbability},
		{"small win", c.SmallWinProbability},
		{"big win", c.BigWinProbability},
	}
	for _, p := range probabilities {
		if p.value.IsNegative() || p.value.GreaterThan(one) {
			return fmt.Errorf("%w: %s probability %s outside [0, 1]", errs.ErrInvalidConfiguration, p.name, p.value)
		}
	}

	sum := c.LossProbability.Add(c.SmallWinProbability).Add(c.BigWinProbability)
	if !sum.Equal(one) {
		return fmt.Errorf("%w: probabilities sum to %s, expected exactly 1", errs.ErrInvalidConfiguration, sum)
	}

	if c.SmallWinMaxMultiplier.LessThan(one) {
		return fmt.Errorf("%w: small win max multiplier %s is below 1", errs.ErrInvalidConfiguration, c.SmallWinMaxMultiplier)
	}
	if !c.BigWinMinMultiplier.IsPositive() {
		return fmt.Errorf("%w: big win min multiplier must be positive", errs.ErrInvalidConfiguration)
	}
	if !c.BigWinMinMultiplier.LessThan(c.BigWinMaxMultiplier) {
		return fmt.Errorf("%w: big win multipliers inverted (min %s, max %s)",
			errs.ErrInvalidConfiguration, c.BigWinMinMultiplier, c.BigWinMaxMultiplier)
	}

	return nil
}
