package outcome

import (
	"fmt"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// Engine maps random draws to game results and payouts
type Engine struct {
	random coreport.RandomSource
	logger coreport.Logger
}

// NewEngine creates a new outcome engine
func NewEngine(random coreport.RandomSource, logger coreport.Logger) *Engine {
	return &Engine{
		random: random,
		logger: logger,
	}
}

// DetermineResult draws r from [0, 1) and compares it against the cumulative
// probabilities. Both thresholds use strict <, so a class with probability 0
// is never selected.
func (e *Engine) DetermineResult(cfg entity.GameConfiguration) entity.GameResult {
	r := e.random.Unit()
	lossThreshold := cfg.LossProbability
	smallWinThreshold := lossThreshold.Add(cfg.SmallWinProbability)

	result := entity.BigWin
	switch {
	case r.LessThan(lossThreshold):
		result = entity.Loss
	case r.LessThan(smallWinThreshold):
		result = entity.SmallWin
	}

	e.logger.Debug("Game result determined", map[string]any{
		"draw":   r.String(),
		"result": result.String(),
	})
	return result
}

// CalculateWin returns the payout for a bet.
// Loss pays nothing; wins pay the bet times a multiplier drawn from the
// configured range, truncated to whole cents. A truncated payout below
// bet*min is raised to the first whole cent at or above it, as long as that
// cent does not exceed bet*max.
func (e *Engine) CalculateWin(bet entity.Money, result entity.GameResult, cfg entity.GameConfiguration) (entity.Money, error) {
	var low, high decimal.Decimal
	switch result {
	case entity.Loss:
		return entity.ZeroMoney, nil
	case entity.SmallWin:
		low, high = decimal.NewFromInt(1), cfg.SmallWinMaxMultiplier
	case entity.BigWin:
		low, high = cfg.BigWinMinMultiplier, cfg.BigWinMaxMultiplier
	default:
		return entity.Money{}, fmt.Errorf("%w: %d", errs.ErrInvalidResultKind, int(result))
	}

	multiplier := e.random.Uniform(low, high)
	payout, err := bet.MulTruncate(multiplier)
	if err != nil {
		return entity.Money{}, err
	}

	floor, err := bet.MulCeil(low)
	if err != nil {
		return entity.Money{}, err
	}
	ceiling, err := bet.MulTruncate(high)
	if err != nil {
		return entity.Money{}, err
	}
	// no whole cent inside [bet*low, bet*high] leaves the truncated value
	if payout.LessThan(floor) && !ceiling.LessThan(floor) {
		payout = floor
	}

	e.logger.Debug("Payout calculated", map[string]any{
		"bet":        bet.String(),
		"result":     result.String(),
		"multiplier": multiplier.String(),
		"payout":     payout.String(),
	})
	return payout, nil
}
