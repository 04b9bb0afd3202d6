package betting

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/usecase/validation"
	"github.com/google/uuid"
)

// Account is the wallet surface a bet needs: one exclusive section
// spanning stake and payout. *entity.Wallet implements it.
type Account interface {
	Exclusive(fn func(entity.Ledger) error) error
}

// OutcomeResolver decides the result of a bet and its payout
type OutcomeResolver interface {
	DetermineResult(cfg entity.GameConfiguration) entity.GameResult
	CalculateWin(bet entity.Money, result entity.GameResult, cfg entity.GameConfiguration) (entity.Money, error)
}

// BetOutcome describes how a bet ended
type BetOutcome struct {
	Success bool
	State   State
	Message string

	Bet     entity.Money
	Result  entity.GameResult // meaningful only when State is StateDone
	Payout  entity.Money
	Balance entity.Money

	// Reason holds the validation or funds error of an aborted bet
	Reason error
}

// Engine runs bets: validate, stake, resolve, settle
type Engine struct {
	validator *validation.Validator
	resolver  OutcomeResolver
	config    entity.GameConfiguration
	logger    coreport.Logger
}

// NewEngine creates a new betting engine.
// Results and payouts are resolved against the validator's configuration.
func NewEngine(
	validator *validation.Validator,
	resolver OutcomeResolver,
	logger coreport.Logger,
) *Engine {
	return &Engine{
		validator: validator,
		resolver:  resolver,
		config:    validator.Config(),
		logger:    logger,
	}
}

// PlaceBet runs one bet against account while holding its exclusive section
// for the whole lifecycle.
//
// Validation and funds failures abort the bet and are reported through the
// returned outcome with a nil error; the wallet is left unchanged. A non-nil
// error is returned only when the stake was taken but the payout could not be
// applied (ErrSettlementInconsistency) or when ctx is already done.
func (e *Engine) PlaceBet(
	ctx context.Context,
	playerID uuid.UUID,
	account Account,
	amount entity.Money,
) (*BetOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outcome := &BetOutcome{Bet: amount, State: StateValidating}
	e.logger.Debug("Bet started", map[string]any{
		"player_id": playerID.String(),
		"bet":       amount.String(),
	})

	err := account.Exclusive(func(ledger entity.Ledger) error {
		return e.run(playerID, ledger, outcome)
	})
	if err != nil {
		e.logger.Error("Bet failed", settlementFields(err, playerID))
		return nil, err
	}

	return outcome, nil
}

func (e *Engine) run(playerID uuid.UUID, ledger entity.Ledger, outcome *BetOutcome) error {
	if err := e.validator.ValidateBet(outcome.Bet); err != nil {
		e.abort(playerID, ledger, outcome, err)
		return nil
	}

	e.transition(playerID, outcome, StateStaking)
	if _, err := ledger.Debit(entity.KindBet, outcome.Bet); err != nil {
		if errs.IsValidationError(err) {
			e.abort(playerID, ledger, outcome, err)
			return nil
		}
		return err
	}

	e.transition(playerID, outcome, StateResolving)
	result := e.resolver.DetermineResult(e.config)
	payout, err := e.resolver.CalculateWin(outcome.Bet, result, e.config)
	if err != nil {
		return errs.NewSettlementError(playerID.String(), outcome.Bet.String(), "unknown", err)
	}

	e.transition(playerID, outcome, StateSettling)
	if payout.IsPositive() {
		if _, err := ledger.Credit(entity.KindWin, payout); err != nil {
			return errs.NewSettlementError(playerID.String(), outcome.Bet.String(), payout.String(), err)
		}
	}

	outcome.Success = true
	outcome.Result = result
	outcome.Payout = payout
	outcome.Balance = ledger.Balance()
	if result.IsWin() {
		outcome.Message = fmt.Sprintf("Congrats - you won $%s! Your current balance is: $%s", payout, outcome.Balance)
	} else {
		outcome.Message = fmt.Sprintf("No luck this time! Your current balance is: $%s", outcome.Balance)
	}
	e.transition(playerID, outcome, StateDone)

	e.logger.Info("Bet settled", map[string]any{
		"player_id": playerID.String(),
		"bet":       outcome.Bet.String(),
		"result":    result.String(),
		"payout":    payout.String(),
		"balance":   outcome.Balance.String(),
	})
	return nil
}

func (e *Engine) abort(playerID uuid.UUID, ledger entity.Ledger, outcome *BetOutcome, reason error) {
	outcome.Reason = reason
	outcome.Balance = ledger.Balance()
	outcome.Message = fmt.Sprintf("%s Your bet of $%s has failed.", validation.MessageFor(reason), outcome.Bet)
	e.transition(playerID, outcome, StateAborted)

	e.logger.Warn("Bet rejected", map[string]any{
		"player_id":  playerID.String(),
		"bet":        outcome.Bet.String(),
		"error":      reason.Error(),
		"error_code": errs.ErrorCode(reason),
	})
}

func (e *Engine) transition(playerID uuid.UUID, outcome *BetOutcome, next State) {
	e.logger.Debug("Bet state transition", map[string]any{
		"player_id": playerID.String(),
		"from":      outcome.State.String(),
		"to":        next.String(),
	})
	outcome.State = next
}

func settlementFields(err error, playerID uuid.UUID) map[string]any {
	fields := map[string]any{
		"player_id":  playerID.String(),
		"error":      err.Error(),
		"error_code": errs.ErrorCode(err),
	}
	var detailed *errs.SettlementError
	if errors.As(err, &detailed) {
		for k, v := range detailed.LogFields() {
			fields[k] = v
		}
	}
	return fields
}
