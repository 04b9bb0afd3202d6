package validation

import (
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
)

// Error is a rejected amount together with a message fit for the player
type Error struct {
	Message string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying domain error
func (e *Error) Unwrap() error {
	return e.Err
}

// Validator checks proposed amounts against the balance and the game configuration.
// It has no side effects.
type Validator struct {
	config entity.GameConfiguration
}

// NewValidator creates a new Validator
func NewValidator(config entity.GameConfiguration) *Validator {
	return &Validator{config: config}
}

// ValidateDeposit fails with ErrInvalidAmount when amount is zero
func (v *Validator) ValidateDeposit(amount entity.Money) error {
	if !amount.IsPositive() {
		return &Error{
			Message: "Deposit amount must be greater than zero!",
			Err:     fmt.Errorf("%w: deposit amount must be positive", errs.ErrInvalidAmount),
		}
	}
	return nil
}

// ValidateWithdraw fails with ErrInvalidAmount when amount is zero and
// with ErrInsufficientFunds when amount exceeds balance
func (v *Validator) ValidateWithdraw(amount, balance entity.Money) error {
	if !amount.IsPositive() {
		return &Error{
			Message: "Withdraw amount must be greater than zero!",
			Err:     fmt.Errorf("%w: withdraw amount must be positive", errs.ErrInvalidAmount),
		}
	}
	if amount.GreaterThan(balance) {
		return &Error{
			Message: "Insufficient funds!",
			Err:     errs.NewInsufficientFundsError(string(entity.KindWithdraw), amount.String(), balance.String()),
		}
	}
	return nil
}

// ValidateBet fails with ErrInvalidAmount when amount is zero and with
// ErrOutOfRange outside [MinimumBet, MaximumBet]; both bounds are valid bets
func (v *Validator) ValidateBet(amount entity.Money) error {
	if !amount.IsPositive() {
		return &Error{
			Message: "Bet amount must be greater than zero!",
			Err:     fmt.Errorf("%w: bet amount must be positive", errs.ErrInvalidAmount),
		}
	}

	value := amount.Decimal()
	if value.LessThan(v.config.MinimumBet) || value.GreaterThan(v.config.MaximumBet) {
		minimum := v.config.MinimumBet.StringFixed(entity.MaxDecimalPlaces)
		maximum := v.config.MaximumBet.StringFixed(entity.MaxDecimalPlaces)
		return &Error{
			Message: fmt.Sprintf("Bet amount must be between $%s and $%s!", minimum, maximum),
			Err:     errs.NewOutOfRangeError(amount.String(), minimum, maximum),
		}
	}
	return nil
}

// Config returns the configuration the validator checks against
func (v *Validator) Config() entity.GameConfiguration {
	return v.config
}

// MessageFor returns a message fit for the player for any amount failure.
// Parsing failures that never reached the validator are covered as well.
func MessageFor(err error) string {
	var validationErr *Error
	switch {
	case err == nil:
		return ""
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.Is(err, errs.ErrNegativeAmount):
		return "Amount cannot be negative!"
	case errors.Is(err, errs.ErrInsufficientFunds):
		return "Insufficient funds!"
	case errors.Is(err, errs.ErrOutOfRange):
		return "Bet amount is outside allowed range!"
	case errors.Is(err, errs.ErrInvalidAmount):
		return "Invalid amount format!"
	default:
		return "Something went wrong!"
	}
}
