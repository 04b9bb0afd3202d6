package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds  = 4001
	CodeInvalidAmount      = 4002
	CodeInvalidPlayerID    = 4003
	CodeOutOfRange         = 4004
	CodeUnknownOperation   = 4005
	CodeInvalidRequest     = 4006
	CodePlayerNotFound     = 4040
	CodeSessionUnavailable = 4230

	// 5xxx - Server errors
	CodeInternal                = 5000
	CodeInvalidResultKind       = 5001
	CodeSettlementInconsistency = 5002
	CodeInvalidConfiguration    = 5003
)

// Base error types
var (
	// ErrInvalidAmount is returned when an amount is non-positive or malformed
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNegativeAmount is returned when a money amount is negative
	ErrNegativeAmount = fmt.Errorf("%w: amount cannot be negative", ErrInvalidAmount)

	// ErrNegativeBalance is returned when an operation would result in negative balance
	ErrNegativeBalance = errors.New("balance cannot be negative")

	// ErrOutOfRange is returned when a bet is outside the configured bounds
	ErrOutOfRange = errors.New("bet amount out of range")

	// ErrInsufficientFunds is returned when a withdrawal or stake exceeds the balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidResultKind is returned for a game result the payout table does not know
	ErrInvalidResultKind = errors.New("invalid game result type")

	// ErrSettlementInconsistency is returned when a payout could not be credited
	// after the stake was already debited
	ErrSettlementInconsistency = errors.New("settlement inconsistency")

	// ErrInvalidConfiguration is returned when the game configuration fails its checks
	ErrInvalidConfiguration = errors.New("game configuration is invalid")

	// ErrInvalidTransactionKind is returned when a wallet mutation uses the wrong kind
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")

	// ErrUnknownOperation is returned for an operation the engine does not support
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrInvalidPlayerID is returned when the player reference is empty or malformed
	ErrInvalidPlayerID = errors.New("invalid player ID")

	// ErrPlayerNotFound is returned when the requested player doesn't exist
	ErrPlayerNotFound = errors.New("player not found")

	// ErrDuplicatePlayer is returned when registering a player ID twice
	ErrDuplicatePlayer = errors.New("player already exists")

	// ErrSessionClosed is returned when an action is submitted after shutdown
	ErrSessionClosed = errors.New("session is closed")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternal is returned for unexpected server-side errors
	ErrInternal = errors.New("internal error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrSettlementInconsistency):
		return CodeSettlementInconsistency
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrOutOfRange):
		return CodeOutOfRange
	case errors.Is(err, ErrInvalidPlayerID):
		return CodeInvalidPlayerID
	case errors.Is(err, ErrUnknownOperation):
		return CodeUnknownOperation
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrPlayerNotFound):
		return CodePlayerNotFound
	case errors.Is(err, ErrSessionClosed):
		return CodeSessionUnavailable
	case errors.Is(err, ErrInvalidResultKind):
		return CodeInvalidResultKind
	case errors.Is(err, ErrInvalidConfiguration):
		return CodeInvalidConfiguration
	default:
		return CodeInternal
	}
}

// IsFatal reports whether err means the wallet no longer matches the bets placed against it
func IsFatal(err error) bool {
	return errors.Is(err, ErrSettlementInconsistency) || errors.Is(err, ErrInvalidConfiguration)
}

// InsufficientFundsError provides detailed error information for insufficient funds
type InsufficientFundsError struct {
	Operation string
	Amount    string
	Balance   string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for %s: required %s, available %s",
		e.Operation, e.Amount, e.Balance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"operation":  e.Operation,
		"amount":     e.Amount,
		"balance":    e.Balance,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(operation, amount, balance string) error {
	return &InsufficientFundsError{
		Operation: operation,
		Amount:    amount,
		Balance:   balance,
	}
}

// OutOfRangeError carries the configured bet bounds that were violated
type OutOfRangeError struct {
	Amount  string
	Minimum string
	Maximum string
}

// Error implements the error interface
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("bet amount %s outside allowed range [%s, %s]", e.Amount, e.Minimum, e.Maximum)
}

// Is checks if the target error is an ErrOutOfRange
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// LogFields returns a map of fields for structured logging
func (e *OutOfRangeError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "out_of_range",
		"amount":     e.Amount,
		"minimum":    e.Minimum,
		"maximum":    e.Maximum,
		"error_code": CodeOutOfRange,
	}
}

// NewOutOfRangeError creates a new bet range error
func NewOutOfRangeError(amount, minimum, maximum string) error {
	return &OutOfRangeError{
		Amount:  amount,
		Minimum: minimum,
		Maximum: maximum,
	}
}

// SettlementError describes a bet whose stake was taken but whose payout was not applied.
// The wallet no longer reflects the outcome of the bet.
type SettlementError struct {
	PlayerID string
	Stake    string
	Payout   string
	Err      error
}

// Error implements the error interface
func (e *SettlementError) Error() string {
	return fmt.Sprintf("settlement inconsistency for player %s (stake: %s, payout: %s): %v",
		e.PlayerID, e.Stake, e.Payout, e.Err)
}

// Unwrap returns the underlying credit failure
func (e *SettlementError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrSettlementInconsistency
func (e *SettlementError) Is(target error) bool {
	return target == ErrSettlementInconsistency
}

// LogFields returns a map of fields for structured logging
func (e *SettlementError) LogFields() map[string]any {
	cause := ""
	if e.Err != nil {
		cause = e.Err.Error()
	}
	return map[string]any{
		"error_type": "settlement_inconsistency",
		"player_id":  e.PlayerID,
		"stake":      e.Stake,
		"payout":     e.Payout,
		"error":      cause,
		"error_code": CodeSettlementInconsistency,
	}
}

// NewSettlementError creates a new settlement inconsistency error
func NewSettlementError(playerID, stake, payout string, err error) error {
	return &SettlementError{
		PlayerID: playerID,
		Stake:    stake,
		Payout:   payout,
		Err:      err,
	}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsPlayerNotFoundError checks if the error is a player not found error
func IsPlayerNotFoundError(err error) bool {
	return errors.Is(err, ErrPlayerNotFound)
}

// IsValidationError checks if the error is an expected, recoverable input or balance failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrUnknownOperation)
}
