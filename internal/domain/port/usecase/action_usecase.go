package usecase

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/google/uuid"
)

// Operation is an action a player can submit
type Operation string

// Supported operations
const (
	OperationDeposit  Operation = "deposit"
	OperationWithdraw Operation = "withdraw"
	OperationBet      Operation = "bet"
	OperationExit     Operation = "exit"
)

// Operations lists the supported operations in display order
var Operations = []Operation{OperationDeposit, OperationWithdraw, OperationBet, OperationExit}

// ParseOperation converts user input such as "Deposit" into an Operation
func ParseOperation(value string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(value)))
	switch op {
	case OperationDeposit, OperationWithdraw, OperationBet, OperationExit:
		return op, nil
	default:
		return "", errs.ErrUnknownOperation
	}
}

// RequiresAmount reports whether the operation moves money
func (o Operation) RequiresAmount() bool {
	return o != OperationExit
}

// Title returns the operation name with an upper-case first letter
func (o Operation) Title() string {
	if o == "" {
		return ""
	}
	return strings.ToUpper(string(o[:1])) + string(o[1:])
}

// ActionRequest is one action submitted by a player.
// Amount is the raw text entered; it is parsed and validated by the engine.
type ActionRequest struct {
	Operation Operation `json:"operation"`
	Amount    string    `json:"amount"`
	PlayerID  uuid.UUID `json:"playerId"`
}

// ActionResult contains info about a processed action
type ActionResult struct {
	Success    bool
	Message    string
	NewBalance *entity.Money
	ErrorCode  int // 0 on success

	// Set only for bets that reached settlement
	GameResult *entity.GameResult
	Payout     *entity.Money

	// Exit is true when the player asked to leave
	Exit bool
}

// ActionUseCase defines the boundary operation of the engine
type ActionUseCase interface {
	// Execute runs one action for a player.
	// Expected failures (bad amount, out of range, insufficient funds) come back
	// as a result with Success false and a nil error. A non-nil error means the
	// session can not continue safely, e.g. ErrSettlementInconsistency.
	Execute(ctx context.Context, req ActionRequest) (*ActionResult, error)
}
