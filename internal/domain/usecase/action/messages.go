package action

import (
	"fmt"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
)

// Player facing messages
const (
	FarewellMessage       = "Thank you for playing! Hope to see you again soon."
	InvalidCommandMessage = "Invalid command."
	PlayerNotFoundMessage = "Player not found."
	UnexpectedMessage     = "An unexpected error occurred. Please try again."
)

func amountRequiredMessage(op usecase.Operation) string {
	return fmt.Sprintf("%s amount is required", op.Title())
}

func depositSucceededMessage(amount, balance fmt.Stringer) string {
	return fmt.Sprintf("Your deposit of $%s was successful. Your current balance is: $%s", amount, balance)
}

func withdrawSucceededMessage(amount, balance fmt.Stringer) string {
	return fmt.Sprintf("Your withdrawal of $%s was successful. Your current balance is: $%s", amount, balance)
}

// failedMessage prefixes the reason to the failed operation, e.g.
// "Insufficient funds! Your withdrawal of $50.00 has failed."
func failedMessage(reason string, op usecase.Operation, amount string) string {
	noun := string(op)
	if op == usecase.OperationWithdraw {
		noun = "withdrawal"
	}
	return fmt.Sprintf("%s Your %s of $%s has failed.", reason, noun, amount)
}
