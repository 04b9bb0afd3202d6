package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/usecase/action"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Console texts
const (
	WelcomeMessage      = "Welcome to our Casino!"
	PromptMessage       = "Please, submit action: "
	EmptyCommandMessage = "Please enter a valid command."
)

// Loop reads actions line by line and prints the outcome of each one
type Loop struct {
	in       *bufio.Scanner
	out      io.Writer
	actions  usecase.ActionUseCase
	playerID uuid.UUID
	logger   coreport.Logger
}

// NewLoop creates a console loop acting on behalf of playerID
func NewLoop(
	in io.Reader,
	out io.Writer,
	actions usecase.ActionUseCase,
	playerID uuid.UUID,
	logger coreport.Logger,
) *Loop {
	return &Loop{
		in:       bufio.NewScanner(in),
		out:      out,
		actions:  actions,
		playerID: playerID,
		logger:   logger,
	}
}

// AvailableCommands renders the command help shown after the welcome message
func AvailableCommands() string {
	lines := lo.Map(usecase.Operations, func(op usecase.Operation, _ int) string {
		if op.RequiresAmount() {
			return fmt.Sprintf(" - %s <amount>", op)
		}
		return fmt.Sprintf(" - %s", op)
	})
	return "Available commands:\n" + strings.Join(lines, "\n")
}

// Run processes input until the player exits, the input ends or ctx is canceled.
// It returns an error only when the session can not continue.
func (l *Loop) Run(ctx context.Context) error {
	l.println(WelcomeMessage)
	l.println(AvailableCommands())

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		l.print(PromptMessage)
		if !l.in.Scan() {
			if err := l.in.Err(); err != nil {
				return fmt.Errorf("reading console input: %w", err)
			}
			return nil
		}

		exit, err := l.handle(ctx, l.in.Text())
		if err != nil {
			return err
		}
		if exit {
			return nil
		}
	}
}

// handle processes one input line and reports whether the player asked to exit
func (l *Loop) handle(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		l.println(EmptyCommandMessage)
		return false, nil
	}

	op, err := usecase.ParseOperation(fields[0])
	if err != nil || len(fields) > 2 || (op == usecase.OperationExit && len(fields) > 1) {
		l.logger.Debug("Invalid console command", map[string]any{
			"input": line,
		})
		l.println(action.InvalidCommandMessage)
		return false, nil
	}

	req := usecase.ActionRequest{
		Operation: op,
		PlayerID:  l.playerID,
	}
	if len(fields) == 2 {
		req.Amount = fields[1]
	}

	result, err := l.actions.Execute(ctx, req)
	if err != nil {
		if errs.IsFatal(err) {
			return false, err
		}
		l.logger.Error("Unexpected error in console loop", map[string]any{
			"player_id": l.playerID.String(),
			"operation": string(op),
			"error":     err.Error(),
		})
		l.println(action.UnexpectedMessage)
		return false, nil
	}

	l.println(result.Message)
	return result.Exit, nil
}

func (l *Loop) print(text string) {
	_, _ = fmt.Fprint(l.out, text)
}

func (l *Loop) println(text string) {
	_, _ = fmt.Fprintln(l.out, text)
}
