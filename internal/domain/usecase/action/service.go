package action

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/usecase/betting"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/usecase/validation"
)

// Service executes player actions against their wallets
type Service struct {
	players   persistence.PlayerRepository
	validator *validation.Validator
	betting   *betting.Engine
	logger    coreport.Logger
}

// NewService creates a new action service
func NewService(
	players persistence.PlayerRepository,
	validator *validation.Validator,
	bettingEngine *betting.Engine,
	logger coreport.Logger,
) *Service {
	return &Service{
		players:   players,
		validator: validator,
		betting:   bettingEngine,
		logger:    logger,
	}
}

// Execute runs one action. See usecase.ActionUseCase for the error contract.
func (s *Service) Execute(ctx context.Context, req usecase.ActionRequest) (*usecase.ActionResult, error) {
	switch req.Operation {
	case usecase.OperationExit:
		return &usecase.ActionResult{Success: true, Message: FarewellMessage, Exit: true}, nil
	case usecase.OperationDeposit, usecase.OperationWithdraw, usecase.OperationBet:
	default:
		s.logger.Warn("Unknown operation", map[string]any{
			"operation": string(req.Operation),
			"player_id": req.PlayerID.String(),
		})
		return failure(InvalidCommandMessage, errs.ErrUnknownOperation, nil), nil
	}

	player, err := s.players.GetByID(ctx, req.PlayerID)
	if err != nil {
		if errs.IsPlayerNotFoundError(err) || errors.Is(err, errs.ErrInvalidPlayerID) {
			return failure(PlayerNotFoundMessage, err, nil), nil
		}
		s.logger.Error("Failed to get player", map[string]any{
			"player_id": req.PlayerID.String(),
			"error":     err.Error(),
		})
		return nil, err
	}

	rawAmount := strings.TrimSpace(req.Amount)
	if rawAmount == "" {
		balance := player.Balance()
		return failure(amountRequiredMessage(req.Operation), errs.ErrInvalidAmount, &balance), nil
	}

	amount, err := entity.ParseMoney(rawAmount)
	if err != nil {
		s.logger.Warn("Invalid amount", map[string]any{
			"player_id": player.ID.String(),
			"operation": string(req.Operation),
			"amount":    rawAmount,
			"error":     err.Error(),
		})
		balance := player.Balance()
		return failure(failedMessage(validation.MessageFor(err), req.Operation, rawAmount), err, &balance), nil
	}

	s.logger.Debug("Executing action", map[string]any{
		"player_id": player.ID.String(),
		"operation": string(req.Operation),
		"amount":    amount.String(),
	})

	switch req.Operation {
	case usecase.OperationDeposit:
		return s.deposit(player, amount)
	case usecase.OperationWithdraw:
		return s.withdraw(player, amount)
	default:
		return s.bet(ctx, player, amount)
	}
}

func (s *Service) deposit(player *entity.Player, amount entity.Money) (*usecase.ActionResult, error) {
	if err := s.validator.ValidateDeposit(amount); err != nil {
		return s.rejected(player, usecase.OperationDeposit, amount, err), nil
	}

	txn, err := player.Wallet().Credit(entity.KindDeposit, amount)
	if err != nil {
		return s.rejected(player, usecase.OperationDeposit, amount, err), nil
	}

	s.logger.Info("Deposit completed", map[string]any{
		"player_id":      player.ID.String(),
		"amount":         amount.String(),
		"balance":        txn.BalanceAfter().String(),
		"transaction_id": txn.ID().String(),
	})
	return success(depositSucceededMessage(amount, txn.BalanceAfter()), txn.BalanceAfter()), nil
}

// withdraw checks the balance inside the wallet's exclusive section so the
// check and the debit see the same balance
func (s *Service) withdraw(player *entity.Player, amount entity.Money) (*usecase.ActionResult, error) {
	var txn entity.Transaction
	err := player.Wallet().Exclusive(func(ledger entity.Ledger) error {
		if err := s.validator.ValidateWithdraw(amount, ledger.Balance()); err != nil {
			return err
		}
		var err error
		txn, err = ledger.Debit(entity.KindWithdraw, amount)
		return err
	})
	if err != nil {
		return s.rejected(player, usecase.OperationWithdraw, amount, err), nil
	}

	s.logger.Info("Withdrawal completed", map[string]any{
		"player_id":      player.ID.String(),
		"amount":         amount.String(),
		"balance":        txn.BalanceAfter().String(),
		"transaction_id": txn.ID().String(),
	})
	return success(withdrawSucceededMessage(amount, txn.BalanceAfter()), txn.BalanceAfter()), nil
}

func (s *Service) bet(ctx context.Context, player *entity.Player, amount entity.Money) (*usecase.ActionResult, error) {
	outcome, err := s.betting.PlaceBet(ctx, player.ID, player.Wallet(), amount)
	if err != nil {
		return nil, err
	}

	balance := outcome.Balance
	if !outcome.Success {
		return failure(outcome.Message, outcome.Reason, &balance), nil
	}

	result := success(outcome.Message, balance)
	gameResult := outcome.Result
	payout := outcome.Payout
	result.GameResult = &gameResult
	result.Payout = &payout
	return result, nil
}

func (s *Service) rejected(player *entity.Player, op usecase.Operation, amount entity.Money, err error) *usecase.ActionResult {
	s.logger.Warn("Action rejected", map[string]any{
		"player_id":  player.ID.String(),
		"operation":  string(op),
		"amount":     amount.String(),
		"error":      err.Error(),
		"error_code": errs.ErrorCode(err),
	})
	balance := player.Balance()
	return failure(failedMessage(validation.MessageFor(err), op, amount.String()), err, &balance)
}

func success(message string, balance entity.Money) *usecase.ActionResult {
	return &usecase.ActionResult{
		Success:    true,
		Message:    message,
		NewBalance: &balance,
	}
}

func failure(message string, err error, balance *entity.Money) *usecase.ActionResult {
	return &usecase.ActionResult{
		Success:    false,
		Message:    message,
		NewBalance: balance,
		ErrorCode:  errs.ErrorCode(err),
	}
}
