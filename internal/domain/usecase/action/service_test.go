package action

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/usecase/betting"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/usecase/outcome"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/usecase/validation"
	coremocks "github.com/amirhossein-jamali/casino-wallet/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/casino-wallet/mocks/port/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceEnv struct {
	service *Service
	random  *coremocks.MockRandomSource
	repo    *persistencemocks.MockPlayerRepository
	player  *entity.Player
}

func newQuietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func newServiceEnv(t *testing.T, deposit string) *serviceEnv {
	t.Helper()

	logger := newQuietLogger(t)
	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	player := entity.NewPlayer(timeProvider)
	if deposit != "" {
		amount, err := entity.ParseMoney(deposit)
		require.NoError(t, err)
		_, err = player.Wallet().Credit(entity.KindDeposit, amount)
		require.NoError(t, err)
	}

	repo := persistencemocks.NewMockPlayerRepository(t)
	repo.EXPECT().GetByID(mock.Anything, player.ID).Return(player, nil).Maybe()

	random := coremocks.NewMockRandomSource(t)
	cfg := entity.DefaultGameConfiguration()
	validator := validation.NewValidator(cfg)
	engine := betting.NewEngine(validator, outcome.NewEngine(random, logger), logger)

	return &serviceEnv{
		service: NewService(repo, validator, engine, logger),
		random:  random,
		repo:    repo,
		player:  player,
	}
}

func (e *serviceEnv) execute(t *testing.T, op usecase.Operation, amount string) *usecase.ActionResult {
	t.Helper()
	result, err := e.service.Execute(context.Background(), usecase.ActionRequest{
		Operation: op,
		Amount:    amount,
		PlayerID:  e.player.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func TestService_Deposit(t *testing.T) {
	t.Run("Successful deposit", func(t *testing.T) {
		env := newServiceEnv(t, "")

		result := env.execute(t, usecase.OperationDeposit, "10")

		assert.True(t, result.Success)
		assert.Equal(t, "Your deposit of $10.00 was successful. Your current balance is: $10.00", result.Message)
		require.NotNil(t, result.NewBalance)
		assert.Equal(t, "10.00", result.NewBalance.String())
		assert.Zero(t, result.ErrorCode)
	})

	t.Run("Negative deposit", func(t *testing.T) {
		env := newServiceEnv(t, "25.00")

		result := env.execute(t, usecase.OperationDeposit, "-10")

		assert.False(t, result.Success)
		assert.Equal(t, errs.CodeInvalidAmount, result.ErrorCode)
		assert.Equal(t, "Amount cannot be negative! Your deposit of $-10 has failed.", result.Message)
		assert.Equal(t, "25.00", env.player.Balance().String())
		assert.Len(t, env.player.Wallet().Transactions(), 1)
	})

	t.Run("Zero deposit", func(t *testing.T) {
		env := newServiceEnv(t, "")

		result := env.execute(t, usecase.OperationDeposit, "0")

		assert.False(t, result.Success)
		assert.Equal(t, errs.CodeInvalidAmount, result.ErrorCode)
		assert.Equal(t, "Deposit amount must be greater than zero! Your deposit of $0.00 has failed.", result.Message)
		assert.Empty(t, env.player.Wallet().Transactions())
	})

	t.Run("Malformed amount", func(t *testing.T) {
		env := newServiceEnv(t, "")

		result := env.execute(t, usecase.OperationDeposit, "ten")

		assert.False(t, result.Success)
		assert.Equal(t, errs.CodeInvalidAmount, result.ErrorCode)
		assert.Equal(t, "Invalid amount format! Your deposit of $ten has failed.", result.Message)
	})

	t.Run("Missing amount", func(t *testing.T) {
		env := newServiceEnv(t, "")

		result := env.execute(t, usecase.OperationDeposit, "  ")

		assert.False(t, result.Success)
		assert.Equal(t, "Deposit amount is required", result.Message)
	})
}

func TestService_Withdraw(t *testing.T) {
	t.Run("Exact balance", func(t *testing.T) {
		env := newServiceEnv(t, "40.00")

		result := env.execute(t, usecase.OperationWithdraw, "40")

		assert.True(t, result.Success)
		assert.Equal(t, "Your withdrawal of $40.00 was successful. Your current balance is: $0.00", result.Message)
		assert.True(t, env.player.Balance().IsZero())
	})

	t.Run("Insufficient funds", func(t *testing.T) {
		env := newServiceEnv(t, "40.00")

		result := env.execute(t, usecase.OperationWithdraw, "50")

		assert.False(t, result.Success)
		assert.Equal(t, errs.CodeInsufficientFunds, result.ErrorCode)
		assert.Equal(t, "Insufficient funds! Your withdrawal of $50.00 has failed.", result.Message)
		require.NotNil(t, result.NewBalance)
		assert.Equal(t, "40.00", result.NewBalance.String())
	})
}

func TestService_Bet(t *testing.T) {
	t.Run("Loss", func(t *testing.T) {
		env := newServiceEnv(t, "100.00")
		env.random.EXPECT().Unit().Return(decimal.RequireFromString("0.3")).Once()

		result := env.execute(t, usecase.OperationBet, "5")

		assert.True(t, result.Success)
		assert.Equal(t, "No luck this time! Your current balance is: $95.00", result.Message)
		require.NotNil(t, result.GameResult)
		assert.Equal(t, entity.Loss, *result.GameResult)
		assert.True(t, result.Payout.IsZero())
	})

	t.Run("Big win", func(t *testing.T) {
		env := newServiceEnv(t, "100.00")
		env.random.EXPECT().Unit().Return(decimal.RequireFromString("0.97")).Once()
		env.random.EXPECT().Uniform(mock.Anything, mock.Anything).Return(decimal.NewFromInt(5)).Once()

		result := env.execute(t, usecase.OperationBet, "10")

		assert.True(t, result.Success)
		assert.Equal(t, "140.00", result.NewBalance.String())
		assert.Equal(t, "50.00", result.Payout.String())
	})

	t.Run("Stake above balance", func(t *testing.T) {
		env := newServiceEnv(t, "2.00")

		result := env.execute(t, usecase.OperationBet, "5")

		assert.False(t, result.Success)
		assert.Equal(t, errs.CodeInsufficientFunds, result.ErrorCode)
		assert.Equal(t, "2.00", env.player.Balance().String())
	})

	t.Run("Out of range", func(t *testing.T) {
		env := newServiceEnv(t, "100.00")

		result := env.execute(t, usecase.OperationBet, "10.01")

		assert.False(t, result.Success)
		assert.Equal(t, errs.CodeOutOfRange, result.ErrorCode)
		assert.Nil(t, result.GameResult)
	})
}

func TestService_Exit(t *testing.T) {
	env := newServiceEnv(t, "")

	result := env.execute(t, usecase.OperationExit, "")

	assert.True(t, result.Success)
	assert.True(t, result.Exit)
	assert.Equal(t, FarewellMessage, result.Message)
	assert.Nil(t, result.NewBalance)
}

func TestService_UnknownOperation(t *testing.T) {
	env := newServiceEnv(t, "")

	result := env.execute(t, usecase.Operation("jackpot"), "5")

	assert.False(t, result.Success)
	assert.Equal(t, InvalidCommandMessage, result.Message)
	assert.Equal(t, errs.CodeUnknownOperation, result.ErrorCode)
}

func TestService_PlayerLookup(t *testing.T) {
	t.Run("Unknown player", func(t *testing.T) {
		env := newServiceEnv(t, "")
		unknown := uuid.New()
		env.repo.EXPECT().GetByID(mock.Anything, unknown).Return(nil, errs.ErrPlayerNotFound).Once()

		result, err := env.service.Execute(context.Background(), usecase.ActionRequest{
			Operation: usecase.OperationDeposit,
			Amount:    "10",
			PlayerID:  unknown,
		})

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, errs.CodePlayerNotFound, result.ErrorCode)
	})

	t.Run("Repository failure", func(t *testing.T) {
		env := newServiceEnv(t, "")
		unknown := uuid.New()
		repoErr := errors.New("registry unavailable")
		env.repo.EXPECT().GetByID(mock.Anything, unknown).Return(nil, repoErr).Once()

		result, err := env.service.Execute(context.Background(), usecase.ActionRequest{
			Operation: usecase.OperationBet,
			Amount:    "5",
			PlayerID:  unknown,
		})

		assert.Equal(t, repoErr, err)
		assert.Nil(t, result)
	})
}
