package betting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/usecase/outcome"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/usecase/validation"
	coremocks "github.com/amirhossein-jamali/casino-wallet/mocks/port/core"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	engine *Engine
	random *coremocks.MockRandomSource
	wallet *entity.Wallet
}

func newTestEnv(t *testing.T, deposit string) *testEnv {
	t.Helper()

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	random := coremocks.NewMockRandomSource(t)
	cfg := entity.DefaultGameConfiguration()

	wallet := entity.NewWallet(timeProvider)
	if deposit != "" {
		_, err := wallet.Credit(entity.KindDeposit, money(t, deposit))
		require.NoError(t, err)
	}

	return &testEnv{
		engine: NewEngine(validation.NewValidator(cfg), outcome.NewEngine(random, logger), logger),
		random: random,
		wallet: wallet,
	}
}

func money(t *testing.T, amount string) entity.Money {
	t.Helper()
	m, err := entity.ParseMoney(amount)
	require.NoError(t, err)
	return m
}

func TestEngine_PlaceBet_Loss(t *testing.T) {
	env := newTestEnv(t, "100.00")
	env.random.EXPECT().Unit().Return(decimal.RequireFromString("0.1")).Once()

	result, err := env.engine.PlaceBet(context.Background(), uuid.New(), env.wallet, money(t, "5.00"))

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, StateDone, result.State)
	assert.Equal(t, entity.Loss, result.Result)
	assert.True(t, result.Payout.IsZero())
	assert.Equal(t, "No luck this time! Your current balance is: $95.00", result.Message)
	assert.Equal(t, "95.00", env.wallet.Balance().String())

	// stake recorded, no win recorded for a loss
	assert.Len(t, env.wallet.TransactionsByKind(entity.KindBet), 1)
	assert.Empty(t, env.wallet.TransactionsByKind(entity.KindWin))
}

func TestEngine_PlaceBet_BigWin(t *testing.T) {
	env := newTestEnv(t, "100.00")
	env.random.EXPECT().Unit().Return(decimal.RequireFromString("0.95")).Once()
	env.random.EXPECT().Uniform(mock.Anything, mock.Anything).Return(decimal.NewFromInt(5)).Once()

	result, err := env.engine.PlaceBet(context.Background(), uuid.New(), env.wallet, money(t, "10.00"))

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, entity.BigWin, result.Result)
	assert.Equal(t, "50.00", result.Payout.String())
	assert.Equal(t, "140.00", result.Balance.String())
	assert.Equal(t, "Congrats - you won $50.00! Your current balance is: $140.00", result.Message)
	assert.Equal(t, "140.00", env.wallet.Balance().String())

	history := env.wallet.Transactions()
	require.Len(t, history, 3)
	assert.Equal(t, entity.KindBet, history[1].Kind())
	assert.Equal(t, "90.00", history[1].BalanceAfter().String())
	assert.Equal(t, entity.KindWin, history[2].Kind())
	assert.Equal(t, "140.00", history[2].BalanceAfter().String())
}

func TestEngine_PlaceBet_SmallWin(t *testing.T) {
	env := newTestEnv(t, "20.00")
	env.random.EXPECT().Unit().Return(decimal.RequireFromString("0.6")).Once()
	env.random.EXPECT().Uniform(mock.Anything, mock.Anything).Return(decimal.RequireFromString("1.25")).Once()

	result, err := env.engine.PlaceBet(context.Background(), uuid.New(), env.wallet, money(t, "4.00"))

	require.NoError(t, err)
	assert.Equal(t, entity.SmallWin, result.Result)
	assert.Equal(t, "5.00", result.Payout.String())
	assert.Equal(t, "21.00", env.wallet.Balance().String())
}

func TestEngine_PlaceBet_Rejected(t *testing.T) {
	t.Run("Stake exceeds balance", func(t *testing.T) {
		env := newTestEnv(t, "2.00")

		result, err := env.engine.PlaceBet(context.Background(), uuid.New(), env.wallet, money(t, "5.00"))

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, StateAborted, result.State)
		assert.ErrorIs(t, result.Reason, errs.ErrInsufficientFunds)
		assert.Equal(t, "Insufficient funds! Your bet of $5.00 has failed.", result.Message)
		assert.Equal(t, "2.00", env.wallet.Balance().String())
		assert.Len(t, env.wallet.Transactions(), 1)
	})

	t.Run("Above maximum bet", func(t *testing.T) {
		env := newTestEnv(t, "100.00")

		result, err := env.engine.PlaceBet(context.Background(), uuid.New(), env.wallet, money(t, "11.00"))

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.ErrorIs(t, result.Reason, errs.ErrOutOfRange)
		assert.Equal(t, "Bet amount must be between $1.00 and $10.00! Your bet of $11.00 has failed.", result.Message)
		assert.Equal(t, "100.00", env.wallet.Balance().String())
	})

	t.Run("Below minimum bet", func(t *testing.T) {
		env := newTestEnv(t, "100.00")

		result, err := env.engine.PlaceBet(context.Background(), uuid.New(), env.wallet, money(t, "0.50"))

		require.NoError(t, err)
		assert.ErrorIs(t, result.Reason, errs.ErrOutOfRange)
		assert.Equal(t, "100.00", env.wallet.Balance().String())
	})

	t.Run("Canceled context", func(t *testing.T) {
		env := newTestEnv(t, "100.00")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := env.engine.PlaceBet(ctx, uuid.New(), env.wallet, money(t, "5.00"))

		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, result)
		assert.Equal(t, "100.00", env.wallet.Balance().String())
	})
}

// failingCreditAccount debits normally but refuses every credit
type failingCreditAccount struct {
	balance  entity.Money
	debited  bool
	released bool
}

func (a *failingCreditAccount) Exclusive(fn func(entity.Ledger) error) error {
	defer func() { a.released = true }()
	return fn(a)
}

func (a *failingCreditAccount) Balance() entity.Money { return a.balance }

func (a *failingCreditAccount) Debit(kind entity.TransactionKind, amount entity.Money) (entity.Transaction, error) {
	remaining, err := a.balance.Sub(amount)
	if err != nil {
		return entity.Transaction{}, err
	}
	a.balance = remaining
	a.debited = true
	return entity.Transaction{}, nil
}

func (a *failingCreditAccount) Credit(kind entity.TransactionKind, amount entity.Money) (entity.Transaction, error) {
	return entity.Transaction{}, errors.New("ledger unavailable")
}

func TestEngine_PlaceBet_SettlementInconsistency(t *testing.T) {
	env := newTestEnv(t, "")
	env.random.EXPECT().Unit().Return(decimal.RequireFromString("0.95")).Once()
	env.random.EXPECT().Uniform(mock.Anything, mock.Anything).Return(decimal.NewFromInt(3)).Once()

	account := &failingCreditAccount{balance: money(t, "100.00")}
	playerID := uuid.New()

	result, err := env.engine.PlaceBet(context.Background(), playerID, account, money(t, "10.00"))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrSettlementInconsistency)
	assert.True(t, errs.IsFatal(err))
	assert.True(t, account.debited)
	assert.True(t, account.released)

	var detailed *errs.SettlementError
	require.True(t, errors.As(err, &detailed))
	assert.Equal(t, playerID.String(), detailed.PlayerID)
	assert.Equal(t, "10.00", detailed.Stake)
	assert.Equal(t, "30.00", detailed.Payout)
}

func TestEngine_PlaceBet_BalanceNeverNegative(t *testing.T) {
	env := newTestEnv(t, "30.00")
	env.random.EXPECT().Unit().Return(decimal.RequireFromString("0.2")).Maybe()

	for i := 0; i < 10; i++ {
		result, err := env.engine.PlaceBet(context.Background(), uuid.New(), env.wallet, money(t, "7.00"))
		require.NoError(t, err)
		assert.False(t, env.wallet.Balance().Decimal().IsNegative())
		if !result.Success {
			assert.ErrorIs(t, result.Reason, errs.ErrInsufficientFunds)
		}
	}

	assert.Equal(t, "2.00", env.wallet.Balance().String())
	assert.Len(t, env.wallet.TransactionsByKind(entity.KindBet), 4)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "validating", StateValidating.String())
	assert.Equal(t, "settling", StateSettling.String())
	assert.Equal(t, "unknown", State(99).String())
	assert.True(t, StateDone.IsTerminal())
	assert.True(t, StateAborted.IsTerminal())
	assert.False(t, StateResolving.IsTerminal())
}
