package outcome

import (
	"testing"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/casino-wallet/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newQuietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	return logger
}

func money(t *testing.T, amount string) entity.Money {
	t.Helper()
	m, err := entity.ParseMoney(amount)
	require.NoError(t, err)
	return m
}

func TestEngine_DetermineResult(t *testing.T) {
	cfg := entity.DefaultGameConfiguration()

	tests := []struct {
		name     string
		draw     string
		expected entity.GameResult
	}{
		{"Lowest draw", "0", entity.Loss},
		{"Just below loss threshold", "0.499999999", entity.Loss},
		{"Exactly at loss threshold", "0.5", entity.SmallWin},
		{"Just below small win threshold", "0.899999999", entity.SmallWin},
		{"Exactly at small win threshold", "0.9", entity.BigWin},
		{"Highest draw", "0.999999999", entity.BigWin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			random := coremocks.NewMockRandomSource(t)
			random.EXPECT().Unit().Return(decimal.RequireFromString(tt.draw)).Once()

			engine := NewEngine(random, newQuietLogger(t))

			assert.Equal(t, tt.expected, engine.DetermineResult(cfg))
		})
	}

	t.Run("Zero probability class is never selected", func(t *testing.T) {
		noLoss := cfg
		noLoss.LossProbability = decimal.Zero
		noLoss.SmallWinProbability = decimal.RequireFromString("0.9")
		require.True(t, noLoss.IsValid())

		random := coremocks.NewMockRandomSource(t)
		random.EXPECT().Unit().Return(decimal.Zero).Once()

		engine := NewEngine(random, newQuietLogger(t))

		assert.Equal(t, entity.SmallWin, engine.DetermineResult(noLoss))
	})
}

func TestEngine_CalculateWin(t *testing.T) {
	cfg := entity.DefaultGameConfiguration()

	t.Run("Loss pays nothing and draws nothing", func(t *testing.T) {
		random := coremocks.NewMockRandomSource(t)
		engine := NewEngine(random, newQuietLogger(t))

		for _, bet := range []string{"1.00", "5.55", "10.00", "0"} {
			payout, err := engine.CalculateWin(money(t, bet), entity.Loss, cfg)

			require.NoError(t, err)
			assert.True(t, payout.IsZero(), bet)
		}
	})

	t.Run("Big win with multiplier five", func(t *testing.T) {
		random := coremocks.NewMockRandomSource(t)
		random.EXPECT().
			Uniform(mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(2)) }),
				mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(10)) })).
			Return(decimal.NewFromInt(5)).Once()

		engine := NewEngine(random, newQuietLogger(t))
		payout, err := engine.CalculateWin(money(t, "10.00"), entity.BigWin, cfg)

		require.NoError(t, err)
		assert.Equal(t, "50.00", payout.String())
	})

	t.Run("Small win draws from one to max", func(t *testing.T) {
		random := coremocks.NewMockRandomSource(t)
		random.EXPECT().
			Uniform(mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(1)) }),
				mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(2)) })).
			Return(decimal.RequireFromString("1.5")).Once()

		engine := NewEngine(random, newQuietLogger(t))
		payout, err := engine.CalculateWin(money(t, "5.00"), entity.SmallWin, cfg)

		require.NoError(t, err)
		assert.Equal(t, "7.50", payout.String())
	})

	t.Run("Payout is truncated to cents", func(t *testing.T) {
		random := coremocks.NewMockRandomSource(t)
		random.EXPECT().Uniform(mock.Anything, mock.Anything).Return(decimal.RequireFromString("1.999999999")).Once()

		engine := NewEngine(random, newQuietLogger(t))
		payout, err := engine.CalculateWin(money(t, "3.00"), entity.SmallWin, cfg)

		require.NoError(t, err)
		assert.Equal(t, "5.99", payout.String())
	})

	t.Run("Big win at a fractional minimum rounds up to the first cent", func(t *testing.T) {
		tests := []struct {
			name     string
			bet      string
			min      string
			expected string
		}{
			{"Three decimal minimum", "1.00", "2.555", "2.56"},
			{"Odd cent bet", "1.01", "2.05", "2.08"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				fractional := cfg
				fractional.BigWinMinMultiplier = decimal.RequireFromString(tt.min)
				require.NoError(t, fractional.Validate())

				random := coremocks.NewMockRandomSource(t)
				random.EXPECT().Uniform(mock.Anything, mock.Anything).Return(fractional.BigWinMinMultiplier).Once()

				engine := NewEngine(random, newQuietLogger(t))
				payout, err := engine.CalculateWin(money(t, tt.bet), entity.BigWin, fractional)

				require.NoError(t, err)
				assert.Equal(t, tt.expected, payout.String())
			})
		}
	})

	t.Run("Range without a whole cent keeps the truncated payout", func(t *testing.T) {
		narrow := cfg
		narrow.BigWinMinMultiplier = decimal.RequireFromString("2.001")
		narrow.BigWinMaxMultiplier = decimal.RequireFromString("2.002")
		require.NoError(t, narrow.Validate())

		random := coremocks.NewMockRandomSource(t)
		random.EXPECT().Uniform(mock.Anything, mock.Anything).Return(narrow.BigWinMinMultiplier).Once()

		engine := NewEngine(random, newQuietLogger(t))
		payout, err := engine.CalculateWin(money(t, "1.00"), entity.BigWin, narrow)

		require.NoError(t, err)
		assert.Equal(t, "2.00", payout.String())
	})

	t.Run("Unknown result kind", func(t *testing.T) {
		random := coremocks.NewMockRandomSource(t)
		engine := NewEngine(random, newQuietLogger(t))

		_, err := engine.CalculateWin(money(t, "5.00"), entity.GameResult(42), cfg)

		assert.ErrorIs(t, err, errs.ErrInvalidResultKind)
	})
}

// sweepRandom walks Uniform across its interval, hitting both endpoints
type sweepRandom struct {
	step  int64
	steps int64
}

func (s *sweepRandom) Unit() decimal.Decimal {
	return decimal.Zero
}

func (s *sweepRandom) Uniform(min, max decimal.Decimal) decimal.Decimal {
	fraction := decimal.NewFromInt(s.step % (s.steps + 1)).Div(decimal.NewFromInt(s.steps))
	s.step++
	return min.Add(max.Sub(min).Mul(fraction))
}

func TestEngine_PayoutBounds(t *testing.T) {
	fractional := entity.DefaultGameConfiguration()
	fractional.SmallWinMaxMultiplier = decimal.RequireFromString("1.333")
	fractional.BigWinMinMultiplier = decimal.RequireFromString("2.555")
	fractional.BigWinMaxMultiplier = decimal.RequireFromString("7.777")
	require.NoError(t, fractional.Validate())

	configs := []struct {
		name string
		cfg  entity.GameConfiguration
	}{
		{"Default multipliers", entity.DefaultGameConfiguration()},
		{"Fractional multipliers", fractional},
	}

	for _, tc := range configs {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.cfg
			engine := NewEngine(&sweepRandom{steps: 37}, newQuietLogger(t))

			for cents := int64(100); cents <= 1000; cents += 7 {
				bet, err := entity.MoneyFromCents(cents)
				require.NoError(t, err)

				for i := 0; i < 38; i++ {
					small, err := engine.CalculateWin(bet, entity.SmallWin, cfg)
					require.NoError(t, err)
					assert.False(t, small.Decimal().LessThan(bet.Decimal()), bet.String())
					assert.False(t, small.Decimal().GreaterThan(bet.Decimal().Mul(cfg.SmallWinMaxMultiplier)), bet.String())

					big, err := engine.CalculateWin(bet, entity.BigWin, cfg)
					require.NoError(t, err)
					assert.False(t, big.Decimal().LessThan(bet.Decimal().Mul(cfg.BigWinMinMultiplier)), bet.String())
					assert.False(t, big.Decimal().GreaterThan(bet.Decimal().Mul(cfg.BigWinMaxMultiplier)), bet.String())
				}
			}
		})
	}
}
