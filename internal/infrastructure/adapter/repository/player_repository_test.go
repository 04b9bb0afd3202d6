package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/casino-wallet/mocks/port/core"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) (*PlayerRepository, *core.MockTimeProvider) {
	mockLogger := core.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	mockTime := core.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	return NewPlayerRepository(mockLogger), mockTime
}

func TestPlayerRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo, mockTime := setupRepository(t)
	player := entity.NewPlayer(mockTime)

	require.NoError(t, repo.Create(ctx, player))

	found, err := repo.GetByID(ctx, player.ID)

	require.NoError(t, err)
	assert.Same(t, player, found)
}

func TestPlayerRepository_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown player", func(t *testing.T) {
		repo, _ := setupRepository(t)

		player, err := repo.GetByID(ctx, uuid.New())

		assert.ErrorIs(t, err, errs.ErrPlayerNotFound)
		assert.Nil(t, player)
	})

	t.Run("Duplicate player", func(t *testing.T) {
		repo, mockTime := setupRepository(t)
		player := entity.NewPlayer(mockTime)
		require.NoError(t, repo.Create(ctx, player))

		assert.ErrorIs(t, repo.Create(ctx, player), errs.ErrDuplicatePlayer)
	})

	t.Run("Nil player", func(t *testing.T) {
		repo, _ := setupRepository(t)

		assert.ErrorIs(t, repo.Create(ctx, nil), errs.ErrInvalidPlayerID)
	})

	t.Run("Canceled context", func(t *testing.T) {
		repo, mockTime := setupRepository(t)
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, repo.Create(canceled, entity.NewPlayer(mockTime)), context.Canceled)
		_, err := repo.GetByID(canceled, uuid.New())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPlayerRepository_List(t *testing.T) {
	ctx := context.Background()
	repo, mockTime := setupRepository(t)

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	first := entity.NewPlayer(mockTime)
	second := entity.NewPlayer(mockTime)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	players, err := repo.List(ctx)

	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, first.ID, players[0].ID)
	assert.Equal(t, second.ID, players[1].ID)
}

func TestPlayerRepository_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo, mockTime := setupRepository(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Create(ctx, entity.NewPlayer(mockTime)))
		}()
	}
	wg.Wait()

	players, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, players, 50)
}
