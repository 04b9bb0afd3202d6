package player

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// PlayerUseCase implements the player business logic
type PlayerUseCase struct {
	playerRepo   persistence.PlayerRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPlayerUseCase creates a new player use case instance
func NewPlayerUseCase(
	playerRepo persistence.PlayerRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.PlayerUseCase {
	return &PlayerUseCase{
		playerRepo:   playerRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreatePlayer registers a new player with a zero balance
func (u *PlayerUseCase) CreatePlayer(ctx context.Context) (*entity.Player, error) {
	player := entity.NewPlayer(u.timeProvider)

	if err := u.playerRepo.Create(ctx, player); err != nil {
		u.logger.Error("Failed to create player", map[string]any{
			"player_id": player.ID.String(),
			"error":     err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Player created", map[string]any{
		"player_id": player.ID.String(),
	})
	return player, nil
}

// GetPlayer retrieves a registered player
func (u *PlayerUseCase) GetPlayer(ctx context.Context, playerID uuid.UUID) (*entity.Player, error) {
	if playerID == uuid.Nil {
		return nil, errs.ErrInvalidPlayerID
	}

	player, err := u.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		u.logger.Error("Failed to get player", map[string]any{
			"player_id": playerID.String(),
			"error":     err.Error(),
		})
		return nil, err
	}
	return player, nil
}

// GetFormattedBalance retrieves a player's balance and returns it in the standardized format
func (u *PlayerUseCase) GetFormattedBalance(ctx context.Context, playerID uuid.UUID) (*usecase.PlayerBalanceResponse, error) {
	player, err := u.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	response := &usecase.PlayerBalanceResponse{
		PlayerID: player.ID,
		Balance:  player.Balance().String(),
	}

	u.logger.Debug("Player balance retrieved", map[string]any{
		"player_id": playerID.String(),
		"balance":   response.Balance,
	})
	return response, nil
}

// GetTransactions returns the wallet history, optionally filtered by kind
func (u *PlayerUseCase) GetTransactions(
	ctx context.Context,
	playerID uuid.UUID,
	kind entity.TransactionKind,
) ([]entity.Transaction, error) {
	if kind != "" && !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction kind %q", errs.ErrInvalidRequest, kind)
	}

	player, err := u.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if kind == "" {
		return player.Wallet().Transactions(), nil
	}
	return player.Wallet().TransactionsByKind(kind), nil
}

// GetSummary returns the aggregated wallet totals
func (u *PlayerUseCase) GetSummary(ctx context.Context, playerID uuid.UUID) (*entity.WalletSummary, error) {
	player, err := u.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	summary := player.Wallet().Summary()
	return &summary, nil
}
