package usecase

import (
	"context"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	"github.com/google/uuid"
)

// PlayerBalanceResponse represents the standardized balance response
type PlayerBalanceResponse struct {
	PlayerID uuid.UUID `json:"playerId"`
	Balance  string    `json:"balance"` // Formatted with 2 decimal places
}

// PlayerUseCase defines methods for player-related operations
type PlayerUseCase interface {
	// CreatePlayer registers a new player with an empty wallet
	CreatePlayer(ctx context.Context) (*entity.Player, error)

	// GetPlayer retrieves a registered player
	GetPlayer(ctx context.Context, playerID uuid.UUID) (*entity.Player, error)

	// GetFormattedBalance retrieves a player's balance formatted for display
	GetFormattedBalance(ctx context.Context, playerID uuid.UUID) (*PlayerBalanceResponse, error)

	// GetTransactions returns the wallet history, optionally filtered by kind.
	// An empty kind returns every transaction.
	GetTransactions(ctx context.Context, playerID uuid.UUID, kind entity.TransactionKind) ([]entity.Transaction, error)

	// GetSummary returns the aggregated wallet totals
	GetSummary(ctx context.Context, playerID uuid.UUID) (*entity.WalletSummary, error)
}
