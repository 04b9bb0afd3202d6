package persistence

import (
	"context"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	"github.com/google/uuid"
)

// PlayerRepository keeps the players of the running session.
// Players live for the session lifetime; there is no delete.
type PlayerRepository interface {
	// GetByID retrieves a player by ID
	//
	// Possible errors:
	// - ErrPlayerNotFound: If player with specified ID doesn't exist
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Player, error)

	// Create registers a new player
	//
	// Possible errors:
	// - ErrDuplicatePlayer: If a player with the same ID already exists
	// - ErrInvalidPlayerID: If the player or its ID is empty
	Create(ctx context.Context, player *entity.Player) error

	// List returns every player in registration order
	List(ctx context.Context) ([]*entity.Player, error)
}
