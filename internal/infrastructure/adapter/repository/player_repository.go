package repository

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// PlayerRepository keeps the session's players in memory
type PlayerRepository struct {
	mu      sync.RWMutex
	players map[uuid.UUID]*entity.Player
	order   []uuid.UUID
	logger  coreport.Logger
}

var _ persistence.PlayerRepository = (*PlayerRepository)(nil)

// NewPlayerRepository creates an empty in-memory player repository
func NewPlayerRepository(logger coreport.Logger) *PlayerRepository {
	return &PlayerRepository{
		players: make(map[uuid.UUID]*entity.Player),
		logger:  logger,
	}
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	player, exists := r.players[id]
	if !exists {
		r.logger.Warn("Player not found", map[string]any{
			"player_id": id.String(),
		})
		return nil, errs.ErrPlayerNotFound
	}
	return player, nil
}

// Create registers a new player
func (r *PlayerRepository) Create(ctx context.Context, player *entity.Player) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if player == nil || player.ID == uuid.Nil {
		return errs.ErrInvalidPlayerID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[player.ID]; exists {
		r.logger.Warn("Duplicate player registration", map[string]any{
			"player_id": player.ID.String(),
		})
		return errs.ErrDuplicatePlayer
	}

	r.players[player.ID] = player
	r.order = append(r.order, player.ID)

	r.logger.Debug("Player stored", map[string]any{
		"player_id": player.ID.String(),
		"players":   len(r.order),
	})
	return nil
}

// List returns every player in registration order
func (r *PlayerRepository) List(ctx context.Context) ([]*entity.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(r.order, func(id uuid.UUID, _ int) *entity.Player {
		return r.players[id]
	}), nil
}
