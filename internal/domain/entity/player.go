package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/google/uuid"
)

// Player is the session's participant; it owns exactly one wallet
type Player struct {
	ID        uuid.UUID // Unique identifier for the player
	CreatedAt time.Time // When the player joined the session
	wallet    *Wallet
}

// NewPlayer creates a player with a fresh identifier and an empty wallet
func NewPlayer(timeProvider coreport.TimeProvider) *Player {
	player, _ := NewPlayerWithID(uuid.New(), timeProvider)
	return player
}

// NewPlayerWithID creates a player with the given identifier and an empty wallet
func NewPlayerWithID(id uuid.UUID, timeProvider coreport.TimeProvider) (*Player, error) {
	if id == uuid.Nil {
		return nil, errs.ErrInvalidPlayerID
	}

	return &Player{
		ID:        id,
		CreatedAt: timeProvider.Now(),
		wallet:    NewWallet(timeProvider),
	}, nil
}

// Wallet returns the player's wallet
func (p *Player) Wallet() *Wallet {
	return p.wallet
}

// Balance returns the player's current balance
func (p *Player) Balance() Money {
	return p.wallet.Balance()
}

// ParsePlayerID parses an external player reference
func ParsePlayerID(ref string) (uuid.UUID, error) {
	id, err := uuid.Parse(ref)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errs.ErrInvalidPlayerID
	}
	return id, nil
}
