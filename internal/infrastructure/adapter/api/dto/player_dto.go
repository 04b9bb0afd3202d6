package dto

import "time"

// PlayerResponse represents a newly registered player
type PlayerResponse struct {
	PlayerID  string    `json:"playerId"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
}
