package dto

// BalanceResponse represents the API response for a player's balance
type BalanceResponse struct {
	PlayerID string `json:"playerId"`
	Balance  string `json:"balance"`
}
