package dto

import "time"

// TransactionResponse represents one wallet history entry
type TransactionResponse struct {
	TransactionID string    `json:"transactionId"`
	Kind          string    `json:"kind"`
	Amount        string    `json:"amount"`
	BalanceAfter  string    `json:"balanceAfter"`
	Timestamp     time.Time `json:"timestamp"`
}

// TransactionListResponse represents a player's wallet history
type TransactionListResponse struct {
	PlayerID     string                `json:"playerId"`
	Transactions []TransactionResponse `json:"transactions"`
}

// SummaryResponse represents the aggregated wallet totals
type SummaryResponse struct {
	PlayerID     string `json:"playerId"`
	Balance      string `json:"balance"`
	Deposited    string `json:"deposited"`
	Withdrawn    string `json:"withdrawn"`
	Wagered      string `json:"wagered"`
	Won          string `json:"won"`
	Bets         int    `json:"bets"`
	WinningBets  int    `json:"winningBets"`
	Transactions int    `json:"transactions"`
}
