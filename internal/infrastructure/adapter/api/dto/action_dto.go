package dto

// ActionRequest represents the API request for submitting an action
type ActionRequest struct {
	Operation string `json:"operation" binding:"required"`
	Amount    string `json:"amount"`
}

// ActionResponse represents the API response for a processed action
type ActionResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Balance    string `json:"balance,omitempty"`
	GameResult string `json:"gameResult,omitempty"`
	Payout     string `json:"payout,omitempty"`
	ErrorCode  int    `json:"errorCode,omitempty"`
	Exit       bool   `json:"exit,omitempty"`
}
