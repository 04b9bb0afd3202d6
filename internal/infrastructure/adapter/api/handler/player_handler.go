package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// PlayerHandler handles player-related HTTP requests
type PlayerHandler struct {
	playerUseCase usecase.PlayerUseCase
	logger        coreport.Logger
}

// NewPlayerHandler creates a new player handler instance
func NewPlayerHandler(
	playerUseCase usecase.PlayerUseCase,
	logger coreport.Logger,
) *PlayerHandler {
	return &PlayerHandler{
		playerUseCase: playerUseCase,
		logger:        logger,
	}
}

// CreatePlayer handles the POST /players endpoint
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	player, err := h.playerUseCase.CreatePlayer(c.Request.Context())
	if err != nil {
		h.logger.Error("Error creating player", map[string]any{
			"error": err.Error(),
		})
		c.JSON(statusFor(err), dto.ErrorResponse{
			Code:    errs.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, dto.PlayerResponse{
		PlayerID:  player.ID.String(),
		Balance:   player.Balance().String(),
		CreatedAt: player.CreatedAt,
	})
}

// GetBalance handles the GET /players/:playerId/balance endpoint
func (h *PlayerHandler) GetBalance(c *gin.Context) {
	playerID, ok := parsePlayerID(c)
	if !ok {
		return
	}

	balance, err := h.playerUseCase.GetFormattedBalance(c.Request.Context(), playerID)
	if err != nil {
		h.respondError(c, playerID, "Error getting player balance", err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		PlayerID: balance.PlayerID.String(),
		Balance:  balance.Balance,
	})
}

// GetTransactions handles the GET /players/:playerId/transactions endpoint.
// The optional kind query parameter filters by transaction kind.
func (h *PlayerHandler) GetTransactions(c *gin.Context) {
	playerID, ok := parsePlayerID(c)
	if !ok {
		return
	}

	kind := entity.TransactionKind(c.Query("kind"))
	history, err := h.playerUseCase.GetTransactions(c.Request.Context(), playerID, kind)
	if err != nil {
		h.respondError(c, playerID, "Error getting transactions", err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionListResponse{
		PlayerID: playerID.String(),
		Transactions: lo.Map(history, func(t entity.Transaction, _ int) dto.TransactionResponse {
			return dto.TransactionResponse{
				TransactionID: t.ID().String(),
				Kind:          string(t.Kind()),
				Amount:        t.Amount().String(),
				BalanceAfter:  t.BalanceAfter().String(),
				Timestamp:     t.Timestamp(),
			}
		}),
	})
}

// GetSummary handles the GET /players/:playerId/summary endpoint
func (h *PlayerHandler) GetSummary(c *gin.Context) {
	playerID, ok := parsePlayerID(c)
	if !ok {
		return
	}

	summary, err := h.playerUseCase.GetSummary(c.Request.Context(), playerID)
	if err != nil {
		h.respondError(c, playerID, "Error getting wallet summary", err)
		return
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{
		PlayerID:     playerID.String(),
		Balance:      summary.Balance.String(),
		Deposited:    summary.Deposited.String(),
		Withdrawn:    summary.Withdrawn.String(),
		Wagered:      summary.Wagered.String(),
		Won:          summary.Won.String(),
		Bets:         summary.Bets,
		WinningBets:  summary.WinningBets,
		Transactions: summary.Transactions,
	})
}

func (h *PlayerHandler) respondError(c *gin.Context, playerID uuid.UUID, logMessage string, err error) {
	status := statusFor(err)
	message := "Internal server error"
	switch {
	case errs.IsPlayerNotFoundError(err):
		message = "Player not found"
	case status == http.StatusBadRequest:
		message = err.Error()
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error(logMessage, map[string]any{
			"player_id": playerID.String(),
			"error":     err.Error(),
		})
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: message,
	})
}

// parsePlayerID extracts the player ID path parameter, writing a 400 response when malformed
func parsePlayerID(c *gin.Context) (uuid.UUID, bool) {
	playerID, err := entity.ParsePlayerID(c.Param("playerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errs.ErrorCode(errs.ErrInvalidPlayerID),
			Message: "Invalid player ID format",
		})
		return uuid.Nil, false
	}
	return playerID, true
}
