package handler

import (
	"net/http"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ActionHandler handles action-related HTTP requests
type ActionHandler struct {
	actionUseCase usecase.ActionUseCase
	logger        coreport.Logger
	onFatal       func(error)
}

// NewActionHandler creates a new action handler instance.
// onFatal is called when an action reports an error the session can not recover from.
func NewActionHandler(
	actionUseCase usecase.ActionUseCase,
	logger coreport.Logger,
	onFatal func(error),
) *ActionHandler {
	return &ActionHandler{
		actionUseCase: actionUseCase,
		logger:        logger,
		onFatal:       onFatal,
	}
}

// SubmitAction handles the POST /players/:playerId/actions endpoint
func (h *ActionHandler) SubmitAction(c *gin.Context) {
	playerID, ok := parsePlayerID(c)
	if !ok {
		return
	}

	var req dto.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid action request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errs.ErrorCode(errs.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	operation, err := usecase.ParseOperation(req.Operation)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errs.ErrorCode(err),
			Message: "Invalid command.",
		})
		return
	}

	result, err := h.actionUseCase.Execute(c.Request.Context(), usecase.ActionRequest{
		Operation: operation,
		Amount:    req.Amount,
		PlayerID:  playerID,
	})
	if err != nil {
		h.logger.Error("Action failed", map[string]any{
			"player_id": playerID.String(),
			"operation": string(operation),
			"error":     err.Error(),
		})
		if errs.IsFatal(err) && h.onFatal != nil {
			h.onFatal(err)
		}
		c.JSON(statusFor(err), dto.ErrorResponse{
			Code:    errs.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	status := http.StatusOK
	if !result.Success {
		status = statusForCode(result.ErrorCode)
	}
	c.JSON(status, toActionResponse(result))
}

func toActionResponse(result *usecase.ActionResult) dto.ActionResponse {
	response := dto.ActionResponse{
		Success:   result.Success,
		Message:   result.Message,
		ErrorCode: result.ErrorCode,
		Exit:      result.Exit,
	}
	if result.NewBalance != nil {
		response.Balance = result.NewBalance.String()
	}
	if result.GameResult != nil {
		response.GameResult = result.GameResult.String()
	}
	if result.Payout != nil {
		response.Payout = result.Payout.String()
	}
	return response
}
