package routes

import (
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	playerHandler *handler.PlayerHandler,
	actionHandler *handler.ActionHandler,
) {
	playerRoutes := router.Group("/players")
	{
		// POST /players
		playerRoutes.POST("", playerHandler.CreatePlayer)

		// GET /players/:playerId/balance
		playerRoutes.GET("/:playerId/balance", playerHandler.GetBalance)

		// GET /players/:playerId/transactions?kind=
		playerRoutes.GET("/:playerId/transactions", playerHandler.GetTransactions)

		// GET /players/:playerId/summary
		playerRoutes.GET("/:playerId/summary", playerHandler.GetSummary)

		// POST /players/:playerId/actions
		playerRoutes.POST("/:playerId/actions", actionHandler.SubmitAction)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
}
