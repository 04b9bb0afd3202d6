package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/usecase/action"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/usecase/betting"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/usecase/outcome"
	playerUseCase "github.com/amirhossein-jamali/casino-wallet/internal/domain/usecase/player"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/usecase/validation"

	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/console"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/random"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// options are the command line overrides of the loaded configuration
type options struct {
	configFile string
	http       bool
	logLevel   string
}

func main() {
	var opts options
	exitCode := 0

	rootCmd := &cobra.Command{
		Use:   "casino",
		Short: "Single-player casino wallet and betting session",
		Long: `Starts an interactive session for one player.
Actions are read from standard input (deposit <amount>, withdraw <amount>,
bet <amount>, exit). The same session can be exposed over a local HTTP API.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = run(cmd, opts)
			return nil
		},
	}
	rootCmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "Path to a YAML config file (default: configs/<CASINO_ENV>.yaml)")
	rootCmd.Flags().BoolVar(&opts.http, "http", false, "Expose the session over the local HTTP API")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Override logger.level (debug, info, warn, error)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}

func loadConfig(opts options) (*config.Config, error) {
	if opts.configFile != "" {
		return config.LoadConfigFromFile(opts.configFile)
	}
	return config.LoadConfig()
}

func run(cmd *cobra.Command, opts options) int {
	bootLogger := logger.NewDefaultLogger()
	defer func() { _ = bootLogger.Flush() }()

	cfg, err := loadConfig(opts)
	if err != nil {
		bootLogger.Error("Failed to load configuration", map[string]any{
			"error": err.Error(),
		})
		return 1
	}
	if cmd.Flags().Changed("http") {
		cfg.Server.Enabled = opts.http
	}
	if opts.logLevel != "" {
		cfg.Logger.Level = opts.logLevel
	}

	if err := validateConfig(cfg); err != nil {
		bootLogger.Error("Configuration validation failed", map[string]any{
			"error": err.Error(),
		})
		return 1
	}

	appLogger := logger.NewZapLogger(core.ParseLogLevel(cfg.Logger.Level), cfg.Logger.Format)
	defer func() { _ = appLogger.Flush() }()

	// Game rules are checked once; every engine receives the same validated value
	game, err := cfg.GameConfiguration()
	if err == nil {
		err = game.Validate()
	}
	if err != nil {
		appLogger.Error("Invalid game configuration", map[string]any{
			"error": err.Error(),
		})
		return 1
	}

	tp := timeProvider.NewRealTimeProvider()

	playerRepo := repository.NewPlayerRepository(appLogger)
	validator := validation.NewValidator(game)
	outcomeEngine := outcome.NewEngine(random.NewCryptoSource(), appLogger)
	bettingEngine := betting.NewEngine(validator, outcomeEngine, appLogger)
	actionService := action.NewService(playerRepo, validator, bettingEngine, appLogger)
	sequencer := action.NewSequencer(appLogger, cfg.Session.QueueSize, actionService.Execute)
	players := playerUseCase.NewPlayerUseCase(playerRepo, tp, appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	player, err := players.CreatePlayer(ctx)
	if err != nil {
		appLogger.Error("Failed to create session player", map[string]any{
			"error": err.Error(),
		})
		return 1
	}

	fatal := make(chan error, 1)
	reportFatal := func(err error) {
		select {
		case fatal <- err:
		default:
		}
	}

	var server *http.Server
	if cfg.Server.Enabled {
		server = startServer(cfg, appLogger, tp, players, sequencer, reportFatal)
	}

	consoleDone := make(chan error, 1)
	go func() {
		loop := console.NewLoop(cmd.InOrStdin(), cmd.OutOrStdout(), sequencer, player.ID, appLogger)
		consoleDone <- loop.Run(ctx)
	}()

	exitCode := 0
	select {
	case err := <-consoleDone:
		if err != nil {
			appLogger.Error("Session terminated", map[string]any{
				"player_id": player.ID.String(),
				"error":     err.Error(),
			})
			exitCode = 1
		}
	case err := <-fatal:
		appLogger.Error("Session terminated", map[string]any{
			"player_id": player.ID.String(),
			"error":     err.Error(),
		})
		exitCode = 1
	case <-ctx.Done():
		appLogger.Info("Interrupt received", nil)
	}

	appLogger.Info("Shutting down...", nil)

	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Server forced to shutdown", map[string]any{
				"error": err.Error(),
			})
		}
	}

	sequencer.Shutdown()

	appLogger.Info("Session closed", map[string]any{
		"player_id": player.ID.String(),
		"balance":   player.Balance().String(),
	})
	return exitCode
}

// startServer exposes the session over the local HTTP control surface
func startServer(
	cfg *config.Config,
	appLogger core.Logger,
	tp core.TimeProvider,
	players usecase.PlayerUseCase,
	sequencer *action.Sequencer,
	onFatal func(error),
) *http.Server {
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp)
	routes.SetupRoutes(
		router,
		handler.NewPlayerHandler(players, appLogger),
		handler.NewActionHandler(sequencer, appLogger, onFatal),
	)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"address": cfg.Server.Address(),
			"env":     cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			onFatal(fmt.Errorf("%w: http server: %v", errs.ErrInternal, err))
		}
	}()

	return server
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Enabled {
		if cfg.Server.Port == 0 {
			missingConfigs = append(missingConfigs, "server.port")
		}
		if cfg.Server.ReadTimeout == 0 {
			missingConfigs = append(missingConfigs, "server.readTimeout")
		}
		if cfg.Server.WriteTimeout == 0 {
			missingConfigs = append(missingConfigs, "server.writeTimeout")
		}
		if cfg.Server.ShutdownTimeout == 0 {
			missingConfigs = append(missingConfigs, "server.shutdownTimeout")
		}
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	switch cfg.Environment {
	case config.Development, config.Production, config.Test:
		return nil
	default:
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}
}
