package config

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Config holds all configuration for the application
type Config struct {
	Environment string        `mapstructure:"environment"`
	Server      ServerConfig  `mapstructure:"server"`
	Logger      LoggerConfig  `mapstructure:"logger"`
	Game        GameConfig    `mapstructure:"game"`
	Session     SessionConfig `mapstructure:"session"`
}

// ServerConfig contains the local HTTP control surface settings
type ServerConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"readTimeout"`     // seconds
	WriteTimeout    time.Duration `mapstructure:"writeTimeout"`    // seconds
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"` // seconds
}

// Address returns host:port for the HTTP listener
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GameConfig holds the house rules as decimal strings
type GameConfig struct {
	MinimumBet            string `mapstructure:"minimumBet"`
	MaximumBet            string `mapstructure:"maximumBet"`
	LossProbability       string `mapstructure:"lossProbability"`
	SmallWinProbability   string `mapstructure:"smallWinProbability"`
	BigWinProbability     string `mapstructure:"bigWinProbability"`
	SmallWinMaxMultiplier string `mapstructure:"smallWinMaxMultiplier"`
	BigWinMinMultiplier   string `mapstructure:"bigWinMinMultiplier"`
	BigWinMaxMultiplier   string `mapstructure:"bigWinMaxMultiplier"`
}

// SessionConfig contains action sequencing settings
type SessionConfig struct {
	QueueSize int `mapstructure:"queueSize"`
}

// GameConfiguration converts the game section into the domain entity.
// The result still has to pass entity.GameConfiguration.Validate.
func (c *Config) GameConfiguration() (entity.GameConfiguration, error) {
	var game entity.GameConfiguration
	fields := []struct {
		name   string
		raw    string
		target *decimal.Decimal
	}{
		{"minimumBet", c.Game.MinimumBet, &game.MinimumBet},
		{"maximumBet", c.Game.MaximumBet, &game.MaximumBet},
		{"lossProbability", c.Game.LossProbability, &game.LossProbability},
		{"smallWinProbability", c.Game.SmallWinProbability, &game.SmallWinProbability},
		{"bigWinProbability", c.Game.BigWinProbability, &game.BigWinProbability},
		{"smallWinMaxMultiplier", c.Game.SmallWinMaxMultiplier, &game.SmallWinMaxMultiplier},
		{"bigWinMinMultiplier", c.Game.BigWinMinMultiplier, &game.BigWinMinMultiplier},
		{"bigWinMaxMultiplier", c.Game.BigWinMaxMultiplier, &game.BigWinMaxMultiplier},
	}

	for _, field := range fields {
		value, err := decimal.NewFromString(field.raw)
		if err != nil {
			return entity.GameConfiguration{}, fmt.Errorf("%w: game.%s %q is not a decimal",
				errs.ErrInvalidConfiguration, field.name, field.raw)
		}
		*field.target = value
	}

	return game, nil
}
