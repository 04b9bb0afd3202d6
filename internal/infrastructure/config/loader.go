package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override, e.g. CASINO_SERVER_PORT
const EnvPrefix = "CASINO"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment.
// A missing config file is not an error; defaults and environment overrides still apply.
func LoadConfig() (*Config, error) {
	// .env is optional, real environment variables win over it
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Set environment variables to override config
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return decode(v, env)
}

// LoadConfigFromFile loads configuration from an explicit YAML file
func LoadConfigFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return decode(v, v.GetString("environment"))
}

func decode(v *viper.Viper, env string) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if env != "" {
		config.Environment = env
	}
	if config.Session.QueueSize <= 0 {
		return nil, fmt.Errorf("session.queueSize must be positive, got %d", config.Session.QueueSize)
	}

	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in the search paths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets the house rules and local-only server settings
func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", Development)

	v.SetDefault("server.enabled", false)
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)     // seconds
	v.SetDefault("server.writeTimeout", 15)    // seconds
	v.SetDefault("server.shutdownTimeout", 10) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("game.minimumBet", "1")
	v.SetDefault("game.maximumBet", "10")
	v.SetDefault("game.lossProbability", "0.5")
	v.SetDefault("game.smallWinProbability", "0.4")
	v.SetDefault("game.bigWinProbability", "0.1")
	v.SetDefault("game.smallWinMaxMultiplier", "2")
	v.SetDefault("game.bigWinMinMultiplier", "2")
	v.SetDefault("game.bigWinMaxMultiplier", "10")

	v.SetDefault("session.queueSize", 100)
}

// getEnvironment determines the environment from CASINO_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processDurations converts raw second counts to durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = toSeconds(config.Server.ReadTimeout)
	config.Server.WriteTimeout = toSeconds(config.Server.WriteTimeout)
	config.Server.ShutdownTimeout = toSeconds(config.Server.ShutdownTimeout)
}

// toSeconds treats bare numbers as seconds and leaves values like "5s" untouched
func toSeconds(d time.Duration) time.Duration {
	if d > 0 && d < time.Second {
		return d * time.Second
	}
	return d
}
