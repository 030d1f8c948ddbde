// Package config provides configuration management using Viper.
// It loads configuration from environment variables, .env files, and config files.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerPort     = 8080
	defaultServerHost     = "0.0.0.0"
	defaultReadTimeout    = 30 * time.Second
	defaultWriteTimeout   = 30 * time.Second
	defaultDatabasePath   = "./data/cinestream.db"
	defaultLogLevel       = "info"
	defaultLogPretty      = false
	defaultAIModel        = "gemini-2.5-flash"
	defaultAITimeout      = 8 * time.Second
	defaultUploadDir      = "./data/uploads"
	defaultMaxUploadBytes = int64(2 << 30) // 2 GiB
	envPrefix             = "CINESTREAM"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	AI       AIConfig
	Media    MediaConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int
	Host         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Path string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Pretty bool
}

// AIConfig holds settings for the Gemini candidate source.
// An empty APIKey disables the AI source; search then degrades to local-only results.
type AIConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// MediaConfig holds upload storage configuration
type MediaConfig struct {
	UploadDir      string
	MaxUploadBytes int64
}

// Load reads configuration from .env file, config files, environment variables, and defaults
func Load() (*Config, error) {
	// .env files are optional in production and CI where env vars are set directly
	_ = godotenv.Load() // nolint:errcheck // .env file is optional

	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/cinestream")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", defaultServerPort)
	v.SetDefault("server.host", defaultServerHost)
	v.SetDefault("server.readtimeout", defaultReadTimeout)
	v.SetDefault("server.writetimeout", defaultWriteTimeout)

	v.SetDefault("database.path", defaultDatabasePath)

	v.SetDefault("logging.level", defaultLogLevel)
	v.SetDefault("logging.pretty", defaultLogPretty)

	v.SetDefault("ai.apikey", "")
	v.SetDefault("ai.model", defaultAIModel)
	v.SetDefault("ai.timeout", defaultAITimeout)

	v.SetDefault("media.uploaddir", defaultUploadDir)
	v.SetDefault("media.maxuploadbytes", defaultMaxUploadBytes)
}

// Validate checks that configuration values are valid
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d (must be between 1 and 65535)", c.Server.Port)
	}

	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("invalid read timeout: %v (must be > 0)", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("invalid write timeout: %v (must be > 0)", c.Server.WriteTimeout)
	}

	if c.Database.Path == "" {
		return errors.New("database path must not be empty")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.Logging.Level, strings.Join(validLevels, ", "))
	}

	if c.AI.Timeout <= 0 {
		return fmt.Errorf("invalid ai timeout: %v (must be > 0)", c.AI.Timeout)
	}
	if c.AI.APIKey != "" && c.AI.Model == "" {
		return errors.New("ai model must be set when an api key is configured")
	}

	if c.Media.MaxUploadBytes <= 0 {
		return fmt.Errorf("invalid max upload bytes: %d (must be > 0)", c.Media.MaxUploadBytes)
	}

	return nil
}

// contains checks if a string slice contains a specific value
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
