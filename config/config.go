package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds all configuration for the relay service
type Config struct {
	Telegram TelegramConfig
	Resolver ResolverConfig
	Download DownloadConfig
	Logging  LoggingConfig
	Service  ServiceConfig
}

// TelegramConfig holds Telegram Bot API configuration
type TelegramConfig struct {
	Token   string
	Timeout time.Duration
}

// ResolverConfig holds media resolver API configuration
type ResolverConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// DownloadConfig holds fallback download configuration
type DownloadConfig struct {
	TempDir string
	Timeout time.Duration
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// ServiceConfig holds service configuration
type ServiceConfig struct {
	Name string
	Port string
}

// Result provides config parts for fx dependency injection using fx.Out pattern
type Result struct {
	fx.Out

	Config   *Config
	Telegram *TelegramConfig
	Resolver *ResolverConfig
	Download *DownloadConfig
	Logging  *LoggingConfig
	Service  *ServiceConfig
}

// Out loads configuration and returns Result for fx injection
func Out() (Result, error) {
	cfg, err := Load()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Config:   cfg,
		Telegram: &cfg.Telegram,
		Resolver: &cfg.Resolver,
		Download: &cfg.Download,
		Logging:  &cfg.Logging,
		Service:  &cfg.Service,
	}, nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := &Config{
		Telegram: TelegramConfig{
			Token:   getEnv("TELEGRAM_TOKEN", ""),
			Timeout: getDurationEnv("TELEGRAM_TIMEOUT", 60*time.Second),
		},
		Resolver: ResolverConfig{
			BaseURL: getEnv("RESOLVER_BASE_URL", "https://prod.api.market/api/v1/beatom/media-downloader/v1"),
			APIKey:  getEnv("API_MARKET_KEY", ""),
			Timeout: getDurationEnv("RESOLVER_TIMEOUT", 30*time.Second),
		},
		Download: DownloadConfig{
			TempDir: getEnv("TEMP_DIR", "/tmp"),
			Timeout: getDurationEnv("DOWNLOAD_TIMEOUT", 300*time.Second),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Service: ServiceConfig{
			Name: getEnv("SERVICE_NAME", "ytdl-relay"),
			Port: getEnv("SERVICE_PORT", "8080"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is required")
	}

	if c.Resolver.APIKey == "" {
		return fmt.Errorf("API_MARKET_KEY is required")
	}

	if c.Resolver.BaseURL == "" {
		return fmt.Errorf("RESOLVER_BASE_URL is required")
	}

	return nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getDurationEnv gets a duration environment variable with default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
