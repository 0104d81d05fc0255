// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration shared by travelctl and the
// stub API.
type Config struct {
	API       APIConfig
	Storage   StorageConfig
	Directory DirectoryConfig
	Stub      StubConfig
	Logging   LoggingConfig
	App       AppConfig
}

// APIConfig holds REST client settings.
type APIConfig struct {
	BaseURL        string        `env:"API_BASE_URL" envDefault:"http://localhost:8080/api"`
	Timeout        time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	RateLimitRPS   float64       `env:"API_RATE_LIMIT_RPS" envDefault:"0"`
	RateLimitBurst int           `env:"API_RATE_LIMIT_BURST" envDefault:"5"`
	UserAgent      string        `env:"API_USER_AGENT" envDefault:"travelctl"`
}

// StorageConfig selects where client state is persisted between runs.
type StorageConfig struct {
	Backend string `env:"STORAGE_BACKEND" envDefault:"file"`
	Dir     string `env:"STORAGE_DIR" envDefault:".travelctl"`
	Redis   RedisConfig
}

// RedisConfig holds the redis backend connection settings.
type RedisConfig struct {
	Addr      string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password  string `env:"REDIS_PASSWORD"`
	DB        int    `env:"REDIS_DB" envDefault:"0"`
	KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"travelctl:"`
}

// DirectoryConfig holds admin listing and store behaviour settings.
type DirectoryConfig struct {
	PageSize           int  `env:"DIRECTORY_PAGE_SIZE" envDefault:"20"`
	StaleResponseGuard bool `env:"STALE_RESPONSE_GUARD" envDefault:"false"`
}

// StubConfig holds the stub API server settings.
type StubConfig struct {
	Port         int           `env:"STUB_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"STUB_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"STUB_WRITE_TIMEOUT" envDefault:"10s"`
	Seed         bool          `env:"STUB_SEED" envDefault:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// The given .env files (default ".env") are loaded first when present;
// variables already set in the environment win.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad(envFiles ...string) *Config {
	cfg, err := Load(envFiles...)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func validate(cfg *Config) error {
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute http(s) URL, got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive")
	}
	if cfg.API.RateLimitRPS < 0 {
		return fmt.Errorf("API_RATE_LIMIT_RPS must not be negative")
	}
	if cfg.API.RateLimitRPS > 0 && cfg.API.RateLimitBurst < 1 {
		return fmt.Errorf("API_RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled")
	}

	switch cfg.Storage.Backend {
	case "memory":
	case "file":
		if strings.TrimSpace(cfg.Storage.Dir) == "" {
			return fmt.Errorf("STORAGE_DIR is required for the file backend")
		}
	case "redis":
		if strings.TrimSpace(cfg.Storage.Redis.Addr) == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis backend")
		}
		if cfg.Storage.Redis.DB < 0 {
			return fmt.Errorf("REDIS_DB must not be negative")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be one of: memory, file, redis; got %q", cfg.Storage.Backend)
	}

	if cfg.Directory.PageSize < 1 || cfg.Directory.PageSize > 100 {
		return fmt.Errorf("DIRECTORY_PAGE_SIZE must be between 1 and 100, got %d", cfg.Directory.PageSize)
	}

	if cfg.Stub.Port < 1 || cfg.Stub.Port > 65535 {
		return fmt.Errorf("STUB_PORT must be between 1 and 65535, got %d", cfg.Stub.Port)
	}
	if cfg.Stub.ReadTimeout <= 0 {
		return fmt.Errorf("STUB_READ_TIMEOUT must be positive")
	}
	if cfg.Stub.WriteTimeout <= 0 {
		return fmt.Errorf("STUB_WRITE_TIMEOUT must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
