package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"items-backend/internal/infrastructure/database"
)

// Config holds the application configuration.
// Populated from environment variables (optionally loaded from .env).
type Config struct {
	App      AppConfig
	Database *database.DBConfig
	Redis    RedisConfig
	Web      WebConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Password string
	DB       int
	TTL      time.Duration // item cache TTL
}

// WebConfig configures the browser UI server (cmd/web)
type WebConfig struct {
	Port       string
	APIBaseURL string
	APITimeout time.Duration
}

// Load reads config from environment variables
func Load() (*Config, error) {
	dbConfig, err := LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	env := &envReader{}
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Items API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "5000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Database: dbConfig,
		Redis: RedisConfig{
			Enabled:  env.bool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       env.int("REDIS_DB", 0),
			TTL:      env.duration("CACHE_TTL", 5*time.Minute),
		},
		Web: WebConfig{
			Port:       getEnv("WEB_PORT", "3000"),
			APIBaseURL: strings.TrimRight(getEnv("WEB_API_BASE_URL", "http://localhost:5000"), "/"),
			APITimeout: env.duration("WEB_API_TIMEOUT", 10*time.Second),
		},
	}

	if env.err != nil {
		return nil, env.err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks critical settings
func (c *Config) Validate() error {
	if c.App.Port == "" {
		return fmt.Errorf("APP_PORT must not be empty")
	}
	if c.Web.APIBaseURL == "" {
		return fmt.Errorf("WEB_API_BASE_URL must not be empty")
	}

	if c.App.Environment == "production" {
		if c.Database.Driver != database.DriverSQLite && c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.Redis.Enabled && c.Redis.TTL <= 0 {
			return fmt.Errorf("CACHE_TTL must be positive when REDIS_ENABLED is set")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
