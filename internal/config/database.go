package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"items-backend/internal/infrastructure/database"
)

// LoadDatabaseConfig reads the store settings from environment variables.
// Defaults depend on DB_DRIVER: sqlite needs only DB_PATH, the network
// engines get their well-known port and a 25 connection pool.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	driver := database.Driver(strings.ToLower(getEnv("DB_DRIVER", string(database.DriverSQLite))))
	if !driver.Valid() {
		return nil, fmt.Errorf("invalid DB_DRIVER: %q (expected sqlite, postgres or mysql)", driver)
	}

	env := &envReader{}
	cfg := &database.DBConfig{
		Driver: driver,
		Path:   getEnv("DB_PATH", "./database.db"),

		Host:     getEnv("DB_HOST", "localhost"),
		Port:     env.int("DB_PORT", driver.DefaultPort()),
		Username: getEnv("DB_USER", "items"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "items"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),

		MaxConns:          int32(env.int("DB_MAX_CONNS", driver.DefaultMaxConns())),
		MinConns:          int32(env.int("DB_MIN_CONNS", 1)),
		MaxConnLifetime:   env.duration("DB_MAX_CONN_LIFETIME", 5*time.Minute),
		MaxConnIdleTime:   env.duration("DB_MAX_CONN_IDLE_TIME", time.Minute),
		HealthCheckPeriod: env.duration("DB_HEALTH_CHECK_PERIOD", time.Minute),

		MaxRetries:     env.int("DB_MAX_RETRIES", 5),
		RetryDelay:     env.duration("DB_RETRY_DELAY", time.Second),
		ConnectTimeout: env.duration("DB_CONNECT_TIMEOUT", 10*time.Second),
	}
	if env.err != nil {
		return nil, env.err
	}

	return cfg, nil
}

// envReader parses typed variables strictly and remembers the first failure.
// A malformed value is an error naming the variable, never a silent default.
type envReader struct {
	err error
}

func (r *envReader) int(key string, defaultValue int) int {
	raw := getEnv(key, "")
	if raw == "" || r.err != nil {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		r.err = fmt.Errorf("invalid %s: %w", key, err)
		return defaultValue
	}
	return value
}

func (r *envReader) bool(key string, defaultValue bool) bool {
	raw := getEnv(key, "")
	if raw == "" || r.err != nil {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		r.err = fmt.Errorf("invalid %s: %w", key, err)
		return defaultValue
	}
	return value
}

func (r *envReader) duration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" || r.err != nil {
		return defaultValue
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		r.err = fmt.Errorf("invalid %s: %w", key, err)
		return defaultValue
	}
	return value
}
