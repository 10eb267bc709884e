package database

import (
	"context"
	"fmt"
	"log"
	"time"
)

// retryConnect runs attempt up to cfg.MaxRetries times.
// Exponential backoff between attempts: delay = RetryDelay * 2^(attempt-1)
// (1s, 2s, 4s, 8s with the default 1s base). Each attempt gets its own
// ConnectTimeout; cancelling ctx aborts the remaining attempts.
func retryConnect(ctx context.Context, cfg *DBConfig, attempt func(ctx context.Context) error) error {
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for i := 1; i <= maxRetries; i++ {
		log.Printf("[DATABASE] Connection attempt %d/%d (%s)", i, maxRetries, cfg.Driver)

		attemptCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		lastErr = attempt(attemptCtx)
		cancel()

		if lastErr == nil {
			log.Printf("[DATABASE] Successfully connected on attempt %d", i)
			return nil
		}

		log.Printf("[DATABASE] Attempt %d failed: %v", i, lastErr)

		if i < maxRetries {
			delay := cfg.RetryDelay * time.Duration(1<<uint(i-1))
			log.Printf("[DATABASE] Retrying in %v...", delay)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return fmt.Errorf("failed to connect after %d attempts: %w", maxRetries, lastErr)
}

// PoolStats is a driver-neutral view of the connection pool, used by the
// health endpoint.
type PoolStats struct {
	TotalConns    int64 `json:"total_connections"`
	IdleConns     int64 `json:"idle_connections"`
	AcquiredConns int64 `json:"acquired_connections"`
	MaxConns      int64 `json:"max_connections"`
}

// Stats returns pgxpool statistics (zero value before Connect)
func (db *PostgresDB) Stats() PoolStats {
	if db.Pool == nil {
		return PoolStats{}
	}
	stat := db.Pool.Stat()
	return PoolStats{
		TotalConns:    int64(stat.TotalConns()),
		IdleConns:     int64(stat.IdleConns()),
		AcquiredConns: int64(stat.AcquiredConns()),
		MaxConns:      int64(stat.MaxConns()),
	}
}

// Stats returns database/sql pool statistics (zero value before Connect)
func (db *SQLDB) Stats() PoolStats {
	if db.DB == nil {
		return PoolStats{}
	}
	stat := db.DB.Stats()
	return PoolStats{
		TotalConns:    int64(stat.OpenConnections),
		IdleConns:     int64(stat.Idle),
		AcquiredConns: int64(stat.InUse),
		MaxConns:      int64(stat.MaxOpenConnections),
	}
}

// Close closes every pooled connection. Safe to call more than once.
func (db *PostgresDB) Close() error {
	if db.Pool == nil {
		log.Println("[DATABASE] Pool is already closed or was never initialized")
		return nil
	}

	log.Println("[DATABASE] Closing database connection pool...")
	db.Pool.Close()
	db.Pool = nil
	log.Println("[DATABASE] Connection pool closed successfully")

	return nil
}

// Close closes the database/sql pool. Safe to call more than once.
func (db *SQLDB) Close() error {
	if db.DB == nil {
		log.Println("[DATABASE] Pool is already closed or was never initialized")
		return nil
	}

	log.Println("[DATABASE] Closing database connection pool...")
	err := db.DB.Close()
	db.DB = nil
	if err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	log.Println("[DATABASE] Connection pool closed successfully")

	return nil
}

// New returns the Store implementation for cfg.Driver
func New(cfg *DBConfig) (Store, error) {
	switch cfg.Driver {
	case DriverPostgres:
		return NewPostgresDB(cfg), nil
	case DriverSQLite, DriverMySQL:
		return NewSQLDB(cfg), nil
	}
	return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
}
