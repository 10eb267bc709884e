package database

import (
	"context"
	"time"
)

// Driver names the relational engine backing the items table
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
	DriverMySQL    Driver = "mysql"
)

// Valid reports whether the driver is supported
func (d Driver) Valid() bool {
	switch d {
	case DriverSQLite, DriverPostgres, DriverMySQL:
		return true
	}
	return false
}

// DefaultPort returns the engine's well-known TCP port (0 for sqlite)
func (d Driver) DefaultPort() int {
	switch d {
	case DriverPostgres:
		return 5432
	case DriverMySQL:
		return 3306
	}
	return 0
}

// DefaultMaxConns: sqlite allows a single writer, so the pool is kept at one
// connection and store access is sequential.
func (d Driver) DefaultMaxConns() int {
	if d == DriverSQLite {
		return 1
	}
	return 25
}

// DBConfig groups every parameter needed to open the store
type DBConfig struct {
	Driver Driver

	// sqlite only
	Path string

	// Network engines (postgres, mysql)
	Host     string
	Port     int
	Username string
	Password string
	DBName   string
	SSLMode  string

	// Connection pool
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	// Retry
	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

// Store is the lifecycle surface shared by every backend.
// The container owns exactly one Store and closes it on shutdown.
type Store interface {
	Connect(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Close() error
	Driver() Driver
	Stats() PoolStats
}
