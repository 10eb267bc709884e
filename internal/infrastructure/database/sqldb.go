package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// SQLDB manages a database/sql pool for the sqlite and mysql drivers
type SQLDB struct {
	DB     *sql.DB
	Config *DBConfig
}

// NewSQLDB creates an SQLDB; the pool is opened by Connect
func NewSQLDB(config *DBConfig) *SQLDB {
	return &SQLDB{
		Config: config,
		DB:     nil,
	}
}

// driverName is the name registered with database/sql
func (db *SQLDB) driverName() string {
	if db.Config.Driver == DriverMySQL {
		return "mysql"
	}
	return "sqlite3"
}

// buildDSN converts the structured config into the driver's DSN format
func (db *SQLDB) buildDSN() string {
	switch db.Config.Driver {
	case DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = db.Config.Username
		mc.Passwd = db.Config.Password
		mc.Net = "tcp"
		mc.Addr = fmt.Sprintf("%s:%d", db.Config.Host, db.Config.Port)
		mc.DBName = db.Config.DBName
		mc.ParseTime = true
		mc.Timeout = db.Config.ConnectTimeout
		return mc.FormatDSN()
	default:
		if db.Config.Path == ":memory:" {
			return db.Config.Path
		}
		return db.Config.Path + "?_busy_timeout=5000"
	}
}

func (db *SQLDB) configurePool(pool *sql.DB) {
	maxConns := int(db.Config.MaxConns)
	if maxConns < 1 {
		maxConns = db.Config.Driver.DefaultMaxConns()
	}
	// sqlite: single writer, and a :memory: database lives and dies with its
	// connection, so exactly one long-lived connection.
	if db.Config.Driver == DriverSQLite {
		maxConns = 1
	}

	pool.SetMaxOpenConns(maxConns)
	pool.SetMaxIdleConns(maxConns)
	if db.Config.Driver == DriverSQLite {
		pool.SetConnMaxLifetime(0)
		pool.SetConnMaxIdleTime(0)
		return
	}
	pool.SetConnMaxLifetime(db.Config.MaxConnLifetime)
	pool.SetConnMaxIdleTime(db.Config.MaxConnIdleTime)
}

// Connect opens the pool, verifies it with a ping and creates the items table
func (db *SQLDB) Connect(ctx context.Context) error {
	log.Printf("[DATABASE] Initializing %s connection...", db.Config.Driver)

	pool, err := sql.Open(db.driverName(), db.buildDSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.configurePool(pool)

	err = retryConnect(ctx, db.Config, func(attemptCtx context.Context) error {
		return pool.PingContext(attemptCtx)
	})
	if err != nil {
		_ = pool.Close()
		return fmt.Errorf("connection failed: %w", err)
	}

	if _, err := pool.ExecContext(ctx, SchemaFor(db.Config.Driver)); err != nil {
		_ = pool.Close()
		return fmt.Errorf("failed to create items table: %w", err)
	}

	db.DB = pool

	log.Printf("[DATABASE] %s connection established successfully", db.Config.Driver)
	return nil
}

// HealthCheck pings the pool
func (db *SQLDB) HealthCheck(ctx context.Context) error {
	if db.DB == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.DB.PingContext(healthCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

func (db *SQLDB) Driver() Driver { return db.Config.Driver }
