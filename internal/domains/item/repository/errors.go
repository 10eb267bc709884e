package repository

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"items-backend/internal/domains/item/model"
)

const (
	pgNotNullViolation    = "23502" // not_null_violation
	mysqlColumnCannotNull = 1048    // ER_BAD_NULL_ERROR
)

// mapStoreError converts a driver error into a domain error.
// NOT NULL violations mean the request was missing a required field.
func mapStoreError(op string, err error) error {
	if isNotNullViolation(err) {
		return model.NewInvalidItemRequest(fmt.Errorf("required field missing: %w", err))
	}
	return model.NewStoreError(op, err)
}

func isNotNullViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgNotNullViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintNotNull
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlColumnCannotNull
	}

	return false
}
