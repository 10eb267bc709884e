package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func countNotes(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM notes`).Scan(&n))
	return n
}

func TestWithTransaction_Commit(t *testing.T) {
	db := openTestDB(t)

	err := WithTransaction(context.Background(), db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO notes (body) VALUES ('a')`)
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 1, countNotes(t, db))
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	db := openTestDB(t)
	boom := errors.New("boom")

	err := WithTransaction(context.Background(), db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO notes (body) VALUES ('a')`); err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countNotes(t, db))
}

func TestWithTransaction_RollbackOnPanic(t *testing.T) {
	db := openTestDB(t)

	assert.Panics(t, func() {
		_ = WithTransaction(context.Background(), db, func(tx *sql.Tx) error {
			_, _ = tx.Exec(`INSERT INTO notes (body) VALUES ('a')`)
			panic("boom")
		})
	})

	assert.Equal(t, 0, countNotes(t, db))
}

func TestWithTransactionResult(t *testing.T) {
	db := openTestDB(t)

	id, err := WithTransactionResult(context.Background(), db, func(tx *sql.Tx) (int64, error) {
		res, err := tx.Exec(`INSERT INTO notes (body) VALUES ('a')`)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = WithTransactionResult(context.Background(), db, func(tx *sql.Tx) (int64, error) {
		_, err := tx.Exec(`INSERT INTO notes (body) VALUES (NULL)`)
		return 0, err
	})
	assert.Error(t, err)
	assert.Equal(t, 1, countNotes(t, db))
}
