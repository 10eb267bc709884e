package repository

import (
	"context"
	"database/sql"
	"errors"

	"items-backend/internal/domains/item/model"
	txutil "items-backend/pkg/database"
)

// sqlRepository implements Repository on database/sql for the sqlite and
// mysql drivers. Both use "?" placeholders; neither is relied on for
// RETURNING, so writes that echo the row run INSERT/UPDATE + SELECT in one
// transaction.
type sqlRepository struct {
	db *sql.DB
}

// NewSQLRepository creates a new item repository instance
func NewSQLRepository(db *sql.DB) Repository {
	return &sqlRepository{
		db: db,
	}
}

const selectItemByID = `SELECT ` + itemColumns + ` FROM items WHERE id = ?`

func (r *sqlRepository) Create(ctx context.Context, item *model.Item) (*model.Item, error) {
	created, err := txutil.WithTransactionResult(ctx, r.db, func(tx *sql.Tx) (*model.Item, error) {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO items (name, description) VALUES (?, ?)`,
			item.Name, item.Description,
		)
		if err != nil {
			return nil, err
		}

		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}

		return scanItem(tx.QueryRowContext(ctx, selectItemByID, id))
	})
	if err != nil {
		return nil, mapStoreError("create", err)
	}
	return created, nil
}

func (r *sqlRepository) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	found, err := scanItem(r.db.QueryRowContext(ctx, selectItemByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, mapStoreError("get", err)
	}
	return found, nil
}

func (r *sqlRepository) List(ctx context.Context) ([]*model.Item, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM items ORDER BY id`)
	if err != nil {
		return nil, mapStoreError("list", err)
	}
	defer rows.Close()

	items := make([]*model.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, mapStoreError("list", err)
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, mapStoreError("list", err)
	}

	return items, nil
}

// Update reads the row back instead of trusting RowsAffected: mysql reports
// 0 affected rows when the new values equal the old ones.
func (r *sqlRepository) Update(ctx context.Context, id int64, item *model.Item) (*model.Item, error) {
	updated, err := txutil.WithTransactionResult(ctx, r.db, func(tx *sql.Tx) (*model.Item, error) {
		if _, err := tx.ExecContext(ctx,
			`UPDATE items SET name = ?, description = ? WHERE id = ?`,
			item.Name, item.Description, id,
		); err != nil {
			return nil, err
		}

		it, err := scanItem(tx.QueryRowContext(ctx, selectItemByID, id))
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return it, err
	})
	if err != nil {
		return nil, mapStoreError("update", err)
	}
	return updated, nil
}

func (r *sqlRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return false, mapStoreError("delete", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, mapStoreError("delete", err)
	}
	return affected > 0, nil
}
