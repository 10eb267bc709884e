package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"items-backend/internal/domains/item/model"
)

// postgresRepository implements Repository on pgxpool.
// Each statement acquires a pooled connection and releases it on return.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new item repository instance
// Dependency injection pattern - receives pool from container
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{
		pool: pool,
	}
}

const itemColumns = `id, name, description, created_at`

// Create inserts a new item record
func (r *postgresRepository) Create(ctx context.Context, item *model.Item) (*model.Item, error) {
	query := `
		INSERT INTO items (name, description)
		VALUES ($1, $2)
		RETURNING ` + itemColumns

	created, err := scanItem(r.pool.QueryRow(ctx, query, item.Name, item.Description))
	if err != nil {
		return nil, mapStoreError("create", err)
	}
	return created, nil
}

// GetByID retrieves an item by ID
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	found, err := scanItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapStoreError("get", err)
	}
	return found, nil
}

// List retrieves all items
func (r *postgresRepository) List(ctx context.Context) ([]*model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
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

	if err = rows.Err(); err != nil {
		return nil, mapStoreError("list", err)
	}

	return items, nil
}

// Update updates name and description (id & created_at are immutable)
func (r *postgresRepository) Update(ctx context.Context, id int64, item *model.Item) (*model.Item, error) {
	query := `
		UPDATE items
		SET name = $1, description = $2
		WHERE id = $3
		RETURNING ` + itemColumns

	updated, err := scanItem(r.pool.QueryRow(ctx, query, item.Name, item.Description, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapStoreError("update", err)
	}
	return updated, nil
}

// Delete removes an item record
func (r *postgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return false, mapStoreError("delete", err)
	}
	return tag.RowsAffected() > 0, nil
}

// rowScanner is satisfied by pgx.Row, pgx.Rows, *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*model.Item, error) {
	var it model.Item
	if err := row.Scan(
		&it.ID,
		&it.Name,
		&it.Description,
		&it.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &it, nil
}
