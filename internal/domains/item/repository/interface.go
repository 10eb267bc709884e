package repository

import (
	"context"

	"items-backend/internal/domains/item/model"
)

// Repository defines all data access operations for the item domain.
// Every method runs exactly one logical SQL statement.
type Repository interface {
	// Create inserts an item; id and created_at are assigned by the store
	Create(ctx context.Context, item *model.Item) (*model.Item, error)

	// GetByID returns nil, nil if not found
	GetByID(ctx context.Context, id int64) (*model.Item, error)

	// List returns every item ordered by id
	List(ctx context.Context) ([]*model.Item, error)

	// Update sets name and description and returns the persisted row.
	// Returns nil, nil if not found.
	Update(ctx context.Context, id int64, item *model.Item) (*model.Item, error)

	// Delete removes the row; false if no row had that id
	Delete(ctx context.Context, id int64) (bool, error)
}
