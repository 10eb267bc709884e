package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"items-backend/internal/domains/item/model"
	"items-backend/internal/infrastructure/database"
)

// newTestRepository opens an in-memory sqlite store with the items table.
func newTestRepository(t *testing.T) Repository {
	t.Helper()

	db := database.NewSQLDB(&database.DBConfig{
		Driver:         database.DriverSQLite,
		Path:           ":memory:",
		MaxRetries:     1,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, db.Connect(context.Background()))
	t.Cleanup(func() { _ = db.Close() })

	return NewSQLRepository(db.DB)
}

func strPtr(s string) *string { return &s }

func TestSQLRepository_CreateAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Item{Name: "Widget", Description: strPtr("A thing")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Widget", created.Name)
	assert.Equal(t, "A thing", *created.Description)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Widget", found.Name)
	assert.Equal(t, "A thing", *found.Description)
	assert.True(t, created.CreatedAt.Equal(found.CreatedAt))
}

func TestSQLRepository_CreateWithoutDescription(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.Create(context.Background(), &model.Item{Name: "Bare"})
	require.NoError(t, err)
	assert.Nil(t, created.Description)
}

func TestSQLRepository_IDsIncrease(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	a, err := repo.Create(ctx, &model.Item{Name: "A"})
	require.NoError(t, err)
	b, err := repo.Create(ctx, &model.Item{Name: "B"})
	require.NoError(t, err)

	assert.Greater(t, b.ID, a.ID)
}

func TestSQLRepository_GetByID_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	found, err := repo.GetByID(context.Background(), 999)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestSQLRepository_List(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = repo.Create(ctx, &model.Item{Name: "A", Description: strPtr("first")})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.Item{Name: "B"})
	require.NoError(t, err)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "A", items[0].Name)
	assert.Equal(t, "first", *items[0].Description)
	assert.Equal(t, "B", items[1].Name)
	assert.Nil(t, items[1].Description)
}

func TestSQLRepository_Update(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Item{Name: "Widget", Description: strPtr("A thing")})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, &model.Item{Name: "Gadget", Description: strPtr("Another thing")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Gadget", updated.Name)
	assert.Equal(t, "Another thing", *updated.Description)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt), "created_at must not change")

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gadget", found.Name)
}

func TestSQLRepository_Update_SameValues(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Item{Name: "Widget"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, &model.Item{Name: "Widget"})
	require.NoError(t, err)
	assert.NotNil(t, updated)
}

func TestSQLRepository_Update_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	updated, err := repo.Update(context.Background(), 999, &model.Item{Name: "Ghost"})
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestSQLRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Item{Name: "Widget"})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete finds no row")
}

func TestSQLRepository_StoreErrorsAreMapped(t *testing.T) {
	db := database.NewSQLDB(&database.DBConfig{
		Driver:         database.DriverSQLite,
		Path:           ":memory:",
		MaxRetries:     1,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, db.Connect(context.Background()))
	defer db.Close()

	_, err := db.DB.Exec(`DROP TABLE items`)
	require.NoError(t, err)

	repo := NewSQLRepository(db.DB)
	_, err = repo.List(context.Background())

	require.Error(t, err)
	assert.True(t, model.IsStoreError(err))
	assert.Contains(t, err.Error(), "no such table")
}

func TestSQLRepository_NotNullViolation(t *testing.T) {
	db := database.NewSQLDB(&database.DBConfig{
		Driver:         database.DriverSQLite,
		Path:           ":memory:",
		MaxRetries:     1,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, db.Connect(context.Background()))
	defer db.Close()

	_, err := db.DB.Exec(`INSERT INTO items (name) VALUES (NULL)`)
	require.Error(t, err)

	mapped := mapStoreError("create", err)
	assert.True(t, model.IsInvalidItemRequest(mapped))
}
