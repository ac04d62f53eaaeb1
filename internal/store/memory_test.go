package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUserRepository_CreateAndFind(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice", "alice@example.com", "hash")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	byName, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
	assert.Equal(t, "alice@example.com", byName.Email)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
}

func TestMemoryUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, "alice", "alice@example.com", "hash")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "alice", "other@example.com", "hash2")
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestMemoryUserRepository_NotFound(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	_, err := repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRecipeRepository_CreateAndGet(t *testing.T) {
	repo := NewMemoryRecipeRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "Soup", "Water, Salt", "Boil", "soup.jpg")
	require.NoError(t, err)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Soup", got.Title)
	assert.Equal(t, "Water, Salt", got.Ingredients)
	assert.Equal(t, "Boil", got.Instructions)
	assert.NotEmpty(t, got.Image)
}

func TestMemoryRecipeRepository_ListInsertionOrder(t *testing.T) {
	repo := NewMemoryRecipeRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, "First", "a", "b", "1.jpg")
	require.NoError(t, err)
	second, err := repo.Create(ctx, "Second", "c", "d", "2.jpg")
	require.NoError(t, err)

	recipes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, first.ID, recipes[0].ID)
	assert.Equal(t, second.ID, recipes[1].ID)
}

func TestMemoryRecipeRepository_UpdateKeepsOrReplacesImage(t *testing.T) {
	repo := NewMemoryRecipeRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "Soup", "Water", "Boil", "old.jpg")
	require.NoError(t, err)

	// Caller keeps the image by passing the stored reference back.
	updated, err := repo.Update(ctx, created.ID, "Stew", "Water, Beef", "Simmer", created.Image)
	require.NoError(t, err)
	assert.Equal(t, "Stew", updated.Title)
	assert.Equal(t, "old.jpg", updated.Image)

	updated, err = repo.Update(ctx, created.ID, "Stew", "Water, Beef", "Simmer", "new.jpg")
	require.NoError(t, err)
	assert.Equal(t, "new.jpg", updated.Image)
}

func TestMemoryRecipeRepository_UpdateUnknownID(t *testing.T) {
	repo := NewMemoryRecipeRepository()

	_, err := repo.Update(context.Background(), uuid.New(), "t", "i", "s", "x.jpg")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRecipeRepository_DeleteIsIdempotent(t *testing.T) {
	repo := NewMemoryRecipeRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "Soup", "Water", "Boil", "soup.jpg")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	// Second delete of the same id is a no-op, not an error.
	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
