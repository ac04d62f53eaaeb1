package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"recipeshare/internal/models"
)

// MemoryRecipeRepository is an in-memory RecipeRepository used in tests.
// List preserves insertion order, matching the database ordering.
type MemoryRecipeRepository struct {
	mu      sync.RWMutex
	recipes map[uuid.UUID]models.Recipe
	order   []uuid.UUID
}

func NewMemoryRecipeRepository() *MemoryRecipeRepository {
	return &MemoryRecipeRepository{recipes: make(map[uuid.UUID]models.Recipe)}
}

func (r *MemoryRecipeRepository) List(ctx context.Context) ([]models.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var recipes []models.Recipe
	for _, id := range r.order {
		recipes = append(recipes, r.recipes[id])
	}
	return recipes, nil
}

func (r *MemoryRecipeRepository) Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipe, ok := r.recipes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &recipe, nil
}

func (r *MemoryRecipeRepository) Create(ctx context.Context, title, ingredients, instructions, image string) (*models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipe := models.Recipe{
		ID:           uuid.New(),
		Title:        title,
		Ingredients:  ingredients,
		Instructions: instructions,
		Image:        image,
		CreatedAt:    time.Now(),
	}
	r.recipes[recipe.ID] = recipe
	r.order = append(r.order, recipe.ID)

	return &recipe, nil
}

func (r *MemoryRecipeRepository) Update(ctx context.Context, id uuid.UUID, title, ingredients, instructions, image string) (*models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipe, ok := r.recipes[id]
	if !ok {
		return nil, ErrNotFound
	}
	recipe.Title = title
	recipe.Ingredients = ingredients
	recipe.Instructions = instructions
	recipe.Image = image
	r.recipes[id] = recipe

	return &recipe, nil
}

func (r *MemoryRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.recipes[id]; !ok {
		return nil
	}
	delete(r.recipes, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
