package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipeshare/internal/models"
)

// PostgresRecipeRepository implements RecipeRepository over a pgx pool.
type PostgresRecipeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRecipeRepository(db *pgxpool.Pool) *PostgresRecipeRepository {
	return &PostgresRecipeRepository{db: db}
}

func (r *PostgresRecipeRepository) List(ctx context.Context) ([]models.Recipe, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, ingredients, instructions, image, created_at
		 FROM recipes ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("select recipes: %w", err)
	}
	defer rows.Close()

	var recipes []models.Recipe
	for rows.Next() {
		var recipe models.Recipe
		if err := rows.Scan(&recipe.ID, &recipe.Title, &recipe.Ingredients,
			&recipe.Instructions, &recipe.Image, &recipe.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}

	return recipes, nil
}

func (r *PostgresRecipeRepository) Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	recipe := &models.Recipe{}
	err := r.db.QueryRow(ctx,
		`SELECT id, title, ingredients, instructions, image, created_at
		 FROM recipes WHERE id = $1`,
		id).Scan(&recipe.ID, &recipe.Title, &recipe.Ingredients,
		&recipe.Instructions, &recipe.Image, &recipe.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select recipe: %w", err)
	}

	return recipe, nil
}

func (r *PostgresRecipeRepository) Create(ctx context.Context, title, ingredients, instructions, image string) (*models.Recipe, error) {
	recipe := &models.Recipe{
		ID:           uuid.New(),
		Title:        title,
		Ingredients:  ingredients,
		Instructions: instructions,
		Image:        image,
		CreatedAt:    time.Now(),
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO recipes (id, title, ingredients, instructions, image, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		recipe.ID, recipe.Title, recipe.Ingredients, recipe.Instructions, recipe.Image, recipe.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("insert recipe: %w", err)
	}

	return recipe, nil
}

func (r *PostgresRecipeRepository) Update(ctx context.Context, id uuid.UUID, title, ingredients, instructions, image string) (*models.Recipe, error) {
	recipe := &models.Recipe{}
	err := r.db.QueryRow(ctx,
		`UPDATE recipes
		 SET title = $2, ingredients = $3, instructions = $4, image = $5
		 WHERE id = $1
		 RETURNING id, title, ingredients, instructions, image, created_at`,
		id, title, ingredients, instructions, image).Scan(&recipe.ID, &recipe.Title,
		&recipe.Ingredients, &recipe.Instructions, &recipe.Image, &recipe.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update recipe: %w", err)
	}

	return recipe, nil
}

func (r *PostgresRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}
