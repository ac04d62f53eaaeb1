package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"recipeshare/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateUsername is returned when a username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository persists user accounts. There are no update or delete
// operations: accounts are immutable after signup.
type UserRepository interface {
	Create(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// RecipeRepository persists recipes.
type RecipeRepository interface {
	List(ctx context.Context) ([]models.Recipe, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	Create(ctx context.Context, title, ingredients, instructions, image string) (*models.Recipe, error)
	// Update rewrites every field, image included; callers that keep the
	// existing picture pass the current image reference back in.
	Update(ctx context.Context, id uuid.UUID, title, ingredients, instructions, image string) (*models.Recipe, error)
	// Delete removes a recipe. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}
