package models

import (
	"time"

	"github.com/google/uuid"
)

// Recipe represents a shared recipe. Image is the filename of the uploaded
// picture inside the public upload area; a recipe is never persisted without
// one. There is no owner column: any authenticated user may edit or delete
// any recipe.
type Recipe struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Ingredients  string    `json:"ingredients" db:"ingredients"`
	Instructions string    `json:"instructions" db:"instructions"`
	Image        string    `json:"image" db:"image"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
