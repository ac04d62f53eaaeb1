package dto

// RecipeRequest represents the add/edit recipe form payload. Image is the
// stored filename, filled in after the upload is persisted.
type RecipeRequest struct {
	Title        string
	Ingredients  string
	Instructions string
	Image        string
}

// Valid reports whether every required text field is present. The image is
// validated separately because edits may keep the existing one.
func (r RecipeRequest) Valid() bool {
	return r.Title != "" && r.Ingredients != "" && r.Instructions != ""
}
