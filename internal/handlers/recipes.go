package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"recipeshare/internal/dto"
	"recipeshare/internal/models"
	"recipeshare/internal/store"
	"recipeshare/internal/upload"
	"recipeshare/internal/views"
)

// imageField is the multipart field name carrying the recipe picture.
const imageField = "image"

// RecipeHandler handles the recipe lifecycle routes
type RecipeHandler struct {
	recipes   store.RecipeRepository
	uploads   *upload.Saver
	views     *views.Renderer
	maxMemory int64
	logger    zerolog.Logger
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(recipes store.RecipeRepository, uploads *upload.Saver, renderer *views.Renderer, maxMemory int64, logger zerolog.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipes:   recipes,
		uploads:   uploads,
		views:     renderer,
		maxMemory: maxMemory,
		logger:    logger,
	}
}

// List renders the public recipe listing
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	h.renderListing(w, r, "index")
}

// Main renders the member landing page with the same listing
func (h *RecipeHandler) Main(w http.ResponseWriter, r *http.Request) {
	h.renderListing(w, r, "main")
}

func (h *RecipeHandler) renderListing(w http.ResponseWriter, r *http.Request, page string) {
	recipes, err := h.recipes.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("listing recipes")
		http.Error(w, "Error fetching recipes", http.StatusInternalServerError)
		return
	}

	if err := h.views.Render(w, page, map[string]any{"Recipes": recipes}); err != nil {
		h.logger.Error().Err(err).Str("page", page).Msg("rendering recipe listing")
	}
}

// Detail renders a single recipe. An unknown id redirects to the member
// landing page instead of returning a not-found status.
func (h *RecipeHandler) Detail(w http.ResponseWriter, r *http.Request) {
	recipe, ok := h.lookup(w, r, "/main")
	if !ok {
		return
	}

	if err := h.views.Render(w, "recipe", map[string]any{"Recipe": recipe}); err != nil {
		h.logger.Error().Err(err).Msg("rendering recipe detail")
	}
}

// ShowAdd renders the create form
func (h *RecipeHandler) ShowAdd(w http.ResponseWriter, r *http.Request) {
	if err := h.views.Render(w, "add", nil); err != nil {
		h.logger.Error().Err(err).Msg("rendering add page")
	}
}

// Add creates a recipe from the multipart form. The image is mandatory; a
// request without one fails with the generic error response. The file is
// written before the row, with no transaction spanning the two.
func (h *RecipeHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxMemory); err != nil {
		http.Error(w, "Error adding recipe", http.StatusInternalServerError)
		return
	}

	req := dto.RecipeRequest{
		Title:        r.PostFormValue("title"),
		Ingredients:  r.PostFormValue("ingredients"),
		Instructions: r.PostFormValue("instructions"),
	}
	if !req.Valid() {
		http.Error(w, "Error adding recipe", http.StatusInternalServerError)
		return
	}

	image, err := h.saveImage(r)
	if err != nil {
		if !errors.Is(err, upload.ErrNoFile) {
			h.logger.Error().Err(err).Msg("storing upload")
		}
		http.Error(w, "Error adding recipe", http.StatusInternalServerError)
		return
	}
	req.Image = image

	if _, err := h.recipes.Create(r.Context(), req.Title, req.Ingredients, req.Instructions, req.Image); err != nil {
		h.logger.Error().Err(err).Msg("creating recipe")
		http.Error(w, "Error adding recipe", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/main", http.StatusFound)
}

// ShowEdit renders the edit form. An unknown id redirects to the listing.
func (h *RecipeHandler) ShowEdit(w http.ResponseWriter, r *http.Request) {
	recipe, ok := h.lookup(w, r, "/")
	if !ok {
		return
	}

	if err := h.views.Render(w, "edit", map[string]any{"Recipe": recipe}); err != nil {
		h.logger.Error().Err(err).Msg("rendering edit page")
	}
}

// Edit updates a recipe. The image is replaced only when the form carries a
// new one; otherwise the stored reference is kept.
func (h *RecipeHandler) Edit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxMemory); err != nil {
		http.Error(w, "Error updating recipe", http.StatusInternalServerError)
		return
	}

	recipe, ok := h.lookup(w, r, "/")
	if !ok {
		return
	}

	req := dto.RecipeRequest{
		Title:        r.PostFormValue("title"),
		Ingredients:  r.PostFormValue("ingredients"),
		Instructions: r.PostFormValue("instructions"),
		Image:        recipe.Image,
	}
	if !req.Valid() {
		http.Error(w, "Error updating recipe", http.StatusInternalServerError)
		return
	}

	image, err := h.saveImage(r)
	switch {
	case err == nil:
		req.Image = image
	case errors.Is(err, upload.ErrNoFile):
		// Keep the existing image.
	default:
		h.logger.Error().Err(err).Msg("storing replacement upload")
		http.Error(w, "Error updating recipe", http.StatusInternalServerError)
		return
	}

	if _, err := h.recipes.Update(r.Context(), recipe.ID, req.Title, req.Ingredients, req.Instructions, req.Image); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		h.logger.Error().Err(err).Msg("updating recipe")
		http.Error(w, "Error updating recipe", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// Delete removes a recipe and redirects to the member landing page.
// Deleting an unknown id is a no-op, so a repeated delete succeeds too.
func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Redirect(w, r, "/main", http.StatusFound)
		return
	}

	if err := h.recipes.Delete(r.Context(), id); err != nil {
		h.logger.Error().Err(err).Msg("deleting recipe")
		http.Error(w, "Error deleting recipe", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/main", http.StatusFound)
}

// lookup resolves the {id} path variable to a recipe, redirecting to
// fallback on a malformed or unknown id. The redirect is indistinguishable
// from the unauthenticated one on purpose.
func (h *RecipeHandler) lookup(w http.ResponseWriter, r *http.Request, fallback string) (recipe *models.Recipe, ok bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Redirect(w, r, fallback, http.StatusFound)
		return nil, false
	}

	recipe, err = h.recipes.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Redirect(w, r, fallback, http.StatusFound)
			return nil, false
		}
		h.logger.Error().Err(err).Msg("fetching recipe")
		http.Error(w, "Error fetching recipe", http.StatusInternalServerError)
		return nil, false
	}

	return recipe, true
}

// saveImage extracts the image part and persists it, returning the stored
// filename. upload.ErrNoFile is returned when the form has no image part.
func (h *RecipeHandler) saveImage(r *http.Request) (string, error) {
	file, header, err := r.FormFile(imageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", upload.ErrNoFile
		}
		return "", err
	}
	defer file.Close()

	return h.uploads.Save(file, header.Filename)
}
