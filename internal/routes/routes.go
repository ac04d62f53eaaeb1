package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"recipeshare/internal/authz"
	"recipeshare/internal/handlers"
	"recipeshare/internal/middleware"
)

// SetupRoutes configures all application routes on the router. The identity
// middleware runs on every request; the policy decides per operation whether
// an anonymous request is bounced to the login form.
func SetupRoutes(r *mux.Router, policy authz.Policy, identity func(http.Handler) http.Handler,
	authHandler *handlers.AuthHandler, recipeHandler *handlers.RecipeHandler,
	healthHandler *handlers.HealthHandler, uploadDir string) {

	r.Use(identity)

	// Health check routes
	r.HandleFunc("/healthz", healthHandler.HealthCheck).Methods(http.MethodGet)
	r.HandleFunc("/livez", healthHandler.LivenessCheck).Methods(http.MethodGet)
	r.HandleFunc("/readyz", healthHandler.ReadinessCheck).Methods(http.MethodGet)

	// Authentication routes
	r.HandleFunc("/signup", middleware.Require(policy, authz.OpSignup, authHandler.ShowSignup)).Methods(http.MethodGet)
	r.HandleFunc("/signup", middleware.Require(policy, authz.OpSignup, authHandler.Signup)).Methods(http.MethodPost)
	r.HandleFunc("/login", middleware.Require(policy, authz.OpLogin, authHandler.ShowLogin)).Methods(http.MethodGet)
	r.HandleFunc("/login", middleware.Require(policy, authz.OpLogin, authHandler.Login)).Methods(http.MethodPost)
	r.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodGet)

	// Recipe routes
	r.HandleFunc("/", middleware.Require(policy, authz.OpListRecipes, recipeHandler.List)).Methods(http.MethodGet)
	r.HandleFunc("/main", middleware.Require(policy, authz.OpMainPage, recipeHandler.Main)).Methods(http.MethodGet)
	r.HandleFunc("/recipe/{id}", middleware.Require(policy, authz.OpViewRecipe, recipeHandler.Detail)).Methods(http.MethodGet)
	r.HandleFunc("/add", middleware.Require(policy, authz.OpAddRecipe, recipeHandler.ShowAdd)).Methods(http.MethodGet)
	r.HandleFunc("/add", middleware.Require(policy, authz.OpAddRecipe, recipeHandler.Add)).Methods(http.MethodPost)
	r.HandleFunc("/edit/{id}", middleware.Require(policy, authz.OpEditRecipe, recipeHandler.ShowEdit)).Methods(http.MethodGet)
	r.HandleFunc("/edit/{id}", middleware.Require(policy, authz.OpEditRecipe, recipeHandler.Edit)).Methods(http.MethodPost)
	r.HandleFunc("/delete/{id}", middleware.Require(policy, authz.OpDeleteRecipe, recipeHandler.Delete)).Methods(http.MethodGet)

	// Uploaded images are served straight from the public file area
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))
}
