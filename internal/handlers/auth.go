package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"recipeshare/internal/dto"
	"recipeshare/internal/session"
	"recipeshare/internal/store"
	"recipeshare/internal/views"
)

// AuthHandler handles signup, login and logout requests
type AuthHandler struct {
	users      store.UserRepository
	sessions   *session.Manager
	views      *views.Renderer
	cookieName string
	logger     zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users store.UserRepository, sessions *session.Manager, renderer *views.Renderer, cookieName string, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		users:      users,
		sessions:   sessions,
		views:      renderer,
		cookieName: cookieName,
		logger:     logger,
	}
}

// ShowSignup renders the signup form
func (h *AuthHandler) ShowSignup(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"Message": popFlash(w, r)}
	if err := h.views.Render(w, "signup", data); err != nil {
		h.logger.Error().Err(err).Msg("rendering signup page")
	}
}

// Signup creates a user account and redirects to the login form. Missing
// fields and username collisions both collapse to the generic failure
// response; there is no field-level feedback.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "An error occurred during signup.", http.StatusInternalServerError)
		return
	}

	req := dto.SignupRequest{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if !req.Valid() {
		http.Error(w, "An error occurred during signup.", http.StatusInternalServerError)
		return
	}

	hash, err := session.HashPassword(req.Password)
	if err != nil {
		h.logger.Error().Err(err).Msg("hashing password")
		http.Error(w, "An error occurred during signup.", http.StatusInternalServerError)
		return
	}

	if _, err := h.users.Create(r.Context(), req.Username, req.Email, hash); err != nil {
		if !errors.Is(err, store.ErrDuplicateUsername) {
			h.logger.Error().Err(err).Msg("creating user")
		}
		http.Error(w, "An error occurred during signup.", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

// ShowLogin renders the login form with any pending flash message
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"Message": popFlash(w, r)}
	if err := h.views.Render(w, "login", data); err != nil {
		h.logger.Error().Err(err).Msg("rendering login page")
	}
}

// Login attempts to establish a session. Invalid credentials flash a
// generic message and send the browser back to the form; success redirects
// to the member landing page with the session cookie set.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "An error occurred during login.", http.StatusInternalServerError)
		return
	}

	req := dto.LoginRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	token, err := h.sessions.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			setFlash(w, "Incorrect username or password.")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		h.logger.Error().Err(err).Msg("logging in")
		http.Error(w, "An error occurred during login.", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessions.TTL()),
		HttpOnly: true,
	})
	http.Redirect(w, r, "/main", http.StatusFound)
}

// Logout destroys the session and clears the cookie. Logging out twice is
// harmless.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cookieName); err == nil {
		if err := h.sessions.Logout(r.Context(), cookie.Value); err != nil {
			h.logger.Error().Err(err).Msg("destroying session")
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}
