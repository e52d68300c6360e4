// Package http provides HTTP handlers for user authentication and the
// project-management resources.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ekaragodin/taskboard/internal/models"
	"github.com/ekaragodin/taskboard/internal/service"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates a user; ErrDuplicateEmail if the email is taken.
	Register(ctx context.Context, email, name, password string) error
	// Login checks credentials and returns a fresh bearer token.
	Login(ctx context.Context, email, password string) (string, error)
	// Users returns every registered user; ErrNotFound when empty.
	Users(ctx context.Context) ([]models.User, error)
	// RemoveUser deletes all users matching email.
	RemoveUser(ctx context.Context, email string) error
}

// AuthHandler handles HTTP requests for registration, login, and user
// administration.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// RegisterRequest represents the JSON payload for user registration.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest represents the JSON payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RemoveRequest represents the JSON payload for user removal.
type RemoveRequest struct {
	Email string `json:"email"`
}

// Register handles POST /register. A taken email yields 400.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.AuthService.Register(r.Context(), req.Email, req.Name, req.Password); err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			http.Error(w, "Email already registered", http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"msg": "User registered successfully"})
}

// Login handles POST /login. Unknown email and wrong password are both
// 400 with the same detail.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			http.Error(w, "Incorrect email or password", http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Remove handles DELETE /user. Removing a missing user still returns 200.
func (h *AuthHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req RemoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.AuthService.RemoveUser(r.Context(), req.Email); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Users handles GET /users. An empty user table yields 400.
func (h *AuthHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.AuthService.Users(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "Not found users", http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, users)
}

// writeJSON writes v as a JSON response body.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
