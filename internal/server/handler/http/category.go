package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ekaragodin/taskboard/internal/models"
	"github.com/ekaragodin/taskboard/internal/service"
)

// CategoryService defines the interface for category operations
// required by the HTTP handlers.
type CategoryService interface {
	Create(ctx context.Context, name string) error
	List(ctx context.Context) ([]models.Category, error)
	Replace(ctx context.Context, name, newName string) error
	Delete(ctx context.Context, name string) error
}

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	CategoryService CategoryService
}

// CategoryRequest represents the JSON payload for category
// create/update.
type CategoryRequest struct {
	Name string `json:"name"`
}

// Create handles POST /category.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.CategoryService.Create(r.Context(), req.Name); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"msg": "category added"})
}

// List handles GET /category. An empty table yields 400.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CategoryService.List(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "not found category", http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, categories)
}

// Update handles PUT /category/{name}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.CategoryService.Replace(r.Context(), name, req.Name); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"msg": "category updated"})
}

// Delete handles DELETE /category/{name}. A missing category still
// returns 200.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.CategoryService.Delete(r.Context(), name); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"msg": "category deleted"})
}
