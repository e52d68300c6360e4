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

// ProjectService defines the interface for project operations required
// by the HTTP handlers.
type ProjectService interface {
	Create(ctx context.Context, name, description string) error
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, name string) (*models.Project, error)
	Replace(ctx context.Context, name string, p models.Project) error
	Delete(ctx context.Context, name string) error
}

// ProjectHandler handles HTTP requests for projects.
type ProjectHandler struct {
	ProjectService ProjectService
}

// ProjectRequest represents the JSON payload for project create/update.
type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create handles POST /project.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.ProjectService.Create(r.Context(), req.Name, req.Description); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"msg": "project added"})
}

// List handles GET /projects. An empty table yields 400.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.ProjectService.List(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "not found projects", http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, projects)
}

// Get handles GET /project/{name}. A missing project yields 422.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	project, err := h.ProjectService.Get(r.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "not found project", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, project)
}

// Update handles PUT /project/{name}: the stored project is replaced
// by the request body in one transaction.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	p := models.Project{Name: req.Name, Description: req.Description}
	if err := h.ProjectService.Replace(r.Context(), name, p); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"msg": "project updated"})
}

// Delete handles DELETE /project/{name}. Deleting a missing project
// still returns 200.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.ProjectService.Delete(r.Context(), name); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"msg": "project deleted"})
}
