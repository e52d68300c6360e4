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

// TaskService defines the interface for task operations required by
// the HTTP handlers.
type TaskService interface {
	Create(ctx context.Context, t models.Task) error
	List(ctx context.Context) ([]models.Task, error)
	Get(ctx context.Context, name string) (*models.Task, error)
	Replace(ctx context.Context, name string, t models.Task) error
	Delete(ctx context.Context, name string) error
}

// TaskHandler handles HTTP requests for tasks.
type TaskHandler struct {
	TaskService TaskService
}

// TaskRequest represents the JSON payload for task create/update.
type TaskRequest struct {
	ProjectID   int64  `json:"project_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create handles POST /task. A project_id that references no project
// yields 422.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	t := models.Task{ProjectID: req.ProjectID, Name: req.Name, Description: req.Description}
	if err := h.TaskService.Create(r.Context(), t); err != nil {
		if errors.Is(err, service.ErrInvalidProject) {
			http.Error(w, "invalid project id", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"msg": "task created"})
}

// List handles GET /tasks. An empty table yields 400.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.TaskService.List(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "not found tasks", http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, tasks)
}

// Get handles GET /task/{name}. A missing task yields 400.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	task, err := h.TaskService.Get(r.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "Incorrect task name", http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, task)
}

// Update handles PUT /task/{name}. The project check runs before the
// replace, so a bad project_id leaves the stored task untouched.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	t := models.Task{ProjectID: req.ProjectID, Name: req.Name, Description: req.Description}
	if err := h.TaskService.Replace(r.Context(), name, t); err != nil {
		if errors.Is(err, service.ErrInvalidProject) {
			http.Error(w, "invalid project id", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"msg": "task update"})
}

// Delete handles DELETE /task/{name}. Deleting a missing task still
// returns 200.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.TaskService.Delete(r.Context(), name); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"msg": "task delete"})
}
