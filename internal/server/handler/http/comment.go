package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ekaragodin/taskboard/internal/models"
	"github.com/ekaragodin/taskboard/internal/service"
)

// CommentService defines the interface for comment operations required
// by the HTTP handlers. Every operation is scoped to a task name.
type CommentService interface {
	Create(ctx context.Context, taskName string, c models.Comment) error
	ListForTask(ctx context.Context, taskName string) ([]models.Comment, error)
	Replace(ctx context.Context, taskName string, id int64, c models.Comment) error
	Delete(ctx context.Context, taskName string, id int64) error
}

// CommentHandler handles HTTP requests for comments nested under a
// task name.
type CommentHandler struct {
	CommentService CommentService
}

// CommentRequest represents the JSON payload for comment
// create/update. The author is not validated.
type CommentRequest struct {
	AuthorID int64  `json:"author_id"`
	Message  string `json:"message"`
}

// Create handles POST /task/{name}/comments. A missing task yields 422.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	taskName := chi.URLParam(r, "name")

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	c := models.Comment{AuthorID: req.AuthorID, Message: req.Message}
	if err := h.CommentService.Create(r.Context(), taskName, c); err != nil {
		if errors.Is(err, service.ErrInvalidTask) {
			http.Error(w, "invalid task", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"msg": "comment added"})
}

// List handles GET /task/{name}/comments. No comments yields 400, a
// missing task 422.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	taskName := chi.URLParam(r, "name")

	comments, err := h.CommentService.ListForTask(r.Context(), taskName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTask):
			http.Error(w, "invalid task", http.StatusUnprocessableEntity)
		case errors.Is(err, service.ErrNotFound):
			http.Error(w, "not found comments", http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, comments)
}

// Update handles PUT /task/{name}/comments/{id}.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	taskName := chi.URLParam(r, "name")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	c := models.Comment{AuthorID: req.AuthorID, Message: req.Message}
	if err := h.CommentService.Replace(r.Context(), taskName, id, c); err != nil {
		if errors.Is(err, service.ErrInvalidTask) {
			http.Error(w, "invalid task", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"msg": "comment update"})
}

// Delete handles DELETE /task/{name}/comments/{id}. A missing comment
// still returns 200.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	taskName := chi.URLParam(r, "name")
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	if err := h.CommentService.Delete(r.Context(), taskName, id); err != nil {
		if errors.Is(err, service.ErrInvalidTask) {
			http.Error(w, "invalid task", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"msg": "comment deleted"})
}
