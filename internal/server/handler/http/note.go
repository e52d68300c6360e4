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

// NoteService defines the interface for note operations required by
// the HTTP handlers.
type NoteService interface {
	Create(ctx context.Context, n models.Note) error
	List(ctx context.Context) ([]models.Note, error)
	Replace(ctx context.Context, name string, n models.Note) error
	Delete(ctx context.Context, name string) error
}

// NoteHandler handles HTTP requests for notes.
type NoteHandler struct {
	NoteService NoteService
}

// NoteRequest represents the JSON payload for note create/update. The
// author is not validated.
type NoteRequest struct {
	AuthorID int64  `json:"author_id"`
	Name     string `json:"name"`
	Body     string `json:"body"`
}

// Create handles POST /note.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	n := models.Note{AuthorID: req.AuthorID, Name: req.Name, Body: req.Body}
	if err := h.NoteService.Create(r.Context(), n); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"msg": "note added"})
}

// List handles GET /notes. An empty table yields 400.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.NoteService.List(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "not found notes", http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, notes)
}

// Update handles PUT /note/{name}.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	n := models.Note{AuthorID: req.AuthorID, Name: req.Name, Body: req.Body}
	if err := h.NoteService.Replace(r.Context(), name, n); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"msg": "note updated"})
}

// Delete handles DELETE /note/{name}. A missing note still returns 200.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.NoteService.Delete(r.Context(), name); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"msg": "note deleted"})
}
