package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ekaragodin/taskboard/internal/service"
)

// FileService defines the blob-store operations required by the HTTP
// handlers.
type FileService interface {
	Save(name string, src io.Reader) (string, error)
	List() ([]string, error)
	Read(name string) ([]byte, error)
	Replace(name string, src io.Reader) error
	Remove(name string) error
}

// FileHandler handles HTTP requests for uploaded files.
type FileHandler struct {
	FileService FileService
}

// maxUploadMemory bounds the multipart form buffer.
const maxUploadMemory = 32 << 20

// Upload handles POST /upload/ with a multipart "file" part.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	name, err := h.FileService.Save(header.Filename, file)
	if err != nil {
		if errors.Is(err, service.ErrBadFilename) {
			http.Error(w, "invalid filename", http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"filename": name})
}

// List handles GET /files/.
func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	names, err := h.FileService.List()
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, names)
}

// Download handles GET /download/{filename}, streaming the stored
// bytes back.
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")

	data, err := h.FileService.Read(name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			http.Error(w, "file not found", http.StatusNotFound)
		case errors.Is(err, service.ErrBadFilename):
			http.Error(w, "invalid filename", http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	_, _ = w.Write(data)
}

// Delete handles DELETE /delete/{filename}.
func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")

	if err := h.FileService.Remove(name); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			http.Error(w, "file not found", http.StatusNotFound)
		case errors.Is(err, service.ErrBadFilename):
			http.Error(w, "invalid filename", http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, map[string]string{"message": fmt.Sprintf("file %q deleted", name)})
}

// Update handles PUT /update/{filename}/ with a multipart "file" part,
// overwriting an existing upload.
func (h *FileHandler) Update(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")
	if name == "" {
		http.Error(w, "filename is required", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if err := h.FileService.Replace(name, file); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			http.Error(w, "file not found", http.StatusNotFound)
		case errors.Is(err, service.ErrBadFilename):
			http.Error(w, "invalid filename", http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, map[string]string{"message": fmt.Sprintf("file %q updated", name)})
}
