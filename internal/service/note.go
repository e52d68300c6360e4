package service

import (
	"context"

	"github.com/ekaragodin/taskboard/internal/models"
)

// NoteRepository defines the persistence operations required by the
// note service.
type NoteRepository interface {
	Create(ctx context.Context, authorID int64, name, body string) error
	GetAll(ctx context.Context) ([]models.Note, error)
	DeleteByName(ctx context.Context, name string) error
	Replace(ctx context.Context, name string, n models.Note) error
}

// NoteService implements note CRUD. author_id is accepted as-is.
type NoteService struct {
	repo NoteRepository
}

// NewNoteService constructs a NoteService using the provided
// repository.
func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// Create inserts a new note.
func (s *NoteService) Create(ctx context.Context, n models.Note) error {
	return s.repo.Create(ctx, n.AuthorID, n.Name, n.Body)
}

// List returns every note, or ErrNotFound when there are none.
func (s *NoteService) List(ctx context.Context) ([]models.Note, error) {
	notes, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, ErrNotFound
	}
	return notes, nil
}

// Replace swaps the note stored under name for new field values.
func (s *NoteService) Replace(ctx context.Context, name string, n models.Note) error {
	return s.repo.Replace(ctx, name, n)
}

// Delete removes all notes matching name.
func (s *NoteService) Delete(ctx context.Context, name string) error {
	return s.repo.DeleteByName(ctx, name)
}
