package service

import (
	"context"

	"github.com/ekaragodin/taskboard/internal/models"
)

// ProjectRepository defines the persistence operations required by the
// project service.
type ProjectRepository interface {
	Create(ctx context.Context, name, description string) error
	GetAll(ctx context.Context) ([]models.Project, error)
	GetByName(ctx context.Context, name string) (*models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	DeleteByName(ctx context.Context, name string) error
	Replace(ctx context.Context, name string, p models.Project) error
}

// ProjectService implements project CRUD by delegating to a
// ProjectRepository.
type ProjectService struct {
	repo ProjectRepository
}

// NewProjectService constructs a ProjectService using the provided
// repository.
func NewProjectService(repo ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// Create inserts a new project. Names are not checked for uniqueness.
func (s *ProjectService) Create(ctx context.Context, name, description string) error {
	return s.repo.Create(ctx, name, description)
}

// List returns every project, or ErrNotFound when there are none.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	projects, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, ErrNotFound
	}
	return projects, nil
}

// Get returns the project with the given name, or ErrNotFound.
func (s *ProjectService) Get(ctx context.Context, name string) (*models.Project, error) {
	project, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}
	return project, nil
}

// Replace swaps the project stored under name for new field values.
func (s *ProjectService) Replace(ctx context.Context, name string, p models.Project) error {
	return s.repo.Replace(ctx, name, p)
}

// Delete removes all projects matching name. Existing tasks keep their
// project_id and are orphaned, not cascaded.
func (s *ProjectService) Delete(ctx context.Context, name string) error {
	return s.repo.DeleteByName(ctx, name)
}
