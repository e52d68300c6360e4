package service

import (
	"context"

	"github.com/ekaragodin/taskboard/internal/models"
)

// TaskRepository defines the persistence operations required by the
// task service.
type TaskRepository interface {
	Create(ctx context.Context, projectID int64, name, description string) error
	GetAll(ctx context.Context) ([]models.Task, error)
	GetByName(ctx context.Context, name string) (*models.Task, error)
	DeleteByName(ctx context.Context, name string) error
	Replace(ctx context.Context, name string, t models.Task) error
}

// TaskService implements task CRUD. Tasks are the one entity whose
// foreign key is validated: project_id must reference an existing
// project.
type TaskService struct {
	repo     TaskRepository
	projects ProjectRepository
}

// NewTaskService constructs a TaskService using the provided task and
// project repositories.
func NewTaskService(repo TaskRepository, projects ProjectRepository) *TaskService {
	return &TaskService{repo: repo, projects: projects}
}

// Create inserts a new task after checking its project exists. Returns
// ErrInvalidProject when it does not.
func (s *TaskService) Create(ctx context.Context, t models.Task) error {
	project, err := s.projects.GetByID(ctx, t.ProjectID)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrInvalidProject
	}
	return s.repo.Create(ctx, t.ProjectID, t.Name, t.Description)
}

// List returns every task, or ErrNotFound when there are none.
func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, ErrNotFound
	}
	return tasks, nil
}

// Get returns the task with the given name, or ErrNotFound.
func (s *TaskService) Get(ctx context.Context, name string) (*models.Task, error) {
	task, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrNotFound
	}
	return task, nil
}

// Replace swaps the task stored under name for new field values. The
// project check runs before the transactional replace, so a bad
// project_id leaves the old task untouched.
func (s *TaskService) Replace(ctx context.Context, name string, t models.Task) error {
	project, err := s.projects.GetByID(ctx, t.ProjectID)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrInvalidProject
	}
	return s.repo.Replace(ctx, name, t)
}

// Delete removes all tasks matching name. Comments on the task are
// orphaned, not cascaded.
func (s *TaskService) Delete(ctx context.Context, name string) error {
	return s.repo.DeleteByName(ctx, name)
}
