package service

import (
	"context"

	"github.com/ekaragodin/taskboard/internal/models"
)

// CommentRepository defines the persistence operations required by the
// comment service.
type CommentRepository interface {
	Create(ctx context.Context, authorID, taskID int64, message string) error
	GetByTask(ctx context.Context, taskID int64) ([]models.Comment, error)
	DeleteByID(ctx context.Context, id int64) error
	Replace(ctx context.Context, id int64, c models.Comment) error
}

// CommentService implements comment CRUD nested under a task name.
// Every operation resolves the task first; author_id is accepted as-is.
type CommentService struct {
	repo  CommentRepository
	tasks TaskRepository
}

// NewCommentService constructs a CommentService using the provided
// comment and task repositories.
func NewCommentService(repo CommentRepository, tasks TaskRepository) *CommentService {
	return &CommentService{repo: repo, tasks: tasks}
}

// resolveTask returns the task for taskName or ErrInvalidTask.
func (s *CommentService) resolveTask(ctx context.Context, taskName string) (*models.Task, error) {
	task, err := s.tasks.GetByName(ctx, taskName)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrInvalidTask
	}
	return task, nil
}

// Create attaches a comment to the named task.
func (s *CommentService) Create(ctx context.Context, taskName string, c models.Comment) error {
	task, err := s.resolveTask(ctx, taskName)
	if err != nil {
		return err
	}
	return s.repo.Create(ctx, c.AuthorID, task.ID, c.Message)
}

// ListForTask returns the comments on the named task, or ErrNotFound
// when there are none.
func (s *CommentService) ListForTask(ctx context.Context, taskName string) ([]models.Comment, error) {
	task, err := s.resolveTask(ctx, taskName)
	if err != nil {
		return nil, err
	}
	comments, err := s.repo.GetByTask(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, ErrNotFound
	}
	return comments, nil
}

// Replace swaps the comment with the given id for new field values,
// reattaching it to the named task.
func (s *CommentService) Replace(ctx context.Context, taskName string, id int64, c models.Comment) error {
	task, err := s.resolveTask(ctx, taskName)
	if err != nil {
		return err
	}
	c.TaskID = task.ID
	return s.repo.Replace(ctx, id, c)
}

// Delete removes the comment with the given id from the named task.
// A missing comment is a silent no-op.
func (s *CommentService) Delete(ctx context.Context, taskName string, id int64) error {
	if _, err := s.resolveTask(ctx, taskName); err != nil {
		return err
	}
	return s.repo.DeleteByID(ctx, id)
}
