package service

import (
	"context"

	"github.com/ekaragodin/taskboard/internal/models"
)

// CategoryRepository defines the persistence operations required by
// the category service.
type CategoryRepository interface {
	Create(ctx context.Context, name string) error
	GetAll(ctx context.Context) ([]models.Category, error)
	DeleteByName(ctx context.Context, name string) error
	Replace(ctx context.Context, name, newName string) error
}

// CategoryService implements category CRUD.
type CategoryService struct {
	repo CategoryRepository
}

// NewCategoryService constructs a CategoryService using the provided
// repository.
func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// Create inserts a new category.
func (s *CategoryService) Create(ctx context.Context, name string) error {
	return s.repo.Create(ctx, name)
}

// List returns every category, or ErrNotFound when there are none.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, ErrNotFound
	}
	return categories, nil
}

// Replace swaps the category stored under name for newName.
func (s *CategoryService) Replace(ctx context.Context, name, newName string) error {
	return s.repo.Replace(ctx, name, newName)
}

// Delete removes all categories matching name.
func (s *CategoryService) Delete(ctx context.Context, name string) error {
	return s.repo.DeleteByName(ctx, name)
}
