package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ekaragodin/taskboard/internal/models"
)

// PostgresCategoryRepository implements category persistence against a
// PostgreSQL database.
type PostgresCategoryRepository struct {
	DB *sql.DB
}

// NewPostgresCategoryRepository creates a new PostgresCategoryRepository
// using the provided *sql.DB.
func NewPostgresCategoryRepository(db *sql.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{DB: db}
}

// Create inserts a new category row.
func (r *PostgresCategoryRepository) Create(ctx context.Context, name string) error {
	_, err := r.DB.ExecContext(ctx, `INSERT INTO categories (name) VALUES ($1)`, name)
	return err
}

// GetAll fetches every category.
func (r *PostgresCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name FROM categories`)
	if err != nil {
		return nil, fmt.Errorf("GetAll categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// DeleteByName removes all categories matching the name.
func (r *PostgresCategoryRepository) DeleteByName(ctx context.Context, name string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE name = $1`, name)
	return err
}

// Replace swaps the category stored under name for a new one inside a
// single transaction.
func (r *PostgresCategoryRepository) Replace(ctx context.Context, name, newName string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE name = $1`, name); err != nil {
		return fmt.Errorf("replace delete: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO categories (name) VALUES ($1)`, newName); err != nil {
		return fmt.Errorf("replace insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
