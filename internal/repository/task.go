package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ekaragodin/taskboard/internal/models"
)

// PostgresTaskRepository implements task persistence against a
// PostgreSQL database.
type PostgresTaskRepository struct {
	DB *sql.DB
}

// NewPostgresTaskRepository creates a new PostgresTaskRepository using
// the provided *sql.DB.
func NewPostgresTaskRepository(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{DB: db}
}

// Create inserts a new task row.
func (r *PostgresTaskRepository) Create(ctx context.Context, projectID int64, name, description string) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO tasks (project_id, name, description) VALUES ($1, $2, $3)`,
		projectID, name, description,
	)
	return err
}

// GetAll fetches every task.
func (r *PostgresTaskRepository) GetAll(ctx context.Context) ([]models.Task, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, project_id, name, description FROM tasks`)
	if err != nil {
		return nil, fmt.Errorf("GetAll tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Name, &t.Description); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// GetByName returns the first task with the given name, or nil if none
// exists.
func (r *PostgresTaskRepository) GetByName(ctx context.Context, name string) (*models.Task, error) {
	var t models.Task
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, project_id, name, description FROM tasks WHERE name = $1`,
		name,
	).Scan(&t.ID, &t.ProjectID, &t.Name, &t.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByName task: %w", err)
	}
	return &t, nil
}

// DeleteByName removes all tasks matching the name. Comments are not
// cascaded.
func (r *PostgresTaskRepository) DeleteByName(ctx context.Context, name string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM tasks WHERE name = $1`, name)
	return err
}

// Replace swaps the task stored under name for new values inside a
// single transaction.
func (r *PostgresTaskRepository) Replace(ctx context.Context, name string, t models.Task) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE name = $1`, name); err != nil {
		return fmt.Errorf("replace delete: %w", err)
	}
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO tasks (project_id, name, description) VALUES ($1, $2, $3)`,
		t.ProjectID, t.Name, t.Description,
	); err != nil {
		return fmt.Errorf("replace insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
