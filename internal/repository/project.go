package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ekaragodin/taskboard/internal/models"
)

// PostgresProjectRepository implements project persistence against a
// PostgreSQL database.
type PostgresProjectRepository struct {
	DB *sql.DB
}

// NewPostgresProjectRepository creates a new PostgresProjectRepository
// using the provided *sql.DB.
func NewPostgresProjectRepository(db *sql.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{DB: db}
}

// Create inserts a new project row.
func (r *PostgresProjectRepository) Create(ctx context.Context, name, description string) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO projects (name, description) VALUES ($1, $2)`,
		name, description,
	)
	return err
}

// GetAll fetches every project.
func (r *PostgresProjectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, description FROM projects`)
	if err != nil {
		return nil, fmt.Errorf("GetAll projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetByName returns the first project with the given name, or nil if
// none exists.
func (r *PostgresProjectRepository) GetByName(ctx context.Context, name string) (*models.Project, error) {
	var p models.Project
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, name, description FROM projects WHERE name = $1`,
		name,
	).Scan(&p.ID, &p.Name, &p.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByName project: %w", err)
	}
	return &p, nil
}

// GetByID returns the project with the given id, or nil if none exists.
func (r *PostgresProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	var p models.Project
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, name, description FROM projects WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID project: %w", err)
	}
	return &p, nil
}

// DeleteByName removes all projects matching the name. Tasks are not
// cascaded.
func (r *PostgresProjectRepository) DeleteByName(ctx context.Context, name string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM projects WHERE name = $1`, name)
	return err
}

// Replace swaps the project stored under name for new values inside a
// single transaction, so a failed insert never loses the old row.
func (r *PostgresProjectRepository) Replace(ctx context.Context, name string, p models.Project) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE name = $1`, name); err != nil {
		return fmt.Errorf("replace delete: %w", err)
	}
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO projects (name, description) VALUES ($1, $2)`,
		p.Name, p.Description,
	); err != nil {
		return fmt.Errorf("replace insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
