package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ekaragodin/taskboard/internal/models"
)

// PostgresCommentRepository implements comment persistence against a
// PostgreSQL database.
type PostgresCommentRepository struct {
	DB *sql.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
// using the provided *sql.DB.
func NewPostgresCommentRepository(db *sql.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{DB: db}
}

// Create inserts a new comment row.
func (r *PostgresCommentRepository) Create(ctx context.Context, authorID, taskID int64, message string) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO comments (author_id, task_id, message) VALUES ($1, $2, $3)`,
		authorID, taskID, message,
	)
	return err
}

// GetByTask fetches all comments attached to the given task id.
func (r *PostgresCommentRepository) GetByTask(ctx context.Context, taskID int64) ([]models.Comment, error) {
	rows, err := r.DB.QueryContext(
		ctx,
		`SELECT id, author_id, task_id, message FROM comments WHERE task_id = $1`,
		taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("GetByTask comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.AuthorID, &c.TaskID, &c.Message); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// DeleteByID removes the comment with the given id. Missing rows are a
// no-op.
func (r *PostgresCommentRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	return err
}

// Replace swaps the comment stored under id for new values inside a
// single transaction.
func (r *PostgresCommentRepository) Replace(ctx context.Context, id int64, c models.Comment) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("replace delete: %w", err)
	}
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO comments (author_id, task_id, message) VALUES ($1, $2, $3)`,
		c.AuthorID, c.TaskID, c.Message,
	); err != nil {
		return fmt.Errorf("replace insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
