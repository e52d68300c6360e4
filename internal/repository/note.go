package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ekaragodin/taskboard/internal/models"
)

// PostgresNoteRepository implements note persistence against a
// PostgreSQL database.
type PostgresNoteRepository struct {
	DB *sql.DB
}

// NewPostgresNoteRepository creates a new PostgresNoteRepository using
// the provided *sql.DB.
func NewPostgresNoteRepository(db *sql.DB) *PostgresNoteRepository {
	return &PostgresNoteRepository{DB: db}
}

// Create inserts a new note row.
func (r *PostgresNoteRepository) Create(ctx context.Context, authorID int64, name, body string) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO notes (author_id, name, body) VALUES ($1, $2, $3)`,
		authorID, name, body,
	)
	return err
}

// GetAll fetches every note.
func (r *PostgresNoteRepository) GetAll(ctx context.Context) ([]models.Note, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, author_id, name, body FROM notes`)
	if err != nil {
		return nil, fmt.Errorf("GetAll notes: %w", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.AuthorID, &n.Name, &n.Body); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// DeleteByName removes all notes matching the name.
func (r *PostgresNoteRepository) DeleteByName(ctx context.Context, name string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM notes WHERE name = $1`, name)
	return err
}

// Replace swaps the note stored under name for new values inside a
// single transaction.
func (r *PostgresNoteRepository) Replace(ctx context.Context, name string, n models.Note) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE name = $1`, name); err != nil {
		return fmt.Errorf("replace delete: %w", err)
	}
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO notes (author_id, name, body) VALUES ($1, $2, $3)`,
		n.AuthorID, n.Name, n.Body,
	); err != nil {
		return fmt.Errorf("replace insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
