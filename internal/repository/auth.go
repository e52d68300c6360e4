// Package repository provides persistence implementations for the
// application services against a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ekaragodin/taskboard/internal/models"
)

// PostgresAuthRepository implements user and token persistence using a
// PostgreSQL database.
type PostgresAuthRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresAuthRepository creates a new PostgresAuthRepository with the
// given database connection.
func NewPostgresAuthRepository(db *sql.DB) *PostgresAuthRepository {
	return &PostgresAuthRepository{DB: db}
}

// GetUserByEmail returns the user with the given email, or nil if no
// such user exists.
func (r *PostgresAuthRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, email, name, password_hash FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return &u, nil
}

// GetUsers returns every registered user.
func (r *PostgresAuthRepository) GetUsers(ctx context.Context) ([]models.User, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, email, name, password_hash FROM users`)
	if err != nil {
		return nil, fmt.Errorf("GetUsers: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CreateUser inserts a new user record with a pre-hashed password.
func (r *PostgresAuthRepository) CreateUser(ctx context.Context, email, name, passwordHash string) error {
	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO users (email, name, password_hash) VALUES ($1, $2, $3)`,
		email, name, passwordHash,
	)
	return err
}

// RemoveUser deletes all users matching the email. Deleting a missing
// user is a no-op.
func (r *PostgresAuthRepository) RemoveUser(ctx context.Context, email string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE email = $1`, email)
	return err
}

// AddToken unconditionally inserts an issued token string.
func (r *PostgresAuthRepository) AddToken(ctx context.Context, token string) error {
	_, err := r.DB.ExecContext(ctx, `INSERT INTO tokens (token) VALUES ($1)`, token)
	return err
}

// TokenExists checks whether the literal token string is present in
// the store.
func (r *PostgresAuthRepository) TokenExists(ctx context.Context, token string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM tokens WHERE token = $1)`,
		token,
	).Scan(&exists)
	return exists, err
}
