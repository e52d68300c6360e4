// Package models defines the core data structures for users, tokens,
// and the project-management entities.
package models

// User represents a registered account.
type User struct {
	// ID is the store-assigned identifier of the user.
	ID int64 `json:"id"`
	// Email is the unique login address.
	Email string `json:"email"`
	// Name is the display name of the user.
	Name string `json:"name"`
	// PasswordHash is the salted bcrypt digest of the password.
	// Never serialized in responses.
	PasswordHash string `json:"-"`
}

// Token is an issued bearer token as persisted in the store.
// One row per login; the embedded expiry lives inside the signed
// string, not in a column.
type Token struct {
	// ID is the store-assigned identifier of the row.
	ID int64 `json:"id"`
	// Token is the opaque signed token string.
	Token string `json:"token"`
}

// Project groups tasks under a name.
type Project struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Task belongs to a project and is addressed externally by name.
type Task struct {
	ID          int64  `json:"id"`
	ProjectID   int64  `json:"project_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Comment is attached to a task. AuthorID is not checked against the
// users table.
type Comment struct {
	ID       int64  `json:"id"`
	AuthorID int64  `json:"author_id"`
	TaskID   int64  `json:"task_id"`
	Message  string `json:"message"`
}

// Category is a bare named label.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Note is free-form text addressed by name.
type Note struct {
	ID       int64  `json:"id"`
	AuthorID int64  `json:"author_id"`
	Name     string `json:"name"`
	Body     string `json:"body"`
}
