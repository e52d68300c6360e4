package service

import "errors"

// Sentinel errors returned by services. Handlers map them to HTTP
// status codes and detail strings.
var (
	// ErrDuplicateEmail is returned when registering an already-taken email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrBadCredentials is returned on login with an unknown email or
	// a wrong password. The two cases are deliberately indistinguishable.
	ErrBadCredentials = errors.New("incorrect email or password")
	// ErrNotFound is returned for a missing entity or an empty collection.
	ErrNotFound = errors.New("not found")
	// ErrInvalidProject is returned when a task references a project id
	// that does not exist.
	ErrInvalidProject = errors.New("invalid project id")
	// ErrInvalidTask is returned when a comment operation names a task
	// that does not exist.
	ErrInvalidTask = errors.New("invalid task")
	// ErrInvalidToken is returned when a bearer token fails signature,
	// expiry, or store-membership checks.
	ErrInvalidToken = errors.New("invalid token")
	// ErrBadFilename is returned when a client-supplied filename does
	// not survive sanitization.
	ErrBadFilename = errors.New("invalid filename")
)
