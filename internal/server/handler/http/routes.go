package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/ekaragodin/taskboard/internal/middleware"
)

// NewRouter constructs and returns the HTTP handler serving the API.
//
// Middleware chain (applied in order):
//  1. WithRequestLogging(logger) — logs each request with a request id
//  2. TokenAuth(validator)       — bearer-token gate; /register, /login,
//     and /docs are allow-listed
//
// JSON resource routes additionally enforce Content-Type:
// application/json. File routes accept multipart bodies and are
// mounted outside that group.
func NewRouter(
	authHandler *AuthHandler,
	projectHandler *ProjectHandler,
	taskHandler *TaskHandler,
	commentHandler *CommentHandler,
	categoryHandler *CategoryHandler,
	noteHandler *NoteHandler,
	fileHandler *FileHandler,
	validator middleware.TokenValidator,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))
	// Gate everything except the allow-listed paths on a bearer token
	r.Use(middleware.TokenAuth(validator))

	// JSON resources
	r.Group(func(r chi.Router) {
		r.Use(chiMiddleware.AllowContentType("application/json"))

		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Delete("/user", authHandler.Remove)
		r.Get("/users", authHandler.Users)

		r.Post("/project", projectHandler.Create)
		r.Get("/projects", projectHandler.List)
		r.Get("/project/{name}", projectHandler.Get)
		r.Put("/project/{name}", projectHandler.Update)
		r.Delete("/project/{name}", projectHandler.Delete)

		r.Post("/task", taskHandler.Create)
		r.Get("/tasks", taskHandler.List)
		r.Get("/task/{name}", taskHandler.Get)
		r.Put("/task/{name}", taskHandler.Update)
		r.Delete("/task/{name}", taskHandler.Delete)

		r.Post("/task/{name}/comments", commentHandler.Create)
		r.Get("/task/{name}/comments", commentHandler.List)
		r.Put("/task/{name}/comments/{id}", commentHandler.Update)
		r.Delete("/task/{name}/comments/{id}", commentHandler.Delete)

		r.Post("/category", categoryHandler.Create)
		r.Get("/category", categoryHandler.List)
		r.Put("/category/{name}", categoryHandler.Update)
		r.Delete("/category/{name}", categoryHandler.Delete)

		r.Post("/note", noteHandler.Create)
		r.Get("/notes", noteHandler.List)
		r.Put("/note/{name}", noteHandler.Update)
		r.Delete("/note/{name}", noteHandler.Delete)
	})

	// File storage; multipart bodies allowed
	r.Post("/upload/", fileHandler.Upload)
	r.Get("/files/", fileHandler.List)
	r.Get("/download/{filename}", fileHandler.Download)
	r.Delete("/delete/{filename}", fileHandler.Delete)
	r.Put("/update/{filename}/", fileHandler.Update)

	r.Get("/protected", Protected)
	r.Get("/docs", Docs)

	return r
}
