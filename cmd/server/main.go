// Package main initializes and starts the taskboard HTTP server,
// setting up configuration, logging, database connections,
// repositories, services, and handlers.
package main

import (
	"cmp"
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/ekaragodin/taskboard/internal/config"
	"github.com/ekaragodin/taskboard/internal/db"
	"github.com/ekaragodin/taskboard/internal/logger"
	"github.com/ekaragodin/taskboard/internal/repository"
	"github.com/ekaragodin/taskboard/internal/server/handler/http"
	"github.com/ekaragodin/taskboard/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line, file, and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Initialize PostgreSQL connection.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	tokenTTL := time.Duration(options.TokenTTLMinutes) * time.Minute

	// Prune token rows once their embedded expiry has long passed.
	cleaner, err := db.StartExpiredTokenCleaner(context.Background(), postgresDB,
		time.Hour, // interval
		tokenTTL,  // retention
		zapLogger,
	)
	if err != nil {
		zapLogger.Fatal("cannot start token cleaner", zap.Error(err))
	}
	defer cleaner.Stop()

	// Initialize repositories.
	authRepo := repository.NewPostgresAuthRepository(postgresDB)
	projectRepo := repository.NewPostgresProjectRepository(postgresDB)
	taskRepo := repository.NewPostgresTaskRepository(postgresDB)
	commentRepo := repository.NewPostgresCommentRepository(postgresDB)
	categoryRepo := repository.NewPostgresCategoryRepository(postgresDB)
	noteRepo := repository.NewPostgresNoteRepository(postgresDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(authRepo, []byte(options.TokenSecret), tokenTTL)
	projectService := service.NewProjectService(projectRepo)
	taskService := service.NewTaskService(taskRepo, projectRepo)
	commentService := service.NewCommentService(commentRepo, taskRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	noteService := service.NewNoteService(noteRepo)

	fileService, err := service.NewFileService(options.UploadDir)
	if err != nil {
		zapLogger.Fatal("cannot init file storage", zap.Error(err))
	}

	// Create HTTP handlers.
	authHandler := &http.AuthHandler{AuthService: authService}
	projectHandler := &http.ProjectHandler{ProjectService: projectService}
	taskHandler := &http.TaskHandler{TaskService: taskService}
	commentHandler := &http.CommentHandler{CommentService: commentService}
	categoryHandler := &http.CategoryHandler{CategoryService: categoryService}
	noteHandler := &http.NoteHandler{NoteService: noteService}
	fileHandler := &http.FileHandler{FileService: fileService}

	// Build the router with middleware and routes.
	router := http.NewRouter(
		authHandler,
		projectHandler,
		taskHandler,
		commentHandler,
		categoryHandler,
		noteHandler,
		fileHandler,
		authService,
		zapLogger,
	)

	server := &nethttp.Server{
		Addr:    options.Port,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Port))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
