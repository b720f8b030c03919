package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/rgoodall/taskboard/internal/config"
	"github.com/rgoodall/taskboard/internal/platform/postgres"
	"github.com/rgoodall/taskboard/internal/service"
	"github.com/rgoodall/taskboard/internal/service/auth"
	"github.com/rgoodall/taskboard/internal/store"
)

// application holds the shared application dependencies so construction
// happens in one place and cleanup is straightforward on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService     auth.JWTService
	passwordHasher *auth.BcryptHasher
	taskService    *service.TaskService
}

// newApplication creates an application instance with all dependencies
// initialized. Configuration, logging and the database connection must
// already be established by the caller.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordHasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app.userStore = postgres.NewUserStore(db)
	app.taskStore = postgres.NewTaskStore(db)

	app.taskService = service.NewTaskService(app.taskStore, logger)

	return app, nil
}
