package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/rgoodall/taskboard/internal/config"
	"github.com/rgoodall/taskboard/internal/redact"
)

const (
	dbPingTimeout   = 5 * time.Second
	dbMaxOpenConns  = 25
	dbMaxIdleConns  = 5
	dbConnMaxIdle   = 5 * time.Minute
	dbConnMaxLife   = 30 * time.Minute
)

// openDatabase opens a pooled connection to PostgreSQL via the pgx stdlib
// driver and verifies it with a ping before returning.
func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetMaxIdleConns(dbMaxIdleConns)
	db.SetConnMaxIdleTime(dbConnMaxIdle)
	db.SetConnMaxLifetime(dbConnMaxLife)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		slog.Error("database ping failed", "error", redact.Error(err))
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("database connection established")
	return db, nil
}
