// Package main is the entry point for the interactive form.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/defend-your-code/form/config"
	domainerror "github.com/defend-your-code/form/internal/domain/error"
	"github.com/defend-your-code/form/internal/infra/db"
	"github.com/defend-your-code/form/internal/infra/dependency"
	"github.com/defend-your-code/form/internal/integration/persistence/model"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// Initialize structured logger. Stdout belongs to the form.
	logOut, closeLog, err := openLog(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		return 1
	}
	defer closeLog()

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: cfg.Log.Level,
	}))
	slog.SetDefault(logger)

	slog.Info("Starting form",
		"environment", cfg.App.Environment,
		"outputDir", cfg.Output.Dir,
		"outputMode", cfg.Output.Mode,
		"passwordHasher", cfg.Password.Hasher,
		"auditEnabled", cfg.Audit.Enabled,
	)

	// Initialize audit database connection
	var database *db.Database
	if cfg.Audit.Enabled {
		database, err = db.NewConnection(&cfg.Audit)
		if err != nil {
			slog.Warn("Audit database connection failed, rejections will only be logged", "error", err)
			database = nil
		} else {
			if err := database.AutoMigrate(&model.RejectionModel{}); err != nil {
				slog.Error("Failed to run database migrations", "error", err)
				return 1
			}
			defer func() {
				if err := database.Close(); err != nil {
					slog.Error("Failed to close database connection", "error", err)
				}
			}()
		}
	}

	var gormDB *gorm.DB
	if database != nil {
		gormDB = database.DB()
	}

	injector, err := dependency.NewInjector(cfg, gormDB, os.Stdin, os.Stdout)
	if err != nil {
		slog.Error("Failed to initialize dependencies", "error", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	defer injector.Prompter.Restore()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Reads from stdin cannot be interrupted, so a signal ends the wait here.
	done := make(chan error, 1)
	go func() {
		_, err := injector.RunSession.Execute(ctx)
		done <- err
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		err = fmt.Errorf("%w: %w", domainerror.ErrSessionAborted, ctx.Err())
	}

	if err != nil {
		if errors.Is(err, domainerror.ErrSessionAborted) {
			fmt.Fprintln(os.Stderr, "\nSession aborted.")
			return 1
		}
		slog.Error("Session failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
