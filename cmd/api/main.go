// Package main is the entry point for the Budget Buddy API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/budget-buddy/backend/config"
	"github.com/budget-buddy/backend/internal/infra/db"
	"github.com/budget-buddy/backend/internal/infra/dependency"
	"github.com/budget-buddy/backend/internal/infra/scheduler"
)

// shutdownTimeout bounds graceful HTTP shutdown.
const shutdownTimeout = 10 * time.Second

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("Budget Buddy API stopped with error", "error", err)
		os.Exit(1)
	}
	slog.Info("Server exited properly")
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Budget Buddy API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"database_driver", cfg.Database.Driver,
		"notifier", cfg.Notifier.Backend,
	)

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize change notifier
	notifier, closeNotifier, err := dependency.NewNotifier(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeNotifier(); err != nil {
			slog.Error("Failed to close notifier", "error", err)
		}
	}()

	injector := dependency.NewInjector(cfg, database, notifier)

	if cfg.Budget.SeedDefaultCategories {
		out, err := injector.UseCases.SeedCategories.Execute(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed default categories: %w", err)
		}
		if out.Created > 0 {
			slog.Info("Seeded default categories", "count", out.Created)
		}
	}

	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	// Request contexts end when shutdown starts so open event streams close.
	baseCtx, cancelRequests := context.WithCancel(context.Background())
	defer cancelRequests()

	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return baseCtx },
	}
	srv.RegisterOnShutdown(cancelRequests)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if cfg.Scheduler.Enabled {
		rollover, err := scheduler.NewRollover(notifier, cfg.Scheduler.RolloverSchedule)
		if err != nil {
			stop()
			_ = g.Wait()
			return err
		}
		g.Go(func() error {
			return rollover.Run(gctx)
		})
	}

	return g.Wait()
}
