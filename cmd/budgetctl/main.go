// Package main is the entry point for the budgetctl command line tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/budget-buddy/backend/internal/commands"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Execute(ctx)
	stop()

	os.Exit(code)
}
