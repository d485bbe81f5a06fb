// Package commands implements the budgetctl command line interface.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/budget-buddy/backend/config"
	"github.com/budget-buddy/backend/internal/infra/db"
	"github.com/budget-buddy/backend/internal/infra/dependency"
)

// Output formats.
const (
	outputText = "text"
	outputJSON = "json"
)

type globalOptions struct {
	databaseDriver string
	databaseURL    string
	logLevel       string
	output         string
}

// NewRootCommand builds the budgetctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "budgetctl",
		Short:         "Operate a Budget Buddy database",
		Long:          "budgetctl runs migrations, seeds default categories and prints budget reports\nagainst the database configured through the environment or flags.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd.ErrOrStderr(), opts.logLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.databaseDriver, "database-driver", "", "database driver, postgres or sqlite (default from DATABASE_DRIVER)")
	cmd.PersistentFlags().StringVar(&opts.databaseURL, "database-url", "", "database URL or SQLite path (default from DATABASE_URL)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputText, "output format (text, json)")

	cmd.AddCommand(
		migrateCmd(opts),
		seedCmd(opts),
		overviewCmd(opts),
		statsCmd(opts),
		goalsCmd(opts),
	)

	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func setupLogging(w io.Writer, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}

// app is an opened database with its use cases.
type app struct {
	cfg      *config.Config
	database *db.Database
	useCases *dependency.UseCases
	close    func()
}

// openApp loads the configuration, applies flag overrides and connects.
func openApp(ctx context.Context, opts *globalOptions) (*app, error) {
	cfg := config.Load()
	if opts.databaseDriver != "" {
		cfg.Database.Driver = strings.ToLower(opts.databaseDriver)
	}
	if opts.databaseURL != "" {
		cfg.Database.URL = opts.databaseURL
	}

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}

	notifier, closeNotifier, err := dependency.NewNotifier(ctx, cfg)
	if err != nil {
		_ = database.Close()
		return nil, err
	}

	return &app{
		cfg:      cfg,
		database: database,
		useCases: dependency.NewUseCases(cfg, database.DB(), notifier),
		close: func() {
			if err := closeNotifier(); err != nil {
				slog.Warn("Failed to close notifier", "error", err)
			}
			if err := database.Close(); err != nil {
				slog.Warn("Failed to close database", "error", err)
			}
		},
	}, nil
}

// render writes v as indented JSON, or calls text for the text format.
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputText:
		return text(w)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
