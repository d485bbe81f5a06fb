package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func migrateCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Bring the database schema up to date.

PostgreSQL with DATABASE_MIGRATIONS=sql applies the embedded versioned
migrations; every other setup uses automatic schema migration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.database.Migrate(); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Database migrations completed")
			return nil
		},
	}
}
