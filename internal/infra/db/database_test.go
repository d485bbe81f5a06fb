package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-buddy/backend/config"
	"github.com/budget-buddy/backend/internal/integration/persistence/model"
)

func TestNewConnection(t *testing.T) {
	t.Run("rejects unknown driver", func(t *testing.T) {
		_, err := NewConnection(&config.DatabaseConfig{Driver: "oracle"})
		assert.ErrorContains(t, err, "unsupported database driver")
	})

	t.Run("opens and migrates sqlite", func(t *testing.T) {
		database, err := NewConnection(&config.DatabaseConfig{
			Driver:     config.DriverSQLite,
			URL:        "file:database_test?mode=memory&cache=shared",
			Migrations: config.MigrationsSQL,
		})
		require.NoError(t, err)
		defer database.Close()

		require.NoError(t, database.Migrate())
		assert.True(t, database.HealthCheck())

		for _, m := range model.All() {
			assert.True(t, database.DB().Migrator().HasTable(m), "missing table for %T", m)
		}
	})
}
