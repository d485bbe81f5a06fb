// Package testutil builds real stores on an in-memory SQLite database for tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-buddy/backend/config"
	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/infra/db"
	"github.com/budget-buddy/backend/internal/integration/notifier"
	"github.com/budget-buddy/backend/internal/integration/persistence"
)

// Stores bundles the repositories of one isolated test database.
type Stores struct {
	DB           *gorm.DB
	Notifier     adapter.ChangeNotifier
	Categories   adapter.CategoryRepository
	Transactions adapter.TransactionRepository
	Goals        adapter.GoalRepository
}

// NewDatabase opens a migrated in-memory SQLite database private to t.
func NewDatabase(t testing.TB) *db.Database {
	t.Helper()

	database, err := db.NewSQLiteConnection(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := database.Migrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return database
}

// NewStores creates repositories sharing one test database and an in-memory notifier.
func NewStores(t testing.TB) *Stores {
	t.Helper()

	database := NewDatabase(t)
	changes := notifier.NewMemoryNotifier()

	return &Stores{
		DB:           database.DB(),
		Notifier:     changes,
		Categories:   persistence.NewCategoryRepository(database.DB(), changes),
		Transactions: persistence.NewTransactionRepository(database.DB(), changes),
		Goals:        persistence.NewGoalRepository(database.DB(), changes),
	}
}
