package mock

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/budget-buddy/backend/config"
	"github.com/budget-buddy/backend/internal/infra/db"
	"github.com/budget-buddy/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var database *db.Database

// NewDb returns the suite-wide in-memory database, migrating it on first use.
func NewDb() *db.Database {
	dbOnce.Do(func() {
		database = open()
	})
	return database
}

func open() *db.Database {
	conn, err := db.NewSQLiteConnection(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    "file:budget-buddy-integration?mode=memory&cache=shared",
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := conn.Migrate(); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	if err := ClearDB(conn); err != nil {
		panic(fmt.Sprintf("failed to clear database. err: %s", err.Error()))
	}

	return conn
}

// ClearDB removes every row, children before parents.
func ClearDB(d *db.Database) error {
	tables := []any{&model.TransactionModel{}, &model.GoalModel{}, &model.CategoryModel{}}
	for _, table := range tables {
		err := d.DB().Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(table).Error
		if err != nil {
			return fmt.Errorf("failed to clear %T: %w", table, err)
		}
	}
	return nil
}
