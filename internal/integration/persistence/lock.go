package persistence

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockUpdate is the row lock taken before a read-check-write.
const lockUpdate = clause.LockingStrengthUpdate

// lockRows adds a row lock to the next query on Postgres. SQLite runs on a
// single connection, so its transactions are already serialised.
func lockRows(tx *gorm.DB, strength string) *gorm.DB {
	if tx.Dialector.Name() != "postgres" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: strength})
}
