package dbtest

import (
	"fmt"

	"coinledger/internal/db"

	"gorm.io/gorm"
)

// BeforeUpdate runs hook inside the writing transaction right before each
// UPDATE gorm issues against database. Writes made through hook's tx share the
// transaction and roll back with it.
func BeforeUpdate(database *db.Database, hook func(tx *gorm.DB)) error {
	err := database.DB.Callback().Update().Before("gorm:update").
		Register("dbtest:before_update", hook)
	if err != nil {
		return fmt.Errorf("register update hook: %w", err)
	}
	return nil
}

// Updates reports whether tx is about to update column on table.
func Updates(tx *gorm.DB, table, column string) bool {
	if tx.Statement.Table != table {
		return false
	}
	values, ok := tx.Statement.Dest.(map[string]any)
	if !ok {
		return false
	}
	_, ok = values[column]
	return ok
}

// BumpVersion advances the optimistic version of the given accounts through
// tx, as a writer that got there first would.
func BumpVersion(tx *gorm.DB, ids ...string) error {
	return tx.Session(&gorm.Session{NewDB: true}).
		Exec("UPDATE accounts SET version = version + 1 WHERE id IN ?", ids).Error
}
