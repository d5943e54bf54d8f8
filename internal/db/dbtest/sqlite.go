// Package dbtest opens throwaway SQLite databases for package tests.
package dbtest

import (
	"fmt"
	"path/filepath"
	"time"

	"coinledger/internal/db"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates a file-backed SQLite database under dir and migrates models into it.
func Open(dir string, models ...any) (*db.Database, error) {
	path := filepath.Join(dir, fmt.Sprintf("%s.db", uuid.NewString()))
	gdb, err := gorm.Open(sqlite.Open(path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db conn: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	database := db.New(gdb)
	if err := database.MigrateModels(models...); err != nil {
		return nil, err
	}
	return database, nil
}

// Coordinator returns a coordinator with a short backoff suited to tests.
func Coordinator(database *db.Database) *db.Coordinator {
	return db.NewCoordinator(zap.NewNop().Sugar(), database,
		db.WithMaxAttempts(3),
		db.WithBackoff(time.Millisecond, 5*time.Millisecond))
}
