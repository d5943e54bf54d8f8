package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

// Database owns the connection pool. Stores never hold a *gorm.DB of their own,
// they ask the Database for a connection bound to the caller's Session.
type Database struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*Database, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &Database{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return New(gdb), nil
}

func New(gdb *gorm.DB) *Database {
	return &Database{
		DB: gdb,
	}
}

// Conn returns the transaction bound to sess, or a plain connection when sess is nil.
func (d *Database) Conn(ctx context.Context, sess *Session) *gorm.DB {
	if sess != nil {
		return sess.tx.WithContext(ctx)
	}
	return d.DB.WithContext(ctx)
}

func (d *Database) MigrateModels(models ...any) error {
	err := d.DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
