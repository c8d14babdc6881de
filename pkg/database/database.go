package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/latoulicious/roster/pkg/logging"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SQLitePrefix marks a DATABASE_URL that points at a local sqlite file
const SQLitePrefix = "sqlite:"

// NewGormDB creates a new GORM database connection using the provided DSN.
// Postgres is the default; "sqlite:<path>" opens a sqlite file instead.
// Queries are traced into logger at debug level when it is not nil.
func NewGormDB(dsn string, logger logging.Logger) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("database DSN is not set")
	}

	config := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	}
	if logger != nil {
		config.Logger = NewGormLogger(logger)
	}

	if path, ok := strings.CutPrefix(dsn, SQLitePrefix); ok {
		return openSQLite(path, config)
	}

	db, err := gorm.Open(postgres.Open(dsn), config)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// openSQLite pins the pool to one connection so the foreign_keys pragma
// holds for every statement.
func openSQLite(path string, config *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), config)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to enable sqlite foreign keys: %w", err)
	}

	return db, nil
}

// Close closes the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
