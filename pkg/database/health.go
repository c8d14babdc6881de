package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/latoulicious/roster/pkg/database/migration"
	"gorm.io/gorm"
)

// Health is the result of a connectivity check
type Health struct {
	Dialect      string
	Version      string
	PingDuration time.Duration
	Tables       map[string]bool
	Pool         sql.DBStats
}

// Ready reports whether every roster table exists
func (h *Health) Ready() bool {
	for _, exists := range h.Tables {
		if !exists {
			return false
		}
	}
	return len(h.Tables) > 0
}

// Check pings the database, reads the server version, verifies that a
// transaction can be opened and reports which roster tables exist.
func Check(ctx context.Context, db *gorm.DB) (*Health, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying database connection: %w", err)
	}

	start := time.Now()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	health := &Health{
		Dialect:      db.Dialector.Name(),
		PingDuration: time.Since(start),
		Tables:       make(map[string]bool),
	}

	versionQuery := "SELECT version()"
	if health.Dialect == "sqlite" {
		versionQuery = "SELECT sqlite_version()"
	}
	if err := db.WithContext(ctx).Raw(versionQuery).Scan(&health.Version).Error; err != nil {
		return nil, fmt.Errorf("failed to get database version: %w", err)
	}

	if err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var one int
		return tx.Raw("SELECT 1").Scan(&one).Error
	}); err != nil {
		return nil, fmt.Errorf("transaction test failed: %w", err)
	}

	migrator := db.WithContext(ctx).Migrator()
	for _, model := range migration.Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, err
		}
		health.Tables[stmt.Table] = migrator.HasTable(model)
	}

	health.Pool = sqlDB.Stats()
	return health, nil
}
