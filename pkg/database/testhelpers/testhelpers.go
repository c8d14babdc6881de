package testhelpers

import (
	"path/filepath"
	"testing"

	"github.com/latoulicious/roster/pkg/database"
	"github.com/latoulicious/roster/pkg/database/migration"
	"gorm.io/gorm"
)

// NewTestDB returns a sqlite database with the roster schema created, opened
// the same way as production. It is closed when the test completes.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := database.SQLitePrefix + filepath.Join(t.TempDir(), "roster.db")
	db, err := database.NewGormDB(dsn, nil)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		_ = database.Close(db)
	})

	if err := migration.RunMigration(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}
