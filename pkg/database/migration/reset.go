package migration

import (
	"fmt"

	"gorm.io/gorm"
)

// Reset drops every roster table. Dependent tables go first so the
// foreign keys never block a drop.
func Reset(db *gorm.DB) error {
	tables := Models()
	for i := len(tables) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(tables[i]); err != nil {
			return fmt.Errorf("failed to drop %T: %w", tables[i], err)
		}
	}
	return nil
}

// Recreate drops and recreates the whole schema
func Recreate(db *gorm.DB) error {
	if err := Reset(db); err != nil {
		return err
	}
	return RunMigration(db)
}
