package migration

import (
	"github.com/latoulicious/roster/pkg/database/models"
	"gorm.io/gorm"
)

// Models lists every table owned by the roster schema, parents first
func Models() []interface{} {
	return []interface{}{
		&models.Hero{},
		&models.Slogan{},
		&models.Clash{},
		&models.Story{},
	}
}

// RunMigration creates the roster tables with their unique and foreign key constraints
func RunMigration(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
