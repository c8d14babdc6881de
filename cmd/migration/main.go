package main

import (
	"flag"
	"log"

	"github.com/latoulicious/roster/internal/config"
	"github.com/latoulicious/roster/pkg/database"
	"github.com/latoulicious/roster/pkg/database/migration"
)

func main() {
	// Parse the command line arguments
	resetFlag := flag.Bool("reset", false, "Drop the roster tables before migrating")
	migrateFlag := flag.Bool("migrate", true, "Create missing roster tables and columns")
	flag.Parse()

	// LoadConfig reads .env itself
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewGormDB(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)
	log.Println("Connected to database")

	// Reset Flag
	if *resetFlag {
		log.Println("Resetting database...")

		if err := migration.Reset(db); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}

		log.Println("Database reset successfully")
	}

	// Schema Flag
	if *migrateFlag {
		log.Println("Running migrations...")

		if err := migration.RunMigration(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		log.Println("Migrations completed successfully")
	}
}
