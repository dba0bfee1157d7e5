package main

import (
	"flag"
	"log"

	"biomonitor/database"
	"biomonitor/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	numRecords := flag.Int("records", utils.DefaultNumRecords, "Number of demo records to create")
	cleanup := flag.Bool("cleanup", false, "Remove previously seeded demo data instead of seeding")
	flag.Parse()

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	if *cleanup {
		if err := utils.CleanupDemoData(database.DB); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
		return
	}

	user, err := utils.SeedDemoProfile(database.DB, *numRecords)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Done. Select the demo profile with: POST /session/select/%s", user.ID)
}
