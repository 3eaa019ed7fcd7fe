package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase establishes the datastore connection. Without a
// DATABASE_URL the dashboard runs on an in-memory SQLite database: every
// business record is ephemeral and lives for exactly one process run. A
// PostgreSQL DATABASE_URL switches to a durable deployment.
func ConnectDatabase() error {
	databaseURL := os.Getenv("DATABASE_URL")

	var err error
	if databaseURL == "" {
		log.Println("DATABASE_URL not set, using ephemeral in-memory store")
		DB, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	} else {
		DB, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established successfully")
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (primarily for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
