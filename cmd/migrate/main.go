package main

import (
	"fmt"
	"os"

	"github.com/kartiknayak1216/lenso-backend-service/internal/config"
	"github.com/kartiknayak1216/lenso-backend-service/internal/db"
	"github.com/kartiknayak1216/lenso-backend-service/internal/repository/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	database, err := sqlite.New(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	fmt.Println("Connected to database successfully")

	if err := db.RunMigrations(database); err != nil {
		fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("All migrations completed successfully")
}
