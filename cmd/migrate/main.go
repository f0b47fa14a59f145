package main

import (
	"flag"
	"log"

	"github.com/dayumcodes/Calorie-Tracker-App/config"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/database"
)

func main() {
	seed := flag.Bool("seed", false, "Seed the reference food catalog after migrating")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations applied")

	if *seed {
		if err := database.SeedFoodItems(db); err != nil {
			log.Fatalf("Failed to seed food catalog: %v", err)
		}
	}
}
