package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/dayumcodes/Calorie-Tracker-App/config"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/database"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/server"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.SeedFoodItems(db); err != nil {
		log.Fatalf("Failed to seed food catalog: %v", err)
	}

	var s3cfg *config.S3Config
	if cfg.S3Configured() {
		ctx := context.Background()
		s3cfg, err = config.NewS3Config(ctx, cfg.S3Bucket)
		if err != nil {
			log.Fatalf("Failed to initialize S3: %v", err)
		}
		// Stored image URLs are served straight from the bucket.
		if err := s3cfg.SetupBucketPolicy(ctx); err != nil {
			log.Printf("Warning: failed to apply S3 bucket policy: %v", err)
		}
	}
	images := service.NewImageService(cfg.UploadDir, s3cfg)

	srv := server.New(cfg, db, images)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
