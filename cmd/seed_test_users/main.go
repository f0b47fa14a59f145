package main

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dayumcodes/Calorie-Tracker-App/config"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/database"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/models"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/nutrition"
)

// Accounts for manual testing; every one logs in with the same password.
const testPassword = "testpassword123"

var testUsers = []models.User{
	{
		Email:         "asha@example.com",
		Name:          "Asha Verma",
		Age:           28,
		Gender:        "Female",
		HeightCm:      162,
		WeightKg:      58,
		ActivityLevel: models.ActivityModerate,
		Goal:          models.GoalMaintain,
	},
	{
		Email:         "rahul@example.com",
		Name:          "Rahul Nair",
		Age:           34,
		Gender:        "Male",
		HeightCm:      176,
		WeightKg:      84,
		ActivityLevel: models.ActivityLight,
		Goal:          models.GoalLoseWeight,
	},
	{
		Email:         "dev@example.com",
		Name:          "Dev Account",
		Age:           30,
		Gender:        "Male",
		HeightCm:      170,
		WeightKg:      70,
		ActivityLevel: models.ActivitySedentary,
		Goal:          models.GoalGainWeight,
	},
}

func main() {
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

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	created := 0
	for _, u := range testUsers {
		var existing models.User
		err := db.Where("email = ?", u.Email).First(&existing).Error
		if err == nil {
			log.Printf("User already exists, skipping: %s", u.Email)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check user %s: %v", u.Email, err)
		}

		u.PasswordHash = string(hash)
		u.DailyCalorieTarget = nutrition.EstimateDailyCalorieTarget(u)
		if err := db.Create(&u).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", u.Email, err)
		}
		log.Printf("Created user %s (target %d kcal)", u.Email, u.DailyCalorieTarget)
		created++
	}

	log.Printf("Done, %d users created", created)
}
