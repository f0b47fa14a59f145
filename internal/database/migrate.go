package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/dayumcodes/Calorie-Tracker-App/internal/models"
)

// Migrate creates or updates all tables. Safe to run on every start.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.FoodLog{},
		&models.WaterLog{},
	)
	if err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}
