package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dayumcodes/Calorie-Tracker-App/internal/lookup"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/models"
)

// setupTestDB opens a throwaway SQLite database with the same pragmas as the
// real store so transactional behavior matches production.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("%s?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on&_txlock=immediate",
		filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.FoodLog{},
		&models.WaterLog{},
	))
	return db
}

func createFood(t *testing.T, db *gorm.DB, item models.FoodItem) models.FoodItem {
	t.Helper()
	require.NoError(t, db.Create(&item).Error)
	return item
}

func createUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{
		Email:         email,
		PasswordHash:  "x",
		Name:          "Test User",
		ActivityLevel: models.ActivitySedentary,
		Goal:          models.GoalMaintain,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// stubLookup satisfies lookup.Provider with canned results.
type stubLookup struct {
	facts *lookup.FoodFacts
	err   error
	calls int
}

func (s *stubLookup) Lookup(_ context.Context, _ string) (*lookup.FoodFacts, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.facts, nil
}
