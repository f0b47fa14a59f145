package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dayumcodes/Calorie-Tracker-App/config"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	cfg := &config.Config{
		DBDriver: "sqlite",
		DBPath:   filepath.Join(t.TempDir(), "test.db"),
	}
	db, err := Open(cfg)
	require.NoError(t, err)
	return db
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestOpenCreatesDatabaseDirectory(t *testing.T) {
	cfg := &config.Config{
		DBDriver: "sqlite",
		DBPath:   filepath.Join(t.TempDir(), "data", "nested", "test.db"),
	}
	db, err := Open(cfg)
	require.NoError(t, err)
	assert.NotNil(t, db)
}

func TestMigrateCreatesTables(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	tables := []string{"users", "food_items", "recipes", "recipe_ingredients", "food_logs", "water_logs"}
	for _, table := range tables {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestSeedFoodItems(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	require.NoError(t, SeedFoodItems(db))
	var count int64
	require.NoError(t, db.Model(&models.FoodItem{}).Count(&count).Error)
	assert.Greater(t, count, int64(30))

	// A second run must not duplicate the catalog.
	require.NoError(t, SeedFoodItems(db))
	var again int64
	require.NoError(t, db.Model(&models.FoodItem{}).Count(&again).Error)
	assert.Equal(t, count, again)
}

func TestSeedSkipsNonEmptyCatalog(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))
	require.NoError(t, db.Create(&models.FoodItem{Name: "Custom Food", Calories: 10}).Error)

	require.NoError(t, SeedFoodItems(db))
	var count int64
	require.NoError(t, db.Model(&models.FoodItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
