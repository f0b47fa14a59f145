package models

import (
	"time"
)

// MealType is the slot a food log entry belongs to.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
	MealGeneric   MealType = "Meal"
)

// Valid reports whether the meal type is one of the known values.
func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack, MealGeneric:
		return true
	}
	return false
}

// LogSource tags where a food log entry came from.
type LogSource string

const (
	// SourceCatalog entries reference a FoodItem; FoodID is set.
	SourceCatalog LogSource = "catalog"
	// SourceRecipe entries hold one serving of a recipe; RecipeID is set and
	// the macro fields carry the per-serving values frozen at log time.
	SourceRecipe LogSource = "recipe"
)

// FoodLog is one consumption event. Rows are immutable: the name and per-unit
// macros are snapshotted at insert so later catalog or recipe edits never
// change a day that was already logged. Date is the local calendar day of
// Timestamp in YYYY-MM-DD form and is the aggregation key.
type FoodLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_food_logs_user_date" json:"user_id"`
	Source    LogSource `gorm:"size:10;not null;default:catalog" json:"source"`
	FoodID    *uint     `gorm:"index" json:"food_id,omitempty"`
	RecipeID  *uint     `gorm:"index" json:"recipe_id,omitempty"`
	FoodName  string    `gorm:"size:255;not null" json:"food_name"`
	Calories  float64   `gorm:"not null" json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	Fiber     float64   `json:"fiber"`
	Quantity  float64   `gorm:"not null" json:"quantity"`
	MealType  MealType  `gorm:"size:20;not null" json:"meal_type"`
	Date      string    `gorm:"size:10;not null;index:idx_food_logs_user_date" json:"date"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}

// WaterLog is one water intake event, in milliliters.
type WaterLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_water_logs_user_date" json:"user_id"`
	AmountMl  int       `gorm:"not null" json:"amount_ml"`
	Date      string    `gorm:"size:10;not null;index:idx_water_logs_user_date" json:"date"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}
