package models

import (
	"time"
)

// Recipe is a user-assembled dish built from catalog foods.
//
// TotalCalories is a snapshot of the ingredient sum taken when the recipe was
// last saved. It is not recomputed when a referenced FoodItem is later edited;
// figures users have already seen stay stable.
type Recipe struct {
	ID            uint               `gorm:"primarykey" json:"id"`
	Name          string             `gorm:"size:255;not null" json:"name"`
	Description   string             `gorm:"type:text" json:"description"`
	Instructions  string             `gorm:"type:text" json:"instructions"`
	Servings      int                `gorm:"not null" json:"servings"`
	TotalCalories int                `gorm:"not null" json:"total_calories"`
	Image         string             `gorm:"size:255" json:"image"`
	Ingredients   []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// RecipeIngredient ties a recipe to a catalog food with a serving multiplier.
type RecipeIngredient struct {
	ID       uint     `gorm:"primarykey" json:"id"`
	RecipeID uint     `gorm:"not null;index" json:"recipe_id"`
	FoodID   uint     `gorm:"not null;index" json:"food_id"`
	Quantity float64  `gorm:"not null" json:"quantity"`
	Food     FoodItem `gorm:"foreignKey:FoodID" json:"food"`
}
