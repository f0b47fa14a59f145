package models

import (
	"time"
)

// FoodItem is a catalog entry: per-serving macros for a reference food.
// Catalog edits update the row in place; logs and recipes snapshot the values
// they were created with, so editing an item never rewrites history.
type FoodItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:255;not null;index" json:"name"`
	Calories    int       `gorm:"not null" json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	Fiber       float64   `json:"fiber"`
	ServingSize string    `gorm:"size:100" json:"serving_size"`
	Region      string    `gorm:"size:50" json:"region"`
	Category    string    `gorm:"size:50" json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
