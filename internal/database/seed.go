package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/dayumcodes/Calorie-Tracker-App/internal/models"
)

// SeedFoodItems populates the reference food catalog on first run. It only
// applies to an empty table, so restarts never clobber user-added foods.
func SeedFoodItems(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.FoodItem{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check food catalog: %w", err)
	}
	if count > 0 {
		return nil
	}

	foods := referenceFoods()
	if err := db.Create(&foods).Error; err != nil {
		return fmt.Errorf("failed to seed food catalog: %w", err)
	}
	log.Printf("Seeded food catalog with %d reference foods", len(foods))
	return nil
}

func referenceFoods() []models.FoodItem {
	return []models.FoodItem{
		{Name: "Chapati", Calories: 104, Protein: 3.1, Carbs: 18, Fat: 2.5, Fiber: 2.3, ServingSize: "1 piece", Region: "North Indian", Category: "Breads"},
		{Name: "Paratha (plain)", Calories: 180, Protein: 4.2, Carbs: 24.5, Fat: 7.5, Fiber: 3, ServingSize: "1 piece", Region: "North Indian", Category: "Breads"},
		{Name: "Naan", Calories: 262, Protein: 8.7, Carbs: 45.4, Fat: 5.1, Fiber: 2, ServingSize: "1 piece", Region: "North Indian", Category: "Breads"},
		{Name: "White Rice (cooked)", Calories: 205, Protein: 4.3, Carbs: 44.5, Fat: 0.4, Fiber: 0.6, ServingSize: "1 cup", Region: "Indian", Category: "Grains"},
		{Name: "Brown Rice (cooked)", Calories: 216, Protein: 5, Carbs: 44.8, Fat: 1.8, Fiber: 3.5, ServingSize: "1 cup", Region: "Indian", Category: "Grains"},
		{Name: "Jeera Rice", Calories: 250, Protein: 4.5, Carbs: 45, Fat: 6, Fiber: 1.2, ServingSize: "1 cup", Region: "North Indian", Category: "Grains"},
		{Name: "Poha", Calories: 180, Protein: 3.5, Carbs: 32, Fat: 4.5, Fiber: 1.8, ServingSize: "1 plate", Region: "West Indian", Category: "Breakfast"},
		{Name: "Upma", Calories: 192, Protein: 4.8, Carbs: 30.5, Fat: 6.2, Fiber: 2.5, ServingSize: "1 plate", Region: "South Indian", Category: "Breakfast"},
		{Name: "Idli", Calories: 58, Protein: 2, Carbs: 12, Fat: 0.4, Fiber: 0.8, ServingSize: "1 piece", Region: "South Indian", Category: "Breakfast"},
		{Name: "Dosa (plain)", Calories: 133, Protein: 2.7, Carbs: 17, Fat: 6, Fiber: 0.9, ServingSize: "1 piece", Region: "South Indian", Category: "Breakfast"},
		{Name: "Masala Dosa", Calories: 210, Protein: 4.5, Carbs: 28, Fat: 9, Fiber: 2.1, ServingSize: "1 piece", Region: "South Indian", Category: "Breakfast"},
		{Name: "Oats (cooked)", Calories: 166, Protein: 5.9, Carbs: 28.1, Fat: 3.6, Fiber: 4, ServingSize: "1 cup", Region: "Generic", Category: "Breakfast"},
		{Name: "Dal Tadka", Calories: 180, Protein: 9, Carbs: 24, Fat: 5.5, Fiber: 6, ServingSize: "1 cup", Region: "North Indian", Category: "Curries"},
		{Name: "Rajma Curry", Calories: 215, Protein: 12, Carbs: 33, Fat: 4, Fiber: 9.5, ServingSize: "1 cup", Region: "North Indian", Category: "Curries"},
		{Name: "Chole", Calories: 230, Protein: 11.5, Carbs: 34, Fat: 6, Fiber: 9, ServingSize: "1 cup", Region: "North Indian", Category: "Curries"},
		{Name: "Palak Paneer", Calories: 280, Protein: 13, Carbs: 9, Fat: 22, Fiber: 3.5, ServingSize: "1 cup", Region: "North Indian", Category: "Curries"},
		{Name: "Paneer Butter Masala", Calories: 350, Protein: 14, Carbs: 12, Fat: 28, Fiber: 2.5, ServingSize: "1 cup", Region: "North Indian", Category: "Curries"},
		{Name: "Chicken Curry", Calories: 290, Protein: 26, Carbs: 8, Fat: 17, Fiber: 1.5, ServingSize: "1 cup", Region: "Indian", Category: "Curries"},
		{Name: "Butter Chicken", Calories: 370, Protein: 25, Carbs: 10, Fat: 26, Fiber: 1.2, ServingSize: "1 cup", Region: "North Indian", Category: "Curries"},
		{Name: "Fish Curry", Calories: 240, Protein: 22, Carbs: 6, Fat: 14, Fiber: 1, ServingSize: "1 cup", Region: "South Indian", Category: "Curries"},
		{Name: "Sambar", Calories: 130, Protein: 6.5, Carbs: 20, Fat: 3, Fiber: 4.5, ServingSize: "1 cup", Region: "South Indian", Category: "Curries"},
		{Name: "Kadhi", Calories: 160, Protein: 6, Carbs: 14, Fat: 9, Fiber: 1.5, ServingSize: "1 cup", Region: "North Indian", Category: "Curries"},
		{Name: "Boiled Egg", Calories: 78, Protein: 6.3, Carbs: 0.6, Fat: 5.3, Fiber: 0, ServingSize: "1 large", Region: "Generic", Category: "Protein"},
		{Name: "Omelette", Calories: 188, Protein: 12.8, Carbs: 1.5, Fat: 14.5, Fiber: 0, ServingSize: "2 eggs", Region: "Generic", Category: "Protein"},
		{Name: "Grilled Chicken Breast", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0, ServingSize: "100 g", Region: "Generic", Category: "Protein"},
		{Name: "Paneer", Calories: 265, Protein: 18.3, Carbs: 1.2, Fat: 20.8, Fiber: 0, ServingSize: "100 g", Region: "Indian", Category: "Dairy"},
		{Name: "Curd", Calories: 98, Protein: 11, Carbs: 3.4, Fat: 4.3, Fiber: 0, ServingSize: "1 cup", Region: "Indian", Category: "Dairy"},
		{Name: "Milk (whole)", Calories: 149, Protein: 7.7, Carbs: 11.7, Fat: 7.9, Fiber: 0, ServingSize: "1 cup", Region: "Generic", Category: "Dairy"},
		{Name: "Buttermilk", Calories: 40, Protein: 2, Carbs: 5, Fat: 1, Fiber: 0, ServingSize: "1 glass", Region: "Indian", Category: "Beverages"},
		{Name: "Lassi (sweet)", Calories: 180, Protein: 5.5, Carbs: 27, Fat: 5, Fiber: 0, ServingSize: "1 glass", Region: "North Indian", Category: "Beverages"},
		{Name: "Samosa", Calories: 262, Protein: 4.7, Carbs: 30.5, Fat: 13.5, Fiber: 2.2, ServingSize: "1 piece", Region: "North Indian", Category: "Snacks"},
		{Name: "Pakora", Calories: 175, Protein: 4, Carbs: 15, Fat: 11, Fiber: 2, ServingSize: "1 plate", Region: "Indian", Category: "Snacks"},
		{Name: "Dhokla", Calories: 160, Protein: 6, Carbs: 27, Fat: 3, Fiber: 1.8, ServingSize: "2 pieces", Region: "West Indian", Category: "Snacks"},
		{Name: "Vada Pav", Calories: 290, Protein: 6.5, Carbs: 40, Fat: 12, Fiber: 2.5, ServingSize: "1 piece", Region: "West Indian", Category: "Snacks"},
		{Name: "Gulab Jamun", Calories: 150, Protein: 2, Carbs: 23, Fat: 5.5, Fiber: 0.3, ServingSize: "1 piece", Region: "Indian", Category: "Sweets"},
		{Name: "Jalebi", Calories: 150, Protein: 1.5, Carbs: 25, Fat: 5, Fiber: 0.2, ServingSize: "1 piece", Region: "Indian", Category: "Sweets"},
		{Name: "Kheer", Calories: 215, Protein: 6, Carbs: 33, Fat: 7, Fiber: 0.5, ServingSize: "1 cup", Region: "Indian", Category: "Sweets"},
		{Name: "Banana", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4, Fiber: 3.1, ServingSize: "1 medium", Region: "Generic", Category: "Fruits"},
		{Name: "Apple", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3, Fiber: 4.4, ServingSize: "1 medium", Region: "Generic", Category: "Fruits"},
		{Name: "Mango", Calories: 202, Protein: 2.8, Carbs: 50, Fat: 1.3, Fiber: 5.4, ServingSize: "1 whole", Region: "Indian", Category: "Fruits"},
		{Name: "Mixed Vegetable Sabzi", Calories: 145, Protein: 3.5, Carbs: 15, Fat: 8, Fiber: 4.5, ServingSize: "1 cup", Region: "Indian", Category: "Vegetables"},
		{Name: "Aloo Gobi", Calories: 180, Protein: 4, Carbs: 22, Fat: 9, Fiber: 4, ServingSize: "1 cup", Region: "North Indian", Category: "Vegetables"},
		{Name: "Masala Chai", Calories: 60, Protein: 1.8, Carbs: 8.5, Fat: 2.2, Fiber: 0, ServingSize: "1 cup", Region: "Indian", Category: "Beverages"},
		{Name: "Filter Coffee", Calories: 45, Protein: 1.5, Carbs: 6, Fat: 1.8, Fiber: 0, ServingSize: "1 cup", Region: "South Indian", Category: "Beverages"},
	}
}
