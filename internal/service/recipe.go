package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"gorm.io/gorm"

	"github.com/dayumcodes/Calorie-Tracker-App/internal/models"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/nutrition"
)

// RecipeService handles recipe operations. Create, update and delete run in
// a single transaction so a recipe row never exists with a partial
// ingredient set.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// IngredientInput names a catalog food and its serving multiplier.
type IngredientInput struct {
	FoodID   uint
	Quantity float64
}

// RecipeInput carries the caller-editable recipe fields.
type RecipeInput struct {
	Name         string
	Description  string
	Instructions string
	Servings     int
	Image        string
	Ingredients  []IngredientInput
}

func validateRecipeInput(in RecipeInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return invalidInput("recipe name is required")
	}
	if in.Servings < 1 {
		return invalidInput("servings must be at least 1")
	}
	if len(in.Ingredients) == 0 {
		return invalidInput("at least one ingredient is required")
	}
	for _, ing := range in.Ingredients {
		if ing.Quantity <= 0 {
			return invalidInput("ingredient quantity must be positive")
		}
	}
	return nil
}

// totalCalories sums quantity-weighted calories over the ingredient set,
// verifying every referenced food exists.
func totalCalories(tx *gorm.DB, ingredients []IngredientInput) (int, error) {
	total := 0.0
	for _, ing := range ingredients {
		var food models.FoodItem
		if err := tx.First(&food, ing.FoodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, fmt.Errorf("food item %d: %w", ing.FoodID, ErrNotFound)
			}
			return 0, fmt.Errorf("failed to load food item %d: %w", ing.FoodID, err)
		}
		total += ing.Quantity * float64(food.Calories)
	}
	return int(math.Round(total)), nil
}

// CreateRecipe stores a recipe and its ingredient rows atomically. The
// calorie total is computed from the catalog at save time.
func (s *RecipeService) CreateRecipe(ctx context.Context, in RecipeInput) (*models.Recipe, error) {
	if err := validateRecipeInput(in); err != nil {
		return nil, err
	}

	var created models.Recipe
	err := s.db.Transaction(func(tx *gorm.DB) error {
		total, err := totalCalories(tx, in.Ingredients)
		if err != nil {
			return err
		}

		recipe := models.Recipe{
			Name:          strings.TrimSpace(in.Name),
			Description:   in.Description,
			Instructions:  in.Instructions,
			Servings:      in.Servings,
			TotalCalories: total,
			Image:         in.Image,
		}
		if err := tx.Create(&recipe).Error; err != nil {
			return fmt.Errorf("failed to create recipe: %w", err)
		}

		for _, ing := range in.Ingredients {
			row := models.RecipeIngredient{
				RecipeID: recipe.ID,
				FoodID:   ing.FoodID,
				Quantity: ing.Quantity,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create recipe ingredient: %w", err)
			}
		}

		created = recipe
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateRecipe replaces the recipe's fields and its whole ingredient set
// atomically. The old ingredient rows are gone after a successful update.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uint, in RecipeInput) (*models.Recipe, error) {
	if err := validateRecipeInput(in); err != nil {
		return nil, err
	}

	var updated models.Recipe
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load recipe: %w", err)
		}

		total, err := totalCalories(tx, in.Ingredients)
		if err != nil {
			return err
		}

		recipe.Name = strings.TrimSpace(in.Name)
		recipe.Description = in.Description
		recipe.Instructions = in.Instructions
		recipe.Servings = in.Servings
		recipe.TotalCalories = total
		if in.Image != "" {
			recipe.Image = in.Image
		}
		if err := tx.Save(&recipe).Error; err != nil {
			return fmt.Errorf("failed to update recipe: %w", err)
		}

		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return fmt.Errorf("failed to clear recipe ingredients: %w", err)
		}
		for _, ing := range in.Ingredients {
			row := models.RecipeIngredient{
				RecipeID: id,
				FoodID:   ing.FoodID,
				Quantity: ing.Quantity,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create recipe ingredient: %w", err)
			}
		}

		updated = recipe
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteRecipe removes the recipe and its ingredient rows atomically.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load recipe: %w", err)
		}

		// Ingredient rows first, then the recipe row.
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return fmt.Errorf("failed to delete recipe ingredients: %w", err)
		}
		if err := tx.Delete(&models.Recipe{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete recipe: %w", err)
		}
		return nil
	})
}

// GetRecipeWithIngredients loads a recipe with its ingredients and their
// catalog foods.
func (s *RecipeService) GetRecipeWithIngredients(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.Preload("Ingredients.Food").First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load recipe: %w", err)
	}
	return &recipe, nil
}

// ListRecipes returns all recipes sorted by name, without ingredients.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.Order("name ASC").Find(&recipes).Error; err != nil {
		log.Printf("Warning: failed to list recipes: %v", err)
		return []models.Recipe{}, nil
	}
	return recipes, nil
}

// LogRecipeAsMeal writes one serving of the recipe into the food log. The
// per-serving macros are computed from the current ingredient set and
// frozen into the log row; editing the recipe later does not change what
// was already logged.
func (s *RecipeService) LogRecipeAsMeal(ctx context.Context, userID, recipeID uint, mealType models.MealType, date string) (*models.FoodLog, error) {
	if !mealType.Valid() {
		return nil, invalidInput("unknown meal type %q", mealType)
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}

	recipe, err := s.GetRecipeWithIngredients(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	var protein, carbs, fat, fiber float64
	for _, ing := range recipe.Ingredients {
		protein += ing.Quantity * ing.Food.Protein
		carbs += ing.Quantity * ing.Food.Carbs
		fat += ing.Quantity * ing.Food.Fat
		fiber += ing.Quantity * ing.Food.Fiber
	}

	entry := models.FoodLog{
		UserID:    userID,
		Source:    models.SourceRecipe,
		RecipeID:  &recipe.ID,
		FoodName:  recipe.Name,
		Calories:  nutrition.PerServing(float64(recipe.TotalCalories), recipe.Servings),
		Protein:   nutrition.PerServing(protein, recipe.Servings),
		Carbs:     nutrition.PerServing(carbs, recipe.Servings),
		Fat:       nutrition.PerServing(fat, recipe.Servings),
		Fiber:     nutrition.PerServing(fiber, recipe.Servings),
		Quantity:  1,
		MealType:  mealType,
		Date:      date,
		Timestamp: timestampFor(date),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to log recipe: %w", err)
	}
	return &entry, nil
}
