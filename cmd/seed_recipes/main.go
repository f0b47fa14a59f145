package main

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/dayumcodes/Calorie-Tracker-App/config"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/database"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/models"
	"github.com/dayumcodes/Calorie-Tracker-App/internal/service"
)

type demoIngredient struct {
	food     string
	quantity float64
}

type demoRecipe struct {
	name         string
	description  string
	instructions string
	servings     int
	ingredients  []demoIngredient
}

var demoRecipes = []demoRecipe{
	{
		name:         "Dal Chawal",
		description:  "Comfort plate of rice and tempered lentils",
		instructions: "Cook the rice. Temper the dal with cumin and ghee. Serve together.",
		servings:     2,
		ingredients: []demoIngredient{
			{"White Rice (cooked)", 2},
			{"Dal Tadka", 1},
		},
	},
	{
		name:         "Chole Rice Bowl",
		description:  "Chickpea curry over rice",
		instructions: "Heat the chole, spoon over rice, finish with onion and lemon.",
		servings:     2,
		ingredients: []demoIngredient{
			{"White Rice (cooked)", 1.5},
			{"Chole", 1},
		},
	},
	{
		name:         "Paneer Roll",
		description:  "Chapati wrapped around spiced paneer",
		instructions: "Pan-fry the paneer with spices, roll inside warm chapatis.",
		servings:     2,
		ingredients: []demoIngredient{
			{"Chapati", 2},
			{"Paneer", 0.5},
		},
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
	if err := database.SeedFoodItems(db); err != nil {
		log.Fatalf("Failed to seed food catalog: %v", err)
	}

	ctx := context.Background()
	recipes := service.NewRecipeService(db)

	created := 0
	for _, dr := range demoRecipes {
		var existing models.Recipe
		err := db.Where("name = ?", dr.name).First(&existing).Error
		if err == nil {
			log.Printf("Recipe already exists, skipping: %s", dr.name)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check recipe %q: %v", dr.name, err)
		}

		in := service.RecipeInput{
			Name:         dr.name,
			Description:  dr.description,
			Instructions: dr.instructions,
			Servings:     dr.servings,
		}
		for _, ing := range dr.ingredients {
			var food models.FoodItem
			if err := db.Where("name = ?", ing.food).First(&food).Error; err != nil {
				log.Fatalf("Failed to find catalog food %q: %v", ing.food, err)
			}
			in.Ingredients = append(in.Ingredients, service.IngredientInput{
				FoodID:   food.ID,
				Quantity: ing.quantity,
			})
		}

		recipe, err := recipes.CreateRecipe(ctx, in)
		if err != nil {
			log.Fatalf("Failed to create recipe %q: %v", dr.name, err)
		}
		log.Printf("Created recipe %q (%d kcal total)", recipe.Name, recipe.TotalCalories)
		created++
	}

	log.Printf("Done, %d recipes created", created)
}
